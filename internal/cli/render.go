package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"
	"time"

	"github.com/jaekwang-park/todo-widget/internal/model"
)

const shortIDLen = 8

// TaskView is one display row as written by -json output.
type TaskView struct {
	model.Task
	Urgency      model.Urgency `json:"urgency"`
	UrgencyLabel string        `json:"urgency_label"`
}

type ListView struct {
	Tasks []TaskView  `json:"tasks"`
	Stats model.Stats `json:"stats"`
}

func NewListView(tasks []model.Task, stats model.Stats, now time.Time) ListView {
	views := make([]TaskView, 0, len(tasks))
	for _, t := range tasks {
		u := model.ClassifyDeadline(t.Deadline, now)
		views = append(views, TaskView{Task: t, Urgency: u, UrgencyLabel: u.Label()})
	}
	return ListView{Tasks: views, Stats: stats}
}

func WriteJSON(w io.Writer, data any) {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		slog.Error("failed to encode output", "error", err)
	}
}

// WriteList renders rows in display order followed by the stats line.
func WriteList(w io.Writer, view ListView, now time.Time) {
	if len(view.Tasks) > 0 {
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, t := range view.Tasks {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
				checkbox(t.Completed), shortID(t.ID), t.Description, DeadlineLabel(t.Deadline, now))
		}
		tw.Flush()
	}
	fmt.Fprintln(w, StatsLine(view.Stats))
}

func StatsLine(s model.Stats) string {
	if s.Total == 0 {
		return "no tasks yet"
	}
	return fmt.Sprintf("%d total · %d done · %d pending", s.Total, s.Completed, s.Pending)
}

// DeadlineLabel describes a deadline relative to now.
func DeadlineLabel(deadline string, now time.Time) string {
	due, ok := model.ParseDeadline(deadline, now.Location())
	if !ok {
		return deadline
	}
	days, _ := model.DaysRemaining(deadline, now)

	switch model.ClassifyDeadline(deadline, now) {
	case model.UrgencyOverdue:
		return deadline + " overdue"
	case model.UrgencyDueToday:
		return "today " + due.Format(model.TimeLayout)
	case model.UrgencyDueSoon:
		unit := "days"
		if days == 1 {
			unit = "day"
		}
		return fmt.Sprintf("in %d %s %s", days, unit, due.Format(model.TimeLayout))
	default:
		return deadline
	}
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

func shortID(id string) string {
	if len(id) > shortIDLen {
		return id[:shortIDLen]
	}
	return id
}
