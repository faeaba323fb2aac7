package service

import (
	"slices"
	"strings"

	"github.com/jaekwang-park/todo-widget/internal/model"
)

// ListForDisplay orders tasks for presentation: pending tasks by deadline,
// then completed tasks by completion time (falling back to deadline). Keys
// are compared as strings; ties keep storage order. The result is computed
// fresh on every call and shares no storage with list.
func ListForDisplay(list model.TaskList) []model.Task {
	var pending, completed []model.Task
	for _, t := range list.Clone() {
		if t.Completed {
			completed = append(completed, t)
		} else {
			pending = append(pending, t)
		}
	}

	slices.SortStableFunc(pending, func(a, b model.Task) int {
		return strings.Compare(a.Deadline, b.Deadline)
	})
	slices.SortStableFunc(completed, func(a, b model.Task) int {
		return strings.Compare(completedSortKey(a), completedSortKey(b))
	})

	out := make([]model.Task, 0, len(list))
	out = append(out, pending...)
	return append(out, completed...)
}

// completedSortKey renders completed_at in the deadline's text shape so the
// two are comparable.
func completedSortKey(t model.Task) string {
	if t.CompletedAt != nil && !t.CompletedAt.IsZero() {
		return t.CompletedAt.Local().Format(model.DeadlineLayout)
	}
	return t.Deadline
}

func Summarize(list model.TaskList) model.Stats {
	var stats model.Stats
	for _, t := range list {
		stats.Total++
		if t.Completed {
			stats.Completed++
		}
	}
	stats.Pending = stats.Total - stats.Completed
	return stats
}
