package cli_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jaekwang-park/todo-widget/internal/cli"
	"github.com/jaekwang-park/todo-widget/internal/model"
)

func TestDeadlineLabel(t *testing.T) {
	tests := []struct {
		name     string
		deadline string
		want     string
	}{
		{"overdue", "2024-06-09 23:59", "2024-06-09 23:59 overdue"},
		{"today", "2024-06-10 23:59", "today 23:59"},
		{"one day", "2024-06-11 18:00", "in 1 day 18:00"},
		{"two days", "2024-06-12 23:59", "in 2 days 23:59"},
		{"far", "2024-06-20 23:59", "2024-06-20 23:59"},
		{"unparseable", "someday soon", "someday soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cli.DeadlineLabel(tt.deadline, now))
		})
	}
}

func TestStatsLine(t *testing.T) {
	assert.Equal(t, "no tasks yet", cli.StatsLine(model.Stats{}))
	assert.Equal(t, "3 total · 1 done · 2 pending", cli.StatsLine(model.Stats{Total: 3, Completed: 1, Pending: 2}))
}

func TestWriteList_AlignsColumns(t *testing.T) {
	tasks := []model.Task{
		{ID: "0123456789abcdef", Description: "short", Deadline: "2024-06-20 23:59"},
		{ID: "fedcba9876543210", Description: "a longer one", Deadline: "2024-06-01 08:00", Completed: true},
	}
	view := cli.NewListView(tasks, model.Stats{Total: 2, Completed: 1, Pending: 1}, now)

	var buf bytes.Buffer
	cli.WriteList(&buf, view, now)

	want := "[ ]  01234567  short         2024-06-20 23:59\n" +
		"[x]  fedcba98  a longer one  2024-06-01 08:00 overdue\n" +
		"2 total · 1 done · 1 pending\n"
	assert.Equal(t, want, buf.String())
	assert.Equal(t, model.UrgencyOverdue, view.Tasks[1].Urgency)
	assert.Equal(t, "overdue", view.Tasks[1].UrgencyLabel)
	assert.Equal(t, "normal", view.Tasks[0].UrgencyLabel)
}
