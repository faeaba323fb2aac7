package model_test

import (
	"testing"
	"time"

	"github.com/jaekwang-park/todo-widget/internal/model"
)

func TestClassifyDeadline(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		deadline string
		want     model.Urgency
	}{
		{"yesterday night", "2024-06-09 23:59", model.UrgencyOverdue},
		{"one minute ago", "2024-06-10 11:59", model.UrgencyOverdue},
		{"tonight", "2024-06-10 23:59", model.UrgencyDueToday},
		{"tomorrow morning is within a day", "2024-06-11 09:00", model.UrgencyDueToday},
		{"two and a half days", "2024-06-12 23:59", model.UrgencyDueSoon},
		{"exactly three days", "2024-06-13 12:00", model.UrgencyDueSoon},
		{"just under four days", "2024-06-14 11:59", model.UrgencyDueSoon},
		{"four days", "2024-06-14 12:00", model.UrgencyNormal},
		{"ten days", "2024-06-20 23:59", model.UrgencyNormal},
		{"garbage", "next friday", model.UrgencyNormal},
		{"empty", "", model.UrgencyNormal},
		{"date only", "2024-06-09", model.UrgencyNormal},
		{"blank time", "2024-06-09 ", model.UrgencyNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := model.ClassifyDeadline(tt.deadline, now); got != tt.want {
				t.Errorf("ClassifyDeadline(%q) = %s, want %s", tt.deadline, got, tt.want)
			}
		})
	}
}

func TestDaysRemaining(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		deadline string
		wantDays int
		wantOK   bool
	}{
		{"half a day late", "2024-06-10 00:00", -1, true},
		{"two days late", "2024-06-08 11:00", -3, true},
		{"same instant", "2024-06-10 12:00", 0, true},
		{"two days ahead", "2024-06-12 23:59", 2, true},
		{"unparseable", "soon", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, ok := model.DaysRemaining(tt.deadline, now)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if days != tt.wantDays {
				t.Errorf("days = %d, want %d", days, tt.wantDays)
			}
		})
	}
}

func TestUrgency_Label(t *testing.T) {
	if got := model.UrgencyDueToday.Label(); got != "due today" {
		t.Errorf("got %q, want %q", got, "due today")
	}
	if got := model.Urgency("bogus").Label(); got != "normal" {
		t.Errorf("got %q, want %q", got, "normal")
	}
}
