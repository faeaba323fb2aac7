package model

import (
	"math"
	"time"
)

type Urgency string

const (
	UrgencyOverdue  Urgency = "overdue"
	UrgencyDueToday Urgency = "due_today"
	UrgencyDueSoon  Urgency = "due_soon"
	UrgencyNormal   Urgency = "normal"
)

// SoonWindowDays is the largest number of whole days left that still counts as due soon.
const SoonWindowDays = 3

// Label is the human-readable form carried in -json output.
func (u Urgency) Label() string {
	switch u {
	case UrgencyOverdue:
		return "overdue"
	case UrgencyDueToday:
		return "due today"
	case UrgencyDueSoon:
		return "due soon"
	default:
		return "normal"
	}
}

// ParseDeadline reads composed deadline text in loc.
func ParseDeadline(deadline string, loc *time.Location) (time.Time, bool) {
	due, err := time.ParseInLocation(DeadlineLayout, deadline, loc)
	if err != nil {
		return time.Time{}, false
	}
	return due, true
}

// DaysRemaining reports the whole days between now and deadline, rounded
// toward negative infinity. ok is false when deadline is not "YYYY-MM-DD HH:MM".
func DaysRemaining(deadline string, now time.Time) (days int, ok bool) {
	due, ok := ParseDeadline(deadline, now.Location())
	if !ok {
		return 0, false
	}
	diff := due.Sub(now)
	return int(math.Floor(diff.Hours() / 24)), true
}

// ClassifyDeadline labels a deadline relative to now. Unparseable deadlines
// are treated as normal.
func ClassifyDeadline(deadline string, now time.Time) Urgency {
	days, ok := DaysRemaining(deadline, now)
	switch {
	case !ok:
		return UrgencyNormal
	case days < 0:
		return UrgencyOverdue
	case days == 0:
		return UrgencyDueToday
	case days <= SoonWindowDays:
		return UrgencyDueSoon
	default:
		return UrgencyNormal
	}
}
