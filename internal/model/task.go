package model

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	DateLayout     = "2006-01-02"
	TimeLayout     = "15:04"
	DeadlineLayout = DateLayout + " " + TimeLayout

	DefaultDeadlineTime = "23:59"
)

// legacyTimestampLayout is the zone-less ISO form older task files carry.
const legacyTimestampLayout = "2006-01-02T15:04:05.999999999"

// Timestamp is a point in time stored as ISO-8601 text.
type Timestamp struct {
	time.Time
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format(time.RFC3339Nano))
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

// ParseTimestamp accepts RFC 3339 or a zone-less ISO timestamp, the latter
// interpreted in local time.
func ParseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(legacyTimestampLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	return t, nil
}

// Task is one to-do record. Deadline is kept as the composed text the user
// entered and is not validated.
type Task struct {
	ID          string     `json:"id"`
	Description string     `json:"task"`
	Deadline    string     `json:"ddl"`
	Completed   bool       `json:"completed"`
	CreatedAt   Timestamp  `json:"created_at"`
	CompletedAt *Timestamp `json:"completed_at,omitempty"`
}

// TaskList is the store's collection in insertion order.
type TaskList []Task

// IndexOf returns the storage position of the task with id, or -1.
func (l TaskList) IndexOf(id string) int {
	for i, t := range l {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Clone returns a copy that shares no slice or pointer storage with l.
func (l TaskList) Clone() TaskList {
	out := make(TaskList, len(l))
	for i, t := range l {
		if t.CompletedAt != nil {
			ts := *t.CompletedAt
			t.CompletedAt = &ts
		}
		out[i] = t
	}
	return out
}

type Stats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
}

// ComposeDeadline joins date and time text the way it is stored.
func ComposeDeadline(date, clock string) string {
	return date + " " + clock
}
