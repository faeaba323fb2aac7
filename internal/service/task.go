package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jaekwang-park/todo-widget/internal/model"
	"github.com/jaekwang-park/todo-widget/internal/repository"
)

type Option func(*TaskService)

// WithClock overrides the time source used for created/completed stamps and
// default deadlines.
func WithClock(now func() time.Time) Option {
	return func(s *TaskService) { s.now = now }
}

// WithIDGenerator overrides how new task ids are minted.
func WithIDGenerator(newID func() string) Option {
	return func(s *TaskService) { s.newID = newID }
}

// WithDefaultTime sets the time of day used when a task is added without one.
func WithDefaultTime(clock string) Option {
	return func(s *TaskService) { s.defaultTime = clock }
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *TaskService) { s.logger = logger }
}

// TaskService owns the task list operations. Mutations take a list and
// return a new one; the input list is never modified.
type TaskService struct {
	repo        repository.TaskRepository
	now         func() time.Time
	newID       func() string
	defaultTime string
	logger      *slog.Logger
}

func NewTaskService(repo repository.TaskRepository, opts ...Option) *TaskService {
	s := &TaskService{
		repo:        repo,
		now:         time.Now,
		newID:       func() string { return uuid.NewString() },
		defaultTime: model.DefaultDeadlineTime,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load returns the persisted list. Missing or unreadable data yields an empty
// list. Records without a description are dropped. Records without an id, or
// sharing an id with an earlier record, get a fresh one, and the list is
// written back at once so the ids survive to the next load.
func (s *TaskService) Load(ctx context.Context) (model.TaskList, error) {
	list, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}

	out := make(model.TaskList, 0, len(list))
	seen := make(map[string]bool, len(list))
	assigned := 0
	for _, t := range list {
		if strings.TrimSpace(t.Description) == "" {
			s.logger.Warn("dropping task without description", "id", t.ID)
			continue
		}
		if t.ID == "" || seen[t.ID] {
			t.ID = s.newID()
			assigned++
		}
		seen[t.ID] = true
		out = append(out, t)
	}

	if assigned > 0 {
		if err := s.Save(ctx, out); err != nil {
			return nil, err
		}
		s.logger.Info("assigned task ids", "count", assigned)
	}
	return out, nil
}

func (s *TaskService) Save(ctx context.Context, list model.TaskList) error {
	if err := s.repo.Save(ctx, list); err != nil {
		return fmt.Errorf("failed to save tasks: %w", err)
	}
	return nil
}

// Add appends a pending task. A blank description leaves the list unchanged.
// Blank date or time fall back to today and the default time of day.
func (s *TaskService) Add(list model.TaskList, description, date, clock string) model.TaskList {
	description = strings.TrimSpace(description)
	if description == "" {
		return list
	}

	now := s.now()
	date = strings.TrimSpace(date)
	if date == "" {
		date = now.Format(model.DateLayout)
	}
	clock = strings.TrimSpace(clock)
	if clock == "" {
		clock = s.defaultTime
	}

	task := model.Task{
		ID:          s.newID(),
		Description: description,
		Deadline:    model.ComposeDeadline(date, clock),
		Completed:   false,
		CreatedAt:   model.NewTimestamp(now),
	}

	out := make(model.TaskList, 0, len(list)+1)
	out = append(out, list.Clone()...)
	return append(out, task)
}

// Toggle flips the completion state of the task with id. Completing stamps
// completed_at; reopening clears it.
func (s *TaskService) Toggle(list model.TaskList, id string) (model.TaskList, error) {
	idx := list.IndexOf(id)
	if idx < 0 {
		return list, fmt.Errorf("%w: task %q", ErrNotFound, id)
	}

	out := list.Clone()
	task := &out[idx]
	task.Completed = !task.Completed
	if task.Completed {
		ts := model.NewTimestamp(s.now())
		task.CompletedAt = &ts
	} else {
		task.CompletedAt = nil
	}
	return out, nil
}

func (s *TaskService) Delete(list model.TaskList, id string) (model.TaskList, error) {
	idx := list.IndexOf(id)
	if idx < 0 {
		return list, fmt.Errorf("%w: task %q", ErrNotFound, id)
	}

	out := make(model.TaskList, 0, len(list)-1)
	out = append(out, list[:idx].Clone()...)
	return append(out, list[idx+1:].Clone()...), nil
}

// Resolve maps a full id or a unique id prefix to the task's full id.
func (s *TaskService) Resolve(list model.TaskList, ref string) (string, error) {
	ref = strings.ToLower(strings.TrimSpace(ref))
	if ref == "" {
		return "", fmt.Errorf("%w: task id is required", ErrInvalidInput)
	}

	var match string
	for _, t := range list {
		id := strings.ToLower(t.ID)
		if id == ref {
			return t.ID, nil
		}
		if strings.HasPrefix(id, ref) {
			if match != "" {
				return "", fmt.Errorf("%w: %q matches more than one task", ErrAmbiguousID, ref)
			}
			match = t.ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("%w: task %q", ErrNotFound, ref)
	}
	return match, nil
}

func (s *TaskService) Now() time.Time {
	return s.now()
}
