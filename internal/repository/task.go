package repository

import (
	"context"

	"github.com/jaekwang-park/todo-widget/internal/model"
)

// TaskRepository persists the whole task list at once.
//
// Load never reports missing or unreadable data as an error: callers get an
// empty list instead. Save replaces the stored list in full.
type TaskRepository interface {
	Load(ctx context.Context) (model.TaskList, error)
	Save(ctx context.Context, list model.TaskList) error
}
