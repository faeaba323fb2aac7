package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jaekwang-park/todo-widget/internal/model"
)

type FileTaskRepository struct {
	path   string
	logger *slog.Logger
}

func NewFileTask(path string, logger *slog.Logger) *FileTaskRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileTaskRepository{path: path, logger: logger}
}

func (r *FileTaskRepository) Path() string {
	return r.path
}

func (r *FileTaskRepository) Load(ctx context.Context) (model.TaskList, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			r.logger.Warn("task file unreadable, starting empty", "path", r.path, "error", err)
		}
		return model.TaskList{}, nil
	}

	var list model.TaskList
	if err := json.Unmarshal(data, &list); err != nil {
		r.logger.Warn("task file corrupt, starting empty", "path", r.path, "error", err)
		return model.TaskList{}, nil
	}
	if list == nil {
		list = model.TaskList{}
	}

	return list, nil
}

// Save writes the list to a temp file in the target directory and renames it
// over the target, so a crash mid-write leaves the previous file intact.
func (r *FileTaskRepository) Save(ctx context.Context, list model.TaskList) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if list == nil {
		list = model.TaskList{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(list); err != nil {
		return fmt.Errorf("failed to encode tasks: %w", err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create task directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write tasks: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync tasks: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		return fmt.Errorf("failed to replace task file: %w", err)
	}

	r.logger.Debug("tasks saved", "path", r.path, "count", len(list))
	return nil
}

// ensure compile-time interface compliance
var _ TaskRepository = (*FileTaskRepository)(nil)
