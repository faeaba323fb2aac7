package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jaekwang-park/todo-widget/internal/middleware"
)

const DefaultCommand = "list"

var ErrUsage = errors.New("usage")

func usageErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUsage, fmt.Sprintf(format, args...))
}

type Router struct {
	commands map[string]middleware.Command
}

func NewRouter(h *TaskHandler) *Router {
	return &Router{
		commands: map[string]middleware.Command{
			"list":   h.List,
			"ls":     h.List,
			"add":    h.Add,
			"toggle": h.Toggle,
			"done":   h.Toggle,
			"delete": h.Delete,
			"rm":     h.Delete,
			"stats":  h.Stats,
		},
	}
}

func (r *Router) Dispatch(ctx context.Context, name string, args []string) error {
	cmd, ok := r.commands[name]
	if !ok {
		return usageErrorf("unknown command %q (available: %s)", name, strings.Join(r.Commands(), ", "))
	}
	return cmd(ctx, name, args)
}

// Commands lists the registered command names, aliases included.
func (r *Router) Commands() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
