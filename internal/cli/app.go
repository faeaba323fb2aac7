package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/jaekwang-park/todo-widget/internal/middleware"
	"github.com/jaekwang-park/todo-widget/internal/service"
)

const usage = `usage: todo [-config file] <command> [arguments]

commands:
  list [-json]                          show tasks, pending first (default)
  add [-date YYYY-MM-DD] [-time HH:MM] <description...>
  toggle <id>                           mark done / not done (alias: done)
  delete <id>                           remove a task (alias: rm)
  stats [-json]                         show task counts

<id> may be any unique prefix of a task id.
`

const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

type App struct {
	run    middleware.Command
	out    io.Writer
	errOut io.Writer
}

func NewApp(svc *service.TaskService, out, errOut io.Writer, logger *slog.Logger) *App {
	router := NewRouter(NewTaskHandler(svc, out))

	// recovery -> logging -> router
	run := middleware.Chain(router.Dispatch,
		middleware.Recovery(logger),
		middleware.Logging(logger),
	)

	return &App{run: run, out: out, errOut: errOut}
}

// Run executes the command named by args[0] and returns the process exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	name := DefaultCommand
	if len(args) > 0 {
		name, args = args[0], args[1:]
	}

	if name == "help" || name == "-h" || name == "--help" {
		fmt.Fprint(a.out, usage)
		return ExitOK
	}

	err := a.run(ctx, name, args)
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrUsage), errors.Is(err, service.ErrInvalidInput):
		fmt.Fprintf(a.errOut, "todo: %v\n\n%s", err, usage)
		return ExitUsage
	default:
		fmt.Fprintf(a.errOut, "todo: %v\n", err)
		return ExitError
	}
}
