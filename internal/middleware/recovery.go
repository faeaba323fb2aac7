package middleware

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
)

var ErrPanic = errors.New("internal error")

func Recovery(logger *slog.Logger) func(Command) Command {
	return func(next Command) Command {
		return func(ctx context.Context, name string, args []string) (err error) {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("panic recovered",
						"error", r,
						"command", name,
						"stack", string(debug.Stack()),
					)
					err = fmt.Errorf("%w: command %s", ErrPanic, name)
				}
			}()

			return next(ctx, name, args)
		}
	}
}
