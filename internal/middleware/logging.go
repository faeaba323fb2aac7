package middleware

import (
	"context"
	"log/slog"
	"time"
)

func Logging(logger *slog.Logger) func(Command) Command {
	return func(next Command) Command {
		return func(ctx context.Context, name string, args []string) error {
			start := time.Now()

			err := next(ctx, name, args)

			attrs := []any{
				"command", name,
				"args", len(args),
				"duration_ms", time.Since(start).Milliseconds(),
			}
			if err != nil {
				logger.Warn("command failed", append(attrs, "error", err)...)
				return err
			}
			logger.Info("command", attrs...)
			return nil
		}
	}
}
