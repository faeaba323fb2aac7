package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jaekwang-park/todo-widget/internal/cli"
	"github.com/jaekwang-park/todo-widget/internal/config"
	"github.com/jaekwang-park/todo-widget/internal/repository"
	"github.com/jaekwang-park/todo-widget/internal/service"
)

func main() {
	// Initial logger at info level; reconfigured after config load
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	code, err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr)
	if err != nil {
		logger.Error("application failed", "error", err)
	}
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) (int, error) {
	flags := flag.NewFlagSet("todo", flag.ContinueOnError)
	flags.SetOutput(stderr)
	configPath := flags.String("config", "", "path to a YAML config file")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return cli.ExitOK, nil
		}
		return cli.ExitUsage, nil
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return cli.ExitError, err
	}
	if err := cfg.Validate(); err != nil {
		return cli.ExitError, err
	}

	logger := slog.New(slog.NewJSONHandler(stderr, &slog.HandlerOptions{
		Level: cfg.ParseLogLevel(),
	}))
	slog.SetDefault(logger)

	logger.Debug("config loaded",
		"env", cfg.AppEnv,
		"data_file", cfg.DataFile,
		"default_time", cfg.DefaultTime,
		"log_level", cfg.LogLevel,
	)

	repo := repository.NewFileTask(cfg.DataFile, logger)
	svc := service.NewTaskService(repo,
		service.WithDefaultTime(cfg.DefaultTime),
		service.WithLogger(logger),
	)
	app := cli.NewApp(svc, stdout, stderr, logger)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return app.Run(ctx, flags.Args()), nil
}
