package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/jaekwang-park/todo-widget/internal/model"
	"github.com/jaekwang-park/todo-widget/internal/service"
)

// TaskHandler runs each command as one load, at most one mutation, one save,
// and a re-render of the display order.
type TaskHandler struct {
	svc *service.TaskService
	out io.Writer
}

func NewTaskHandler(svc *service.TaskService, out io.Writer) *TaskHandler {
	return &TaskHandler{svc: svc, out: out}
}

func (h *TaskHandler) List(ctx context.Context, name string, args []string) error {
	fs := newFlagSet(name)
	asJSON := fs.Bool("json", false, "write the list as JSON")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return usageErrorf("%s takes no arguments", name)
	}

	list, err := h.svc.Load(ctx)
	if err != nil {
		return err
	}
	h.render(list, *asJSON)
	return nil
}

func (h *TaskHandler) Add(ctx context.Context, name string, args []string) error {
	fs := newFlagSet(name)
	date := fs.String("date", "", "deadline date, YYYY-MM-DD (default today)")
	clock := fs.String("time", "", "deadline time, HH:MM")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	description := strings.Join(fs.Args(), " ")
	if strings.TrimSpace(description) == "" {
		return usageErrorf("%s needs a task description", name)
	}

	list, err := h.svc.Load(ctx)
	if err != nil {
		return err
	}
	list = h.svc.Add(list, description, *date, *clock)
	return h.saveAndRender(ctx, list)
}

func (h *TaskHandler) Toggle(ctx context.Context, name string, args []string) error {
	return h.mutate(ctx, name, args, h.svc.Toggle)
}

func (h *TaskHandler) Delete(ctx context.Context, name string, args []string) error {
	return h.mutate(ctx, name, args, h.svc.Delete)
}

func (h *TaskHandler) Stats(ctx context.Context, name string, args []string) error {
	fs := newFlagSet(name)
	asJSON := fs.Bool("json", false, "write the counts as JSON")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	list, err := h.svc.Load(ctx)
	if err != nil {
		return err
	}
	stats := service.Summarize(list)
	if *asJSON {
		WriteJSON(h.out, stats)
		return nil
	}
	fmt.Fprintln(h.out, StatsLine(stats))
	return nil
}

func (h *TaskHandler) mutate(
	ctx context.Context,
	name string,
	args []string,
	op func(model.TaskList, string) (model.TaskList, error),
) error {
	if len(args) != 1 {
		return usageErrorf("%s needs exactly one task id", name)
	}

	list, err := h.svc.Load(ctx)
	if err != nil {
		return err
	}
	id, err := h.svc.Resolve(list, args[0])
	if err != nil {
		return err
	}
	list, err = op(list, id)
	if err != nil {
		return err
	}
	return h.saveAndRender(ctx, list)
}

func (h *TaskHandler) saveAndRender(ctx context.Context, list model.TaskList) error {
	if err := h.svc.Save(ctx, list); err != nil {
		return err
	}
	h.render(list, false)
	return nil
}

func (h *TaskHandler) render(list model.TaskList, asJSON bool) {
	now := h.svc.Now()
	view := NewListView(service.ListForDisplay(list), service.Summarize(list), now)
	if asJSON {
		WriteJSON(h.out, view)
		return
	}
	WriteList(h.out, view, now)
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return usageErrorf("%s: %v", fs.Name(), err)
	}
	return nil
}
