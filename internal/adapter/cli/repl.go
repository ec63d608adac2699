// Package cli is a line-oriented terminal front-end for the task list.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"todolist/internal/core/domain"
	"todolist/internal/core/ports"
	"todolist/internal/core/view"
	"todolist/pkg/translator"
)

var errQuit = errors.New("quit")

type Options struct {
	Lang          string
	GenerateCount int
	NoColor       bool
}

type palette struct {
	name      *color.Color
	completed *color.Color
	priority  *color.Color
	muted     *color.Color
	err       *color.Color
}

func newPalette(noColor bool) palette {
	p := palette{
		name:      color.New(color.Bold),
		completed: color.New(color.FgHiBlack),
		priority:  color.New(color.FgYellow, color.Bold),
		muted:     color.New(color.Faint),
		err:       color.New(color.FgRed),
	}
	if noColor {
		for _, c := range []*color.Color{p.name, p.completed, p.priority, p.muted, p.err} {
			c.DisableColor()
		}
	}
	return p
}

// REPL owns the filter configuration; the task list itself lives behind ports.TaskService.
type REPL struct {
	svc    ports.TaskService
	out    io.Writer
	opts   Options
	colors palette
	filter domain.FilterConfig
}

func New(svc ports.TaskService, out io.Writer, opts Options) *REPL {
	if opts.Lang == "" {
		opts.Lang = translator.LanguageRu
	}
	if opts.GenerateCount <= 0 {
		opts.GenerateCount = 1000
	}
	return &REPL{
		svc:    svc,
		out:    out,
		opts:   opts,
		colors: newPalette(opts.NoColor),
	}
}

func (r *REPL) Filter() domain.FilterConfig {
	return r.filter
}

// Run reads commands from in until EOF, "quit" or ctx cancellation.
// Cancellation is noticed while waiting for input, not only between lines.
func (r *REPL) Run(ctx context.Context, in io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	r.prompt()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if err := ctx.Err(); err != nil {
				return err
			}
			if !ok {
				return <-scanErr
			}

			err := r.Exec(ctx, line)
			if errors.Is(err, errQuit) {
				return nil
			}
			if err != nil {
				return err
			}
			r.prompt()
		}
	}
}

// Exec runs a single command line. User mistakes are printed, not returned.
func (r *REPL) Exec(ctx context.Context, line string) error {
	cmd, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
	cmd, rest = strings.ToLower(cmd), strings.TrimSpace(rest)

	switch cmd {
	case "":
		return nil
	case "add":
		return r.add(ctx, rest)
	case "done", "undo":
		return r.setCompleted(ctx, rest, cmd == "done")
	case "rm", "del":
		return r.delete(ctx, rest)
	case "gen":
		return r.generate(ctx, rest)
	case "search":
		r.filter.SearchText = rest
		return r.list(ctx)
	case "hide":
		r.filter.HideCompleted = rest != "off"
		return r.list(ctx)
	case "prio":
		p, err := domain.ParsePriority(rest)
		if err != nil || rest == "" {
			r.fail("invalidPriority")
			return nil
		}
		r.filter.TogglePriority(p)
		return r.list(ctx)
	case "clear":
		r.filter = domain.FilterConfig{}
		return r.list(ctx)
	case "list", "ls":
		return r.list(ctx)
	case "stats":
		return r.stats(ctx)
	case "help":
		fmt.Fprintln(r.out, r.t("cliHelp", nil))
		return nil
	case "quit", "exit":
		return errQuit
	default:
		r.fail("cliUnknownCommand")
		return nil
	}
}

func (r *REPL) add(ctx context.Context, rest string) error {
	parts := strings.SplitN(rest, "|", 3)
	if strings.TrimSpace(parts[0]) == "" {
		r.fail("emptyTaskName")
		return nil
	}
	input := domain.CreateTaskInput{Name: parts[0], Priority: domain.PriorityLow}
	if len(parts) > 1 {
		input.Description = strings.TrimSpace(parts[1])
	}
	if len(parts) > 2 {
		p, err := domain.ParsePriority(parts[2])
		if err != nil {
			r.fail("invalidPriority")
			return nil
		}
		input.Priority = p
	}

	task, err := r.svc.CreateTask(ctx, input)
	switch {
	case errors.Is(err, domain.ErrEmptyName):
		r.fail("emptyTaskName")
		return nil
	case err != nil:
		return fmt.Errorf("could not create task: %w", err)
	}

	fmt.Fprintln(r.out, r.t("cliAdded", map[string]any{"ID": task.ID, "Name": task.Name}))
	return nil
}

func (r *REPL) setCompleted(ctx context.Context, rest string, completed bool) error {
	id, ok := r.parseID(rest)
	if !ok {
		return nil
	}
	if err := r.svc.SetTaskCompleted(ctx, id, completed); err != nil {
		return fmt.Errorf("could not update task: %w", err)
	}
	return r.list(ctx)
}

func (r *REPL) delete(ctx context.Context, rest string) error {
	id, ok := r.parseID(rest)
	if !ok {
		return nil
	}
	if err := r.svc.DeleteTask(ctx, id); err != nil {
		return fmt.Errorf("could not delete task: %w", err)
	}
	return r.list(ctx)
}

func (r *REPL) generate(ctx context.Context, rest string) error {
	count := r.opts.GenerateCount
	if rest != "" {
		n, err := strconv.Atoi(rest)
		if err != nil || n <= 0 {
			r.fail("invalidTaskPayload")
			return nil
		}
		count = n
	}

	res, err := r.svc.GenerateTasks(ctx, count)
	if err != nil {
		return fmt.Errorf("could not generate tasks: %w", err)
	}
	fmt.Fprintln(r.out, r.t("cliGenerated", map[string]any{"Count": len(res.Tasks)}))
	return nil
}

func (r *REPL) list(ctx context.Context) error {
	res, err := r.svc.ListTasks(ctx, r.filter)
	if err != nil {
		return fmt.Errorf("could not list tasks: %w", err)
	}
	r.render(res)
	return nil
}

func (r *REPL) stats(ctx context.Context) error {
	stats, err := r.svc.Stats(ctx)
	if err != nil {
		return fmt.Errorf("could not read stats: %w", err)
	}
	fmt.Fprintln(r.out, r.t("cliLifetime", map[string]any{"Total": stats.Total, "Created": stats.Created}))
	return nil
}

func (r *REPL) render(res view.Result) {
	fmt.Fprintln(r.out, r.t("cliStats", map[string]any{
		"Total": res.TotalCount,
		"Done":  res.CompletedCount,
		"Left":  res.RemainingCount,
	}))

	if res.Empty() {
		r.colors.muted.Fprintln(r.out, r.t("noResults", nil))
		return
	}

	for _, task := range res.Uncompleted {
		r.renderTask(task)
	}
	for _, task := range res.Completed {
		r.renderTask(task)
	}
}

func (r *REPL) renderTask(task domain.Task) {
	label := r.t(task.Priority.MessageID(), nil)
	if task.Completed {
		r.colors.completed.Fprintf(r.out, "[x] #%d %s (%s) %s\n", task.ID, task.Name, label, task.CreatedAtText)
	} else {
		fmt.Fprintf(r.out, "[ ] #%d %s (%s) %s\n",
			task.ID, r.colors.name.Sprint(task.Name), r.colors.priority.Sprint(label), task.CreatedAtText)
	}
	if task.Description != "" {
		r.colors.muted.Fprintf(r.out, "    %s\n", task.Description)
	}
}

func (r *REPL) parseID(raw string) (uint64, bool) {
	id, err := strconv.ParseUint(strings.TrimPrefix(raw, "#"), 10, 64)
	if err != nil || id == 0 {
		r.fail("invalidTaskID")
		return 0, false
	}
	return id, true
}

func (r *REPL) fail(msgKey string) {
	zap.L().Debug("cli input rejected", zap.String("reason", msgKey))
	r.colors.err.Fprintln(r.out, r.t(msgKey, nil))
}

func (r *REPL) prompt() {
	fmt.Fprint(r.out, "> ")
}

func (r *REPL) t(msgKey string, data map[string]any) string {
	return translator.Translate(msgKey, r.opts.Lang, data)
}

