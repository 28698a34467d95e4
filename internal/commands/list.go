package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskpad/internal/config"
	"taskpad/internal/exitcode"
	"taskpad/internal/output"
	"taskpad/internal/service"
	"taskpad/internal/task"
)

func init() {
	Register(&ListCmd{})
	Register(&CompletedCmd{})
}

// ListCmd implements the list command.
// Handles both `taskpad` (no args) and `taskpad list`.
type ListCmd struct {
	sort   string
	format string
}

func (c *ListCmd) Name() string       { return "list" }
func (c *ListCmd) Aliases() []string  { return []string{"ls"} }
func (c *ListCmd) Synopsis() string   { return "List active tasks" }
func (c *ListCmd) Usage() string      { return "taskpad list [--sort priority|endDate] [--format text|json|yaml]" }
func (c *ListCmd) NeedsService() bool { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.sort, "sort", "", "")
	fs.StringVar(&c.format, "format", "text", "")
}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	format, err := output.ParseFormat(c.format)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	// --sort applies to this listing only; `sort` changes the session key
	key := cfg.SortKey()
	if c.sort != "" {
		key, err = task.ParseSortKey(c.sort)
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}
	}

	tasks, err := svc.ActiveTasks(ctx, key)
	if err != nil {
		return reportError(errOut, err)
	}

	if format != output.FormatText {
		return writeRecords(out, errOut, format, output.NewTaskRecords(tasks))
	}

	if len(tasks) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, output.NoActiveTasks)
		}
		return exitcode.Success
	}
	for i, t := range tasks {
		output.FormatActiveTask(out, i+1, t, cfg.Settings.DateLayout)
	}
	return exitcode.Success
}

// CompletedCmd implements the completed command.
type CompletedCmd struct {
	format string
}

func (c *CompletedCmd) Name() string       { return "completed" }
func (c *CompletedCmd) Aliases() []string  { return nil }
func (c *CompletedCmd) Synopsis() string   { return "List completed tasks" }
func (c *CompletedCmd) Usage() string      { return "taskpad completed [--format text|json|yaml]" }
func (c *CompletedCmd) NeedsService() bool { return true }

func (c *CompletedCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.format, "format", "text", "")
}

func (c *CompletedCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	format, err := output.ParseFormat(c.format)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	tasks, err := svc.CompletedTasks(ctx)
	if err != nil {
		return reportError(errOut, err)
	}

	if format != output.FormatText {
		return writeRecords(out, errOut, format, output.NewTaskRecords(tasks))
	}

	if len(tasks) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, output.NoCompletedTasks)
		}
		return exitcode.Success
	}
	for i, t := range tasks {
		output.FormatCompletedTask(out, i+1, t, cfg.Settings.DateLayout)
	}
	return exitcode.Success
}

func writeRecords(out, errOut io.Writer, format output.Format, v any) int {
	if err := output.WriteRecords(out, format, v); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.BackendError
	}
	return exitcode.Success
}
