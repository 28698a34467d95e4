package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"taskpad/internal/config"
	"taskpad/internal/exitcode"
	"taskpad/internal/service"
	"taskpad/internal/task"
)

func init() {
	Register(&EditCmd{})
}

// EditCmd implements the edit command.
// Fields without a flag keep their current value. Words after the reference
// replace the title, as if given with --title.
type EditCmd struct {
	title    optString
	due      optString
	priority optInt
}

func (c *EditCmd) Name() string      { return "edit" }
func (c *EditCmd) Aliases() []string { return []string{"update"} }
func (c *EditCmd) Synopsis() string  { return "Change a task" }
func (c *EditCmd) Usage() string {
	return "taskpad edit [--title <title>] [--due <date>] [--priority <0-10>] <ref> [title...]"
}
func (c *EditCmd) NeedsService() bool { return true }

func (c *EditCmd) RegisterFlags(fs *flag.FlagSet) {
	c.title, c.due, c.priority = optString{}, optString{}, optInt{}
	fs.Var(&c.title, "title", "")
	fs.Var(&c.due, "due", "")
	fs.Var(&c.due, "d", "")
	fs.Var(&c.priority, "priority", "")
	fs.Var(&c.priority, "p", "")
}

func (c *EditCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	current, rest, err := parseAndResolve(ctx, cfg, svc, args)
	if err != nil {
		return reportError(errOut, err)
	}

	if len(rest) > 0 && c.title.set {
		fmt.Fprintln(errOut, "error: cannot use both --title and a trailing title")
		return exitcode.UserError
	}

	e := task.Edit{Draft: current.Draft(), Completed: current.Completed}
	switch {
	case c.title.set:
		e.Title = c.title.val
	case len(rest) > 0:
		e.Title = strings.Join(rest, " ")
	}
	if c.due.set {
		e.EndDate, err = task.ParseDate(c.due.val)
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}
	}
	if c.priority.set {
		e.Priority = c.priority.val
	}

	if _, err := svc.UpdateTask(ctx, current.ID, e); err != nil {
		return reportError(errOut, err)
	}

	printOK(cfg, out)
	return exitcode.Success
}
