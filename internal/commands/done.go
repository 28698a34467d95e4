package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskpad/internal/config"
	"taskpad/internal/exitcode"
	"taskpad/internal/service"
)

func init() {
	Register(&DoneCmd{})
}

// DoneCmd implements the done command. Running it on a completed task
// (c1, c 2, #ID) moves the task back to the active list.
type DoneCmd struct{}

func (c *DoneCmd) Name() string       { return "done" }
func (c *DoneCmd) Aliases() []string  { return []string{"toggle"} }
func (c *DoneCmd) Synopsis() string   { return "Toggle a task between active and completed" }
func (c *DoneCmd) Usage() string      { return "taskpad done <ref>" }
func (c *DoneCmd) NeedsService() bool { return true }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DoneCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	t, rest, err := parseAndResolve(ctx, cfg, svc, args)
	if err != nil {
		return reportError(errOut, err)
	}
	if len(rest) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", rest[0])
		return exitcode.UserError
	}

	toggled, err := svc.ToggleComplete(ctx, t.ID)
	if err != nil {
		return reportError(errOut, err)
	}

	if !cfg.Quiet {
		if toggled.Completed {
			fmt.Fprintln(out, "ok completed")
		} else {
			fmt.Fprintln(out, "ok reopened")
		}
	}
	return exitcode.Success
}
