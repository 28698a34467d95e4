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
	Register(&RmCmd{})
}

// RmCmd implements the rm command.
type RmCmd struct{}

func (c *RmCmd) Name() string       { return "rm" }
func (c *RmCmd) Aliases() []string  { return []string{"delete"} }
func (c *RmCmd) Synopsis() string   { return "Delete a task" }
func (c *RmCmd) Usage() string      { return "taskpad rm <ref>" }
func (c *RmCmd) NeedsService() bool { return true }

func (c *RmCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RmCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	ref, rest, err := ParseTaskRef(args)
	if err != nil {
		return reportError(errOut, err)
	}
	if len(rest) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", rest[0])
		return exitcode.UserError
	}

	// Deleting an absent id succeeds, so #ID skips the lookup
	id := ref.ID
	if !ref.ByID {
		t, err := ResolveTaskRef(ctx, cfg, svc, ref)
		if err != nil {
			return reportError(errOut, err)
		}
		id = t.ID
	}

	if err := svc.DeleteTask(ctx, id); err != nil {
		return reportError(errOut, err)
	}

	printOK(cfg, out)
	return exitcode.Success
}
