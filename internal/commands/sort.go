package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskpad/internal/config"
	"taskpad/internal/exitcode"
	"taskpad/internal/service"
	"taskpad/internal/task"
)

func init() {
	Register(&SortCmd{})
}

// SortCmd prints or changes the session sort key of the active list.
type SortCmd struct{}

func (c *SortCmd) Name() string       { return "sort" }
func (c *SortCmd) Aliases() []string  { return nil }
func (c *SortCmd) Synopsis() string   { return "Print or set the active list order" }
func (c *SortCmd) Usage() string      { return "taskpad sort [priority|endDate]" }
func (c *SortCmd) NeedsService() bool { return false }

func (c *SortCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *SortCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	switch len(args) {
	case 0:
		fmt.Fprintln(out, cfg.SortKey())
		return exitcode.Success
	case 1:
		key, err := task.ParseSortKey(args[0])
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}
		cfg.SetSortKey(key)
		printOK(cfg, out)
		return exitcode.Success
	default:
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[1])
		return exitcode.UserError
	}
}
