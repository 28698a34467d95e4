package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net"

	"taskpad/internal/config"
	"taskpad/internal/exitcode"
	"taskpad/internal/httpapi"
	"taskpad/internal/logging"
	"taskpad/internal/service"
)

func init() {
	Register(&ServeCmd{})
}

// ServeCmd exposes the session store over HTTP until the context ends.
type ServeCmd struct {
	listen string
}

func (c *ServeCmd) Name() string       { return "serve" }
func (c *ServeCmd) Aliases() []string  { return nil }
func (c *ServeCmd) Synopsis() string   { return "Serve the task store over HTTP" }
func (c *ServeCmd) Usage() string      { return "taskpad serve [--listen <addr>]" }
func (c *ServeCmd) NeedsService() bool { return true }

func (c *ServeCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.listen, "listen", "", "")
}

func (c *ServeCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	addr := c.listen
	if addr == "" {
		addr = cfg.Settings.Listen
	}

	srv := httpapi.New(svc, logging.FromContext(ctx))
	err := srv.ListenAndServe(ctx, addr, func(a net.Addr) {
		if !cfg.Quiet {
			fmt.Fprintf(errOut, "listening on http://%s\n", a)
		}
	})
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.BackendError
	}
	return exitcode.Success
}
