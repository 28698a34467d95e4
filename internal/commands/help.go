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
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string       { return "help" }
func (c *HelpCmd) Aliases() []string  { return nil }
func (c *HelpCmd) Synopsis() string   { return "Print usage" }
func (c *HelpCmd) Usage() string      { return "taskpad help" }
func (c *HelpCmd) NeedsService() bool { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  taskpad                                  Start a session (reads commands from stdin)
  taskpad list [--sort <key>] [--format <f>]
  taskpad completed [--format <f>]
  taskpad add --due <date> [--priority <0-10>] <title...>
  taskpad edit [--title <t>] [--due <date>] [--priority <0-10>] <ref> [title...]
  taskpad done <ref>
  taskpad rm <ref>
  taskpad show [--format <f>] <ref>
  taskpad sort [priority|endDate]
  taskpad import [--list <list-name>] [--priority <0-10>]
  taskpad serve [--listen <addr>]
  taskpad login
  taskpad logout
  taskpad help
  taskpad version

Task references:
  <n>              Row n of the active list
  c<n>, c <n>      Row n of the completed list
  #<id>            Task id

Dates are YYYY-MM-DD or RFC 3339. Formats are text, json and yaml.
Flags may follow arguments. Put -- before a title that starts with '-'.
import is not atomic: tasks copied before an error stay in the session.

Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`
