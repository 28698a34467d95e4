package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"taskpad/internal/config"
	"taskpad/internal/exitcode"
	"taskpad/internal/logging"
	"taskpad/internal/service"
	"taskpad/internal/task"
)

// ImporterFactory creates the importer used by the import command.
// main wires the Google Tasks client; tests replace it.
var ImporterFactory func(ctx context.Context, cfg *config.Config) (service.Importer, error)

func init() {
	Register(&ImportCmd{})
}

// ImportCmd seeds the session with the tasks of an external list.
type ImportCmd struct {
	list     optString
	priority optInt
}

func (c *ImportCmd) Name() string       { return "import" }
func (c *ImportCmd) Aliases() []string  { return nil }
func (c *ImportCmd) Synopsis() string   { return "Copy tasks from Google Tasks into this session" }
func (c *ImportCmd) Usage() string      { return "taskpad import [--list <list-name>] [--priority <0-10>]" }
func (c *ImportCmd) NeedsService() bool { return true }

func (c *ImportCmd) RegisterFlags(fs *flag.FlagSet) {
	c.list, c.priority = optString{}, optInt{}
	fs.Var(&c.list, "list", "")
	fs.Var(&c.list, "l", "")
	fs.Var(&c.priority, "priority", "")
	fs.Var(&c.priority, "p", "")
}

func (c *ImportCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	listName := cfg.Settings.Import.List
	if c.list.set {
		listName = c.list.val
	}
	priority := cfg.Settings.Import.Priority
	if c.priority.set {
		priority = c.priority.val
	}
	if priority < task.MinPriority || priority > task.MaxPriority {
		fmt.Fprintf(errOut, "error: priority must be between %d and %d\n", task.MinPriority, task.MaxPriority)
		return exitcode.UserError
	}

	if ImporterFactory == nil {
		fmt.Fprintln(errOut, "error: no importer configured")
		return exitcode.BackendError
	}
	imp, err := ImporterFactory(ctx, cfg)
	if err != nil {
		return reportError(errOut, err)
	}

	items, err := imp.ImportTasks(ctx, listName)
	if err != nil {
		return reportError(errOut, err)
	}

	log := logging.FromContext(ctx)
	imported, skipped := 0, 0
	for _, it := range items {
		d := it.Draft
		d.Priority = priority

		t, err := svc.CreateTask(ctx, d)
		if errors.Is(err, task.ErrValidation) {
			log.Debug("import skipped", "title", d.Title, "err", err)
			skipped++
			continue
		}
		if err != nil {
			return importFailed(errOut, err, imported)
		}

		if it.Completed {
			if _, err := svc.ToggleComplete(ctx, t.ID); err != nil {
				// drop the half-imported task so it does not show as active
				if derr := svc.DeleteTask(ctx, t.ID); derr != nil {
					log.Warn("import rollback failed", "id", t.ID, "err", derr)
				}
				return importFailed(errOut, err, imported)
			}
		}
		imported++
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "imported %d task(s), skipped %d\n", imported, skipped)
	}
	return exitcode.Success
}

// importFailed reports err and how much of the list was already imported.
// Tasks imported before the failure stay in the store.
func importFailed(errOut io.Writer, err error, imported int) int {
	code := reportError(errOut, err)
	fmt.Fprintf(errOut, "imported %d task(s) before the error\n", imported)
	return code
}
