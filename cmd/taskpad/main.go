// Package main is the entry point for the taskpad CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"

	"taskpad/internal/backend/googletasks"
	"taskpad/internal/backend/memory"
	"taskpad/internal/cli"
	"taskpad/internal/commands"
	"taskpad/internal/config"
	"taskpad/internal/exitcode"
	"taskpad/internal/service"
	"taskpad/internal/session"
	"taskpad/internal/store"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return exitcode.UserError
	}

	// One store per process; a session shares it across lines
	backend := memory.New(store.New())
	factory := func(ctx context.Context, cfg *config.Config) (service.Service, error) {
		return backend, nil
	}
	commands.ImporterFactory = func(ctx context.Context, cfg *config.Config) (service.Importer, error) {
		return googletasks.New(ctx, cfg)
	}

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, cfg, factory)

	if len(os.Args) > 1 {
		return dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	}

	s := &session.Session{
		Runner: dispatcher,
		In:     os.Stdin,
		Out:    os.Stdout,
		ErrOut: os.Stderr,
	}
	if isatty.IsTerminal(os.Stdin.Fd()) {
		s.Prompt = config.AppName + "> "
	}

	res, err := s.Run(ctx)
	if err != nil && ctx.Err() == nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return exitcode.UserError
	}
	return res.ExitCode()
}
