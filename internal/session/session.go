// Package session runs commands read line by line against one shared store.
package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-shellwords"

	"taskpad/internal/exitcode"
)

// Runner runs one parsed command line and returns its exit code.
// *cli.Dispatcher satisfies it.
type Runner interface {
	Run(ctx context.Context, args []string, out, errOut io.Writer) int
}

// Session reads commands from In until EOF, "quit" or "exit".
type Session struct {
	Runner Runner
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer

	// Prompt is printed to Out before each line. Empty disables it.
	Prompt string
}

// Result summarizes a finished session.
type Result struct {
	Commands int // lines dispatched
	Failed   int // lines that exited non-zero
	LastCode int // exit code of the last dispatched line
}

// ExitCode returns the process exit code for the session: the code of the
// last command, so a script's final status is visible to its caller.
func (r Result) ExitCode() int {
	return r.LastCode
}

// Run executes the session. It returns early with ctx.Err() if ctx ends
// between lines, or with the reader's error.
func (s *Session) Run(ctx context.Context) (Result, error) {
	var res Result
	sc := bufio.NewScanner(s.In)
	for {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if s.Prompt != "" {
			fmt.Fprint(s.Out, s.Prompt)
		}
		if !sc.Scan() {
			return res, sc.Err()
		}

		args, done, err := parseLine(sc.Text())
		if done {
			return res, nil
		}
		if err != nil {
			fmt.Fprintf(s.ErrOut, "error: %v\n", err)
			res.Commands++
			res.Failed++
			res.LastCode = exitcode.UserError
			continue
		}
		if len(args) == 0 {
			continue
		}

		code := s.Runner.Run(ctx, args, s.Out, s.ErrOut)
		res.Commands++
		res.LastCode = code
		if code != exitcode.Success {
			res.Failed++
		}
	}
}

// parseLine splits a line into words with shell quoting, so
// `add --due 2025-06-01 "Write report"` keeps the title whole. Blank lines
// and # comments yield no words; done reports a quit or exit line.
func parseLine(line string) (args []string, done bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil, false, nil
	}

	p := shellwords.NewParser()
	args, err = p.Parse(line)
	if err != nil {
		return nil, false, fmt.Errorf("cannot parse line: %w", err)
	}
	// the parser stops at an unquoted ; & | < or >
	if p.Position >= 0 {
		return nil, false, fmt.Errorf("cannot parse line: unexpected %q (quote it)", line[p.Position])
	}
	if len(args) == 0 {
		return nil, false, nil
	}

	switch args[0] {
	case "quit", "exit":
		return nil, true, nil
	}
	return args, false, nil
}
