package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"taskpad/internal/config"
	"taskpad/internal/service"
	"taskpad/internal/task"
)

// TaskRef represents a parsed task reference.
type TaskRef struct {
	Num       int   // 1-based row number, 0 if ByID
	Completed bool  // true if Num refers to the completed view
	ID        int64 // explicit task id, set if ByID
	ByID      bool  // true for #ID references
}

var (
	// ErrTaskRefRequired indicates no task reference was provided.
	ErrTaskRefRequired = errors.New("task reference required")

	// ErrInvalidTaskRef matches every malformed reference.
	ErrInvalidTaskRef = errors.New("invalid task reference")

	// ErrTaskNumberOutOfRange indicates a row number past the end of a view.
	ErrTaskNumberOutOfRange = errors.New("task number out of range")
)

// ParseTaskRef parses a task reference from the front of args and returns the
// arguments that follow it.
//
// Parsing rules:
// 1. If first arg is all digits → row of the active view
// 2. If first arg is c<digits> (e.g., c1, c12) → row of the completed view
// 3. If first arg is "c" and second arg is all digits → separated form (c 1)
// 4. If first arg is "c" with no second arg → error: task reference required
// 5. If first arg is #<digits> → explicit task id
// 6. Otherwise → error: invalid task reference: <ref>
func ParseTaskRef(args []string) (TaskRef, []string, error) {
	if len(args) == 0 {
		return TaskRef{}, nil, ErrTaskRefRequired
	}

	firstArg := args[0]

	// Case 1: All digits → active view
	if isAllDigits(firstArg) {
		num, err := strconv.Atoi(firstArg)
		if err != nil {
			return TaskRef{}, nil, invalidRef(firstArg)
		}
		return TaskRef{Num: num}, args[1:], nil
	}

	// Case 5: #ID
	if id, ok := strings.CutPrefix(firstArg, "#"); ok {
		if !isAllDigits(id) {
			return TaskRef{}, nil, invalidRef(firstArg)
		}
		n, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			return TaskRef{}, nil, invalidRef(firstArg)
		}
		return TaskRef{ID: n, ByID: true}, args[1:], nil
	}

	if rest, ok := strings.CutPrefix(strings.ToLower(firstArg), "c"); ok {
		// Case 2: c<digits>
		if isAllDigits(rest) {
			num, err := strconv.Atoi(rest)
			if err != nil {
				return TaskRef{}, nil, invalidRef(firstArg)
			}
			return TaskRef{Num: num, Completed: true}, args[1:], nil
		}

		// Case 3: "c" then digits
		if rest == "" {
			if len(args) < 2 {
				// Case 4
				return TaskRef{}, nil, ErrTaskRefRequired
			}
			if isAllDigits(args[1]) {
				num, err := strconv.Atoi(args[1])
				if err != nil {
					return TaskRef{}, nil, invalidRef(args[1])
				}
				return TaskRef{Num: num, Completed: true}, args[2:], nil
			}
			return TaskRef{}, nil, invalidRef(firstArg)
		}
	}

	// Case 6: Invalid reference
	return TaskRef{}, nil, invalidRef(firstArg)
}

func invalidRef(s string) error {
	return fmt.Errorf("%w: %s", ErrInvalidTaskRef, s)
}

// String formats the reference the way it is typed.
func (r TaskRef) String() string {
	switch {
	case r.ByID:
		return fmt.Sprintf("#%d", r.ID)
	case r.Completed:
		return fmt.Sprintf("c%d", r.Num)
	default:
		return strconv.Itoa(r.Num)
	}
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// ResolveTaskRef finds the task a reference points at.
// Row numbers are counted in the view the user last saw: the active view in
// the session sort order, or the completed view.
func ResolveTaskRef(ctx context.Context, cfg *config.Config, svc service.Service, ref TaskRef) (task.Task, error) {
	if ref.ByID {
		return svc.GetTask(ctx, ref.ID)
	}

	var (
		rows []task.Task
		err  error
	)
	if ref.Completed {
		rows, err = svc.CompletedTasks(ctx)
	} else {
		rows, err = svc.ActiveTasks(ctx, cfg.SortKey())
	}
	if err != nil {
		return task.Task{}, err
	}

	if ref.Num < 1 || ref.Num > len(rows) {
		return task.Task{}, fmt.Errorf("%w: %s", ErrTaskNumberOutOfRange, ref)
	}
	return rows[ref.Num-1], nil
}

// parseAndResolve parses the reference at the front of args and resolves it.
func parseAndResolve(ctx context.Context, cfg *config.Config, svc service.Service, args []string) (task.Task, []string, error) {
	ref, rest, err := ParseTaskRef(args)
	if err != nil {
		return task.Task{}, nil, err
	}
	t, err := ResolveTaskRef(ctx, cfg, svc, ref)
	if err != nil {
		return task.Task{}, nil, err
	}
	return t, rest, nil
}
