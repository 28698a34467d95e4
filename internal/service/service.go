// Package service defines the backend-agnostic interfaces that presentation
// code uses. Commands and HTTP handlers never touch the store directly.
package service

import (
	"context"
	"errors"

	"taskpad/internal/task"
)

// ErrAuth marks failures that a fresh login would fix.
var ErrAuth = errors.New("auth error")

// Service defines the task operations exposed to presentation surfaces.
type Service interface {
	// CreateTask validates the draft and stores a new task.
	CreateTask(ctx context.Context, d task.Draft) (task.Task, error)

	// UpdateTask replaces every field of a task except its id and FinishedDate.
	UpdateTask(ctx context.Context, id int64, e task.Edit) (task.Task, error)

	// ToggleComplete flips a task between active and completed.
	ToggleComplete(ctx context.Context, id int64) (task.Task, error)

	// DeleteTask removes a task. Deleting an absent id is not an error.
	DeleteTask(ctx context.Context, id int64) error

	// GetTask returns a single task.
	GetTask(ctx context.Context, id int64) (task.Task, error)

	// ActiveTasks returns incomplete tasks ordered by key.
	ActiveTasks(ctx context.Context, key task.SortKey) ([]task.Task, error)

	// CompletedTasks returns completed tasks in collection order.
	CompletedTasks(ctx context.Context) ([]task.Task, error)

	// Views returns both lists taken from the same version of the collection.
	Views(ctx context.Context, key task.SortKey) (active, completed []task.Task, err error)
}

// Importer reads tasks from an external source to seed a session.
type Importer interface {
	// ImportTasks returns every task of the named list.
	// An empty name selects the source's default list.
	ImportTasks(ctx context.Context, listName string) ([]task.Imported, error)
}
