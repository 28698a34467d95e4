// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"testing"
	"time"

	"taskpad/internal/backend/memory"
	"taskpad/internal/service"
	"taskpad/internal/store"
	"taskpad/internal/task"
)

// FinishedAt is the time every FakeService stamps on completed tasks.
var FinishedAt = time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

// FakeService is a service.Service over a real store with a fixed clock,
// plus error injection for testing.
type FakeService struct {
	*memory.Backend
	Store *store.Store

	// Error injection for testing
	CreateTaskErr     error
	UpdateTaskErr     error
	ToggleCompleteErr error
	DeleteTaskErr     error
	GetTaskErr        error
	ActiveTasksErr    error
	CompletedTasksErr error
	ViewsErr          error
}

var _ service.Service = (*FakeService)(nil)

// NewFakeService creates an empty FakeService.
func NewFakeService() *FakeService {
	s := store.New(store.WithClock(func() time.Time { return FinishedAt }))
	return &FakeService{Backend: memory.New(s), Store: s}
}

// Date returns midnight UTC of the given day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// AddTask creates a task directly in the store.
func (f *FakeService) AddTask(t testing.TB, title string, end time.Time, priority int) task.Task {
	t.Helper()
	created, err := f.Store.Create(task.Draft{Title: title, EndDate: end, Priority: priority})
	if err != nil {
		t.Fatalf("AddTask(%q): %v", title, err)
	}
	return created
}

// AddCompleted creates a task and marks it completed.
func (f *FakeService) AddCompleted(t testing.TB, title string, end time.Time, priority int) task.Task {
	t.Helper()
	created := f.AddTask(t, title, end, priority)
	done, err := f.Store.ToggleComplete(created.ID)
	if err != nil {
		t.Fatalf("AddCompleted(%q): %v", title, err)
	}
	return done
}

// CreateTask implements service.Service.
func (f *FakeService) CreateTask(ctx context.Context, d task.Draft) (task.Task, error) {
	if f.CreateTaskErr != nil {
		return task.Task{}, f.CreateTaskErr
	}
	return f.Backend.CreateTask(ctx, d)
}

// UpdateTask implements service.Service.
func (f *FakeService) UpdateTask(ctx context.Context, id int64, e task.Edit) (task.Task, error) {
	if f.UpdateTaskErr != nil {
		return task.Task{}, f.UpdateTaskErr
	}
	return f.Backend.UpdateTask(ctx, id, e)
}

// ToggleComplete implements service.Service.
func (f *FakeService) ToggleComplete(ctx context.Context, id int64) (task.Task, error) {
	if f.ToggleCompleteErr != nil {
		return task.Task{}, f.ToggleCompleteErr
	}
	return f.Backend.ToggleComplete(ctx, id)
}

// DeleteTask implements service.Service.
func (f *FakeService) DeleteTask(ctx context.Context, id int64) error {
	if f.DeleteTaskErr != nil {
		return f.DeleteTaskErr
	}
	return f.Backend.DeleteTask(ctx, id)
}

// GetTask implements service.Service.
func (f *FakeService) GetTask(ctx context.Context, id int64) (task.Task, error) {
	if f.GetTaskErr != nil {
		return task.Task{}, f.GetTaskErr
	}
	return f.Backend.GetTask(ctx, id)
}

// ActiveTasks implements service.Service.
func (f *FakeService) ActiveTasks(ctx context.Context, key task.SortKey) ([]task.Task, error) {
	if f.ActiveTasksErr != nil {
		return nil, f.ActiveTasksErr
	}
	return f.Backend.ActiveTasks(ctx, key)
}

// CompletedTasks implements service.Service.
func (f *FakeService) CompletedTasks(ctx context.Context) ([]task.Task, error) {
	if f.CompletedTasksErr != nil {
		return nil, f.CompletedTasksErr
	}
	return f.Backend.CompletedTasks(ctx)
}

// Views implements service.Service.
func (f *FakeService) Views(ctx context.Context, key task.SortKey) (active, completed []task.Task, err error) {
	if f.ViewsErr != nil {
		return nil, nil, f.ViewsErr
	}
	return f.Backend.Views(ctx, key)
}

// FakeImporter is a service.Importer that returns fixed tasks.
type FakeImporter struct {
	Tasks []task.Imported
	Err   error

	// ListName records the last requested list.
	ListName string
}

var _ service.Importer = (*FakeImporter)(nil)

// ImportTasks implements service.Importer.
func (f *FakeImporter) ImportTasks(ctx context.Context, listName string) ([]task.Imported, error) {
	f.ListName = listName
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Tasks, nil
}
