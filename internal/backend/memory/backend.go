// Package memory implements service.Service over the in-memory store.
package memory

import (
	"context"
	"log/slog"

	"taskpad/internal/logging"
	"taskpad/internal/store"
	"taskpad/internal/task"
	"taskpad/internal/views"
)

// Backend serves tasks from a store.Store.
type Backend struct {
	store *store.Store
}

// New creates a backend over s.
func New(s *store.Store) *Backend {
	return &Backend{store: s}
}

// CreateTask implements service.Service.
func (b *Backend) CreateTask(ctx context.Context, d task.Draft) (task.Task, error) {
	log := logging.FromContext(ctx)

	t, err := b.store.Create(d)
	if err != nil {
		log.Debug("create rejected", "title", d.Title, "err", err)
		return task.Task{}, err
	}
	log.Debug("task created", "id", t.ID, "priority", t.Priority, "endDate", task.FormatTimestamp(t.EndDate))
	return t, nil
}

// UpdateTask implements service.Service.
func (b *Backend) UpdateTask(ctx context.Context, id int64, e task.Edit) (task.Task, error) {
	log := logging.FromContext(ctx)

	t, err := b.store.Update(id, e)
	if err != nil {
		log.Debug("update rejected", "id", id, "err", err)
		return task.Task{}, err
	}
	log.Debug("task updated", "id", t.ID, "completed", t.Completed)
	return t, nil
}

// ToggleComplete implements service.Service.
func (b *Backend) ToggleComplete(ctx context.Context, id int64) (task.Task, error) {
	log := logging.FromContext(ctx)

	t, err := b.store.ToggleComplete(id)
	if err != nil {
		log.Debug("toggle rejected", "id", id, "err", err)
		return task.Task{}, err
	}
	if log.Enabled(ctx, slog.LevelDebug) {
		active, completed, _ := b.Views(ctx, task.DefaultSortKey)
		log.Debug("task toggled", "id", t.ID, "completed", t.Completed, "active", len(active), "done", len(completed))
	}
	return t, nil
}

// DeleteTask implements service.Service.
func (b *Backend) DeleteTask(ctx context.Context, id int64) error {
	b.store.Delete(id)
	logging.FromContext(ctx).Debug("task deleted", "id", id, "remaining", b.store.Len())
	return nil
}

// GetTask implements service.Service.
func (b *Backend) GetTask(ctx context.Context, id int64) (task.Task, error) {
	return b.store.Get(id)
}

// ActiveTasks implements service.Service.
func (b *Backend) ActiveTasks(ctx context.Context, key task.SortKey) ([]task.Task, error) {
	return views.Active(b.store.Snapshot(), key), nil
}

// CompletedTasks implements service.Service.
func (b *Backend) CompletedTasks(ctx context.Context) ([]task.Task, error) {
	return views.Completed(b.store.Snapshot()), nil
}

// Views implements service.Service.
func (b *Backend) Views(ctx context.Context, key task.SortKey) (active, completed []task.Task, err error) {
	active, completed = views.Partition(b.store.Snapshot(), key)
	return active, completed, nil
}
