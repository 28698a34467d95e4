// Package store holds the authoritative in-memory task collection.
//
// The collection is an immutable snapshot: every mutation builds a new slice
// and swaps it in under the write lock, so readers always see whole tasks
// from a single consistent version of the collection.
package store

import (
	"slices"
	"sync"
	"time"

	"taskpad/internal/task"
)

// Option configures a Store.
type Option func(*Store)

// WithClock sets the clock used to stamp FinishedDate.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// Store is safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	lastID int64
	tasks  []task.Task
	now    func() time.Time
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create validates d, assigns the next id and appends the task.
func (s *Store) Create(d task.Draft) (task.Task, error) {
	d = d.Normalize()
	if err := d.Validate(); err != nil {
		return task.Task{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// ids come from a session counter, never the wall clock
	s.lastID++
	t := task.Task{
		ID:       s.lastID,
		Title:    d.Title,
		EndDate:  d.EndDate,
		Priority: d.Priority,
	}

	next := make([]task.Task, len(s.tasks), len(s.tasks)+1)
	copy(next, s.tasks)
	s.tasks = append(next, t)

	return t, nil
}

// Update replaces every field of task id except ID and FinishedDate.
func (s *Store) Update(id int64, e task.Edit) (task.Task, error) {
	d := e.Draft.Normalize()
	if err := d.Validate(); err != nil {
		return task.Task{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return task.Task{}, &task.NotFoundError{ID: id}
	}

	t := task.Task{
		ID:           id,
		Title:        d.Title,
		EndDate:      d.EndDate,
		Priority:     d.Priority,
		Completed:    e.Completed,
		FinishedDate: s.tasks[i].FinishedDate,
	}
	s.replace(i, t)

	return clone(t), nil
}

// ToggleComplete flips Completed. A task becoming complete is stamped with
// the current time; a task becoming active loses its FinishedDate.
func (s *Store) ToggleComplete(id int64) (task.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return task.Task{}, &task.NotFoundError{ID: id}
	}

	t := s.tasks[i]
	t.Completed = !t.Completed
	if t.Completed {
		finished := s.now()
		t.FinishedDate = &finished
	} else {
		t.FinishedDate = nil
	}
	s.replace(i, t)

	return clone(t), nil
}

// Delete removes task id. Deleting an absent id does nothing.
func (s *Store) Delete(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return
	}

	next := make([]task.Task, 0, len(s.tasks)-1)
	next = append(next, s.tasks[:i]...)
	s.tasks = append(next, s.tasks[i+1:]...)
}

// Get returns task id.
func (s *Store) Get(id int64) (task.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return task.Task{}, &task.NotFoundError{ID: id}
	}
	return clone(s.tasks[i]), nil
}

// Snapshot returns the collection in insertion order.
// The returned slice and the tasks in it belong to the caller.
func (s *Store) Snapshot() []task.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]task.Task, len(s.tasks))
	for i, t := range s.tasks {
		out[i] = clone(t)
	}
	return out
}

// Len returns the number of tasks held.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.tasks)
}

// indexOf must be called with s.mu held.
func (s *Store) indexOf(id int64) int {
	return slices.IndexFunc(s.tasks, func(t task.Task) bool { return t.ID == id })
}

// clone copies t so that no FinishedDate pointer is shared with a stored task.
func clone(t task.Task) task.Task {
	if t.FinishedDate != nil {
		finished := *t.FinishedDate
		t.FinishedDate = &finished
	}
	return t
}

// replace swaps in a copy of the collection with position i set to t.
// Must be called with s.mu held for writing.
func (s *Store) replace(i int, t task.Task) {
	next := slices.Clone(s.tasks)
	next[i] = t
	s.tasks = next
}
