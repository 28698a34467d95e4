// Package task defines the task entity, its inputs and its domain errors.
package task

import (
	"strings"
	"time"
)

const (
	// MinPriority is the lowest accepted priority.
	MinPriority = 0

	// MaxPriority is the highest accepted priority.
	MaxPriority = 10
)

// Task is a single to-do item.
// Values are replaced, never mutated, once they leave the store.
type Task struct {
	ID           int64
	Title        string
	EndDate      time.Time
	Priority     int
	Completed    bool
	FinishedDate *time.Time // nil unless completed
}

// Draft holds the caller-supplied fields of a new task.
type Draft struct {
	Title    string
	EndDate  time.Time
	Priority int
}

// Edit is a full replacement of a task's caller-owned fields.
// FinishedDate is store-managed and never part of an edit.
type Edit struct {
	Draft
	Completed bool
}

// Imported is a task read from an external source, before it enters the store.
type Imported struct {
	Draft
	Completed bool
}

// Normalize returns the draft with its title trimmed.
func (d Draft) Normalize() Draft {
	d.Title = strings.TrimSpace(d.Title)
	return d
}

// Validate reports the first rule the draft breaks.
func (d Draft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if d.EndDate.IsZero() {
		return &ValidationError{Field: "endDate", Reason: "is required"}
	}
	if d.Priority < MinPriority || d.Priority > MaxPriority {
		return &ValidationError{Field: "priority", Reason: "must be between 0 and 10"}
	}
	return nil
}

// Draft returns the caller-owned fields of t.
func (t Task) Draft() Draft {
	return Draft{Title: t.Title, EndDate: t.EndDate, Priority: t.Priority}
}
