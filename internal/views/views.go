// Package views derives the active and completed task lists from a snapshot.
// Views are pure and recomputed on every read.
package views

import (
	"cmp"
	"slices"

	"taskpad/internal/task"
)

// Active returns the incomplete tasks ordered by key.
// Unknown keys order by priority. Ties keep collection order.
func Active(tasks []task.Task, key task.SortKey) []task.Task {
	active := filter(tasks, false)

	switch key {
	case task.SortByEndDate:
		slices.SortStableFunc(active, func(a, b task.Task) int {
			return a.EndDate.Compare(b.EndDate)
		})
	default:
		slices.SortStableFunc(active, func(a, b task.Task) int {
			return cmp.Compare(b.Priority, a.Priority)
		})
	}
	return active
}

// Completed returns the completed tasks in collection order.
func Completed(tasks []task.Task) []task.Task {
	return filter(tasks, true)
}

// Partition splits tasks into the active view ordered by key and the
// completed view.
func Partition(tasks []task.Task, key task.SortKey) (active, completed []task.Task) {
	return Active(tasks, key), Completed(tasks)
}

func filter(tasks []task.Task, completed bool) []task.Task {
	out := make([]task.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Completed == completed {
			out = append(out, t)
		}
	}
	return out
}
