// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"taskpad/internal/task"
)

const (
	// NoActiveTasks is printed for an empty active list.
	NoActiveTasks = "no active tasks"

	// NoCompletedTasks is printed for an empty completed list.
	NoCompletedTasks = "no completed tasks"
)

// FormatActiveTask formats a row of the active list.
// Format: "{N:>4}  {END DATE}  p{PRIORITY:<2}  {TITLE}\n"
func FormatActiveTask(w io.Writer, num int, t task.Task, layout string) {
	fmt.Fprintf(w, "%4d  %s  p%-2d  %s\n", num, formatDate(t.EndDate, layout), t.Priority, normalizeTitle(t.Title))
}

// FormatCompletedTask formats a row of the completed list. Rows are numbered
// c1, c2, ... so they can be passed back as task references.
// Format: "{cN:>4}  {END DATE}  p{PRIORITY:<2}  {TITLE}  (finished {DATE})\n"
func FormatCompletedTask(w io.Writer, num int, t task.Task, layout string) {
	finished := "-"
	if t.FinishedDate != nil {
		finished = formatDate(*t.FinishedDate, layout)
	}
	ref := fmt.Sprintf("c%d", num)
	fmt.Fprintf(w, "%4s  %s  p%-2d  %s  (finished %s)\n", ref, formatDate(t.EndDate, layout), t.Priority, normalizeTitle(t.Title), finished)
}

// FormatTaskDetail formats every field of a single task.
func FormatTaskDetail(w io.Writer, t task.Task, layout string) {
	fmt.Fprintf(w, "id:        %d\n", t.ID)
	fmt.Fprintf(w, "title:     %s\n", normalizeTitle(t.Title))
	fmt.Fprintf(w, "end date:  %s\n", formatDate(t.EndDate, layout))
	fmt.Fprintf(w, "priority:  %d\n", t.Priority)
	if t.Completed {
		fmt.Fprintln(w, "status:    completed")
	} else {
		fmt.Fprintln(w, "status:    active")
	}
	if t.FinishedDate != nil {
		fmt.Fprintf(w, "finished:  %s\n", formatDate(*t.FinishedDate, layout))
	}
}

func formatDate(t time.Time, layout string) string {
	if layout == "" {
		layout = task.DateLayout
	}
	return t.UTC().Format(layout)
}

// normalizeTitle normalizes a task title for display.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")

	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
