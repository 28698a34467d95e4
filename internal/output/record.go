package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"taskpad/internal/task"
)

// Format selects how tasks are written.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat parses an output format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("invalid format: %s", s)
	}
}

// TaskRecord is the external shape of a task. Dates are RFC 3339 strings.
type TaskRecord struct {
	ID           int64   `json:"id" yaml:"id"`
	Title        string  `json:"title" yaml:"title"`
	EndDate      string  `json:"endDate" yaml:"endDate"`
	Priority     int     `json:"priority" yaml:"priority"`
	Completed    bool    `json:"completed" yaml:"completed"`
	FinishedDate *string `json:"finishedDate,omitempty" yaml:"finishedDate,omitempty"`
}

// NewTaskRecord converts t to its external shape.
func NewTaskRecord(t task.Task) TaskRecord {
	r := TaskRecord{
		ID:        t.ID,
		Title:     t.Title,
		EndDate:   task.FormatTimestamp(t.EndDate),
		Priority:  t.Priority,
		Completed: t.Completed,
	}
	if t.FinishedDate != nil {
		finished := task.FormatTimestamp(*t.FinishedDate)
		r.FinishedDate = &finished
	}
	return r
}

// NewTaskRecords converts a view to its external shape. Never returns nil.
func NewTaskRecords(tasks []task.Task) []TaskRecord {
	out := make([]TaskRecord, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, NewTaskRecord(t))
	}
	return out
}

// WriteRecords encodes v as JSON or YAML.
func WriteRecords(w io.Writer, f Format, v any) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("format %s has no record encoding", f)
	}
}
