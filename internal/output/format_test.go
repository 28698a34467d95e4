package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"taskpad/internal/task"
)

var (
	may20 = time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC)
	june2 = time.Date(2025, 6, 2, 15, 4, 5, 0, time.UTC)
)

func TestFormatActiveTask(t *testing.T) {
	var buf bytes.Buffer
	FormatActiveTask(&buf, 1, task.Task{ID: 9, Title: "Clean desk", EndDate: may20, Priority: 7}, "")
	FormatActiveTask(&buf, 12, task.Task{ID: 3, Title: "line\nbreak", EndDate: may20, Priority: 10}, task.DateLayout)

	expected := "   1  2025-05-20  p7   Clean desk\n" +
		"  12  2025-05-20  p10  line break\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}

func TestFormatCompletedTask(t *testing.T) {
	var buf bytes.Buffer
	FormatCompletedTask(&buf, 1, task.Task{Title: "Write report", EndDate: may20, Priority: 3, Completed: true, FinishedDate: &june2}, "")
	FormatCompletedTask(&buf, 2, task.Task{Title: " ", EndDate: may20, Completed: true}, "")

	expected := "  c1  2025-05-20  p3   Write report  (finished 2025-06-02)\n" +
		"  c2  2025-05-20  p0   (untitled)  (finished -)\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}

func TestFormatTaskDetail(t *testing.T) {
	var buf bytes.Buffer
	FormatTaskDetail(&buf, task.Task{ID: 4, Title: "Write report", EndDate: may20, Priority: 3, Completed: true, FinishedDate: &june2}, "02 Jan 2006")

	expected := "id:        4\n" +
		"title:     Write report\n" +
		"end date:  20 May 2025\n" +
		"priority:  3\n" +
		"status:    completed\n" +
		"finished:  02 Jun 2025\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatText, "TEXT": FormatText, "json": FormatJSON, " yaml ": FormatYAML} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q)=%q,%v want %q", in, got, err, want)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) err=nil, want error")
	}
}

func TestWriteRecords_JSONRoundTrip(t *testing.T) {
	in := task.Task{ID: 1, Title: "Write report", EndDate: may20, Priority: 3, Completed: true, FinishedDate: &june2}

	var buf bytes.Buffer
	if err := WriteRecords(&buf, FormatJSON, NewTaskRecords([]task.Task{in})); err != nil {
		t.Fatalf("WriteRecords err=%v", err)
	}

	var out []TaskRecord
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal err=%v", err)
	}
	if len(out) != 1 || out[0].FinishedDate == nil {
		t.Fatalf("unexpected records: %+v", out)
	}

	end, err := task.ParseDate(out[0].EndDate)
	if err != nil || !end.Equal(may20) {
		t.Errorf("endDate=%q does not round-trip", out[0].EndDate)
	}
	finished, err := task.ParseDate(*out[0].FinishedDate)
	if err != nil || !finished.Equal(june2) {
		t.Errorf("finishedDate=%q does not round-trip", *out[0].FinishedDate)
	}
}

func TestWriteRecords_OmitsFinishedDateForActive(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteRecords(&buf, FormatJSON, NewTaskRecord(task.Task{ID: 1, Title: "x", EndDate: may20})); err != nil {
		t.Fatalf("WriteRecords err=%v", err)
	}
	if strings.Contains(buf.String(), "finishedDate") {
		t.Errorf("active task should not carry finishedDate: %s", buf.String())
	}
}

func TestWriteRecords_YAML(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteRecords(&buf, FormatYAML, NewTaskRecords([]task.Task{{ID: 2, Title: "Clean desk", EndDate: may20, Priority: 7}})); err != nil {
		t.Fatalf("WriteRecords err=%v", err)
	}

	var out []TaskRecord
	if err := yaml.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal err=%v", err)
	}
	if len(out) != 1 || out[0].Title != "Clean desk" || out[0].EndDate != "2025-05-20T00:00:00Z" {
		t.Errorf("unexpected records: %+v", out)
	}
}

func TestNewTaskRecords_EmptyIsNotNil(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteRecords(&buf, FormatJSON, NewTaskRecords(nil)); err != nil {
		t.Fatalf("WriteRecords err=%v", err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Errorf("expected [], got %q", buf.String())
	}
}
