package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestNew_Levels(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, false)
	log.Debug("hidden")
	log.Warn("shown")

	if strings.Contains(buf.String(), "hidden") {
		t.Errorf("debug record written without debug: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "msg=shown") {
		t.Errorf("expected warn record, got %q", buf.String())
	}

	buf.Reset()
	New(&buf, true).Debug("dispatch", "command", "list")
	if !strings.Contains(buf.String(), "command=list") {
		t.Errorf("expected debug record, got %q", buf.String())
	}
}

func TestFromContext(t *testing.T) {
	if FromContext(context.Background()) == nil {
		t.Fatal("expected a discarding logger")
	}

	var buf bytes.Buffer
	ctx := WithLogger(context.Background(), New(&buf, false))
	FromContext(ctx).Warn("stored")
	if !strings.Contains(buf.String(), "stored") {
		t.Errorf("expected the stored logger to be used, got %q", buf.String())
	}
}
