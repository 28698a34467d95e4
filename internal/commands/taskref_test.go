package commands

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"taskpad/internal/config"
	"taskpad/internal/task"
	"taskpad/internal/testutil"
)

func TestParseTaskRef_NumericOnly(t *testing.T) {
	ref, rest, err := ParseTaskRef([]string{"5"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref.Completed || ref.ByID {
		t.Errorf("expected active row ref, got %+v", ref)
	}
	if ref.Num != 5 {
		t.Errorf("expected Num 5, got %d", ref.Num)
	}
	if len(rest) != 0 {
		t.Errorf("expected no rest, got %q", rest)
	}
}

func TestParseTaskRef_CompletedCombined(t *testing.T) {
	ref, _, err := ParseTaskRef([]string{"c12"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ref.Completed {
		t.Error("expected Completed to be true")
	}
	if ref.Num != 12 {
		t.Errorf("expected Num 12, got %d", ref.Num)
	}
}

func TestParseTaskRef_CompletedSeparated(t *testing.T) {
	ref, rest, err := ParseTaskRef([]string{"c", "3", "New", "title"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ref.Completed || ref.Num != 3 {
		t.Errorf("expected c3, got %s", ref)
	}
	if !reflect.DeepEqual(rest, []string{"New", "title"}) {
		t.Errorf("expected rest [New title], got %q", rest)
	}
}

func TestParseTaskRef_CompletedUppercase(t *testing.T) {
	ref, _, err := ParseTaskRef([]string{"C2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref.String() != "c2" {
		t.Errorf("expected c2, got %s", ref)
	}
}

func TestParseTaskRef_ByID(t *testing.T) {
	ref, rest, err := ParseTaskRef([]string{"#42", "x"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ref.ByID || ref.ID != 42 {
		t.Errorf("expected #42, got %+v", ref)
	}
	if !reflect.DeepEqual(rest, []string{"x"}) {
		t.Errorf("expected rest [x], got %q", rest)
	}
}

func TestParseTaskRef_LetterOnly_Error(t *testing.T) {
	_, _, err := ParseTaskRef([]string{"c"})
	if !errors.Is(err, ErrTaskRefRequired) {
		t.Errorf("expected ErrTaskRefRequired, got %v", err)
	}
}

func TestParseTaskRef_NoArgs_Error(t *testing.T) {
	_, _, err := ParseTaskRef(nil)
	if !errors.Is(err, ErrTaskRefRequired) {
		t.Errorf("expected ErrTaskRefRequired, got %v", err)
	}
}

func TestParseTaskRef_InvalidRef_Error(t *testing.T) {
	cases := map[string][]string{
		"invalid task reference: abc": {"abc"},
		"invalid task reference: a1":  {"a1"},
		"invalid task reference: #":   {"#"},
		"invalid task reference: #x":  {"#x"},
		"invalid task reference: c":   {"c", "x"},
		"invalid task reference: -1":  {"-1"},
	}
	for expected, args := range cases {
		_, _, err := ParseTaskRef(args)
		if err == nil {
			t.Errorf("ParseTaskRef(%q): expected error", args)
			continue
		}
		if !errors.Is(err, ErrInvalidTaskRef) {
			t.Errorf("ParseTaskRef(%q): expected ErrInvalidTaskRef, got %v", args, err)
		}
		if err.Error() != expected {
			t.Errorf("expected %q, got %q", expected, err.Error())
		}
	}
}

func TestResolveTaskRef_FollowsSessionSortKey(t *testing.T) {
	svc := testutil.NewFakeService()
	a := svc.AddTask(t, "Write report", testutil.Date(2025, time.June, 1), 9)
	b := svc.AddTask(t, "Clean desk", testutil.Date(2025, time.May, 20), 3)

	cfg := config.New(t.TempDir())
	ctx := context.Background()

	got, err := ResolveTaskRef(ctx, cfg, svc, TaskRef{Num: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != a.ID {
		t.Errorf("priority order: expected #%d first, got #%d", a.ID, got.ID)
	}

	cfg.SetSortKey(task.SortByEndDate)
	got, err = ResolveTaskRef(ctx, cfg, svc, TaskRef{Num: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != b.ID {
		t.Errorf("endDate order: expected #%d first, got #%d", b.ID, got.ID)
	}
}

func TestResolveTaskRef_Completed(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask(t, "Active", testutil.Date(2025, time.June, 1), 1)
	done := svc.AddCompleted(t, "Done", testutil.Date(2025, time.June, 1), 1)

	got, err := ResolveTaskRef(context.Background(), config.New(t.TempDir()), svc, TaskRef{Num: 1, Completed: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != done.ID {
		t.Errorf("expected #%d, got #%d", done.ID, got.ID)
	}
}

func TestResolveTaskRef_OutOfRange(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask(t, "Only", testutil.Date(2025, time.June, 1), 1)
	cfg := config.New(t.TempDir())

	for _, ref := range []TaskRef{{Num: 0}, {Num: 2}, {Num: 1, Completed: true}} {
		_, err := ResolveTaskRef(context.Background(), cfg, svc, ref)
		if !errors.Is(err, ErrTaskNumberOutOfRange) {
			t.Errorf("ref %s: expected ErrTaskNumberOutOfRange, got %v", ref, err)
		}
	}
}

func TestResolveTaskRef_UnknownID(t *testing.T) {
	svc := testutil.NewFakeService()

	_, err := ResolveTaskRef(context.Background(), config.New(t.TempDir()), svc, TaskRef{ID: 7, ByID: true})
	if !errors.Is(err, task.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
