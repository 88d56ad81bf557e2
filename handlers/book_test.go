// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/danielhkuo/gradebook/roster"
	"github.com/danielhkuo/gradebook/snapshot"
	"github.com/danielhkuo/gradebook/testutil"
)

// newTestBook returns a book snapshotting into a temp dir and the sink
// its roster records changes to
func newTestBook(t *testing.T) (*Book, *testutil.RecordingSink, string) {
	t.Helper()

	cfg := testutil.GetTestConfig(t)
	sink := &testutil.RecordingSink{}
	m := roster.NewManager(roster.WithSink(sink))
	return NewBook(m, snapshot.NewExporter(cfg.CSVPath)), sink, cfg.CSVPath
}

func readSnapshot(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read snapshot: %v", err)
	}
	return string(data)
}

func TestBookMutateWritesSnapshot(t *testing.T) {
	book, _, csvPath := newTestBook(t)

	warnings, err := book.Mutate(context.Background(), func(m *roster.Manager) error {
		_, err := m.AddStudent("Alice Smith", "S001")
		return err
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("Expected no warnings, got %v", warnings)
	}

	if !strings.Contains(readSnapshot(t, csvPath), "S001,Alice Smith,,0.0,F") {
		t.Error("Expected snapshot to contain the new student")
	}
}

func TestBookMutateErrorSkipsSnapshot(t *testing.T) {
	book, _, csvPath := newTestBook(t)

	_, err := book.Mutate(context.Background(), func(m *roster.Manager) error {
		return roster.ErrNotFound
	})
	if !errors.Is(err, roster.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got: %v", err)
	}

	if _, err := os.Stat(csvPath); !os.IsNotExist(err) {
		t.Error("Expected no snapshot after a failed mutation")
	}
}

func TestBookMutateChangeLogFailureIsWarning(t *testing.T) {
	book, sink, csvPath := newTestBook(t)
	sink.Err = errors.New("disk full")

	warnings, err := book.Mutate(context.Background(), func(m *roster.Manager) error {
		s, err := m.AddStudent("Alice Smith", "S001")
		if err != nil {
			return err
		}
		return applyGrades(s, map[string]float64{"Math": 95, "Science": 92})
	})
	if err != nil {
		t.Fatalf("Expected change log failure to be downgraded, got: %v", err)
	}
	if len(warnings) != 2 {
		t.Fatalf("Expected one warning per failed record, got %v", warnings)
	}
	if !strings.Contains(warnings[0], "disk full") {
		t.Errorf("Expected warning to carry the cause, got %q", warnings[0])
	}

	// The mutation still happened and was persisted
	if !strings.Contains(readSnapshot(t, csvPath), `"Math:95, Science:92"`) {
		t.Error("Expected snapshot to include scores despite change log failure")
	}
}

func TestBookMutateExportFailureIsWarning(t *testing.T) {
	dir := t.TempDir()
	// A directory cannot be opened as the snapshot file
	exporter := snapshot.NewExporter(dir)
	book := NewBook(roster.NewManager(), exporter)

	warnings, err := book.Mutate(context.Background(), func(m *roster.Manager) error {
		_, err := m.AddStudent("Alice Smith", "S001")
		return err
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(warnings) != 1 {
		t.Fatalf("Expected one warning, got %v", warnings)
	}

	var n int
	book.Read(func(m *roster.Manager) { n = m.Len() })
	if n != 1 {
		t.Errorf("Expected student to be kept, got %d students", n)
	}
}

func TestBookExportWithoutExporter(t *testing.T) {
	book := NewBook(roster.NewManager(), nil)

	if _, err := book.Export(context.Background()); err == nil {
		t.Error("Expected error without a snapshot path")
	}

	// Mutations still work without snapshots
	if _, err := book.Mutate(context.Background(), func(m *roster.Manager) error {
		_, err := m.AddStudent("Bob", "S002")
		return err
	}); err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
}

func TestSplitErrors(t *testing.T) {
	a, b, c := errors.New("a"), errors.New("b"), errors.New("c")

	got := splitErrors(errors.Join(a, errors.Join(b, c)))
	if strings.Join(got, ",") != "a,b,c" {
		t.Errorf("Expected [a b c], got %v", got)
	}

	if got := splitErrors(a); len(got) != 1 || got[0] != "a" {
		t.Errorf("Expected [a], got %v", got)
	}

	wrapped := fmt.Errorf("%w: Math: %w", roster.ErrChangeLog, a)
	if got := splitErrors(wrapped); len(got) != 1 || got[0] != wrapped.Error() {
		t.Errorf("Expected wrapped error to stay whole, got %v", got)
	}
}

func TestValidateGrades(t *testing.T) {
	if err := validateGrades(nil); err != nil {
		t.Errorf("Expected nil grades to be valid, got: %v", err)
	}
	if err := validateGrades(map[string]float64{"Math": 0, "Art": 100}); err != nil {
		t.Errorf("Expected boundary scores to be valid, got: %v", err)
	}
	if err := validateGrades(map[string]float64{"Math": 95, "Art": 101}); !errors.Is(err, roster.ErrInvalidScore) {
		t.Errorf("Expected ErrInvalidScore, got: %v", err)
	}
	if err := validateGrades(map[string]float64{"": 50}); err == nil {
		t.Error("Expected error for empty subject")
	}
}
