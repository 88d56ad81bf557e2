// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/danielhkuo/gradebook/roster"
	"github.com/danielhkuo/gradebook/snapshot"
)

// Book serializes access to the roster and rewrites the CSV snapshot after
// every mutation. The roster itself is not safe for concurrent use.
type Book struct {
	mu       sync.Mutex
	manager  *roster.Manager
	exporter *snapshot.Exporter
}

// NewBook wraps m. A nil exporter disables snapshots.
func NewBook(m *roster.Manager, exporter *snapshot.Exporter) *Book {
	return &Book{manager: m, exporter: exporter}
}

// Read runs fn with the roster locked. fn must not keep references to
// students after it returns.
func (b *Book) Read(fn func(m *roster.Manager)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	fn(b.manager)
}

// Mutate runs fn with the roster locked and then rewrites the snapshot.
//
// Change log and snapshot failures happen after the roster has changed, so
// they come back as warnings rather than an error. Any other error from fn
// is returned as-is and no snapshot is written.
func (b *Book) Mutate(ctx context.Context, fn func(m *roster.Manager) error) ([]string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	var warnings []string
	if err := fn(b.manager); err != nil {
		if !errors.Is(err, roster.ErrChangeLog) {
			return nil, err
		}
		slog.Warn("change log write failed", "error", err)
		warnings = append(warnings, splitErrors(err)...)
	}

	if b.exporter == nil {
		return warnings, nil
	}
	if _, err := b.exporter.Export(ctx, b.manager); err != nil {
		slog.Error("snapshot export failed", "path", b.exporter.Path(), "error", err)
		warnings = append(warnings, err.Error())
	}
	return warnings, nil
}

// Export writes the snapshot on demand.
func (b *Book) Export(ctx context.Context) (snapshot.Result, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.exporter == nil {
		return snapshot.Result{}, errNoExporter
	}
	return b.exporter.Export(ctx, b.manager)
}

var errNoExporter = errors.New("no snapshot path configured")

// splitErrors flattens errors.Join results into one message per error.
// Errors built by fmt.Errorf with several %w verbs also unwrap to a slice
// but keep their own message, so they stay whole.
func splitErrors(err error) []string {
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return []string{err.Error()}
	}

	errs := joined.Unwrap()
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Error())
	}
	if strings.Join(msgs, "\n") != err.Error() {
		return []string{err.Error()}
	}

	var out []string
	for _, e := range errs {
		out = append(out, splitErrors(e)...)
	}
	return out
}
