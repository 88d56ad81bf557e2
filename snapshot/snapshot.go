// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package snapshot

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/danielhkuo/gradebook/roster"
)

// Uploader ships a finished snapshot somewhere besides the local file.
type Uploader interface {
	Upload(ctx context.Context, body []byte) error
}

// Result describes one written snapshot.
type Result struct {
	Path     string
	Rows     int
	Bytes    int64
	Uploaded bool
}

// Exporter writes the roster CSV to a fixed path.
type Exporter struct {
	path     string
	uploader Uploader
}

type Option func(*Exporter)

// WithUploader also uploads every snapshot after the local write succeeds.
func WithUploader(u Uploader) Option {
	return func(e *Exporter) {
		e.uploader = u
	}
}

func NewExporter(path string, opts ...Option) *Exporter {
	e := &Exporter{path: path}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Exporter) Path() string {
	return e.path
}

// Export renders the roster and rewrites the snapshot file. It is not
// retried; failures wrap roster.ErrExport.
func (e *Exporter) Export(ctx context.Context, m *roster.Manager) (Result, error) {
	var buf bytes.Buffer
	if err := m.ExportCSV(&buf); err != nil {
		return Result{}, err
	}

	if err := writeFile(e.path, buf.Bytes()); err != nil {
		return Result{}, fmt.Errorf("%w: %w", roster.ErrExport, err)
	}

	res := Result{Path: e.path, Rows: m.Len(), Bytes: int64(buf.Len())}
	if e.uploader == nil {
		return res, nil
	}

	if err := e.uploader.Upload(ctx, buf.Bytes()); err != nil {
		return res, fmt.Errorf("%w: upload: %w", roster.ErrExport, err)
	}
	res.Uploaded = true
	return res, nil
}

// writeFile writes into a temp file beside path and renames it over path,
// so readers see either the old snapshot or the new one, never a partial
// file. The temp file is removed on any failure.
func writeFile(path string, data []byte) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", path, err)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmp)
		}
	}()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}
	if err := f.Chmod(0o644); err != nil {
		return fmt.Errorf("failed to chmod %s: %w", tmp, err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("failed to sync %s: %w", tmp, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

// Load reads a snapshot written by Export. A missing file yields no rows.
func Load(path string) ([]roster.Row, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot: %w", err)
	}
	defer f.Close()

	return roster.ReadCSV(f)
}
