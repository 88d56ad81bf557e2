// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package roster

import "errors"

var (
	ErrInvalidScore   = errors.New("score must be between 0 and 100")
	ErrInvalidSubject = errors.New("invalid subject name")
	ErrInvalidGrade   = errors.New("invalid letter grade")
	ErrDuplicateID    = errors.New("student ID already exists")
	ErrNotFound       = errors.New("student not found")

	// ErrChangeLog reports a sink failure for a mutation that was applied.
	ErrChangeLog = errors.New("change log write failed")

	ErrExport = errors.New("csv export failed")
	ErrImport = errors.New("csv import failed")
)
