// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package roster

import "time"

type Action string

const (
	ActionAddOrUpdate Action = "ADD/UPDATE"
	ActionRemove      Action = "REMOVE"
)

// ChangeRecord describes one applied score mutation.
type ChangeRecord struct {
	Timestamp   time.Time
	StudentName string
	StudentID   string
	Action      Action
	Subject     string
	Score       float64
}

// ChangeSink accepts change records. Implementations live in package changelog.
type ChangeSink interface {
	Record(rec ChangeRecord) error
}

// SinkFunc adapts a function to ChangeSink.
type SinkFunc func(rec ChangeRecord) error

func (f SinkFunc) Record(rec ChangeRecord) error {
	return f(rec)
}

// Discard drops every record.
var Discard ChangeSink = SinkFunc(func(ChangeRecord) error { return nil })
