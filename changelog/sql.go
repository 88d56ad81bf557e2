// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package changelog

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/danielhkuo/gradebook/roster"
)

// Entry is a stored change record.
type Entry struct {
	ID string
	roster.ChangeRecord
}

// SQLSink stores change records in the grade_change table.
type SQLSink struct {
	db *sql.DB
}

func NewSQLSink(db *sql.DB) *SQLSink {
	return &SQLSink{db: db}
}

func (s *SQLSink) Record(rec roster.ChangeRecord) error {
	_, err := s.db.Exec(`
		INSERT INTO grade_change (id, recorded_at, student_id, student_name, action, subject, score)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, uuid.NewString(), rec.Timestamp.UTC(), rec.StudentID, rec.StudentName, string(rec.Action), rec.Subject, rec.Score)
	if err != nil {
		return fmt.Errorf("failed to insert change record: %w", err)
	}
	return nil
}

// Recent returns up to limit records, newest first.
func (s *SQLSink) Recent(limit int) ([]Entry, error) {
	rows, err := s.db.Query(`
		SELECT id, recorded_at, student_id, student_name, action, subject, score
		FROM grade_change
		ORDER BY recorded_at DESC, id
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query change records: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var e Entry
		var action string
		if err := rows.Scan(&e.ID, &e.Timestamp, &e.StudentID, &e.StudentName, &action, &e.Subject, &e.Score); err != nil {
			return nil, fmt.Errorf("failed to scan change record: %w", err)
		}
		e.Action = roster.Action(action)
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
