// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package changelog

import (
	"fmt"
	"os"
	"sync"

	"github.com/ncruces/go-strftime"

	"github.com/danielhkuo/gradebook/roster"
)

const timestampLayout = "%Y-%m-%d %H:%M:%S"

// FileSink appends change records as text lines.
type FileSink struct {
	mu   sync.Mutex
	path string
}

func NewFileSink(path string) *FileSink {
	return &FileSink{path: path}
}

// Record appends one line, opening and closing the file around the write.
func (s *FileSink) Record(rec roster.ChangeRecord) (err error) {
	line := FormatLine(rec)

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open change log: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("failed to close change log: %w", cerr)
		}
	}()

	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("failed to write change log: %w", err)
	}
	return nil
}

// FormatLine renders a record as a newline-terminated log line.
func FormatLine(rec roster.ChangeRecord) string {
	return fmt.Sprintf("%s - Student: %s (%s), Action: %s, Subject: %s, Score: %s\n",
		strftime.Format(timestampLayout, rec.Timestamp),
		rec.StudentName,
		rec.StudentID,
		rec.Action,
		rec.Subject,
		roster.FormatScore(rec.Score),
	)
}
