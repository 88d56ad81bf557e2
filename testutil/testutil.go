// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"maps"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"slices"
	"testing"

	"github.com/danielhkuo/gradebook/cliparse"
	"github.com/danielhkuo/gradebook/db"
	"github.com/danielhkuo/gradebook/roster"
)

// SetupTestDB creates a fresh in-memory SQLite database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.TypeSQLite, ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration writing into a temp dir
func GetTestConfig(t *testing.T) cliparse.Config {
	t.Helper()
	dir := t.TempDir()

	return cliparse.Config{
		Port:          8000,
		CSVPath:       filepath.Join(dir, "students.csv"),
		ChangeLogPath: filepath.Join(dir, "grades.log"),
		DatabaseType:  db.TypeSQLite,
		RedisStream:   "grade_changes",
		S3Region:      "us-east-1",
		S3Key:         "students.csv",
		StaticDir:     filepath.Join(dir, "static"),
	}
}

// AddTestStudent adds a student and sets its scores in subject-name order
func AddTestStudent(t *testing.T, m *roster.Manager, id, name string, scores map[string]float64) *roster.Student {
	t.Helper()

	s, err := m.AddStudent(name, id)
	if err != nil {
		t.Fatalf("Failed to add test student: %v", err)
	}
	for _, subject := range slices.Sorted(maps.Keys(scores)) {
		if err := s.SetScore(subject, scores[subject]); err != nil {
			t.Fatalf("Failed to set test score: %v", err)
		}
	}

	return s
}

// RecordingSink collects change records in memory
type RecordingSink struct {
	Records []roster.ChangeRecord
	Err     error
}

func (r *RecordingSink) Record(rec roster.ChangeRecord) error {
	r.Records = append(r.Records, rec)
	return r.Err
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
