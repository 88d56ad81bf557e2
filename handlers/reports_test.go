// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/gradebook/models"
	"github.com/danielhkuo/gradebook/roster"
	"github.com/danielhkuo/gradebook/testutil"
)

func seedClass(t *testing.T, book *Book) {
	t.Helper()
	seedBook(t, book, func(m *roster.Manager) {
		testutil.AddTestStudent(t, m, "S003", "Carol White", map[string]float64{"Math": 72})
		testutil.AddTestStudent(t, m, "S001", "Alice Smith", map[string]float64{"Math": 95, "Science": 92})
		testutil.AddTestStudent(t, m, "S002", "Bob Johnson", map[string]float64{"Math": 85, "Science": 88})
		testutil.AddTestStudent(t, m, "S004", "Dan Brown", map[string]float64{"Math": 85, "Science": 88})
		testutil.AddTestStudent(t, m, "S005", "Eve Black", nil)
	})
}

func studentIDs(students []models.Student) string {
	ids := make([]string, len(students))
	for i, s := range students {
		ids[i] = s.StudentID
	}
	return strings.Join(ids, ",")
}

func TestTopStudents(t *testing.T) {
	book, _, _ := newTestBook(t)
	handler := NewReportHandler(book)
	seedClass(t, book)

	testCases := []struct {
		name     string
		query    string
		expected string
	}{
		{"all ranked", "", "S001,S002,S004,S003,S005"},
		{"min_avg filter", "?min_avg=80", "S001,S002,S004"},
		{"min_avg inclusive", "?min_avg=86.5", "S001,S002,S004"},
		{"limit", "?limit=2", "S001,S002"},
		{"min_avg and limit", "?min_avg=70&limit=10", "S001,S002,S004,S003"},
		{"limit after min_avg", "?min_avg=80&limit=2", "S001,S002"},
		{"zero limit", "?limit=0", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler.TopStudents(w, httptest.NewRequest("GET", "/api/top_students"+tc.query, nil))

			testutil.AssertStatus(t, w, http.StatusOK)

			var resp models.StudentListResponse
			testutil.AssertJSON(t, w, &resp)
			if got := studentIDs(resp.Students); got != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, got)
			}
		})
	}

	for _, query := range []string{"?min_avg=abc", "?limit=-1", "?limit=two"} {
		t.Run("bad "+query, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler.TopStudents(w, httptest.NewRequest("GET", "/api/top_students"+query, nil))

			testutil.AssertStatus(t, w, http.StatusBadRequest)
		})
	}
}

func TestStudentsByHonors(t *testing.T) {
	book, _, _ := newTestBook(t)
	handler := NewReportHandler(book)
	seedClass(t, book)

	testCases := []struct {
		honors   string
		status   int
		expected string
	}{
		{"A", http.StatusOK, "S001"},
		{"B", http.StatusOK, "S002,S004"},
		{"C", http.StatusOK, "S003"},
		{"D", http.StatusOK, ""},
		{"F", http.StatusOK, "S005"},
		{"E", http.StatusBadRequest, ""},
		{"a", http.StatusBadRequest, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.honors, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/students/honors/"+tc.honors, nil)
			req.SetPathValue("honors", tc.honors)
			w := httptest.NewRecorder()

			handler.StudentsByHonors(w, req)

			testutil.AssertStatus(t, w, tc.status)
			if tc.status != http.StatusOK {
				return
			}

			var resp models.StudentListResponse
			testutil.AssertJSON(t, w, &resp)
			if got := studentIDs(resp.Students); got != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestStatistics(t *testing.T) {
	t.Run("empty roster", func(t *testing.T) {
		book, _, _ := newTestBook(t)
		w := httptest.NewRecorder()

		NewReportHandler(book).Statistics(w, httptest.NewRequest("GET", "/api/statistics", nil))

		testutil.AssertStatus(t, w, http.StatusOK)
		expected := `{"total_students":0,"average_grade":0,"honors_distribution":{},"total_subjects":0}`
		if strings.TrimSpace(w.Body.String()) != expected {
			t.Errorf("Expected %s, got %s", expected, w.Body.String())
		}
	})

	t.Run("populated roster", func(t *testing.T) {
		book, _, _ := newTestBook(t)
		seedClass(t, book)
		w := httptest.NewRecorder()

		NewReportHandler(book).Statistics(w, httptest.NewRequest("GET", "/api/statistics", nil))

		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.StatisticsResponse
		testutil.AssertJSON(t, w, &resp)

		if resp.TotalStudents != 5 {
			t.Errorf("Expected 5 students, got %d", resp.TotalStudents)
		}
		// (93.5 + 86.5 + 86.5 + 72 + 0) / 5
		if resp.AverageGrade != 67.7 {
			t.Errorf("Expected average 67.7, got %v", resp.AverageGrade)
		}
		if resp.TotalSubjects != 7 {
			t.Errorf("Expected 7 subjects, got %d", resp.TotalSubjects)
		}
		if resp.HonorsDistribution["B"] != 2 || resp.HonorsDistribution["F"] != 1 {
			t.Errorf("Unexpected distribution: %v", resp.HonorsDistribution)
		}
		if _, ok := resp.HonorsDistribution["D"]; ok {
			t.Error("Expected grades nobody holds to be omitted")
		}
	})
}

func TestExport(t *testing.T) {
	book, _, csvPath := newTestBook(t)
	handler := NewReportHandler(book)
	seedClass(t, book)

	w := httptest.NewRecorder()
	handler.Export(w, httptest.NewRequest("GET", "/api/export", nil))

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ExportResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.Path != csvPath || resp.Rows != 5 {
		t.Errorf("Unexpected export result: %+v", resp)
	}
	if resp.Bytes != int64(len(readSnapshot(t, csvPath))) {
		t.Errorf("Expected byte count %d, got %d", len(readSnapshot(t, csvPath)), resp.Bytes)
	}
	if !strings.HasSuffix(resp.Size, "B") {
		t.Errorf("Expected human-readable size, got %q", resp.Size)
	}
	if resp.Uploaded {
		t.Error("Expected no upload without an uploader")
	}
}

func TestExportFailure(t *testing.T) {
	book := NewBook(roster.NewManager(), nil)
	w := httptest.NewRecorder()

	NewReportHandler(book).Export(w, httptest.NewRequest("GET", "/api/export", nil))

	testutil.AssertStatus(t, w, http.StatusInternalServerError)
}
