// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/gradebook/middleware"
	"github.com/danielhkuo/gradebook/models"
	"github.com/danielhkuo/gradebook/roster"
)

type ReportHandler struct {
	book *Book
}

func NewReportHandler(book *Book) *ReportHandler {
	return &ReportHandler{book: book}
}

// TopStudents handles GET /api/top_students?min_avg=&limit=
func (h *ReportHandler) TopStudents(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	minAvg := 0.0
	if raw := query.Get("min_avg"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "min_avg must be a number")
			return
		}
		minAvg = v
	}

	limit := -1
	if raw := query.Get("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			middleware.ErrorResponse(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = v
	}

	var students []models.Student
	h.book.Read(func(m *roster.Manager) {
		if limit < 0 {
			students = toStudents(m.StudentsAbove(minAvg))
			return
		}
		students = toStudents(m.TopPerformersAbove(minAvg, limit))
	})

	middleware.JSONResponse(w, http.StatusOK, models.StudentListResponse{Students: students})
}

// StudentsByHonors handles GET /api/students/honors/{honors}
func (h *ReportHandler) StudentsByHonors(w http.ResponseWriter, r *http.Request) {
	grade, err := roster.ParseGrade(r.PathValue("honors"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "honors must be one of A, B, C, D, F")
		return
	}

	var students []models.Student
	h.book.Read(func(m *roster.Manager) {
		students = toStudents(m.StudentsByGrade(grade))
	})

	middleware.JSONResponse(w, http.StatusOK, models.StudentListResponse{Students: students})
}

// Statistics handles GET /api/statistics
func (h *ReportHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	var stats roster.Statistics
	h.book.Read(func(m *roster.Manager) {
		stats = m.Statistics()
	})

	dist := make(map[string]int, len(stats.HonorsDistribution))
	for grade, n := range stats.HonorsDistribution {
		dist[string(grade)] = n
	}

	middleware.JSONResponse(w, http.StatusOK, models.StatisticsResponse{
		TotalStudents:      stats.TotalStudents,
		AverageGrade:       stats.AverageGrade,
		HonorsDistribution: dist,
		TotalSubjects:      stats.TotalSubjects,
	})
}

// Export handles GET /api/export
func (h *ReportHandler) Export(w http.ResponseWriter, r *http.Request) {
	res, err := h.book.Export(r.Context())
	if err != nil {
		slog.Error("export failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Export failed: "+err.Error())
		return
	}

	slog.Info("students exported", "path", res.Path, "rows", res.Rows, "uploaded", res.Uploaded)

	middleware.JSONResponse(w, http.StatusOK, models.ExportResponse{
		Message:  "Students exported to CSV successfully",
		Path:     res.Path,
		Rows:     res.Rows,
		Bytes:    res.Bytes,
		Size:     humanize.Bytes(uint64(res.Bytes)),
		Uploaded: res.Uploaded,
	})
}
