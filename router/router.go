// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/danielhkuo/gradebook/cliparse"
	"github.com/danielhkuo/gradebook/handlers"
	"github.com/danielhkuo/gradebook/middleware"
)

// NewRouter wires every endpoint. changes may be nil when no database is
// configured; /api/changes then answers 501.
func NewRouter(book *handlers.Book, changes handlers.ChangeLister, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	studentHandler := handlers.NewStudentHandler(book)
	gradeHandler := handlers.NewGradeHandler(book)
	reportHandler := handlers.NewReportHandler(book)
	changeHandler := handlers.NewChangeHandler(changes)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Student records
	mux.HandleFunc("GET /api/students", middleware.WithLogging(studentHandler.ListStudents))
	mux.HandleFunc("POST /api/students", middleware.WithLogging(studentHandler.CreateStudent))
	mux.HandleFunc("GET /api/students/{id}", middleware.WithLogging(studentHandler.GetStudent))
	mux.HandleFunc("PUT /api/students/{id}", middleware.WithLogging(studentHandler.UpdateStudent))
	mux.HandleFunc("DELETE /api/students/{id}", middleware.WithLogging(studentHandler.DeleteStudent))

	// Grades
	mux.HandleFunc("POST /api/students/{id}/grades", middleware.WithLogging(gradeHandler.AddGrade))
	mux.HandleFunc("DELETE /api/students/{id}/grades/{subject}", middleware.WithLogging(gradeHandler.RemoveGrade))

	// Reports
	mux.HandleFunc("GET /api/students/honors/{honors}", middleware.WithLogging(reportHandler.StudentsByHonors))
	mux.HandleFunc("GET /api/top_students", middleware.WithLogging(reportHandler.TopStudents))
	mux.HandleFunc("GET /api/statistics", middleware.WithLogging(reportHandler.Statistics))
	mux.HandleFunc("GET /api/export", middleware.WithLogging(reportHandler.Export))

	// Change history
	mux.HandleFunc("GET /api/changes", middleware.WithLogging(changeHandler.ListChanges))

	// Frontend
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir))))

	// Root endpoint
	index := filepath.Join(cfg.StaticDir, "index.html")
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		if _, err := os.Stat(index); err == nil {
			http.ServeFile(w, r, index)
			return
		}
		w.Write([]byte("gradebook API v1"))
	})

	return mux
}
