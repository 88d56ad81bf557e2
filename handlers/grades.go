// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/gradebook/middleware"
	"github.com/danielhkuo/gradebook/models"
	"github.com/danielhkuo/gradebook/roster"
)

type GradeHandler struct {
	book *Book
}

func NewGradeHandler(book *Book) *GradeHandler {
	return &GradeHandler{book: book}
}

// AddGrade handles POST /api/students/{id}/grades
func (h *GradeHandler) AddGrade(w http.ResponseWriter, r *http.Request) {
	studentID := r.PathValue("id")

	var req models.AddGradeRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Subject == "" || req.Score == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "subject and score are required")
		return
	}
	if err := roster.ValidateSubject(req.Subject); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	score := *req.Score
	if err := roster.ValidateScore(score); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	var student models.Student
	warnings, err := h.book.Mutate(r.Context(), func(m *roster.Manager) error {
		s, ok := m.Student(studentID)
		if !ok {
			return fmt.Errorf("%w: %s", roster.ErrNotFound, studentID)
		}
		err := s.SetScore(req.Subject, score)
		student = toStudent(s)
		return err
	})
	if err != nil {
		writeMutationError(w, err)
		return
	}

	slog.Info("grade recorded", "student_id", studentID, "subject", req.Subject, "score", score)

	middleware.JSONResponse(w, http.StatusOK, models.StudentResponse{
		Message:  "Grade added successfully",
		Student:  student,
		Warnings: warnings,
	})
}

// RemoveGrade handles DELETE /api/students/{id}/grades/{subject}
func (h *GradeHandler) RemoveGrade(w http.ResponseWriter, r *http.Request) {
	studentID := r.PathValue("id")
	subject := r.PathValue("subject")

	var student models.Student
	warnings, err := h.book.Mutate(r.Context(), func(m *roster.Manager) error {
		s, ok := m.Student(studentID)
		if !ok {
			return fmt.Errorf("%w: %s", roster.ErrNotFound, studentID)
		}
		if _, ok := s.Score(subject); !ok {
			return fmt.Errorf("%w: %s", errGradeNotFound, subject)
		}
		err := s.RemoveScore(subject)
		student = toStudent(s)
		return err
	})
	if err != nil {
		writeMutationError(w, err)
		return
	}

	slog.Info("grade removed", "student_id", studentID, "subject", subject)

	middleware.JSONResponse(w, http.StatusOK, models.StudentResponse{
		Message:  "Grade removed successfully",
		Student:  student,
		Warnings: warnings,
	})
}
