// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/gradebook/middleware"
	"github.com/danielhkuo/gradebook/models"
	"github.com/danielhkuo/gradebook/roster"
)

var errGradeNotFound = errors.New("grade not found")

type StudentHandler struct {
	book *Book
}

func NewStudentHandler(book *Book) *StudentHandler {
	return &StudentHandler{book: book}
}

// ListStudents handles GET /api/students
func (h *StudentHandler) ListStudents(w http.ResponseWriter, r *http.Request) {
	var students []models.Student
	h.book.Read(func(m *roster.Manager) {
		students = toStudents(m.Students())
	})

	middleware.JSONResponse(w, http.StatusOK, models.StudentListResponse{Students: students})
}

// GetStudent handles GET /api/students/{id}
func (h *StudentHandler) GetStudent(w http.ResponseWriter, r *http.Request) {
	studentID := r.PathValue("id")

	var student models.Student
	var found bool
	h.book.Read(func(m *roster.Manager) {
		if s, ok := m.Student(studentID); ok {
			student, found = toStudent(s), true
		}
	})

	if !found {
		middleware.ErrorResponse(w, http.StatusNotFound, "Student not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, student)
}

// CreateStudent handles POST /api/students
func (h *StudentHandler) CreateStudent(w http.ResponseWriter, r *http.Request) {
	var req models.CreateStudentRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Name == "" || req.StudentID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name and student_id are required")
		return
	}
	if err := validateGrades(req.Grades); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	var student models.Student
	warnings, err := h.book.Mutate(r.Context(), func(m *roster.Manager) error {
		s, err := m.AddStudent(req.Name, req.StudentID)
		if err != nil {
			return err
		}
		err = applyGrades(s, req.Grades)
		student = toStudent(s)
		return err
	})
	if err != nil {
		writeMutationError(w, err)
		return
	}

	slog.Info("student created", "student_id", req.StudentID, "subjects", student.TotalSubjects)

	middleware.JSONResponse(w, http.StatusCreated, models.StudentResponse{
		Message:  "Student created successfully",
		Student:  student,
		Warnings: warnings,
	})
}

// UpdateStudent handles PUT /api/students/{id}
func (h *StudentHandler) UpdateStudent(w http.ResponseWriter, r *http.Request) {
	studentID := r.PathValue("id")

	var req models.UpdateStudentRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Name != nil && *req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name must not be empty")
		return
	}
	if err := validateGrades(req.Grades); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	var student models.Student
	warnings, err := h.book.Mutate(r.Context(), func(m *roster.Manager) error {
		s, ok := m.Student(studentID)
		if !ok {
			return fmt.Errorf("%w: %s", roster.ErrNotFound, studentID)
		}
		if req.Name != nil {
			s.SetName(*req.Name)
		}
		err := applyGrades(s, req.Grades)
		student = toStudent(s)
		return err
	})
	if err != nil {
		writeMutationError(w, err)
		return
	}

	slog.Info("student updated", "student_id", studentID)

	middleware.JSONResponse(w, http.StatusOK, models.StudentResponse{
		Message:  "Student updated successfully",
		Student:  student,
		Warnings: warnings,
	})
}

// DeleteStudent handles DELETE /api/students/{id}
func (h *StudentHandler) DeleteStudent(w http.ResponseWriter, r *http.Request) {
	studentID := r.PathValue("id")

	warnings, err := h.book.Mutate(r.Context(), func(m *roster.Manager) error {
		if !m.RemoveStudent(studentID) {
			return fmt.Errorf("%w: %s", roster.ErrNotFound, studentID)
		}
		return nil
	})
	if err != nil {
		writeMutationError(w, err)
		return
	}

	slog.Info("student deleted", "student_id", studentID)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message:  "Student deleted successfully",
		Warnings: warnings,
	})
}

// writeMutationError maps roster errors to HTTP responses
func writeMutationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, roster.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Student not found")
	case errors.Is(err, errGradeNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Grade not found")
	case errors.Is(err, roster.ErrDuplicateID):
		middleware.ErrorResponse(w, http.StatusConflict, err.Error())
	case errors.Is(err, roster.ErrInvalidScore), errors.Is(err, roster.ErrInvalidSubject), errors.Is(err, roster.ErrInvalidGrade):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	default:
		slog.Error("roster update failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update roster")
	}
}
