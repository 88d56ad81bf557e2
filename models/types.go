package models

import "time"

// Request types

type CreateStudentRequest struct {
	Name      string             `json:"name"`
	StudentID string             `json:"student_id"`
	Grades    map[string]float64 `json:"grades"`
}

// Name is a pointer so an omitted name leaves the current one in place.
type UpdateStudentRequest struct {
	Name   *string            `json:"name"`
	Grades map[string]float64 `json:"grades"`
}

type AddGradeRequest struct {
	Subject string   `json:"subject"`
	Score   *float64 `json:"score"`
}

// Response types

type Student struct {
	StudentID     string             `json:"student_id"`
	Name          string             `json:"name"`
	Grades        map[string]float64 `json:"grades"`
	Average       float64            `json:"average"`
	Honors        string             `json:"honors"`
	TotalSubjects int                `json:"total_subjects"`
}

type StudentListResponse struct {
	Students []Student `json:"students"`
}

// StudentResponse is returned by every route that changes a student.
// Warnings lists persistence steps that failed after the change was applied.
type StudentResponse struct {
	Message  string   `json:"message"`
	Student  Student  `json:"student"`
	Warnings []string `json:"warnings,omitempty"`
}

type MessageResponse struct {
	Message  string   `json:"message"`
	Warnings []string `json:"warnings,omitempty"`
}

type StatisticsResponse struct {
	TotalStudents      int            `json:"total_students"`
	AverageGrade       float64        `json:"average_grade"`
	HonorsDistribution map[string]int `json:"honors_distribution"`
	TotalSubjects      int            `json:"total_subjects"`
}

type ExportResponse struct {
	Message  string `json:"message"`
	Path     string `json:"path"`
	Rows     int    `json:"rows"`
	Bytes    int64  `json:"bytes"`
	Size     string `json:"size"`
	Uploaded bool   `json:"uploaded"`
}

type ChangeEntry struct {
	ID          string    `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	Ago         string    `json:"ago"`
	StudentID   string    `json:"student_id"`
	StudentName string    `json:"student_name"`
	Action      string    `json:"action"`
	Subject     string    `json:"subject"`
	Score       float64   `json:"score"`
}

type ChangeListResponse struct {
	Changes []ChangeEntry `json:"changes"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
