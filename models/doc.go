// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request and response types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateStudentRequest: name, student_id, grades (map[string]float64)
  - UpdateStudentRequest: name (optional), grades
  - AddGradeRequest: subject, score

# Response Types

Types for JSON responses:

  - Student: student_id, name, grades, average, honors, total_subjects
  - StudentListResponse: students
  - StudentResponse: message, student, warnings
  - MessageResponse: message, warnings
  - StatisticsResponse: total_students, average_grade, honors_distribution, total_subjects
  - ExportResponse: message, path, rows, bytes, size, uploaded
  - ChangeListResponse: changes
  - ErrorResponse: error, message

Domain types live in package roster; handlers convert between the two.
*/
package models
