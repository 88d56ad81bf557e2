// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"maps"
	"slices"

	"github.com/danielhkuo/gradebook/models"
	"github.com/danielhkuo/gradebook/roster"
)

func toStudent(s *roster.Student) models.Student {
	sum := s.Summary()
	return models.Student{
		StudentID:     sum.StudentID,
		Name:          sum.Name,
		Grades:        sum.Scores,
		Average:       sum.Average,
		Honors:        string(sum.Grade),
		TotalSubjects: sum.TotalSubjects,
	}
}

func toStudents(students []*roster.Student) []models.Student {
	out := make([]models.Student, 0, len(students))
	for _, s := range students {
		out = append(out, toStudent(s))
	}
	return out
}

// validateGrades checks every score before anything is changed.
func validateGrades(grades map[string]float64) error {
	for _, subject := range slices.Sorted(maps.Keys(grades)) {
		if err := roster.ValidateSubject(subject); err != nil {
			return err
		}
		if err := roster.ValidateScore(grades[subject]); err != nil {
			return err
		}
	}
	return nil
}

// applyGrades sets scores in subject-name order, since JSON objects carry
// no order. Scores must already be validated; the only errors left are
// change log failures, which are joined.
func applyGrades(s *roster.Student, grades map[string]float64) error {
	var errs []error
	for _, subject := range slices.Sorted(maps.Keys(grades)) {
		if err := s.SetScore(subject, grades[subject]); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
