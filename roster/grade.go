// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package roster

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Grade is a letter grade derived from an average.
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeF Grade = "F"
)

// Grades lists every letter from best to worst.
var Grades = []Grade{GradeA, GradeB, GradeC, GradeD, GradeF}

// GradeFor buckets an average. Each band includes its lower bound.
func GradeFor(average float64) Grade {
	switch {
	case average >= 90:
		return GradeA
	case average >= 80:
		return GradeB
	case average >= 70:
		return GradeC
	case average >= 60:
		return GradeD
	default:
		return GradeF
	}
}

// ParseGrade accepts exactly one of A, B, C, D or F.
func ParseGrade(s string) (Grade, error) {
	for _, g := range Grades {
		if string(g) == s {
			return g, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidGrade, s)
}

// ValidateScore reports ErrInvalidScore unless 0 <= score <= 100.
func ValidateScore(score float64) error {
	if math.IsNaN(score) || score < 0 || score > 100 {
		return fmt.Errorf("%w: got %s", ErrInvalidScore, FormatScore(score))
	}
	return nil
}

// ValidateSubject rejects names the CSV subjects field cannot carry: empty
// names and names containing the ", " pair separator.
func ValidateSubject(subject string) error {
	if subject == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidSubject)
	}
	if strings.Contains(subject, subjectSeparator) {
		return fmt.Errorf("%w: %q contains %q", ErrInvalidSubject, subject, subjectSeparator)
	}
	return nil
}

// FormatScore renders a score in its shortest form (95, 92.5).
func FormatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64)
}

// FormatAverage renders an average the way the CSV snapshot stores it:
// shortest form, always with a fractional part (93.5, 90.0).
func FormatAverage(average float64) string {
	s := FormatScore(average)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}

// round2 rounds half away from zero to two decimals.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
