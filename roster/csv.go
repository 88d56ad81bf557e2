// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package roster

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"
)

var csvHeader = []string{"student_id", "name", "subjects", "average", "honors"}

const subjectSeparator = ", "

// Row is one parsed line of a CSV snapshot.
type Row struct {
	StudentID string
	Name      string
	Scores    []SubjectScore
	Average   float64
	Honors    Grade
}

type SubjectScore struct {
	Subject string
	Score   float64
}

// ExportCSV writes the header and one row per student in insertion order.
// Lines end in CRLF.
func (m *Manager) ExportCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("%w: header: %w", ErrExport, err)
	}
	for _, s := range m.Students() {
		avg := s.Average()
		record := []string{s.id, s.name, joinSubjects(s), FormatAverage(avg), string(GradeFor(avg))}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("%w: row %s: %w", ErrExport, s.id, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("%w: %w", ErrExport, err)
	}
	return nil
}

func joinSubjects(s *Student) string {
	pairs := make([]string, 0, len(s.subjects))
	for _, subject := range s.subjects {
		pairs = append(pairs, subject+":"+FormatScore(s.scores[subject]))
	}
	return strings.Join(pairs, subjectSeparator)
}

// ReadCSV parses a snapshot written by ExportCSV.
func ReadCSV(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(csvHeader)

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrImport, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: missing header", ErrImport)
	}
	if !slices.Equal(records[0], csvHeader) {
		return nil, fmt.Errorf("%w: unexpected header %v", ErrImport, records[0])
	}

	rows := make([]Row, 0, len(records)-1)
	for i, record := range records[1:] {
		row, err := parseRow(record)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrImport, i+2, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseRow(record []string) (Row, error) {
	scores, err := parseSubjects(record[2])
	if err != nil {
		return Row{}, err
	}
	avg, err := strconv.ParseFloat(record[3], 64)
	if err != nil {
		return Row{}, fmt.Errorf("average %q: %w", record[3], err)
	}
	honors, err := ParseGrade(record[4])
	if err != nil {
		return Row{}, err
	}
	return Row{
		StudentID: record[0],
		Name:      record[1],
		Scores:    scores,
		Average:   avg,
		Honors:    honors,
	}, nil
}

// parseSubjects splits "Math:95, Science:92". The score follows the last colon.
func parseSubjects(field string) ([]SubjectScore, error) {
	if field == "" {
		return nil, nil
	}

	var out []SubjectScore
	for _, pair := range strings.Split(field, subjectSeparator) {
		i := strings.LastIndex(pair, ":")
		if i < 0 {
			return nil, fmt.Errorf("subject pair %q has no score", pair)
		}
		score, err := strconv.ParseFloat(pair[i+1:], 64)
		if err != nil {
			return nil, fmt.Errorf("subject pair %q: %w", pair, err)
		}
		out = append(out, SubjectScore{Subject: pair[:i], Score: score})
	}
	return out, nil
}

// averageTolerance absorbs float text that was not written by ExportCSV.
const averageTolerance = 1e-9

// Restore loads rows into the manager without emitting change records.
// Every row is checked before anything is inserted, including that its
// scores reproduce the stored average.
func (m *Manager) Restore(rows []Row) error {
	seen := make(map[string]bool, len(rows))
	for _, row := range rows {
		if _, exists := m.students[row.StudentID]; exists || seen[row.StudentID] {
			return fmt.Errorf("%w: %s", ErrDuplicateID, row.StudentID)
		}
		seen[row.StudentID] = true
		if err := checkRow(row); err != nil {
			return fmt.Errorf("%w: student %s: %w", ErrImport, row.StudentID, err)
		}
	}

	for _, row := range rows {
		s := newStudent(row.Name, row.StudentID, m.sink, m.now)
		for _, sc := range row.Scores {
			s.put(sc.Subject, sc.Score)
		}
		m.students[row.StudentID] = s
		m.order = append(m.order, row.StudentID)
	}
	return nil
}

func checkRow(row Row) error {
	subjects := make(map[string]bool, len(row.Scores))
	sum := 0.0
	for _, sc := range row.Scores {
		if err := ValidateSubject(sc.Subject); err != nil {
			return err
		}
		if subjects[sc.Subject] {
			return fmt.Errorf("subject %q listed twice", sc.Subject)
		}
		subjects[sc.Subject] = true
		if err := ValidateScore(sc.Score); err != nil {
			return fmt.Errorf("subject %q: %w", sc.Subject, err)
		}
		sum += sc.Score
	}

	avg := 0.0
	if len(row.Scores) > 0 {
		avg = sum / float64(len(row.Scores))
	}
	if math.Abs(avg-row.Average) > averageTolerance {
		return fmt.Errorf("scores average %s, row says %s", FormatAverage(avg), FormatAverage(row.Average))
	}
	return nil
}
