// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package roster

import (
	"fmt"
	"maps"
	"slices"
	"time"
)

// Student holds one learner's scores. Create students with Manager.AddStudent.
type Student struct {
	id       string
	name     string
	scores   map[string]float64
	subjects []string // insertion order of scores
	sink     ChangeSink
	now      func() time.Time
}

// Summary is a point-in-time copy of a student and its derived values.
type Summary struct {
	StudentID     string
	Name          string
	Scores        map[string]float64
	Subjects      []string
	Average       float64
	Grade         Grade
	TotalSubjects int
}

func newStudent(name, id string, sink ChangeSink, now func() time.Time) *Student {
	return &Student{
		id:     id,
		name:   name,
		scores: make(map[string]float64),
		sink:   sink,
		now:    now,
	}
}

func (s *Student) ID() string {
	return s.id
}

func (s *Student) Name() string {
	return s.name
}

func (s *Student) SetName(name string) {
	s.name = name
}

// Score returns the score for subject and whether it exists.
func (s *Student) Score(subject string) (float64, bool) {
	score, ok := s.scores[subject]
	return score, ok
}

// Scores returns a copy of the score map.
func (s *Student) Scores() map[string]float64 {
	return maps.Clone(s.scores)
}

// Subjects returns subject names in the order they were first scored.
func (s *Student) Subjects() []string {
	return slices.Clone(s.subjects)
}

func (s *Student) SubjectCount() int {
	return len(s.scores)
}

// SetScore inserts or overwrites the score for subject.
// An out-of-range score returns ErrInvalidScore and a subject the CSV
// snapshot cannot carry returns ErrInvalidSubject; neither changes anything.
func (s *Student) SetScore(subject string, score float64) error {
	if err := ValidateSubject(subject); err != nil {
		return err
	}
	if err := ValidateScore(score); err != nil {
		return err
	}
	s.put(subject, score)
	return s.emit(ActionAddOrUpdate, subject, score)
}

// RemoveScore deletes the score for subject. Removing an absent subject is a no-op.
func (s *Student) RemoveScore(subject string) error {
	score, ok := s.scores[subject]
	if !ok {
		return nil
	}
	delete(s.scores, subject)
	s.subjects = slices.DeleteFunc(s.subjects, func(name string) bool { return name == subject })
	return s.emit(ActionRemove, subject, score)
}

// Average is the arithmetic mean of all scores, or 0 with no scores.
func (s *Student) Average() float64 {
	if len(s.subjects) == 0 {
		return 0.0
	}

	sum := 0.0
	for _, subject := range s.subjects {
		sum += s.scores[subject]
	}
	return sum / float64(len(s.subjects))
}

func (s *Student) LetterGrade() Grade {
	return GradeFor(s.Average())
}

func (s *Student) Summary() Summary {
	avg := s.Average()
	return Summary{
		StudentID:     s.id,
		Name:          s.name,
		Scores:        s.Scores(),
		Subjects:      s.Subjects(),
		Average:       avg,
		Grade:         GradeFor(avg),
		TotalSubjects: len(s.scores),
	}
}

func (s *Student) put(subject string, score float64) {
	if _, exists := s.scores[subject]; !exists {
		s.subjects = append(s.subjects, subject)
	}
	s.scores[subject] = score
}

// emit runs after the mutation has been applied.
func (s *Student) emit(action Action, subject string, score float64) error {
	rec := ChangeRecord{
		Timestamp:   s.now(),
		StudentName: s.name,
		StudentID:   s.id,
		Action:      action,
		Subject:     subject,
		Score:       score,
	}
	if err := s.sink.Record(rec); err != nil {
		return fmt.Errorf("%w: %s %q for %s: %w", ErrChangeLog, action, subject, s.id, err)
	}
	return nil
}
