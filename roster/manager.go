// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package roster

import (
	"fmt"
	"slices"
	"sort"
	"time"
)

// Manager owns the student collection, keyed by student ID.
type Manager struct {
	students map[string]*Student
	order    []string // insertion order of IDs
	sink     ChangeSink
	now      func() time.Time
}

type Option func(*Manager)

// WithSink sets where change records go. The default is Discard.
func WithSink(sink ChangeSink) Option {
	return func(m *Manager) {
		if sink != nil {
			m.sink = sink
		}
	}
}

// WithClock overrides the timestamp source for change records.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

func NewManager(opts ...Option) *Manager {
	m := &Manager{
		students: make(map[string]*Student),
		sink:     Discard,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// AddStudent creates a student with no scores.
// A taken ID returns ErrDuplicateID and leaves the collection unchanged.
func (m *Manager) AddStudent(name, id string) (*Student, error) {
	if _, exists := m.students[id]; exists {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateID, id)
	}
	s := newStudent(name, id, m.sink, m.now)
	m.students[id] = s
	m.order = append(m.order, id)
	return s, nil
}

// Student looks up a student by ID.
func (m *Manager) Student(id string) (*Student, bool) {
	s, ok := m.students[id]
	return s, ok
}

// RemoveStudent deletes a student and reports whether it existed.
func (m *Manager) RemoveStudent(id string) bool {
	if _, ok := m.students[id]; !ok {
		return false
	}
	delete(m.students, id)
	m.order = slices.DeleteFunc(m.order, func(other string) bool { return other == id })
	return true
}

func (m *Manager) Len() int {
	return len(m.students)
}

// Students returns every student in insertion order.
func (m *Manager) Students() []*Student {
	out := make([]*Student, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.students[id])
	}
	return out
}

// StudentsByGrade returns students holding grade, in insertion order.
func (m *Manager) StudentsByGrade(grade Grade) []*Student {
	out := []*Student{}
	for _, s := range m.Students() {
		if s.LetterGrade() == grade {
			out = append(out, s)
		}
	}
	return out
}

// TopPerformers returns at most limit students by average, best first.
// Equal averages are ordered by ID ascending. A limit <= 0 returns none.
func (m *Manager) TopPerformers(limit int) []*Student {
	return truncate(m.ranked(), limit)
}

// TopPerformersAbove is TopPerformers over the students whose average is
// at least minAverage.
func (m *Manager) TopPerformersAbove(minAverage float64, limit int) []*Student {
	return truncate(m.StudentsAbove(minAverage), limit)
}

// StudentsAbove returns students whose average is at least minAverage,
// ordered like TopPerformers.
func (m *Manager) StudentsAbove(minAverage float64) []*Student {
	out := []*Student{}
	for _, s := range m.ranked() {
		if s.Average() >= minAverage {
			out = append(out, s)
		}
	}
	return out
}

func truncate(ranked []*Student, limit int) []*Student {
	if limit <= 0 {
		return []*Student{}
	}
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func (m *Manager) ranked() []*Student {
	students := m.Students()
	averages := make(map[string]float64, len(students))
	for _, s := range students {
		averages[s.id] = s.Average()
	}

	sort.Slice(students, func(i, j int) bool {
		a, b := students[i], students[j]
		if averages[a.id] != averages[b.id] {
			return averages[a.id] > averages[b.id]
		}
		return a.id < b.id
	})
	return students
}
