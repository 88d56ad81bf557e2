// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package roster holds the gradebook domain model: students, their per-subject
scores, and the cohort-wide statistics derived from them.

# Students

A Student is created through a Manager and never exists on its own:

	m := roster.NewManager(roster.WithSink(sink))
	alice, err := m.AddStudent("Alice Smith", "S001")
	err = alice.SetScore("Math", 95)

Scores must lie in [0, 100]. Average and LetterGrade are computed on every
read; nothing derived is stored.

# Letter Grades

	average >= 90 → A
	average >= 80 → B
	average >= 70 → C
	average >= 60 → D
	otherwise     → F

# Change Records

Every applied score mutation emits a ChangeRecord to the manager's
ChangeSink, after the mutation. A sink failure is returned wrapped in
ErrChangeLog; the mutation itself is kept.

# CSV

ExportCSV writes the header

	student_id,name,subjects,average,honors

followed by one row per student in insertion order. ReadCSV parses that
format back, and Restore loads parsed rows into an empty manager.

# Concurrency

Manager and Student are not safe for concurrent use. Callers serving
concurrent requests must guard the whole manager with one lock.
*/
package roster
