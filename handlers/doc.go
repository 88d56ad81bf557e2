// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the gradebook API.

# Handler Types

Each handler is a struct sharing one *Book:

  - StudentHandler: create, read, update and delete students
  - GradeHandler: record and remove single scores
  - ReportHandler: rankings, honors lists, statistics and CSV export
  - ChangeHandler: change history from the SQL audit table

Handlers are created via constructor functions:

	book := handlers.NewBook(manager, exporter)
	studentHandler := handlers.NewStudentHandler(book)

# Book

The roster is not safe for concurrent use, so every handler goes through
Book.Read or Book.Mutate, which hold a single mutex. Mutate rewrites the CSV
snapshot after each successful change.

Change log and snapshot failures do not fail a request: the roster has
already changed, so they are returned in the response "warnings" field and
logged.

# Grade Maps

JSON objects are unordered. Create and update apply grades in subject-name
order so change records and CSV subject order are deterministic. Every score
is validated before any change is made.

# Error Mapping

	roster.ErrNotFound       → 404
	roster.ErrDuplicateID    → 409
	roster.ErrInvalidScore   → 400
	roster.ErrInvalidSubject → 400
	roster.ErrInvalidGrade   → 400
*/
package handlers
