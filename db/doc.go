// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the optional audit database and creates its schema.

# Drivers

	conn, err := db.Open(db.TypeSQLite, "file:grades.db")
	conn, err := db.Open(db.TypePostgres, "postgres://...")

sqlite uses modernc.org/sqlite (pure Go), postgres uses lib/pq. SQLite
connections are limited to one open connection.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - grade_change: one row per applied score mutation (ADD/UPDATE or REMOVE)

Students themselves are not stored here; the CSV snapshot is the only
persisted copy of the roster.

# Indexes

  - grade_change.student_id
  - grade_change.recorded_at
*/
package db
