// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the gradebook API server.

Gradebook keeps student records with per-subject scores in memory, derives
averages and letter grades, and persists every change: a CSV snapshot of the
whole roster plus an append-only change log.

# Starting the Server

With no configuration the server listens on 8000 and writes students.csv and
grades.log in the working directory:

	go run .

Or with flags:

	go run . -p 3318 -csv data/students.csv -restore

# Configuration

Each setting is read from its flag, then the environment (a .env file is
loaded first), then the YAML file given by -c or CONFIG_FILE:

  - PORT (-p): Server port (default: 8000)
  - CSV_PATH (-csv): Snapshot path (default: students.csv)
  - CHANGE_LOG_PATH (-log): Text change log (default: grades.log)
  - RESTORE_SNAPSHOT (-restore): Load the snapshot at startup
  - STATIC_DIR (-static): Frontend files (default: static)

Optional persistence targets:

  - DATABASE_URL (-d), DATABASE_TYPE (-t): SQL change history, sqlite or postgres
  - REDIS_URL (--redis), REDIS_STREAM: Publish changes to a Redis stream
  - S3_BUCKET, S3_KEY, S3_REGION, S3_ENDPOINT: Upload every snapshot
  - S3_ACCESS_KEY, S3_SECRET_KEY: Static S3 credentials (environment only)

# Architecture

  - roster: Students, scores, grades, statistics and CSV encoding
  - changelog: Change sinks (text file, SQL, Redis)
  - snapshot: CSV snapshot file and S3 upload
  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - db: Connection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
