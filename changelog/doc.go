// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package changelog provides destinations for roster change records.

Every type here implements roster.ChangeSink:

  - FileSink: appends one text line per record to a log file
  - SQLSink: inserts into the grade_change table (sqlite or postgres)
  - RedisSink: appends to a Redis stream with XADD
  - Multi: fans a record out to several sinks

# Log Line Format

	2025-03-14 09:26:53 - Student: Alice Smith (S001), Action: ADD/UPDATE, Subject: Math, Score: 95

The file is opened for each record and closed before Record returns.

# Wiring

	sinks := changelog.Multi{changelog.NewFileSink("grades.log")}
	if conn != nil {
		sinks = append(sinks, changelog.NewSQLSink(conn))
	}
	manager := roster.NewManager(roster.WithSink(sinks))
*/
package changelog
