// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package snapshot persists the roster as a CSV file.

	exp := snapshot.NewExporter("students.csv")
	res, err := exp.Export(ctx, manager)

The file is rewritten in full on every export and closed before Export
returns, also on failure. With an uploader configured the same bytes are
then put to S3:

	up, err := snapshot.NewS3Uploader(ctx, snapshot.S3Config{Bucket: "grades", Key: "students.csv", Region: "us-east-1"})
	exp := snapshot.NewExporter("students.csv", snapshot.WithUploader(up))

Load reads a snapshot back for restoring at startup.
*/
package snapshot
