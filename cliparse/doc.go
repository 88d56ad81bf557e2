// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8000)
  - CSVPath: CSV snapshot written after every change (default: students.csv)
  - ChangeLogPath: Text change log (default: grades.log)
  - DatabaseURL / DatabaseType: Optional audit database (sqlite or postgres)
  - RedisURL / RedisStream: Optional Redis change stream
  - S3Bucket / S3Key / S3Region / S3Endpoint: Optional snapshot upload
  - StaticDir: Frontend files (default: static)
  - Restore: Load the CSV snapshot at startup
  - Verbose: Debug logging

# CLI Flags

	-p              Server port
	-csv            CSV snapshot path
	-log            Change log path
	-d              Audit database URL
	-t              Database type (sqlite or postgres)
	-redis          Redis URL
	-redis-stream   Redis stream name
	-s3-bucket      S3 bucket
	-s3-key         S3 object key
	-s3-region      S3 region
	-s3-endpoint    S3-compatible endpoint
	-static         Static files directory
	-restore        Restore from the CSV snapshot
	-v              Debug logging
	-env            dotenv file (default: .env)
	-c              YAML config file

# Environment Variables

Flags fall back to environment variables:

	PORT             → -p
	CSV_PATH         → -csv
	CHANGE_LOG_PATH  → -log
	DATABASE_URL     → -d
	DATABASE_TYPE    → -t
	REDIS_URL        → -redis
	REDIS_STREAM     → -redis-stream
	S3_BUCKET        → -s3-bucket
	S3_KEY           → -s3-key
	S3_REGION        → -s3-region
	S3_ENDPOINT      → -s3-endpoint
	STATIC_DIR       → -static
	RESTORE_SNAPSHOT → -restore
	LOG_LEVEL=debug  → -v
	CONFIG_FILE      → -c

S3_ACCESS_KEY and S3_SECRET_KEY are read from the environment only.

The dotenv file is loaded first and never overrides variables that are
already set. Values from the YAML file apply only where neither a flag nor an
environment variable is given:

	port: 8000
	csv_path: students.csv
	database_url: file:grades.db
	redis_stream: grade_changes

# Validation

ParseFlags returns an error for a non-numeric PORT, a port outside
1-65535, or a database type other than sqlite or postgres.
*/
package cliparse
