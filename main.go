package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/mattn/go-isatty"

	"github.com/danielhkuo/gradebook/changelog"
	"github.com/danielhkuo/gradebook/cliparse"
	"github.com/danielhkuo/gradebook/db"
	"github.com/danielhkuo/gradebook/handlers"
	"github.com/danielhkuo/gradebook/middleware"
	"github.com/danielhkuo/gradebook/roster"
	"github.com/danielhkuo/gradebook/router"
	"github.com/danielhkuo/gradebook/snapshot"
)

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	setupLogger(cfg.Verbose)
	ctx := context.Background()

	// Change sinks: the text log always, the rest when configured
	sinks := changelog.Multi{changelog.NewFileSink(cfg.ChangeLogPath)}
	var changes handlers.ChangeLister

	if cfg.DatabaseURL != "" {
		dbConn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
		if err != nil {
			slog.Error("database connection failed", "error", err)
			os.Exit(1)
		}
		defer dbConn.Close()

		if err := db.CreateSchema(dbConn); err != nil {
			slog.Error("schema creation failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Database schema ready", "type", cfg.DatabaseType)

		sqlSink := changelog.NewSQLSink(dbConn)
		sinks = append(sinks, sqlSink)
		changes = sqlSink
	}

	if cfg.RedisURL != "" {
		redisSink, err := changelog.NewRedisSink(cfg.RedisURL, cfg.RedisStream)
		if err != nil {
			slog.Error("redis connection failed", "error", err)
			os.Exit(1)
		}
		defer redisSink.Close()

		sinks = append(sinks, redisSink)
		slog.Info("Publishing changes to redis", "stream", cfg.RedisStream)
	}

	manager := roster.NewManager(roster.WithSink(sinks))

	// Snapshot exporter, optionally mirrored to S3
	var exportOpts []snapshot.Option
	if cfg.S3Bucket != "" {
		uploader, err := snapshot.NewS3Uploader(ctx, snapshot.S3Config{
			Bucket:    cfg.S3Bucket,
			Key:       cfg.S3Key,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
		if err != nil {
			slog.Error("s3 setup failed", "error", err)
			os.Exit(1)
		}
		exportOpts = append(exportOpts, snapshot.WithUploader(uploader))
		slog.Info("Uploading snapshots to s3", "bucket", cfg.S3Bucket, "key", cfg.S3Key)
	}
	exporter := snapshot.NewExporter(cfg.CSVPath, exportOpts...)

	if cfg.Restore {
		rows, err := snapshot.Load(cfg.CSVPath)
		if err != nil {
			slog.Error("snapshot restore failed", "path", cfg.CSVPath, "error", err)
			os.Exit(1)
		}
		if err := manager.Restore(rows); err != nil {
			slog.Error("snapshot restore failed", "path", cfg.CSVPath, "error", err)
			os.Exit(1)
		}
		slog.Info("Restored students from snapshot", "path", cfg.CSVPath, "students", manager.Len())
	}

	// Initial snapshot; the server still starts if it fails
	if res, err := exporter.Export(ctx, manager); err != nil {
		slog.Error("initial export failed", "path", cfg.CSVPath, "error", err)
	} else {
		slog.Info("Snapshot written", "path", res.Path, "rows", res.Rows)
	}

	// Create router
	book := handlers.NewBook(manager, exporter)
	mux := router.NewRouter(book, changes, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

// setupLogger uses text output on a terminal and JSON otherwise
func setupLogger(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		handler = slog.NewTextHandler(os.Stderr, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}
