package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Port          int
	CSVPath       string
	ChangeLogPath string
	DatabaseURL   string
	DatabaseType  string
	RedisURL      string
	RedisStream   string
	S3Bucket      string
	S3Key         string
	S3Region      string
	S3Endpoint    string
	S3AccessKey   string
	S3SecretKey   string
	StaticDir     string
	Restore       bool
	Verbose       bool
}

// fileConfig mirrors Config in the optional YAML file.
type fileConfig struct {
	Port          int    `yaml:"port"`
	CSVPath       string `yaml:"csv_path"`
	ChangeLogPath string `yaml:"change_log_path"`
	DatabaseURL   string `yaml:"database_url"`
	DatabaseType  string `yaml:"database_type"`
	RedisURL      string `yaml:"redis_url"`
	RedisStream   string `yaml:"redis_stream"`
	S3Bucket      string `yaml:"s3_bucket"`
	S3Key         string `yaml:"s3_key"`
	S3Region      string `yaml:"s3_region"`
	S3Endpoint    string `yaml:"s3_endpoint"`
	StaticDir     string `yaml:"static_dir"`
	Restore       bool   `yaml:"restore"`
}

// ParseFlags resolves each setting from CLI flag, then environment, then
// the YAML config file, then the built-in default.
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var envFile, configFile string

	fs := flag.NewFlagSet("gradebook", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.CSVPath, "csv", "", "CSV snapshot path")
	fs.StringVar(&cfg.ChangeLogPath, "log", "", "Change log path")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Audit database URL (optional)")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.RedisURL, "redis", "", "Redis URL for the change stream (optional)")
	fs.StringVar(&cfg.RedisStream, "redis-stream", "", "Redis stream name")
	fs.StringVar(&cfg.S3Bucket, "s3-bucket", "", "S3 bucket for snapshot upload (optional)")
	fs.StringVar(&cfg.S3Key, "s3-key", "", "S3 object key for the snapshot")
	fs.StringVar(&cfg.S3Region, "s3-region", "", "S3 region")
	fs.StringVar(&cfg.S3Endpoint, "s3-endpoint", "", "S3-compatible endpoint URL")
	fs.StringVar(&cfg.StaticDir, "static", "", "Static files directory")
	fs.BoolVar(&cfg.Restore, "restore", false, "Load the CSV snapshot at startup")
	fs.BoolVar(&cfg.Verbose, "v", false, "Debug logging")
	fs.StringVar(&envFile, "env", ".env", "dotenv file loaded before reading the environment")
	fs.StringVar(&configFile, "c", "", "YAML config file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Real environment variables win over the dotenv file
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	if configFile == "" {
		configFile = os.Getenv("CONFIG_FILE")
	}
	var file fileConfig
	if configFile != "" {
		data, err := os.ReadFile(configFile)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &file); err != nil {
			return Config{}, fmt.Errorf("invalid config file %s: %w", configFile, err)
		}
	}

	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else if file.Port != 0 {
			cfg.Port = file.Port
		} else {
			cfg.Port = 8000 // default
		}
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("port %d out of range", cfg.Port)
	}

	cfg.CSVPath = resolve(cfg.CSVPath, "CSV_PATH", file.CSVPath, "students.csv")
	cfg.ChangeLogPath = resolve(cfg.ChangeLogPath, "CHANGE_LOG_PATH", file.ChangeLogPath, "grades.log")
	cfg.DatabaseURL = resolve(cfg.DatabaseURL, "DATABASE_URL", file.DatabaseURL, "")
	cfg.DatabaseType = resolve(cfg.DatabaseType, "DATABASE_TYPE", file.DatabaseType, "sqlite")
	cfg.RedisURL = resolve(cfg.RedisURL, "REDIS_URL", file.RedisURL, "")
	cfg.RedisStream = resolve(cfg.RedisStream, "REDIS_STREAM", file.RedisStream, "grade_changes")
	cfg.S3Bucket = resolve(cfg.S3Bucket, "S3_BUCKET", file.S3Bucket, "")
	cfg.S3Key = resolve(cfg.S3Key, "S3_KEY", file.S3Key, "students.csv")
	cfg.S3Region = resolve(cfg.S3Region, "S3_REGION", file.S3Region, "us-east-1")
	cfg.S3Endpoint = resolve(cfg.S3Endpoint, "S3_ENDPOINT", file.S3Endpoint, "")
	cfg.StaticDir = resolve(cfg.StaticDir, "STATIC_DIR", file.StaticDir, "static")

	// Secrets - environment only
	cfg.S3AccessKey = os.Getenv("S3_ACCESS_KEY")
	cfg.S3SecretKey = os.Getenv("S3_SECRET_KEY")

	if !cfg.Restore {
		if v := os.Getenv("RESTORE_SNAPSHOT"); v != "" {
			restore, err := strconv.ParseBool(v)
			if err != nil {
				return Config{}, errors.New("invalid RESTORE_SNAPSHOT env variable")
			}
			cfg.Restore = restore
		} else {
			cfg.Restore = file.Restore
		}
	}
	if !cfg.Verbose {
		cfg.Verbose = strings.EqualFold(os.Getenv("LOG_LEVEL"), "debug")
	}

	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("database type must be sqlite or postgres, got %q", cfg.DatabaseType)
	}

	return cfg, nil
}

func resolve(flagValue, envKey, fileValue, def string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	if fileValue != "" {
		return fileValue
	}
	return def
}
