package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Dataset source kinds accepted in DATASET_SOURCE.
const (
	SourceCSV      = "csv"
	SourcePostgres = "postgres"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// It is composed of smaller structs that represent different concerns of the system,
// such as server settings, the trade dataset and the optional Postgres source.
//
// Example ENV equivalent:
//
//	SERVER_PORT=8080
//	DATASET_SOURCE=csv
//	DATASET_PATHS=order_books.csv
//	DATASET_TIMEZONE=JST
//	DATASET_SKIP_MALFORMED=false
//	LOG_LEVEL=info
type Config struct {
	Server    ServerConfig    // HTTP server configuration
	RateLimit RateLimitConfig // Per-client request limiting
	Log       LogConfig       // Logger settings
	Dataset   DatasetConfig   // Where trades come from and how they are read
	Postgres  PostgresConfig  // PostgreSQL connection settings (postgres source only)
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port           string        // The TCP port the HTTP server will listen on (e.g., "8080")
	RequestTimeout time.Duration // Deadline attached to every request context
}

// RateLimitConfig bounds requests per client IP in a sliding window.
type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

// LogConfig controls the global zerolog logger.
type LogConfig struct {
	Level  string // debug|info|warn|error
	Pretty bool   // human readable console output instead of JSON
}

// DatasetConfig describes the trade dataset loaded once at startup.
//
// Fields:
//   - Source: "csv" or "postgres".
//   - Paths: CSV files, concatenated in the listed order.
//   - Table: order-book table read by the postgres source.
//   - Timezone: zone hour windows are interpreted in: "JST" (fixed +0900), a fixed offset like "+0900", or an IANA name.
//   - SkipMalformed: skip and log malformed rows instead of failing the load.
type DatasetConfig struct {
	Source        string
	Paths         []string
	Table         string
	Timezone      string
	SkipMalformed bool
}

// PostgresConfig defines connection details for PostgreSQL.
//
// Fields:
//   - Host: hostname of the database server.
//   - Port: port number of the database server (default 5432).
//   - User: username for authentication.
//   - Password: password for authentication.
//   - DBName: target database name.
//   - SSLMode: SSL mode (e.g., "disable", "require").
//   - URL: computed DSN used by database/sql to connect.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	URL      string
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables are missing, validateConfig() will terminate the app
//     with a descriptive log message.
func LoadConfig() {
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_REQUEST_TIMEOUT", "10s")

	viper.SetDefault("RATE_LIMIT_REQUESTS", 60)
	viper.SetDefault("RATE_LIMIT_WINDOW", "1m")

	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_PRETTY", false)

	viper.SetDefault("DATASET_SOURCE", SourceCSV)
	viper.SetDefault("DATASET_PATHS", "order_books.csv")
	viper.SetDefault("DATASET_TABLE", "order_books")
	viper.SetDefault("DATASET_TIMEZONE", "JST")
	viper.SetDefault("DATASET_SKIP_MALFORMED", false)

	viper.SetDefault("POSTGRES_HOST", "localhost")
	viper.SetDefault("POSTGRES_PORT", 5432)
	viper.SetDefault("POSTGRES_USER", "postgres")
	viper.SetDefault("POSTGRES_PASSWORD", "postgres")
	viper.SetDefault("POSTGRES_DB", "orderbooks")
	viper.SetDefault("POSTGRES_SSLMODE", "disable")

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port:           viper.GetString("SERVER_PORT"),
			RequestTimeout: viper.GetDuration("SERVER_REQUEST_TIMEOUT"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Window:   viper.GetDuration("RATE_LIMIT_WINDOW"),
		},
		Log: LogConfig{
			Level:  viper.GetString("LOG_LEVEL"),
			Pretty: viper.GetBool("LOG_PRETTY"),
		},
		Dataset: DatasetConfig{
			Source:        strings.ToLower(strings.TrimSpace(viper.GetString("DATASET_SOURCE"))),
			Paths:         SplitPaths(viper.GetString("DATASET_PATHS")),
			Table:         viper.GetString("DATASET_TABLE"),
			Timezone:      viper.GetString("DATASET_TIMEZONE"),
			SkipMalformed: viper.GetBool("DATASET_SKIP_MALFORMED"),
		},
		Postgres: PostgresConfig{
			Host:     viper.GetString("POSTGRES_HOST"),
			Port:     viper.GetInt("POSTGRES_PORT"),
			User:     viper.GetString("POSTGRES_USER"),
			Password: viper.GetString("POSTGRES_PASSWORD"),
			DBName:   viper.GetString("POSTGRES_DB"),
			SSLMode:  viper.GetString("POSTGRES_SSLMODE"),
		},
	}

	AppConfig.Postgres.URL = AppConfig.Postgres.DSN()

	validateConfig()
}

// DSN builds the database/sql connection string for lib/pq.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		p.User,
		p.Password,
		p.Host,
		p.Port,
		p.DBName,
		p.SSLMode,
	)
}

// SplitPaths turns a comma-separated list into trimmed, non-empty entries.
func SplitPaths(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing.
func validateConfig() {
	if missing := missingKeys(AppConfig); len(missing) > 0 {
		log.Fatalf("missing or invalid configuration: %v\n", missing)
	}
}

// missingKeys lists the configuration keys that are absent or invalid.
// Postgres settings are only required when the postgres source is selected.
func missingKeys(cfg Config) []string {
	var missing []string

	if cfg.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if cfg.Dataset.Timezone == "" {
		missing = append(missing, "DATASET_TIMEZONE")
	}

	switch cfg.Dataset.Source {
	case SourceCSV:
		if len(cfg.Dataset.Paths) == 0 {
			missing = append(missing, "DATASET_PATHS")
		}
	case SourcePostgres:
		if cfg.Dataset.Table == "" {
			missing = append(missing, "DATASET_TABLE")
		}
		if cfg.Postgres.Host == "" {
			missing = append(missing, "POSTGRES_HOST")
		}
		if cfg.Postgres.Port == 0 {
			missing = append(missing, "POSTGRES_PORT")
		}
		if cfg.Postgres.User == "" {
			missing = append(missing, "POSTGRES_USER")
		}
		if cfg.Postgres.DBName == "" {
			missing = append(missing, "POSTGRES_DB")
		}
	default:
		missing = append(missing, "DATASET_SOURCE")
	}

	return missing
}
