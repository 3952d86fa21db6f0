package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port    string `env:"PORT" envDefault:"3000"`
	LogMode string `env:"LOG_MODE" envDefault:"development"`
	// silent, error, warn, info (gorm levels; zap follows the same names)
	LogLevel string `env:"LOG_LEVEL" envDefault:"warn"`
	// optional rotated log file
	LogFile       string `env:"LOG_FILE"`
	LogMaxSizeMB  int    `env:"LOG_MAX_SIZE_MB" envDefault:"100"`
	LogMaxBackups int    `env:"LOG_MAX_BACKUPS" envDefault:"5"`
	LogMaxAgeDays int    `env:"LOG_MAX_AGE_DAYS" envDefault:"30"`
	LogCompress   bool   `env:"LOG_COMPRESS" envDefault:"true"`

	// Database configuration
	DBType            string `env:"DB_TYPE" envDefault:"mysql"` // mysql, mariadb, postgres, sqlite, sqlite-pure, sqlserver
	DBHost            string `env:"DB_HOST" envDefault:"localhost"`
	DBPort            string `env:"DB_PORT" envDefault:"3306"`
	DBDatabase        string `env:"DB_DATABASE"`
	DBUser            string `env:"DB_USER"`
	DBPassword        string `env:"DB_PASSWORD"`
	DBConnectionLimit int    `env:"DB_CONNECTION_LIMIT" envDefault:"10"`

	// Authorizer configuration, optional
	AuthzURL      string `env:"AUTHZ_URL"`
	AuthzClientID string `env:"AUTHZ_CLIENT_ID"`

	// Google Drive OAuth client
	GoogleClientID     string `env:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `env:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL  string `env:"GOOGLE_REDIRECT_URL"`

	// Facebook Graph API
	FacebookGraphVersion    string `env:"FACEBOOK_GRAPH_VERSION" envDefault:"v21.0"`
	FacebookDatePreset      string `env:"FACEBOOK_DATE_PRESET" envDefault:"maximum"`
	FacebookSyncSchedule    string `env:"FACEBOOK_SYNC_SCHEDULE"`
	FacebookSyncConcurrency int    `env:"FACEBOOK_SYNC_CONCURRENCY" envDefault:"4"`

	// OpenAI
	OpenAIAPIKey          string `env:"OPENAI_API_KEY"`
	OpenAIModel           string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	OpenAITranscribeModel string `env:"OPENAI_TRANSCRIBE_MODEL" envDefault:"whisper-1"`

	// Drive scan jobs
	ScanWorkers int `env:"SCAN_WORKERS" envDefault:"2"`
}

// Load loads configuration from an optional .env file and the environment
func Load() (*Config, error) {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the required and cross-field settings
func (c *Config) Validate() error {
	if c.DBDatabase == "" {
		return fmt.Errorf("DB_DATABASE is required")
	}
	if !c.IsFileDB() && c.DBUser == "" {
		return fmt.Errorf("DB_USER is required for DB_TYPE %s", c.DBType)
	}
	if c.AuthzURL != "" && c.AuthzClientID == "" {
		return fmt.Errorf("AUTHZ_CLIENT_ID is required when AUTHZ_URL is set")
	}
	if c.ScanWorkers < 1 {
		c.ScanWorkers = 1
	}
	if c.FacebookSyncConcurrency < 1 {
		c.FacebookSyncConcurrency = 1
	}
	return nil
}

// IsFileDB reports whether the database is a local SQLite file
func (c *Config) IsFileDB() bool {
	return strings.HasPrefix(c.DBType, "sqlite")
}

// AuthorizationEnabled reports whether admin-gated routes are enforced
func (c *Config) AuthorizationEnabled() bool {
	return c.AuthzURL != ""
}

// GoogleEnabled reports whether a Google OAuth client is configured
func (c *Config) GoogleEnabled() bool {
	return c.GoogleClientID != "" && c.GoogleClientSecret != ""
}
