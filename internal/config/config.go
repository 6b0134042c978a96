package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Storage types for finished match results
const (
	StorageMemory = "memory"
	StorageSQLite = "sqlite"
	StorageFile   = "file"
)

// Config holds all configuration for the application
type Config struct {
	// Environment
	Environment string // "development" or "production"
	LogLevel    string

	// Results storage
	DataDir     string
	StorageType string
	DBPath      string
	ResultsPath string

	// Elasticsearch mirror for finished matches, disabled when URL is empty
	ElasticsearchURL         string
	ElasticsearchUsername    string
	ElasticsearchPassword    string
	ElasticsearchIndexPrefix string

	// Gameplay
	ShuffleSeed int64 // 0 seeds from the clock
	RevealHands bool
	MaxTurns    int // 0 means unlimited
}

// Load reads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// Only return error if file exists but couldn't be loaded
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	dataDir := getEnvWithDefault("DATA_DIR", filepath.Join(wd, "data"))

	cfg := &Config{
		Environment:              getEnvWithDefault("ENVIRONMENT", "development"),
		LogLevel:                 getEnvWithDefault("LOG_LEVEL", "warn"),
		DataDir:                  dataDir,
		StorageType:              strings.ToLower(getEnvWithDefault("STORAGE_TYPE", StorageMemory)),
		DBPath:                   getEnvWithDefault("DB_PATH", filepath.Join(dataDir, "gofish.db")),
		ResultsPath:              getEnvWithDefault("RESULTS_PATH", filepath.Join(dataDir, "results.json")),
		ElasticsearchURL:         os.Getenv("ELASTICSEARCH_URL"),
		ElasticsearchUsername:    os.Getenv("ELASTICSEARCH_USERNAME"),
		ElasticsearchPassword:    os.Getenv("ELASTICSEARCH_PASSWORD"),
		ElasticsearchIndexPrefix: getEnvWithDefault("ELASTICSEARCH_INDEX_PREFIX", "gofish"),
	}

	if cfg.ShuffleSeed, err = getEnvInt64("SHUFFLE_SEED", 0); err != nil {
		return nil, err
	}
	if cfg.RevealHands, err = getEnvBool("REVEAL_HANDS", false); err != nil {
		return nil, err
	}
	maxTurns, err := getEnvInt64("MAX_TURNS", 0)
	if err != nil {
		return nil, err
	}
	cfg.MaxTurns = int(maxTurns)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	// Create data directory if it doesn't exist
	if cfg.StorageType != StorageMemory {
		if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	return cfg, nil
}

// validate checks if the configuration is usable
func (c *Config) validate() error {
	switch c.StorageType {
	case StorageMemory, StorageSQLite, StorageFile:
	default:
		return fmt.Errorf("STORAGE_TYPE must be %q, %q or %q, got %q", StorageMemory, StorageSQLite, StorageFile, c.StorageType)
	}
	if c.MaxTurns < 0 {
		return fmt.Errorf("MAX_TURNS must not be negative")
	}
	if c.UsesSQLite() && c.DBPath == "" {
		return fmt.Errorf("DB_PATH is required when STORAGE_TYPE is sqlite")
	}
	if c.StorageType == StorageFile && c.ResultsPath == "" {
		return fmt.Errorf("RESULTS_PATH is required when STORAGE_TYPE is file")
	}
	return nil
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// UsesSQLite reports whether match results go to SQLite
func (c *Config) UsesSQLite() bool {
	return c.StorageType == StorageSQLite
}

// UsesElasticsearch reports whether finished matches are mirrored to Elasticsearch
func (c *Config) UsesElasticsearch() bool {
	return c.ElasticsearchURL != ""
}

// getEnvWithDefault returns environment variable value or default if not set
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) (int64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: %w", key, err)
	}
	return b, nil
}
