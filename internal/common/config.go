package common

import (
	"context"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Storage  StorageConfig
	ML       MLConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// StorageConfig holds document byte storage configuration
type StorageConfig struct {
	RootDir string
}

// MLConfig holds scorer-related configuration
type MLConfig struct {
	ScorerURL string
	// ModelName is recorded on proposed mappings.
	ModelName string
	// ConfidenceThreshold filters scorer proposals before they are stored.
	ConfidenceThreshold float64
	Timeout             time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		Storage: StorageConfig{
			RootDir: getEnv("DOC_STORAGE_DIR", "./data/documents"),
		},
		ML: MLConfig{
			ScorerURL:           getEnv("ML_SCORER_URL", ""),
			ModelName:           getEnv("ML_MODEL_NAME", "keyword"),
			ConfidenceThreshold: getEnvAsFloat64("ML_CONFIDENCE_THRESHOLD", 10.0),
			Timeout:             getEnvAsDuration("ML_SCORER_TIMEOUT", 30*time.Second),
		},
	}
}

// ThresholdSource supplies the live acceptance threshold. Implementations
// must read at call time so behavior tracks config changes, and must fail
// with ErrConfigUnavailable instead of defaulting when the value cannot
// be read.
type ThresholdSource interface {
	AcceptThreshold(ctx context.Context) (int, error)
}

// EnvThresholdSource reads ML_ACCEPT_THRESHOLD from the environment on
// every call.
type EnvThresholdSource struct{}

func (EnvThresholdSource) AcceptThreshold(ctx context.Context) (int, error) {
	raw := os.Getenv("ML_ACCEPT_THRESHOLD")
	if raw == "" {
		return 0, NewAppError("CONFIG_ERROR", "ML_ACCEPT_THRESHOLD is not set", ErrConfigUnavailable)
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, NewAppError("CONFIG_ERROR", "ML_ACCEPT_THRESHOLD is not an integer", ErrConfigUnavailable)
	}
	if n < 0 {
		return 0, NewAppError("CONFIG_ERROR", "ML_ACCEPT_THRESHOLD must be non-negative", ErrInvalidInput)
	}
	return n, nil
}

// StaticThresholdSource returns a fixed threshold. Used by tests and by
// the CLI when a threshold flag is given.
type StaticThresholdSource int

func (s StaticThresholdSource) AcceptThreshold(ctx context.Context) (int, error) {
	if s < 0 {
		return 0, NewAppError("CONFIG_ERROR", "threshold must be non-negative", ErrInvalidInput)
	}
	return int(s), nil
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.Storage.RootDir == "" {
		return NewAppError("CONFIG_ERROR", "DOC_STORAGE_DIR is required", ErrInvalidInput)
	}
	return nil
}
