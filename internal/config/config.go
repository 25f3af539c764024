package config

import (
	"os"
	"strconv"

	"gokruskal/internal/errors"

	"github.com/joho/godotenv"
)

// Config represents the complete application configuration
type Config struct {
	Data    DataConfig
	Report  ReportConfig
	Batch   BatchConfig
}

// DataConfig holds input data source settings
type DataConfig struct {
	InputPath string // default input file for the CLI (.xlsx or .csv)
	SheetName string // worksheet to read from Excel inputs
}

// ReportConfig holds console report settings
type ReportConfig struct {
	Display bool // emit the formatted report (default true)
}

// BatchConfig holds batch runner settings
type BatchConfig struct {
	Concurrency int // max concurrent test invocations
}

// Load reads configuration from environment variables and validates it.
// A .env file is honored when present.
func Load() (*Config, error) {
	_ = godotenv.Load() // optional; environment wins when absent

	config := &Config{
		Data: DataConfig{
			InputPath: getEnvOrDefault("KW_INPUT_PATH", ""),
			SheetName: getEnvOrDefault("KW_SHEET_NAME", "Sheet1"),
		},
		Report: ReportConfig{
			Display: getEnvBoolOrDefault("KW_DISPLAY", true),
		},
		Batch: BatchConfig{
			Concurrency: getEnvIntOrDefault("KW_BATCH_CONCURRENCY", 4),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Batch.Concurrency < 1 {
		return errors.ConfigInvalid("KW_BATCH_CONCURRENCY must be at least 1")
	}
	if config.Data.SheetName == "" {
		return errors.ConfigInvalid("KW_SHEET_NAME must not be empty")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
