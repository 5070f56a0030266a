package config

import (
	"os"
	"strconv"

	"sheetprep/internal/errors"

	"github.com/joho/godotenv"
)

// Config represents the complete application configuration
type Config struct {
	Clean   CleanConfig
	Reshape ReshapeConfig
	Merge   MergeConfig
	Batch   BatchConfig
}

// CleanConfig holds settings for the csv cleaning pre-pass
type CleanConfig struct {
	DropPrefix string // rows whose first populated cell starts with this are dropped
	BackupDir  string
	Backup     bool
}

// ReshapeConfig holds settings for the segmented-table reshaper
type ReshapeConfig struct {
	GroupColumn string // synthetic group-label column name
	Encoding    string // "auto" or a fixed encoding name
}

// MergeConfig holds settings for the workbook merger
type MergeConfig struct {
	OutputName string
}

// BatchConfig holds settings shared by all folder-level runs
type BatchConfig struct {
	Workers int // concurrent files per batch; 1 = sequential reference behavior
}

// Load reads configuration from the environment (plus an optional .env file)
// and validates it.
func Load() (*Config, error) {
	// A missing .env file is fine; the environment still applies.
	_ = godotenv.Load()

	config := &Config{
		Clean: CleanConfig{
			DropPrefix: getEnvOrDefault("SHEETPREP_DROP_PREFIX", "主要人员"),
			BackupDir:  getEnvOrDefault("SHEETPREP_BACKUP_DIR", "backup"),
			Backup:     getEnvBoolOrDefault("SHEETPREP_BACKUP", true),
		},
		Reshape: ReshapeConfig{
			GroupColumn: getEnvOrDefault("SHEETPREP_GROUP_COLUMN", "公司名称"),
			Encoding:    getEnvOrDefault("SHEETPREP_ENCODING", "auto"),
		},
		Merge: MergeConfig{
			OutputName: getEnvOrDefault("SHEETPREP_MERGE_OUTPUT", "merged_output.xlsx"),
		},
		Batch: BatchConfig{
			Workers: getEnvIntOrDefault("SHEETPREP_WORKERS", 1),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config.Clean.DropPrefix == "" {
		return errors.ConfigInvalid("drop prefix must not be empty")
	}
	if config.Reshape.GroupColumn == "" {
		return errors.ConfigInvalid("group column name must not be empty")
	}
	if config.Batch.Workers < 1 {
		return errors.ConfigInvalid("worker count must be at least 1")
	}
	if config.Merge.OutputName == "" {
		return errors.ConfigInvalid("merge output name must not be empty")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
