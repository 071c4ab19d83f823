package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

const (
	// envPrefix namespaces stairtrek environment variables.
	envPrefix = "STAIRTREK_"

	maxConfigFileSize = 1024 * 1024 // 1MB
)

// DefaultConfigPath returns ~/.config/stairtrek/config.yaml.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "stairtrek", "config.yaml"), nil
}

// LoadWithFile loads configuration from a YAML file, then overrides with
// environment variables.
//
// Configuration precedence (highest to lowest):
//  1. Environment variables (STAIRTREK_MOUNTAIN_HEIGHT_FEET, ...)
//  2. YAML config file (~/.config/stairtrek/config.yaml by default)
//  3. Built-in defaults
//
// The configPath parameter specifies the YAML file to load. If empty, the
// default path is used. A missing file is not an error; the file is simply
// skipped.
//
// Environment variables map onto YAML fields by lowercasing, stripping the
// prefix, and splitting on the first underscore into section.field:
//
//	STAIRTREK_MOUNTAIN_HEIGHT_FEET -> mountain.height_feet
//	STAIRTREK_STORAGE_DATA_FILE    -> storage.data_file
//	STAIRTREK_LOGGING_LEVEL        -> logging.level
func LoadWithFile(configPath string) (*Config, error) {
	k := koanf.New(".")

	if configPath == "" {
		var err error
		configPath, err = DefaultConfigPath()
		if err != nil {
			return nil, err
		}
	}

	if info, err := os.Stat(configPath); err == nil {
		if info.Size() > maxConfigFileSize {
			return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxConfigFileSize)
		}

		f, err := os.Open(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open config file: %w", err)
		}
		defer f.Close()

		content, err := io.ReadAll(f)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Override with environment variables.
	// Strategy: strip prefix, lowercase, split on first underscore only
	// (section.field_name pattern), keeping underscores in the field name.
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		lower := strings.ToLower(strings.TrimPrefix(s, envPrefix))
		parts := strings.SplitN(lower, "_", 2)
		if len(parts) == 1 {
			return lower
		}
		return parts[0] + "." + parts[1]
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for missing configuration fields.
func applyDefaults(cfg *Config) {
	if cfg.Mountain.Name == "" {
		cfg.Mountain.Name = DefaultMountainName
	}
	if cfg.Mountain.HeightFeet == 0 {
		cfg.Mountain.HeightFeet = DefaultHeightFeet
	}
	if cfg.Mountain.FeetPerFlight == 0 {
		cfg.Mountain.FeetPerFlight = DefaultFeetPerFlight
	}
	if cfg.Storage.DataFile == "" {
		cfg.Storage.DataFile = DefaultDataFile
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
}
