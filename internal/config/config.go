// Package config provides configuration loading for stairtrek.
//
// Configuration comes from an optional YAML file overridden by STAIRTREK_*
// environment variables, with defaults aimed at climbing the height of
// Gunung Kinabalu at roughly eight feet per flight of stairs.
package config

import (
	"errors"
	"fmt"

	"github.com/fyrsmithlabs/stairtrek/internal/logging"
	"github.com/fyrsmithlabs/stairtrek/internal/stats"
)

// Config holds the complete stairtrek configuration. It is constructed once
// at startup and passed explicitly; nothing reads it as ambient state.
type Config struct {
	Mountain MountainConfig `koanf:"mountain"`
	Storage  StorageConfig  `koanf:"storage"`
	Stats    StatsConfig    `koanf:"stats"`
	Logging  logging.Config `koanf:"logging"`
}

// MountainConfig fixes the climb target.
type MountainConfig struct {
	Name          string  `koanf:"name"`
	HeightFeet    float64 `koanf:"height_feet"`
	FeetPerFlight float64 `koanf:"feet_per_flight"`
}

// TargetFlights is the flight count equivalent to the mountain's height.
func (m MountainConfig) TargetFlights() float64 {
	return m.HeightFeet / m.FeetPerFlight
}

// StorageConfig holds data file configuration.
type StorageConfig struct {
	DataFile string `koanf:"data_file"`
}

// StatsConfig holds aggregation configuration.
//
// LegacyYearMerge restores the old grouping that keyed weeks and months by
// their in-year number alone, merging the same week or month across years.
// Off by default; year-qualified grouping is the correct behavior.
type StatsConfig struct {
	LegacyYearMerge bool `koanf:"legacy_year_merge"`
}

// Grouping translates the setting for the stats package.
func (s StatsConfig) Grouping() stats.Grouping {
	return stats.Grouping{QualifyByYear: !s.LegacyYearMerge}
}

// Built-in defaults.
const (
	DefaultMountainName  = "Gunung Kinabalu"
	DefaultHeightFeet    = 13435
	DefaultFeetPerFlight = 8
	DefaultDataFile      = "stairs_data.csv"
)

// NewDefaultConfig returns the built-in configuration.
func NewDefaultConfig() *Config {
	return &Config{
		Mountain: MountainConfig{
			Name:          DefaultMountainName,
			HeightFeet:    DefaultHeightFeet,
			FeetPerFlight: DefaultFeetPerFlight,
		},
		Storage: StorageConfig{
			DataFile: DefaultDataFile,
		},
		Logging: logging.NewDefaultConfig(),
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Mountain.Name == "" {
		return errors.New("mountain name must not be empty")
	}
	if c.Mountain.HeightFeet <= 0 {
		return fmt.Errorf("mountain height must be positive, got %v", c.Mountain.HeightFeet)
	}
	if c.Mountain.FeetPerFlight <= 0 {
		return fmt.Errorf("feet per flight must be positive, got %v", c.Mountain.FeetPerFlight)
	}
	if c.Storage.DataFile == "" {
		return errors.New("data file path must not be empty")
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	return nil
}
