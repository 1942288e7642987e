// Package config loads CLI settings from defaults, an optional YAML file
// and ALGOVIBE_* environment variables.
package config

import (
	"errors"
	"time"
)

// Defaults.
const (
	DefaultStrengths       = "10, 20, 5, 30, 40, 50, 15, 60, 70, 80, 5, 90, 100, 95"
	DefaultThreshold       = 25
	DefaultDelay           = 200 * time.Millisecond
	DefaultInPlace         = true
	DefaultGenerateCount   = 16
	DefaultGenerateSeed    = 1
	DefaultMetricsInstance = ""
)

// Config is the top-level configuration struct.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	Wall     WallConfig     `mapstructure:"wall"`
	Scan     ScanConfig     `mapstructure:"scan"`
	Output   OutputConfig   `mapstructure:"output"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
	Generate GenerateConfig `mapstructure:"generate"`
}

// WallConfig holds the scanned wall.
type WallConfig struct {
	Strengths string `mapstructure:"strengths"`
	Threshold int    `mapstructure:"threshold"`
}

// ScanConfig holds animation settings.
type ScanConfig struct {
	Delay   time.Duration `mapstructure:"delay"`
	Mute    bool          `mapstructure:"mute"`
	NoColor bool          `mapstructure:"no_color"`
	InPlace bool          `mapstructure:"in_place"`
}

// OutputConfig holds optional export paths.
type OutputConfig struct {
	Chart string `mapstructure:"chart"`
	Trace string `mapstructure:"trace"`
}

// MetricsConfig holds the Prometheus endpoint settings. An empty Addr
// disables the endpoint.
type MetricsConfig struct {
	Addr     string `mapstructure:"addr"`
	Instance string `mapstructure:"instance"`
}

// GenerateConfig selects a generated wall instead of Wall.Strengths.
// An empty Shape means no generation.
type GenerateConfig struct {
	Shape string `mapstructure:"shape"`
	Count int    `mapstructure:"count"`
	Seed  int64  `mapstructure:"seed"`
}

// Sentinel errors for configuration validation.
var (
	// ErrInvalidThreshold indicates a negative wall.threshold.
	ErrInvalidThreshold = errors.New("wall.threshold must be non-negative")
	// ErrInvalidDelay indicates a negative scan.delay.
	ErrInvalidDelay = errors.New("scan.delay must be non-negative")
	// ErrInvalidCount indicates a generator length below one.
	ErrInvalidCount = errors.New("generate.count must be positive")
)

// Validate checks Config invariants and returns the first error found.
func (c *Config) Validate() error {
	if c.Wall.Threshold < 0 {
		return ErrInvalidThreshold
	}

	if c.Scan.Delay < 0 {
		return ErrInvalidDelay
	}

	if c.Generate.Shape != "" && c.Generate.Count < 1 {
		return ErrInvalidCount
	}

	return nil
}
