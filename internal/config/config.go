// Package config provides configuration management for the translation core.
// It defines the YAML configuration structure and loading helpers shared by the
// replay CLI and any host embedding the translator.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the translator settings loaded from the YAML configuration file.
type Config struct {
	// Project is the Google Cloud project identifier stamped on every envelope.
	Project string `yaml:"project"`

	// RequestType overrides the request type reported to the backend.
	// Empty means the resolver default ("agent").
	RequestType string `yaml:"request-type"`

	// LoggingLevel sets the log level (debug, info, warn, error).
	LoggingLevel string `yaml:"logging-level"`

	// LogFile, when set, routes logs to a rotated file instead of stderr.
	LogFile string `yaml:"log-file"`

	// ImageModels lists backend models that are image-generation variants,
	// in addition to the built-in name heuristics.
	ImageModels []string `yaml:"image-models"`

	// SearchModels lists model aliases that require Google Search grounding.
	SearchModels []string `yaml:"search-models"`
}

// LoadConfig reads and parses the configuration file from the given path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	if cfg.LoggingLevel == "" {
		cfg.LoggingLevel = "info"
	}
	return &cfg, nil
}
