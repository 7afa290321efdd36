// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/gordonmurray/cloud-rosetta/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Store contains mapping store configuration
	Store StoreConfig `json:"store"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`

	// AWS contains AWS-specific defaults
	AWS AWSConfig `json:"aws,omitempty"`

	// GCP contains GCP-specific defaults
	GCP GCPConfig `json:"gcp,omitempty"`
}

// StoreConfig contains mapping store settings
type StoreConfig struct {
	// Backend selects the store implementation (sqlite, memory)
	Backend string `json:"backend"`

	// Path is the SQLite database file
	Path string `json:"path"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// Indent is the JSON indentation for translated plans
	Indent string `json:"indent"`

	// Format is the default stats output (table, markdown)
	Format string `json:"format"`
}

// AWSConfig contains defaults written into generated AWS provider blocks
type AWSConfig struct {
	// DefaultRegion is the region expression for the provider config
	DefaultRegion string `json:"default_region"`
}

// GCPConfig contains defaults written into generated GCP provider blocks
type GCPConfig struct {
	// Project is the project expression for the provider config
	Project string `json:"project"`

	// DefaultRegion is the region expression for the provider config
	DefaultRegion string `json:"default_region"`
}

// Default returns a default configuration
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	dbPath := filepath.Join(homeDir, ".cloud-rosetta", "cloud_rosetta.db")

	return &Config{
		Version: "1.0",
		Store: StoreConfig{
			Backend: "sqlite",
			Path:    dbPath,
		},
		Output: OutputConfig{
			Indent: "  ",
			Format: "table",
		},
		Logging: logging.DefaultConfig(),
		AWS: AWSConfig{
			DefaultRegion: "us-east-1",
		},
		GCP: GCPConfig{
			Project:       "my-project",
			DefaultRegion: "us-central1",
		},
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
