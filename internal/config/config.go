// Package config provides configuration management.
// The engine takes explicit inputs only; configuration feeds the
// delivery layer (CLI defaults, server address, output preferences).
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/crazynala/axis-sub002/core/types"
	"github.com/crazynala/axis-sub002/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Display contains listing/display pricing preferences
	Display DisplayConfig `json:"display"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Server contains API server configuration
	Server ServerConfig `json:"server"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// DisplayConfig contains the shared preferences index/table callers
// pass per row
type DisplayConfig struct {
	// DefaultQty is the quantity used when a caller supplies none
	DefaultQty float64 `json:"default_qty"`

	// DefaultMultiplier is the price-list multiplier applied when a
	// caller supplies none
	DefaultMultiplier float64 `json:"default_multiplier"`

	// Currency is the display currency
	Currency types.Currency `json:"currency"`

	// Trace attaches the diagnostic trace to display prices
	Trace bool `json:"trace"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format (cli, json)
	DefaultFormat string `json:"default_format"`

	// ShowBreakdown shows the intermediate breakdown columns
	ShowBreakdown bool `json:"show_breakdown"`
}

// ServerConfig contains API server settings
type ServerConfig struct {
	// Addr is the listen address
	Addr string `json:"addr"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Display: DisplayConfig{
			DefaultQty:        1,
			DefaultMultiplier: 1,
			Currency:          types.CurrencyUSD,
			Trace:             false,
		},
		Output: OutputConfig{
			DefaultFormat: "cli",
			ShowBreakdown: true,
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Logging: logging.DefaultConfig(),
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
