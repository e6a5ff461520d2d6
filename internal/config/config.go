// Package config handles configuration loading for the jcolor server.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nixprime/jhome/pkg/colorspace"
)

// Config represents the server configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Cache  CacheConfig  `yaml:"cache"`
	Render RenderConfig `yaml:"render"`
	Color  ColorConfig  `yaml:"color"`
	Limits LimitsConfig `yaml:"limits"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port        int      `yaml:"port"`
	CORSOrigins []string `yaml:"cors_origins"`
	Title       string   `yaml:"title"`
}

// CacheConfig contains caching settings.
type CacheConfig struct {
	LookupCacheSize  int `yaml:"lookup_cache_size"`
	SwatchSizeMB     int `yaml:"swatch_size_mb"`
	SwatchTTLMinutes int `yaml:"swatch_ttl_minutes"`
}

// RenderConfig contains swatch rendering settings.
type RenderConfig struct {
	SwatchWidth  int `yaml:"swatch_width"`
	SwatchHeight int `yaml:"swatch_height"`
	DefaultCount int `yaml:"default_count"`
}

// ColorConfig selects the white point used when reporting L*a*b* values.
type ColorConfig struct {
	Illuminant string `yaml:"illuminant"`
}

// LimitsConfig bounds request sizes.
type LimitsConfig struct {
	MaxCount int `yaml:"max_count"`
}

// Load reads configuration from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return default config if file doesn't exist
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	// Apply defaults for missing values
	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        8080,
			CORSOrigins: []string{"http://localhost:3000", "http://localhost:5173"},
			Title:       "jcolor",
		},
		Cache: CacheConfig{
			LookupCacheSize:  4096,
			SwatchSizeMB:     64,
			SwatchTTLMinutes: 30,
		},
		Render: RenderConfig{
			SwatchWidth:  64,
			SwatchHeight: 48,
			DefaultCount: 8,
		},
		Color: ColorConfig{
			Illuminant: "d65-10",
		},
		Limits: LimitsConfig{
			MaxCount: 1024,
		},
	}
}

// Validate checks values that have no sensible default.
func (c *Config) Validate() error {
	if _, err := colorspace.IlluminantByName(c.Color.Illuminant); err != nil {
		return fmt.Errorf("color.illuminant: %w", err)
	}
	if c.Limits.MaxCount < 1 {
		return fmt.Errorf("limits.max_count must be positive, got %d", c.Limits.MaxCount)
	}
	if c.Render.DefaultCount < 1 || c.Render.DefaultCount > c.Limits.MaxCount {
		return fmt.Errorf("render.default_count must be in [1, %d], got %d", c.Limits.MaxCount, c.Render.DefaultCount)
	}
	return nil
}

func applyDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.Server.Port == 0 {
		cfg.Server.Port = defaults.Server.Port
	}
	if len(cfg.Server.CORSOrigins) == 0 {
		cfg.Server.CORSOrigins = defaults.Server.CORSOrigins
	}
	if cfg.Server.Title == "" {
		cfg.Server.Title = defaults.Server.Title
	}
	if cfg.Cache.LookupCacheSize <= 0 {
		cfg.Cache.LookupCacheSize = defaults.Cache.LookupCacheSize
	}
	if cfg.Cache.SwatchSizeMB <= 0 {
		cfg.Cache.SwatchSizeMB = defaults.Cache.SwatchSizeMB
	}
	if cfg.Cache.SwatchTTLMinutes <= 0 {
		cfg.Cache.SwatchTTLMinutes = defaults.Cache.SwatchTTLMinutes
	}
	if cfg.Render.SwatchWidth <= 0 {
		cfg.Render.SwatchWidth = defaults.Render.SwatchWidth
	}
	if cfg.Render.SwatchHeight <= 0 {
		cfg.Render.SwatchHeight = defaults.Render.SwatchHeight
	}
	if cfg.Render.DefaultCount == 0 {
		cfg.Render.DefaultCount = defaults.Render.DefaultCount
	}
	if cfg.Color.Illuminant == "" {
		cfg.Color.Illuminant = defaults.Color.Illuminant
	}
	if cfg.Limits.MaxCount == 0 {
		cfg.Limits.MaxCount = defaults.Limits.MaxCount
	}
}
