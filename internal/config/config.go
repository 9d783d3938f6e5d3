// Package config loads and validates CLI configuration for mdmath.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/alnah/go-mdmath/internal/assets"
	"github.com/alnah/go-mdmath/internal/yamlutil"
)

// DefaultConfigName is the config file looked up in the working directory.
const DefaultConfigName = "mdmath.yaml"

// MaxWorkers caps the worker count to keep file handle usage bounded.
const MaxWorkers = 32

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
	ErrInvalidWorkers = errors.New("invalid worker count")
)

// Config holds all configuration for batch preprocessing.
type Config struct {
	Input   InputConfig  `yaml:"input"`
	Output  OutputConfig `yaml:"output"`
	Render  RenderConfig `yaml:"render"`
	Workers int          `yaml:"workers"` // 0 = one per CPU
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = stdout for single files)
}

// RenderConfig defines HTML rendering options.
type RenderConfig struct {
	Enabled bool   `yaml:"enabled"` // Render preprocessed markdown to HTML
	Style   string `yaml:"style"`   // Stylesheet name in internal/assets/styles (empty = default)
}

// Default returns a Config with built-in defaults.
func Default() *Config {
	return &Config{
		Render: RenderConfig{Style: assets.DefaultStyleName},
	}
}

// Load reads and validates a config file. A missing file maps to
// ErrConfigNotFound so callers can fall back to defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %q", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config %q: %w", path, err)
	}

	cfg := Default()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field values and ranges.
func (c *Config) Validate() error {
	if c.Workers < 0 || c.Workers > MaxWorkers {
		return fmt.Errorf("%w: %d (must be 0-%d)", ErrInvalidWorkers, c.Workers, MaxWorkers)
	}
	if c.Render.Style != "" {
		if err := assets.ValidateAssetName(c.Render.Style); err != nil {
			return err
		}
	}
	return nil
}
