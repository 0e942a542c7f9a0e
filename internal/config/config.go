// Package config loads the default conversion settings used by the command line front end.
package config

import (
	"errors"
	"fmt"
	"github.com/caarlos0/env/v11"
	"github.com/davejbax/go-baseconv"
	"gopkg.in/yaml.v3"
	"os"
	"slices"
)

const (
	OutputText   = "text"
	OutputJSON   = "json"
	OutputYAML   = "yaml"
	OutputBinary = "binary"
)

// Outputs lists every supported output format
var Outputs = []string{OutputText, OutputJSON, OutputYAML, OutputBinary}

var (
	// ErrInvalidPrecision indicates a negative precision
	ErrInvalidPrecision = baseconv.ErrInvalidPrecision

	// ErrInvalidOutput indicates an output format that is not one of [Outputs]
	ErrInvalidOutput = errors.New("unsupported output format")
)

// Config holds the settings that can be given defaults outside of command line flags.
//
// Values are layered: built-in defaults, then the YAML file (if any), then environment variables.
type Config struct {
	Precision int    `yaml:"precision" env:"BASECONV_PRECISION"`
	Output    string `yaml:"output" env:"BASECONV_OUTPUT"`
	Exact     bool   `yaml:"exact" env:"BASECONV_EXACT"`
	LogLevel  string `yaml:"log_level" env:"BASECONV_LOG_LEVEL"`
}

func Default() *Config {
	return &Config{
		Precision: 10,
		Output:    OutputText,
		Exact:     false,
		LogLevel:  "warning",
	}
}

// Load builds a [Config] from the defaults, the YAML file at path and the environment. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// No envDefault tags: unset variables must leave the file and built-in values alone
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Precision < 0 {
		return fmt.Errorf("%w, got %d", ErrInvalidPrecision, c.Precision)
	}

	if !slices.Contains(Outputs, c.Output) {
		return fmt.Errorf("%w %q", ErrInvalidOutput, c.Output)
	}

	return nil
}
