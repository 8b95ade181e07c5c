// Package config loads classifier settings from a YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Dicklesworthstone/compactview/pkg/viewport"
)

// Config is the on-disk configuration.
type Config struct {
	Threshold   int      `yaml:"threshold"`
	Debounce    Duration `yaml:"debounce"`
	Orientation bool     `yaml:"orientation"`
	LogLevel    string   `yaml:"log_level"`
}

// Duration is a time.Duration written as a Go duration string ("150ms").
type Duration time.Duration

func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Threshold: viewport.DefaultThreshold,
		Debounce:  Duration(viewport.DefaultDebounceDelay),
		LogLevel:  "info",
	}
}

// Load reads the configuration at path. A missing file yields Default().
// Keys absent from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML data on top of Default(). Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Default(), fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg.Normalize(), nil
}

// Normalize clamps a negative debounce to zero, the value the classifier
// would use for it anyway.
func (c Config) Normalize() Config {
	if c.Debounce < 0 {
		c.Debounce = 0
	}
	return c
}

// Validate checks the fields the classifier cannot interpret. Any threshold
// and any debounce are accepted.
func (c Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	return nil
}

// Options converts the configuration into classifier options.
func (c Config) Options() []viewport.Option {
	return []viewport.Option{
		viewport.WithThreshold(c.Threshold),
		viewport.WithDebounce(time.Duration(c.Debounce)),
		viewport.WithOrientation(c.Orientation),
	}
}
