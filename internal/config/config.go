// Package config holds the CLI settings and their YAML file form.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig reports a value outside its allowed set.
var ErrInvalidConfig = errors.New("config: invalid")

// Input formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Config is the full set of solver settings.
type Config struct {
	Start       string `yaml:"start"`
	Minutes     uint32 `yaml:"minutes"`
	DualMinutes uint32 `yaml:"dual_minutes"`
	Prune       bool   `yaml:"prune"`
	Format      string `yaml:"format"`
	LogLevel    string `yaml:"log_level"`
}

// Default returns the settings used when no file or flag says otherwise.
func Default() Config {
	return Config{
		Start:       "AA",
		Minutes:     30,
		DualMinutes: 26,
		Prune:       true,
		Format:      FormatText,
		LogLevel:    "warn",
	}
}

// Load reads path over Default and validates the result.
// Keys missing from the file keep their default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if c.Start == "" {
		return fmt.Errorf("%w: start is empty", ErrInvalidConfig)
	}
	if c.Format != FormatText && c.Format != FormatYAML {
		return fmt.Errorf("%w: format %q (want %s or %s)", ErrInvalidConfig, c.Format, FormatText, FormatYAML)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}

	return nil
}

// Level returns LogLevel as a slog.Level; invalid values fall back to Warn.
func (c Config) Level() slog.Level {
	lvl, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelWarn
	}

	return lvl
}

func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("%w: log_level %q", ErrInvalidConfig, s)
	}

	return lvl, nil
}
