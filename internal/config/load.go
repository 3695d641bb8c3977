package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load builds the lesson settings from the built-in scenario, then a
// lessons file if one is found, then command-line overrides, and checks
// the result.
func Load() (*Config, error) {
	cfg := Default()

	if path := locateConfig(); path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// locateConfig returns the -config path if given, otherwise the first
// lessons file that exists: lessons.yaml in the working directory, then
// config.yaml in ConfigDir.
func locateConfig() string {
	if p := ConfigPath(); p != "" {
		return p
	}
	for _, p := range []string{"lessons.yaml", filepath.Join(ConfigDir(), "config.yaml")} {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// ConfigDir is where saved lesson settings live for the current user.
func ConfigDir() string {
	home, _ := os.UserHomeDir()
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "RasterLessons")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "RasterLessons")
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "raster-lessons")
	}
	return filepath.Join(home, ".config", "raster-lessons")
}

// loadFromFile overlays a lessons file onto cfg. Keys the file leaves out
// keep their current values; a bodies list replaces the whole scenario.
// Unknown keys are rejected so a misspelled body setting is not silently
// ignored.
func loadFromFile(cfg *Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
