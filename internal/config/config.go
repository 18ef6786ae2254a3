// Package config loads and stores CLI configuration in the XDG config dir.
// Values from the file can be overridden by QBSVIEW_* environment variables.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"qbsview/cli/internal/xdg"

	"github.com/caarlos0/env/v11"
)

// Config holds CLI settings.
type Config struct {
	LogLevel         string `json:"log_level" env:"QBSVIEW_LOG_LEVEL"`
	LogFormat        string `json:"log_format" env:"QBSVIEW_LOG_FORMAT"`
	CacheSize        int    `json:"cache_size" env:"QBSVIEW_CACHE_SIZE"`
	TranscriptFormat string `json:"transcript_format" env:"QBSVIEW_TRANSCRIPT_FORMAT"`
	MaxDepth         int    `json:"max_depth" env:"QBSVIEW_MAX_DEPTH"`
}

// Default returns the settings used when no file exists.
func Default() Config {
	return Config{
		LogLevel:         "info",
		LogFormat:        "text",
		CacheSize:        1024,
		TranscriptFormat: "qbsmsg",
		MaxDepth:         0,
	}
}

// path returns the path to the config file.
func path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Path returns the config file location.
func Path() (string, error) { return path() }

// Load reads configuration; missing file returns defaults. Environment
// variables are applied last.
func Load() (Config, error) {
	c, err := LoadFile()
	if err != nil {
		return c, err
	}
	if err := env.Parse(&c); err != nil {
		return c, fmt.Errorf("parse env: %w", err)
	}
	return c, nil
}

// LoadFile reads the config file without environment overrides, for callers
// that write the result back.
func LoadFile() (Config, error) {
	c := Default()
	p, err := path()
	if err != nil {
		return c, err
	}
	data, err := os.ReadFile(p)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return c, err
	default:
		if err := json.Unmarshal(data, &c); err != nil {
			return c, fmt.Errorf("parse %s: %w", p, err)
		}
	}
	return c, nil
}

// Save writes configuration with 0600 permissions.
func Save(c Config) error {
	p, err := path()
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}

// Keys lists the settable keys in file order.
func Keys() []string {
	return []string{"log_level", "log_format", "cache_size", "transcript_format", "max_depth"}
}

// Set updates the field named by its JSON key.
func (c *Config) Set(key, value string) error {
	switch strings.ToLower(key) {
	case "log_level":
		c.LogLevel = value
	case "log_format":
		c.LogFormat = value
	case "transcript_format":
		c.TranscriptFormat = value
	case "cache_size":
		n, err := nonNegative(key, value)
		if err != nil {
			return err
		}
		c.CacheSize = n
	case "max_depth":
		n, err := nonNegative(key, value)
		if err != nil {
			return err
		}
		c.MaxDepth = n
	default:
		return fmt.Errorf("unknown config key %q (known: %s)", key, strings.Join(Keys(), ", "))
	}
	return nil
}

// Get returns the value of the field named by its JSON key.
func (c Config) Get(key string) (string, error) {
	switch strings.ToLower(key) {
	case "log_level":
		return c.LogLevel, nil
	case "log_format":
		return c.LogFormat, nil
	case "transcript_format":
		return c.TranscriptFormat, nil
	case "cache_size":
		return strconv.Itoa(c.CacheSize), nil
	case "max_depth":
		return strconv.Itoa(c.MaxDepth), nil
	}
	return "", fmt.Errorf("unknown config key %q", key)
}

func nonNegative(key, value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%s must be a non-negative integer, got %q", key, value)
	}
	return n, nil
}
