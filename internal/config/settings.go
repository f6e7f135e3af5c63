package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Settings mirrors the optional btr.toml file
type Settings struct {
	Runner struct {
		BinDir     string   `toml:"bin_dir"`
		Suffix     string   `toml:"suffix"`
		Extensions []string `toml:"extensions"`
		Timeout    string   `toml:"timeout"`
		EnvFile    string   `toml:"env_file"`
	} `toml:"runner"`
	Log struct {
		Level string `toml:"level"`
	} `toml:"log"`
}

// LoadSettings reads and decodes a settings file
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var s Settings
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse settings file %s: %w", path, err)
	}
	return &s, nil
}

func (s *Settings) applyTo(c *Config) error {
	r := s.Runner
	if r.BinDir != "" {
		c.BinDir = r.BinDir
	}
	if r.Suffix != "" {
		c.Suffix = r.Suffix
	}
	// An explicit empty list disables extension matching
	if r.Extensions != nil {
		c.Extensions = r.Extensions
	}
	if r.Timeout != "" {
		d, err := time.ParseDuration(r.Timeout)
		if err != nil {
			return fmt.Errorf("invalid runner.timeout %q: %w", r.Timeout, err)
		}
		if d < 0 {
			return fmt.Errorf("runner.timeout must not be negative: %s", r.Timeout)
		}
		c.Timeout = d
	}
	if r.EnvFile != "" {
		c.EnvFile = r.EnvFile
	}
	if s.Log.Level != "" {
		c.LogLevel = s.Log.Level
	}
	return nil
}
