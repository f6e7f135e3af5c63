package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string
	BinDir      string
	Label       string

	// Discovery settings
	Suffix     string
	Extensions []string

	// Execution settings
	Timeout time.Duration
	EnvFile string

	LogLevel string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	Label        string
	BinDir       string
	ProjectPath  string
	NameFilter   string
	Timeout      time.Duration
	TimeoutSet   bool // --timeout given explicitly; 0 then restores the unbounded wait
	EnvFile      string
	Settings     string
	Progress     bool
	OpenFailures bool
	NoColor      bool
	LogLevel     string
	TestCases    bool
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		ProjectPath: DefaultProjectPath,
		BinDir:      DefaultBinDir,
		Label:       DefaultLabel,
		Suffix:      DefaultSuffix,
		LogLevel:    DefaultLogLevel,
		Flags:       Flags{Label: DefaultLabel},
	}
	cfg.Extensions = make([]string, len(DefaultExtensions))
	copy(cfg.Extensions, DefaultExtensions)
	return cfg
}

// Apply layers the settings file and then the flags over the current values.
// Zero-valued flags leave the existing value alone.
func (c *Config) Apply(flags Flags) error {
	c.Flags = flags
	if flags.ProjectPath != "" {
		c.ProjectPath = flags.ProjectPath
	}

	if err := c.applySettings(flags.Settings); err != nil {
		return err
	}

	if flags.Label != "" {
		c.Label = flags.Label
	}
	if flags.BinDir != "" {
		c.BinDir = flags.BinDir
	}
	if flags.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative: %s", flags.Timeout)
	}
	if flags.TimeoutSet || flags.Timeout > 0 {
		c.Timeout = flags.Timeout
	}
	if flags.EnvFile != "" {
		c.EnvFile = flags.EnvFile
	}
	if flags.LogLevel != "" {
		c.LogLevel = flags.LogLevel
	}
	return nil
}

func (c *Config) applySettings(explicit string) error {
	path := explicit
	if path == "" {
		path = filepath.Join(c.ProjectPath, DefaultSettingsFile)
		if _, err := os.Stat(path); err != nil {
			return nil
		}
	}

	s, err := LoadSettings(path)
	if err != nil {
		return err
	}
	return s.applyTo(c)
}

// GetSearchRoot returns the directory holding one subdirectory per build configuration
func (c *Config) GetSearchRoot() string {
	if filepath.IsAbs(c.BinDir) {
		return c.BinDir
	}
	return filepath.Join(c.ProjectPath, c.BinDir)
}

// GetSearchDir returns the directory scanned for the selected configuration
func (c *Config) GetSearchDir() string {
	return filepath.Join(c.GetSearchRoot(), c.Label)
}

// LoadEnv reads the variables passed to every test binary on top of the inherited environment.
// A missing default .env is not an error; a missing explicit env file is.
func (c *Config) LoadEnv() (map[string]string, error) {
	path := c.EnvFile
	explicit := path != ""
	if !explicit {
		path = DefaultEnvFile
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(c.ProjectPath, path)
	}

	env, err := godotenv.Read(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read env file %s: %w", path, err)
	}
	return env, nil
}
