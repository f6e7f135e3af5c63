package cli

import (
	"time"

	"btr/internal/config"
)

// Flags holds command-line flags
type Flags struct {
	Label        string
	BinDir       string
	ProjectPath  string
	NameFilter   string
	Timeout      time.Duration
	TimeoutSet   bool
	EnvFile      string
	Settings     string
	Progress     bool
	OpenFailures bool
	NoColor      bool
	LogLevel     string
	TestCases    bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Label:        f.Label,
		BinDir:       f.BinDir,
		ProjectPath:  f.ProjectPath,
		NameFilter:   f.NameFilter,
		Timeout:      f.Timeout,
		TimeoutSet:   f.TimeoutSet,
		EnvFile:      f.EnvFile,
		Settings:     f.Settings,
		Progress:     f.Progress,
		OpenFailures: f.OpenFailures,
		NoColor:      f.NoColor,
		LogLevel:     f.LogLevel,
		TestCases:    f.TestCases,
	}
}
