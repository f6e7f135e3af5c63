package config

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultBinDir is where the build step places test binaries, relative to the project path
	DefaultBinDir = "build/Bin/Tests"
	// DefaultLabel is the default build configuration
	DefaultLabel = "Debug"
	// DefaultSuffix marks a file as a test binary
	DefaultSuffix = "_test"
	// DefaultSettingsFile is looked up in the project path when --settings is not given
	DefaultSettingsFile = "btr.toml"
	// DefaultEnvFile is loaded from the project path when present
	DefaultEnvFile = ".env"
	// DefaultLogLevel is the default diagnostic log level
	DefaultLogLevel = "warn"
)

// DefaultExtensions are the executable extensions accepted after the suffix
var DefaultExtensions = []string{".exe"}
