package commands

import (
	"errors"
	"io"
	"os"

	"btr/internal/cli"
	"btr/internal/config"
	"btr/internal/discovery"
	"btr/internal/execution"
	"btr/internal/logging"
	"btr/internal/parser"
	"btr/internal/ui"

	"github.com/fatih/color"
	"github.com/phuslu/log"
	"github.com/spf13/cobra"
)

var (
	// ErrNoTests is returned when discovery finds no test binaries
	ErrNoTests = errors.New("no test executables found")
	// ErrTestsFailed is returned when at least one test binary failed
	ErrTestsFailed = errors.New("test run failed")
)

// ExitCode maps a command error to the process exit status
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}

// Silent reports whether the console already explained err, so no "Error:" line is needed
func Silent(err error) bool {
	return errors.Is(err, ErrNoTests) || errors.Is(err, ErrTestsFailed)
}

// Commands holds all CLI commands
type Commands struct {
	Run  *RunCommand
	List *ListCommand

	config *config.Config
	out    io.Writer
	deps   *Deps
}

// Deps are the collaborators shared by the commands, built once flags are parsed
type Deps struct {
	Logger    *log.Logger
	Scanner   *discovery.Scanner
	Filter    *discovery.Filter
	Runner    *execution.Runner
	Parser    *parser.GTestParser
	Formatter *ui.Formatter
	Viewer    ui.Viewer
	// Stderr receives the progress bar; nil disables it
	Stderr *os.File
}

// NewCommands creates all commands. Dependencies are resolved lazily from cfg so that
// flags and the settings file are applied before anything is constructed.
func NewCommands(cfg *config.Config, out io.Writer) *Commands {
	c := &Commands{config: cfg, out: out}
	c.Run = NewRunCommand(cfg, c.resolve)
	c.List = NewListCommand(cfg, c.resolve)
	return c
}

// NewCommandsWithDeps creates commands around prebuilt dependencies
func NewCommandsWithDeps(cfg *config.Config, deps *Deps) *Commands {
	c := &Commands{config: cfg, deps: deps}
	c.Run = NewRunCommand(cfg, c.resolve)
	c.List = NewListCommand(cfg, c.resolve)
	return c
}

func (c *Commands) resolve() (*Deps, error) {
	if c.deps != nil {
		return c.deps, nil
	}
	cfg := c.config

	if cfg.Flags.NoColor {
		color.NoColor = true
	}

	env, err := cfg.LoadEnv()
	if err != nil {
		return nil, err
	}

	logger := logging.New(cfg.LogLevel, os.Stderr, !color.NoColor)
	gtest := parser.NewGTestParser()

	c.deps = &Deps{
		Logger:    logger,
		Scanner:   discovery.NewScanner(cfg.Suffix, cfg.Extensions, logger),
		Filter:    discovery.NewFilter(),
		Runner:    execution.NewRunner(cfg.ProjectPath, env, cfg.Timeout, logger),
		Parser:    gtest,
		Formatter: ui.NewFormatter(c.out, gtest),
		Viewer:    ui.NewFailureViewer(gtest),
	}
	if cfg.Flags.Progress && ui.IsTerminal(os.Stderr) {
		c.deps.Stderr = os.Stderr
	}
	return c.deps, nil
}

// Register registers all commands with cobra. The root command itself runs the tests.
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	apply := func(cmd *cobra.Command, args []string) error {
		flags.TimeoutSet = cmd.Flags().Changed("timeout")
		return cfg.Apply(flags.ToConfigFlags())
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.Label, "config", "c", config.DefaultLabel, "Build configuration to test (Debug/Release)")
	pf.StringVar(&flags.BinDir, "bin-dir", "", "Directory holding one folder per build configuration (default "+config.DefaultBinDir+")")
	pf.StringVar(&flags.ProjectPath, "project", "", "Project root the bin dir, settings and env file are relative to (default \".\")")
	pf.StringVarP(&flags.NameFilter, "filter", "f", "", "Filter binaries by name pattern (supports wildcards, e.g. 'math_*' or '*render*')")
	pf.StringVar(&flags.Settings, "settings", "", "Path to a settings file (default <project>/"+config.DefaultSettingsFile+" when present)")
	pf.StringVar(&flags.LogLevel, "log-level", "", "Diagnostic log level: debug, info, warn, error (default "+config.DefaultLogLevel+")")
	pf.BoolVar(&flags.NoColor, "no-color", false, "Disable colored output")
	pf.StringVar(&flags.EnvFile, "env-file", "", "File of KEY=VALUE pairs added to each test binary's environment (default <project>/"+config.DefaultEnvFile+" when present)")
	pf.DurationVar(&flags.Timeout, "timeout", 0, "Kill a test binary that runs longer than this (0 waits indefinitely)")

	rootCmd.PersistentPreRunE = apply
	rootCmd.RunE = c.Run.Execute
	// A bare "btr" runs the default configuration
	rootCmd.Flags().BoolVar(&flags.Progress, "progress", false, "Show a progress bar on stderr when it is a terminal")
	rootCmd.Flags().BoolVar(&flags.OpenFailures, "open-failures", false, "Open the failure viewer when the run finishes with failures")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run test binaries",
		Long:  "Discover the test binaries of a build configuration and run them one after another",
		Args:  cobra.NoArgs,
		RunE:  c.Run.Execute,
	}
	runCmd.Flags().BoolVar(&flags.Progress, "progress", false, "Show a progress bar on stderr when it is a terminal")
	runCmd.Flags().BoolVar(&flags.OpenFailures, "open-failures", false, "Open the failure viewer when the run finishes with failures")
	rootCmd.AddCommand(runCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List discovered test binaries",
		Long:  "Scan the build configuration directory and list test binaries without running them",
		Args:  cobra.NoArgs,
		RunE:  c.List.Execute,
	}
	listCmd.Flags().BoolVar(&flags.TestCases, "cases", false, "List GoogleTest cases of each binary (runs it with --gtest_list_tests)")
	rootCmd.AddCommand(listCmd)
}
