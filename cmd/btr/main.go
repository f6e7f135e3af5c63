package main

import (
	"fmt"
	"os"

	"btr/internal/cli"
	"btr/internal/cli/commands"
	"btr/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:   "btr",
		Short: "Compiled test binary runner",
		Long: `Runs the test executables produced by a build, one after another.
Binaries are discovered in <bin-dir>/<config>/ by their _test suffix; the run fails if any binary exits non-zero or none are found.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg, os.Stdout)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	err := rootCmd.Execute()
	if err != nil && !commands.Silent(err) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(commands.ExitCode(err))
}
