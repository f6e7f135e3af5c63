package commands

import (
	"context"

	"btr/internal/config"
	"btr/internal/domain"

	"github.com/spf13/cobra"
)

// ListCommand handles the list command
type ListCommand struct {
	config  *config.Config
	resolve func() (*Deps, error)
}

// NewListCommand creates a new ListCommand
func NewListCommand(cfg *config.Config, resolve func() (*Deps, error)) *ListCommand {
	return &ListCommand{
		config:  cfg,
		resolve: resolve,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	return lc.List(cmd.Context())
}

// List prints the binaries a run would execute. With --cases each binary is asked
// for its GoogleTest cases; a binary that cannot list them is shown without cases.
func (lc *ListCommand) List(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	deps, err := lc.resolve()
	if err != nil {
		return err
	}

	candidates, err := deps.Scanner.Scan(lc.config.GetSearchRoot(), lc.config.Label)
	if err != nil {
		return err
	}
	candidates = deps.Filter.FilterByName(candidates, lc.config.Flags.NameFilter)

	if len(candidates) == 0 {
		deps.Formatter.PrintNoTests()
		return ErrNoTests
	}

	var cases map[string][]domain.TestCase
	if lc.config.Flags.TestCases {
		cases = make(map[string][]domain.TestCase, len(candidates))
		for _, c := range candidates {
			result := deps.Runner.RunWithArgs(ctx, c, "--gtest_list_tests")
			if !result.Passed() {
				deps.Logger.Warn().Str("binary", c.Name).Int("exit_code", result.ExitCode).Msg("could not list test cases")
				continue
			}
			cases[c.Path] = deps.Parser.ParseCaseList(result.Stdout)
		}
	}

	deps.Formatter.PrintTestList(candidates, cases)
	return nil
}
