package commands

import (
	"context"
	"fmt"
	"os"

	"btr/internal/config"
	"btr/internal/domain"
	"btr/internal/execution"
	"btr/internal/ui"

	"github.com/spf13/cobra"
)

// RunCommand handles the run command
type RunCommand struct {
	config  *config.Config
	resolve func() (*Deps, error)
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(cfg *config.Config, resolve func() (*Deps, error)) *RunCommand {
	return &RunCommand{
		config:  cfg,
		resolve: resolve,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	_, err := rc.Run(cmd.Context())
	return err
}

// Run discovers the binaries of the configured build and runs them in sequence.
// It returns ErrNoTests or ErrTestsFailed when the run is unsuccessful.
func (rc *RunCommand) Run(ctx context.Context) (domain.Summary, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	deps, err := rc.resolve()
	if err != nil {
		return domain.Summary{}, err
	}

	// Discover tests
	candidates, err := deps.Scanner.Scan(rc.config.GetSearchRoot(), rc.config.Label)
	if err != nil {
		return domain.Summary{}, err
	}

	// Filter tests
	candidates = deps.Filter.FilterByName(candidates, rc.config.Flags.NameFilter)

	if len(candidates) == 0 {
		deps.Formatter.PrintNoTests()
		return domain.Summary{}, ErrNoTests
	}

	deps.Logger.Info().Str("dir", rc.config.GetSearchDir()).Int("count", len(candidates)).Msg("running test binaries")
	deps.Formatter.PrintHeader(len(candidates))

	var reporter ui.Reporter = deps.Formatter
	var progress *ui.ProgressBar
	if deps.Stderr != nil {
		progress = ui.NewProgressBar(len(candidates), deps.Stderr, deps.Parser)
		reporter = progress.Above(deps.Formatter)
	}

	executor := execution.NewSequential(deps.Runner, reporter)
	results, summary, duration := executor.Execute(ctx, candidates)

	if progress != nil {
		progress.Finish()
	}

	deps.Formatter.PrintSummary(summary)
	deps.Logger.Info().Int("total", summary.Total).Int("failed", summary.Failed).Dur("duration", duration).Msg("test run finished")

	if summary.OK() {
		return summary, nil
	}

	if rc.config.Flags.OpenFailures && deps.Viewer != nil && ui.IsTerminal(os.Stdin) {
		if err := deps.Viewer.View(results); err != nil {
			return summary, fmt.Errorf("failure viewer: %w", err)
		}
	}

	return summary, fmt.Errorf("%w: %d test(s) failed", ErrTestsFailed, summary.Failed)
}
