package execution

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"

	"btr/internal/domain"

	"github.com/phuslu/log"
)

// Runner executes a single test binary
type Runner struct {
	workDir string
	env     map[string]string
	timeout time.Duration
	logger  *log.Logger
}

// NewRunner creates a new Runner. A zero timeout waits for the binary indefinitely.
func NewRunner(workDir string, env map[string]string, timeout time.Duration, logger *log.Logger) *Runner {
	return &Runner{
		workDir: workDir,
		env:     env,
		timeout: timeout,
		logger:  logger,
	}
}

// Run launches the binary with no arguments and waits for it to exit
func (r *Runner) Run(ctx context.Context, candidate domain.Candidate) domain.Result {
	return r.run(ctx, candidate)
}

// RunWithArgs launches the binary with arguments, e.g. --gtest_list_tests
func (r *Runner) RunWithArgs(ctx context.Context, candidate domain.Candidate, args ...string) domain.Result {
	return r.run(ctx, candidate, args...)
}

func (r *Runner) run(ctx context.Context, candidate domain.Candidate, args ...string) domain.Result {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, candidate.Path, args...)
	cmd.Dir = r.workDir

	// Start with current environment
	cmd.Env = os.Environ()
	for k, v := range r.env {
		cmd.Env = append(cmd.Env, fmt.Sprintf("%s=%s", k, v))
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	// Grandchildren holding the pipes open must not block Wait after a kill
	cmd.WaitDelay = time.Second

	r.logger.Debug().Str("binary", candidate.Path).Strs("args", args).Msg("launching test binary")

	start := time.Now()
	err := cmd.Run()
	duration := time.Since(start)

	result := domain.Result{
		Candidate: candidate,
		Status:    domain.StatusPass,
		Stdout:    stdout.String(),
		Stderr:    stderr.String(),
		Duration:  duration,
	}

	if err == nil {
		r.logger.Debug().Str("binary", candidate.Name).Dur("duration", duration).Msg("test binary passed")
		return result
	}

	result.Status = domain.StatusFail
	result.ExitCode = -1

	if ctx.Err() != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		result.TimedOut = true
		result.Err = fmt.Errorf("timed out after %s", r.timeout)
	} else {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			// -1 means no exit status, the process was terminated by a signal
			if result.ExitCode == -1 {
				result.Signaled = true
				result.Err = errors.New(exitErr.String())
			}
		} else {
			result.Err = err
		}
	}

	r.logger.Debug().Str("binary", candidate.Name).Int("exit_code", result.ExitCode).Err(result.Err).Msg("test binary failed")
	return result
}
