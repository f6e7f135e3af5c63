package execution

import (
	"context"
	"time"

	"btr/internal/domain"
)

var _ Executor = (*Sequential)(nil)

// Sequential runs test binaries one after another on the calling goroutine
type Sequential struct {
	runner    *Runner
	reporters []Reporter
}

// NewSequential creates a new Sequential executor
func NewSequential(runner *Runner, reporters ...Reporter) *Sequential {
	return &Sequential{
		runner:    runner,
		reporters: reporters,
	}
}

// Execute runs every candidate to completion. Each candidate yields exactly one result;
// a failing binary never stops the run.
func (s *Sequential) Execute(ctx context.Context, candidates []domain.Candidate) ([]domain.Result, domain.Summary, time.Duration) {
	startTime := time.Now()
	results := make([]domain.Result, 0, len(candidates))
	var summary domain.Summary

	for _, candidate := range candidates {
		result := s.runner.Run(ctx, candidate)
		results = append(results, result)
		summary.Add(result)

		for _, r := range s.reporters {
			r.Report(result)
		}
	}

	return results, summary, time.Since(startTime)
}
