package execution

import (
	"context"
	"time"

	"btr/internal/domain"
)

// Executor executes test binaries and returns their results
type Executor interface {
	Execute(ctx context.Context, candidates []domain.Candidate) ([]domain.Result, domain.Summary, time.Duration)
}

// Reporter is notified after each binary finishes
type Reporter interface {
	Report(result domain.Result)
}
