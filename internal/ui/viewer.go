package ui

import "btr/internal/domain"

// Viewer displays failed binaries after a run
type Viewer interface {
	View(results []domain.Result) error
}

// Reporter receives each result as soon as its binary exits
type Reporter interface {
	Report(result domain.Result)
}
