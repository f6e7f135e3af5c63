package parser

import "btr/internal/domain"

// Parser extracts test-case level information from a binary's output
type Parser interface {
	ParseCaseCounts(result domain.Result) (passed, failed int)
	ParseFailures(result domain.Result) []domain.CaseFailure
}
