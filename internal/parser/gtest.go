package parser

import (
	"regexp"
	"strconv"
	"strings"

	"btr/internal/domain"
)

var (
	passedCountRe = regexp.MustCompile(`(?m)^\[  PASSED  \] (\d+) tests?\.`)
	failedCountRe = regexp.MustCompile(`(?m)^\[  FAILED  \] (\d+) tests?, listed below`)
	runRe         = regexp.MustCompile(`^\[ RUN      \] (\S+)`)
	okRe          = regexp.MustCompile(`^\[       OK \] (\S+)`)
	failedCaseRe  = regexp.MustCompile(`^\[  FAILED  \] ([^\s.]+)\.([^\s,]+)`)
)

var _ Parser = (*GTestParser)(nil)

// GTestParser parses GoogleTest console output
type GTestParser struct{}

// NewGTestParser creates a new GTestParser
func NewGTestParser() *GTestParser {
	return &GTestParser{}
}

// ParseCaseCounts extracts passed and failed case counts from the run summary.
// If the output carries no summary, the binary itself counts as one case.
func (p *GTestParser) ParseCaseCounts(result domain.Result) (passed, failed int) {
	output := result.Stdout

	if m := passedCountRe.FindStringSubmatch(output); m != nil {
		passed, _ = strconv.Atoi(m[1])
	}
	if m := failedCountRe.FindStringSubmatch(output); m != nil {
		failed, _ = strconv.Atoi(m[1])
	}
	if passed > 0 || failed > 0 {
		// A crash after the summary still fails the binary
		if !result.Passed() && failed == 0 {
			failed = 1
		}
		return passed, failed
	}

	if result.Passed() {
		return 1, 0
	}
	return 0, 1
}

// ParseFailures returns the failed cases in the order they ran, each with the
// output printed while it ran. A case still running when output ends is
// reported too, since that means the binary died inside it.
func (p *GTestParser) ParseFailures(result domain.Result) []domain.CaseFailure {
	var failures []domain.CaseFailure
	seen := make(map[string]bool)

	var current string
	var message []string

	record := func(tc domain.TestCase, msg []string) {
		if seen[tc.FullName()] {
			return
		}
		seen[tc.FullName()] = true
		failures = append(failures, domain.CaseFailure{
			Case:    tc,
			Binary:  result.Candidate.Name,
			Message: strings.TrimRight(strings.Join(msg, "\n"), "\n "),
		})
	}

	for _, line := range strings.Split(result.Stdout, "\n") {
		line = strings.TrimRight(line, "\r")

		if m := runRe.FindStringSubmatch(line); m != nil {
			current = m[1]
			message = nil
			continue
		}
		if m := okRe.FindStringSubmatch(line); m != nil && m[1] == current {
			current = ""
			message = nil
			continue
		}
		if m := failedCaseRe.FindStringSubmatch(line); m != nil {
			tc := domain.TestCase{Suite: m[1], Name: m[2]}
			if tc.FullName() == current {
				record(tc, message)
				current = ""
				message = nil
			} else {
				// Summary list entry for a case whose block was not captured
				record(tc, nil)
			}
			continue
		}
		if current != "" {
			message = append(message, line)
		}
	}

	if current != "" && !result.Passed() {
		if tc, ok := splitCaseName(current); ok {
			record(tc, message)
		}
	}

	return failures
}

// ParseCaseList parses the output of --gtest_list_tests
func (p *GTestParser) ParseCaseList(output string) []domain.TestCase {
	var cases []domain.TestCase
	var suite string

	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		if !strings.HasPrefix(line, " ") {
			// "Suite." optionally followed by "  # TypeParam = ..."
			fields := strings.Fields(line)
			suite = ""
			if strings.HasSuffix(fields[0], ".") {
				suite = strings.TrimSuffix(fields[0], ".")
			}
			continue
		}

		if suite == "" {
			continue
		}
		name := strings.Fields(line)[0]
		cases = append(cases, domain.TestCase{Suite: suite, Name: name})
	}

	return cases
}

func splitCaseName(full string) (domain.TestCase, bool) {
	idx := strings.Index(full, ".")
	if idx <= 0 || idx == len(full)-1 {
		return domain.TestCase{}, false
	}
	return domain.TestCase{Suite: full[:idx], Name: full[idx+1:]}, true
}
