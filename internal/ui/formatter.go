package ui

import (
	"fmt"
	"io"
	"strings"

	"btr/internal/domain"
	"btr/internal/parser"

	"github.com/fatih/color"
)

const divider = "--------------------------------------------------"

var (
	passTag = color.New(color.FgGreen, color.Bold)
	failTag = color.New(color.FgRed, color.Bold)
	warn    = color.New(color.FgYellow)
	info    = color.New(color.FgCyan)
)

// Formatter writes the run transcript: one line per binary, failure output and a summary
type Formatter struct {
	out    io.Writer
	parser *parser.GTestParser
}

// NewFormatter creates a new Formatter writing to out
func NewFormatter(out io.Writer, p *parser.GTestParser) *Formatter {
	return &Formatter{
		out:    out,
		parser: p,
	}
}

// PrintNoTests reports that discovery found nothing to run
func (f *Formatter) PrintNoTests() {
	warn.Fprintln(f.out, "No test executables found!")
}

// PrintHeader announces the run
func (f *Formatter) PrintHeader(count int) {
	fmt.Fprintf(f.out, "Running %d test(s)...\n", count)
	fmt.Fprintln(f.out, divider)
}

// Report prints the PASS/FAIL line for one binary. Captured output is only shown on failure.
func (f *Formatter) Report(result domain.Result) {
	if result.Passed() {
		passTag.Fprint(f.out, "[PASS]")
		fmt.Fprintf(f.out, " %s\n", result.Candidate.Name)
		return
	}

	failTag.Fprint(f.out, "[FAIL]")
	fmt.Fprintf(f.out, " %s\n", result.Candidate.Name)

	writeBlock(f.out, result.Stdout)
	writeBlock(f.out, result.Stderr)
	if result.Err != nil {
		failTag.Fprintf(f.out, "error: %v\n", result.Err)
	}

	if f.parser == nil {
		return
	}
	failures := f.parser.ParseFailures(result)
	if len(failures) == 0 {
		return
	}
	names := make([]string, 0, len(failures))
	for _, fc := range failures {
		names = append(names, fc.Case.FullName())
	}
	warn.Fprintf(f.out, "failed cases: %s\n", strings.Join(names, ", "))
}

// PrintSummary prints the closing divider and verdict
func (f *Formatter) PrintSummary(summary domain.Summary) {
	fmt.Fprintln(f.out, divider)
	if summary.OK() {
		passTag.Fprintln(f.out, "All tests passed successfully!")
		return
	}
	failTag.Fprintf(f.out, "Test run failed: %d test(s) failed!\n", summary.Failed)
}

// PrintTestList prints discovered binaries, optionally with their cases
func (f *Formatter) PrintTestList(candidates []domain.Candidate, cases map[string][]domain.TestCase) {
	info.Fprintf(f.out, "Found %d test executable(s)\n", len(candidates))
	for _, c := range candidates {
		fmt.Fprintf(f.out, "  %s\n", c.Path)
		for _, tc := range cases[c.Path] {
			fmt.Fprintf(f.out, "    |_ %s\n", tc.FullName())
		}
	}
}

// writeBlock copies captured output verbatim, terminating an unfinished last line
func writeBlock(w io.Writer, text string) {
	if text == "" {
		return
	}
	io.WriteString(w, text)
	if !strings.HasSuffix(text, "\n") {
		io.WriteString(w, "\n")
	}
}
