package ui

import (
	"fmt"
	"io"

	"btr/internal/domain"
	"btr/internal/parser"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

// ProgressBar renders run progress on a terminal. Binaries advance the bar;
// the description tracks GoogleTest case counts.
type ProgressBar struct {
	bar         *progressbar.ProgressBar
	parser      *parser.GTestParser
	completed   int
	passedCases int
	failedCases int
}

// NewProgressBar creates a new progress bar for count binaries
func NewProgressBar(count int, w io.Writer, p *parser.GTestParser) *ProgressBar {
	bar := progressbar.NewOptions(count,
		progressbar.OptionSetDescription(describe(0, 0)),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(w),
		progressbar.OptionShowCount(),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(w, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)

	return &ProgressBar{bar: bar, parser: p}
}

// Report advances the bar by one binary
func (p *ProgressBar) Report(result domain.Result) {
	passed, failed := p.parser.ParseCaseCounts(result)
	p.completed++
	p.passedCases += passed
	p.failedCases += failed

	p.bar.Describe(describe(p.passedCases, p.failedCases))
	p.bar.Set(p.completed)
}

// Above returns a reporter that clears the bar, lets next print its lines, then advances the bar
func (p *ProgressBar) Above(next Reporter) Reporter {
	return &aboveBar{bar: p, next: next}
}

type aboveBar struct {
	bar  *ProgressBar
	next Reporter
}

func (a *aboveBar) Report(result domain.Result) {
	a.bar.bar.Clear()
	a.next.Report(result)
	a.bar.Report(result)
}

// Finish completes the progress bar
func (p *ProgressBar) Finish() {
	p.bar.Finish()
}

func describe(passed, failed int) string {
	return color.CyanString("Running tests: ") +
		color.GreenString("[cases passed: %d", passed) +
		" | " +
		color.RedString("failed: %d]", failed)
}
