package ui

import (
	"fmt"
	"strings"
	"time"

	"btr/internal/domain"
	"btr/internal/parser"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// FailureViewer displays failed binaries in an interactive TUI
type FailureViewer struct {
	parser *parser.GTestParser
}

// NewFailureViewer creates a new FailureViewer
func NewFailureViewer(p *parser.GTestParser) *FailureViewer {
	return &FailureViewer{parser: p}
}

// View lists failed binaries on the left and the selected binary's details on the right
func (fv *FailureViewer) View(results []domain.Result) error {
	var failed []domain.Result
	for _, r := range results {
		if !r.Passed() {
			failed = append(failed, r)
		}
	}
	if len(failed) == 0 {
		color.Green("✓ No test failures found!")
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	for i, r := range failed {
		list.AddItem(fmt.Sprintf("[yellow]%d.[white] %s", i+1, tview.Escape(r.Candidate.Name)), "", 0, nil)
	}
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 2, 0, false).
		AddItem(detailsView, 0, 1, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true).
		SetText(fmt.Sprintf(" Failed binaries (%d) | ↑↓ navigate, → view output, ← back, q or Ctrl+C to exit ", len(failed)))

	updateDetails := func(index int) {
		if index < 0 || index >= len(failed) {
			return
		}
		statsView.SetText(formatResultStats(failed[index]))
		detailsView.SetText(fv.formatResultDetails(failed[index]))
		detailsView.ScrollToBeginning()
	}

	list.SetChangedFunc(func(index int, _ string, _ string, _ rune) {
		updateDetails(index)
	})

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC, tcell.KeyEsc:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'q' {
				app.Stop()
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	updateDetails(0)

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// formatResultStats formats the header line for a failed binary using tview color tags
func formatResultStats(r domain.Result) string {
	status := fmt.Sprintf("exit code %d", r.ExitCode)
	if r.TimedOut {
		status = "timed out"
	} else if r.Signaled && r.Err != nil {
		status = tview.Escape(r.Err.Error())
	} else if r.Err != nil {
		status = "did not start"
	}
	return fmt.Sprintf("[cyan]path:[white] [yellow]%s[white]  [red]%s[white]  [gray]%s[white]\n",
		tview.Escape(r.Candidate.Path), status, r.Duration.Round(time.Millisecond))
}

// formatResultDetails lists parsed case failures first, then the raw output
func (fv *FailureViewer) formatResultDetails(r domain.Result) string {
	var b strings.Builder

	if r.Err != nil {
		fmt.Fprintf(&b, "[red]error:[white] %s\n\n", tview.Escape(r.Err.Error()))
	}

	if fv.parser != nil {
		for _, fc := range fv.parser.ParseFailures(r) {
			fmt.Fprintf(&b, "[red]✗ %s[white]\n", tview.Escape(fc.Case.FullName()))
			if fc.Message != "" {
				fmt.Fprintf(&b, "%s\n", tview.Escape(fc.Message))
			}
			b.WriteString("\n")
		}
	}

	if r.Stdout != "" {
		fmt.Fprintf(&b, "[yellow]stdout:[white]\n%s\n", tview.Escape(r.Stdout))
	}
	if r.Stderr != "" {
		fmt.Fprintf(&b, "[yellow]stderr:[white]\n%s\n", tview.Escape(r.Stderr))
	}
	return b.String()
}
