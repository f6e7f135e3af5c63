package ui

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"btr/internal/domain"
	"btr/internal/parser"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func passed(name string) domain.Result {
	return domain.Result{Candidate: domain.NewCandidate("/bin/Debug/" + name), Status: domain.StatusPass, Stdout: "noise\n"}
}

func failed(name string, code int, stdout, stderr string) domain.Result {
	return domain.Result{
		Candidate: domain.NewCandidate("/bin/Debug/" + name),
		Status:    domain.StatusFail,
		ExitCode:  code,
		Stdout:    stdout,
		Stderr:    stderr,
	}
}

func TestFormatter_Transcript(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(&buf, parser.NewGTestParser())

	f.PrintHeader(2)
	f.Report(passed("a_test"))
	f.Report(failed("b_test", 2, "assertion failed", "stack\n"))
	f.PrintSummary(domain.Summary{Total: 2, Failed: 1})

	want := `Running 2 test(s)...
--------------------------------------------------
[PASS] a_test
[FAIL] b_test
assertion failed
stack
--------------------------------------------------
Test run failed: 1 test(s) failed!
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("transcript mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatter_AllPassed(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(&buf, nil)

	f.PrintSummary(domain.Summary{Total: 3})

	if !strings.HasSuffix(buf.String(), "All tests passed successfully!\n") {
		t.Errorf("unexpected summary %q", buf.String())
	}
}

func TestFormatter_NoTests(t *testing.T) {
	var buf bytes.Buffer
	NewFormatter(&buf, nil).PrintNoTests()

	if buf.String() != "No test executables found!\n" {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestFormatter_FailureDetails(t *testing.T) {
	t.Run("launch error is shown", func(t *testing.T) {
		var buf bytes.Buffer
		r := failed("c_test", -1, "", "")
		r.Err = errors.New("permission denied")
		NewFormatter(&buf, nil).Report(r)

		want := "[FAIL] c_test\nerror: permission denied\n"
		if buf.String() != want {
			t.Errorf("expected %q, got %q", want, buf.String())
		}
	})

	t.Run("signal is named as the reason", func(t *testing.T) {
		var buf bytes.Buffer
		r := failed("crash_test", -1, "[ RUN      ] MeshTest.Load\n", "")
		r.Signaled = true
		r.Err = errors.New("signal: segmentation fault")
		NewFormatter(&buf, nil).Report(r)

		want := "[FAIL] crash_test\n[ RUN      ] MeshTest.Load\nerror: signal: segmentation fault\n"
		if buf.String() != want {
			t.Errorf("expected %q, got %q", want, buf.String())
		}
	})

	t.Run("gtest failures are listed after output", func(t *testing.T) {
		var buf bytes.Buffer
		out := "[ RUN      ] MathTest.Add\nwrong\n[  FAILED  ] MathTest.Add (0 ms)\n"
		NewFormatter(&buf, parser.NewGTestParser()).Report(failed("math_test", 1, out, ""))

		if !strings.HasPrefix(buf.String(), "[FAIL] math_test\n"+out) {
			t.Errorf("raw output not printed verbatim: %q", buf.String())
		}
		if !strings.HasSuffix(buf.String(), "failed cases: MathTest.Add\n") {
			t.Errorf("failed cases missing: %q", buf.String())
		}
	})
}

func TestFormatter_PrintTestList(t *testing.T) {
	var buf bytes.Buffer
	c := domain.NewCandidate("/bin/Debug/result_test")
	cases := map[string][]domain.TestCase{
		c.Path: {{Suite: "ResultTest", Name: "HoldsValue"}},
	}

	NewFormatter(&buf, nil).PrintTestList([]domain.Candidate{c}, cases)

	want := "Found 1 test executable(s)\n  /bin/Debug/result_test\n    |_ ResultTest.HoldsValue\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("list mismatch (-want +got):\n%s", diff)
	}
}

func TestProgressBar_Report(t *testing.T) {
	bar := NewProgressBar(2, io.Discard, parser.NewGTestParser())
	var buf bytes.Buffer
	reporter := bar.Above(NewFormatter(&buf, nil))

	reporter.Report(passed("a_test"))
	reporter.Report(failed("b_test", 1, "[  PASSED  ] 3 tests.\n[  FAILED  ] 2 tests, listed below:\n", ""))
	bar.Finish()

	if bar.completed != 2 {
		t.Errorf("expected 2 completed, got %d", bar.completed)
	}
	if bar.passedCases != 4 || bar.failedCases != 2 {
		t.Errorf("unexpected case counts passed=%d failed=%d", bar.passedCases, bar.failedCases)
	}
	if !strings.Contains(buf.String(), "[FAIL] b_test") {
		t.Errorf("wrapped formatter not called: %q", buf.String())
	}
}
