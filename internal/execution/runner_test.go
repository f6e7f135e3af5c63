package execution

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"btr/internal/domain"
	"btr/internal/logging"
)

// writeScript creates an executable shell script acting as a test binary
func writeScript(t *testing.T, dir, name, body string) domain.Candidate {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not executable on windows")
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0755); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return domain.NewCandidate(path)
}

func TestRunner_Run(t *testing.T) {
	dir := t.TempDir()
	runner := NewRunner(dir, nil, 0, logging.Nop())
	ctx := context.Background()

	t.Run("zero exit passes", func(t *testing.T) {
		c := writeScript(t, dir, "pass_test", "echo hello\nexit 0")
		result := runner.Run(ctx, c)
		if !result.Passed() {
			t.Fatalf("expected PASS, got %s (err %v)", result.Status, result.Err)
		}
		if result.ExitCode != 0 {
			t.Errorf("expected exit code 0, got %d", result.ExitCode)
		}
		if result.Stdout != "hello\n" {
			t.Errorf("unexpected stdout %q", result.Stdout)
		}
	})

	t.Run("non-zero exit fails with captured output", func(t *testing.T) {
		c := writeScript(t, dir, "fail_test", "echo out\necho err >&2\nexit 2")
		result := runner.Run(ctx, c)
		if result.Passed() {
			t.Fatal("expected FAIL")
		}
		if result.ExitCode != 2 {
			t.Errorf("expected exit code 2, got %d", result.ExitCode)
		}
		if result.Err != nil {
			t.Errorf("plain non-zero exit should not carry an error, got %v", result.Err)
		}
		if result.Stdout != "out\n" || result.Stderr != "err\n" {
			t.Errorf("unexpected output stdout=%q stderr=%q", result.Stdout, result.Stderr)
		}
	})

	t.Run("signal termination names the signal", func(t *testing.T) {
		c := writeScript(t, dir, "killed_test", "echo started\nkill -TERM $$")
		result := runner.Run(ctx, c)
		if result.Passed() {
			t.Fatal("expected FAIL")
		}
		if !result.Signaled {
			t.Error("expected signal termination to be recorded")
		}
		if result.ExitCode != -1 {
			t.Errorf("expected exit code -1, got %d", result.ExitCode)
		}
		if result.Err == nil || !strings.Contains(result.Err.Error(), "signal: terminated") {
			t.Errorf("expected signal in error, got %v", result.Err)
		}
	})

	t.Run("missing binary fails", func(t *testing.T) {
		result := runner.Run(ctx, domain.NewCandidate(filepath.Join(dir, "gone_test")))
		if result.Passed() {
			t.Fatal("expected FAIL")
		}
		if result.Err == nil {
			t.Error("expected launch error")
		}
		if result.ExitCode != -1 {
			t.Errorf("expected exit code -1, got %d", result.ExitCode)
		}
	})

	t.Run("non-executable file fails", func(t *testing.T) {
		c := writeScript(t, dir, "noexec_test", "exit 0")
		if err := os.Chmod(c.Path, 0644); err != nil {
			t.Fatalf("chmod: %v", err)
		}
		result := runner.Run(ctx, c)
		if result.Passed() {
			t.Fatal("expected FAIL")
		}
		if result.Err == nil {
			t.Error("expected launch error")
		}
	})

	t.Run("runs in the configured directory with extra env", func(t *testing.T) {
		envRunner := NewRunner(dir, map[string]string{"BTR_ASSETS": "assets"}, 0, logging.Nop())
		c := writeScript(t, dir, "env_test", "pwd\necho $BTR_ASSETS")
		result := envRunner.Run(ctx, c)
		if !result.Passed() {
			t.Fatalf("expected PASS, got %s", result.Status)
		}
		lines := strings.Split(strings.TrimSpace(result.Stdout), "\n")
		if len(lines) != 2 {
			t.Fatalf("unexpected output %q", result.Stdout)
		}
		wantDir, _ := filepath.EvalSymlinks(dir)
		gotDir, _ := filepath.EvalSymlinks(lines[0])
		if gotDir != wantDir {
			t.Errorf("expected working dir %s, got %s", wantDir, gotDir)
		}
		if lines[1] != "assets" {
			t.Errorf("expected env value, got %q", lines[1])
		}
	})
}

func TestRunner_Timeout(t *testing.T) {
	dir := t.TempDir()
	c := writeScript(t, dir, "hang_test", "exec sleep 10")

	runner := NewRunner(dir, nil, 200*time.Millisecond, logging.Nop())
	start := time.Now()
	result := runner.Run(context.Background(), c)

	if result.Passed() {
		t.Fatal("expected FAIL")
	}
	if !result.TimedOut {
		t.Error("expected timeout to be recorded")
	}
	if time.Since(start) > 5*time.Second {
		t.Errorf("timeout not enforced, took %s", time.Since(start))
	}
}
