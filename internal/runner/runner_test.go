package runner

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func requireShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available, skipping")
	}
}

func TestExecRunner_Success(t *testing.T) {
	requireShell(t)

	dir := t.TempDir()
	var stdout bytes.Buffer
	r := &ExecRunner{Stdout: &stdout}

	out, err := r.Run(context.Background(), dir, "sh", "-c", "pwd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.ExitCode != 0 {
		t.Errorf("ExitCode = %d, want 0", out.ExitCode)
	}

	// pwd may resolve symlinks (macOS /private/var), so compare base names.
	if got := filepath.Base(strings.TrimSpace(out.Stdout)); got != filepath.Base(dir) {
		t.Errorf("command ran in %q, want %q", strings.TrimSpace(out.Stdout), dir)
	}
	if stdout.String() != out.Stdout {
		t.Error("stdout was not streamed to the configured writer")
	}
}

func TestExecRunner_NonZeroExit(t *testing.T) {
	requireShell(t)

	r := &ExecRunner{}
	out, err := r.Run(context.Background(), t.TempDir(), "sh", "-c", "echo boom >&2; exit 3")
	if err == nil {
		t.Fatal("expected error for non-zero exit")
	}

	var perr *ProcessInvocationError
	if !errors.As(err, &perr) {
		t.Fatalf("error type = %T, want *ProcessInvocationError", err)
	}
	if perr.ExitCode != 3 {
		t.Errorf("ExitCode = %d, want 3", perr.ExitCode)
	}
	if !strings.Contains(perr.Stderr, "boom") {
		t.Errorf("Stderr = %q, want it to contain boom", perr.Stderr)
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("Error() = %q, want captured stderr", err.Error())
	}
	if out == nil || out.ExitCode != 3 {
		t.Errorf("Output = %+v, want exit code 3", out)
	}
}

func TestExecRunner_MissingExecutable(t *testing.T) {
	r := &ExecRunner{}
	_, err := r.Run(context.Background(), t.TempDir(), "starterkit-no-such-binary", "init")
	if err == nil {
		t.Fatal("expected error for missing executable")
	}

	var perr *ProcessInvocationError
	if !errors.As(err, &perr) {
		t.Fatalf("error type = %T, want *ProcessInvocationError", err)
	}
	if perr.Command != "starterkit-no-such-binary init" {
		t.Errorf("Command = %q", perr.Command)
	}
	if !errors.Is(err, exec.ErrNotFound) {
		t.Errorf("expected error to wrap exec.ErrNotFound, got %v", err)
	}
}

func TestRecorder(t *testing.T) {
	rec := &Recorder{}
	ctx := context.Background()

	rec.Run(ctx, "/tmp/demo", "npm", "init", "-y")
	rec.Run(ctx, "/tmp/demo", "git", "init")

	want := []string{"npm init -y", "git init"}
	got := rec.Commands()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("command[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if rec.Calls()[1].Dir != "/tmp/demo" {
		t.Errorf("Dir = %q", rec.Calls()[1].Dir)
	}
}

func TestRecorder_Hook(t *testing.T) {
	boom := errors.New("boom")
	rec := &Recorder{Hook: func(inv Invocation) (*Output, error) {
		if inv.Name == "git" {
			return nil, &ProcessInvocationError{Command: inv.Command(), Err: boom}
		}
		return &Output{Stdout: "ok"}, nil
	}}

	out, err := rec.Run(context.Background(), ".", "npm", "install")
	if err != nil || out.Stdout != "ok" {
		t.Fatalf("npm: out=%+v err=%v", out, err)
	}
	if _, err := rec.Run(context.Background(), ".", "git", "init"); !errors.Is(err, boom) {
		t.Fatalf("git: err=%v, want boom", err)
	}
}
