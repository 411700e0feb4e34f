//go:build integration

package integration_test

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/starterkit-labs/starterkit/internal/runner"
	"github.com/starterkit-labs/starterkit/internal/scaffold"
	"github.com/starterkit-labs/starterkit/internal/ui"
)

// testEnv holds an isolated working directory and captured console output.
type testEnv struct {
	WorkDir string // where projects are created
	HomeDir string // HOME, so no user config leaks in
	Out     *bytes.Buffer
	ErrOut  *bytes.Buffer
}

// setupTestEnv creates isolated temp directories and points HOME at one of
// them. The env vars are restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		WorkDir: t.TempDir(),
		HomeDir: t.TempDir(),
		Out:     &bytes.Buffer{},
		ErrOut:  &bytes.Buffer{},
	}
	t.Setenv("HOME", env.HomeDir)
	t.Setenv("npm_config_yes", "true")
	t.Setenv("npm_config_update_notifier", "false")

	return env
}

// scaffolder returns a Scaffolder backed by real processes.
func (e *testEnv) scaffolder() *scaffold.Scaffolder {
	console := ui.NewConsole(e.Out, e.ErrOut)
	return scaffold.New(&runner.ExecRunner{}, console,
		scaffold.WithWorkDir(e.WorkDir),
		scaffold.WithStatus(ui.NewSpinner(e.Out)),
	)
}

// requireTool skips the test when an executable is not on PATH.
func requireTool(t *testing.T, name string) {
	t.Helper()
	if _, err := exec.LookPath(name); err != nil {
		t.Skipf("%s not available: %v", name, err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertDirExists fails the test if the directory does not exist.
func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory to exist: %s (error: %v)", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory, but it is a file", path)
	}
}

// assertEmptyFile fails if the file doesn't exist or has content.
func assertEmptyFile(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
		return
	}
	if info.Size() != 0 {
		t.Errorf("expected %s to be empty, size %d", path, info.Size())
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}

func join(root string, rel string) string {
	return filepath.Join(root, filepath.FromSlash(rel))
}
