package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// Runner runs command name with args, with dir as the working directory.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) (*Output, error)
}

// Output captures the result of a command.
type Output struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// ProcessInvocationError is returned when a command fails to launch or exits
// non-zero. Stderr holds whatever the command wrote before failing.
type ProcessInvocationError struct {
	Command  string
	Dir      string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *ProcessInvocationError) Error() string {
	detail := strings.TrimSpace(e.Stderr)
	if detail == "" && e.Err != nil {
		detail = e.Err.Error()
	}
	return fmt.Sprintf("executing %q: %s", e.Command, detail)
}

func (e *ProcessInvocationError) Unwrap() error { return e.Err }

// ExecRunner runs commands with os/exec.
type ExecRunner struct {
	// Stdout and Stderr, when set, also receive the command's output as it
	// is produced. Output is always captured.
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes the command and waits for it to finish.
func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) (*Output, error) {
	command := commandLine(name, args)

	bin, err := exec.LookPath(name)
	if err != nil {
		return nil, &ProcessInvocationError{Command: command, Dir: dir, ExitCode: -1, Err: err}
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = tee(&stdoutBuf, r.Stdout)
	cmd.Stderr = tee(&stderrBuf, r.Stderr)

	err = cmd.Run()

	output := &Output{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}

	if err != nil {
		perr := &ProcessInvocationError{
			Command:  command,
			Dir:      dir,
			ExitCode: -1,
			Stderr:   output.Stderr,
			Err:      err,
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			perr.ExitCode = exitErr.ExitCode()
			output.ExitCode = perr.ExitCode
		}
		return output, perr
	}

	return output, nil
}

func tee(buf *bytes.Buffer, w io.Writer) io.Writer {
	if w == nil {
		return buf
	}
	return io.MultiWriter(buf, w)
}

func commandLine(name string, args []string) string {
	return strings.TrimSpace(name + " " + strings.Join(args, " "))
}
