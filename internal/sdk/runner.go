package sdk

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/cordova-labs/cordovagen/internal/errs"
)

// Output captures the result of an external command.
type Output struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Combined returns stdout followed by stderr.
func (o *Output) Combined() string {
	if o == nil {
		return ""
	}
	return o.Stdout + o.Stderr
}

// Runner executes external commands.
type Runner interface {
	// Run executes the command, streaming its output to the console as it is
	// produced while capturing it.
	Run(ctx context.Context, dir, name string, args ...string) (*Output, error)
	// Capture executes the command without streaming.
	Capture(ctx context.Context, dir, name string, args ...string) (*Output, error)
}

// ExecRunner is the os/exec implementation of Runner.
type ExecRunner struct {
	// Stdout and Stderr receive streamed output; they default to
	// os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

// Run implements Runner.
func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) (*Output, error) {
	stdout := r.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := r.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}
	return run(ctx, dir, stdout, stderr, true, name, args...)
}

// Capture implements Runner.
func (r *ExecRunner) Capture(ctx context.Context, dir, name string, args ...string) (*Output, error) {
	return run(ctx, dir, io.Discard, io.Discard, false, name, args...)
}

// run executes the command. A non-zero exit or a spawn failure is returned
// as an errs.ExternalTool error that carries the captured output.
func run(ctx context.Context, dir string, stdout, stderr io.Writer, streamed bool, name string, args ...string) (*Output, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = io.MultiWriter(stdout, &stdoutBuf)
	cmd.Stderr = io.MultiWriter(stderr, &stderrBuf)

	err := cmd.Run()

	output := &Output{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}
	if err == nil {
		return output, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		output.ExitCode = exitErr.ExitCode()
		return output, &errs.Error{
			Kind:     errs.ExternalTool,
			Op:       name,
			Err:      fmt.Errorf("exited with status %d", output.ExitCode),
			Output:   output.Combined(),
			Streamed: streamed,
		}
	}
	output.ExitCode = -1
	return output, &errs.Error{
		Kind:     errs.ExternalTool,
		Op:       name,
		Err:      fmt.Errorf("starting command: %w", err),
		Output:   output.Combined(),
		Streamed: streamed,
	}
}
