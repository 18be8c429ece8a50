package sdk

import (
	"bytes"
	"context"
	"runtime"
	"testing"

	"github.com/cordova-labs/cordovagen/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
}

func TestExecRunnerStreamsAndCaptures(t *testing.T) {
	skipOnWindows(t)
	var stdout, stderr bytes.Buffer
	r := &ExecRunner{Stdout: &stdout, Stderr: &stderr}

	out, err := r.Run(context.Background(), "", "sh", "-c", "echo hello; echo warn >&2")

	require.NoError(t, err)
	assert.Equal(t, "hello\n", out.Stdout)
	assert.Equal(t, "warn\n", out.Stderr)
	assert.Equal(t, "hello\n", stdout.String())
	assert.Equal(t, "warn\n", stderr.String())
}

func TestExecRunnerNonZeroExit(t *testing.T) {
	skipOnWindows(t)
	r := &ExecRunner{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}

	out, err := r.Run(context.Background(), "", "sh", "-c", "echo bad target >&2; exit 3")

	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ExternalTool))
	assert.Equal(t, 3, out.ExitCode)
	assert.Equal(t, "bad target\n", errs.OutputOf(err))
	assert.True(t, errs.Streamed(err))
}

func TestExecRunnerCaptureFailureNotStreamed(t *testing.T) {
	skipOnWindows(t)
	r := &ExecRunner{}

	_, err := r.Capture(context.Background(), "", "sh", "-c", "echo no targets >&2; exit 1")

	require.Error(t, err)
	assert.Equal(t, "no targets\n", errs.OutputOf(err))
	assert.False(t, errs.Streamed(err))
}

func TestExecRunnerSpawnFailure(t *testing.T) {
	r := &ExecRunner{}

	_, err := r.Capture(context.Background(), "", "cordovagen-no-such-binary-xyz")

	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ExternalTool))
}

func TestExecRunnerCaptureDoesNotStream(t *testing.T) {
	skipOnWindows(t)
	var stdout bytes.Buffer
	r := &ExecRunner{Stdout: &stdout}

	out, err := r.Capture(context.Background(), "", "sh", "-c", "echo quiet")

	require.NoError(t, err)
	assert.Equal(t, "quiet\n", out.Stdout)
	assert.Empty(t, stdout.String())
}

func TestOutputCombinedNil(t *testing.T) {
	var o *Output
	assert.Empty(t, o.Combined())
}
