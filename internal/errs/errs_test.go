package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNil(t *testing.T) {
	assert.NoError(t, New(Filesystem, "copy", nil))
}

func TestKindSurvivesWrapping(t *testing.T) {
	base := errors.New("disk full")
	err := fmt.Errorf("creating project: %w", New(Filesystem, "copy template", base))

	assert.Equal(t, Filesystem, KindOf(err))
	assert.True(t, Is(err, Filesystem))
	assert.False(t, Is(err, Environment))
	assert.ErrorIs(t, err, base)
	assert.Contains(t, err.Error(), "copy template: disk full")
}

func TestKindOfPlainError(t *testing.T) {
	assert.Equal(t, Unknown, KindOf(errors.New("boom")))
	assert.False(t, Is(nil, Unknown))
}

func TestOutputOf(t *testing.T) {
	err := &Error{Kind: ExternalTool, Op: "update project", Err: errors.New("exit status 1"), Output: "Error: Target id is not valid"}
	wrapped := fmt.Errorf("linking: %w", err)

	require.Equal(t, ExternalTool, KindOf(wrapped))
	assert.Equal(t, "Error: Target id is not valid", OutputOf(wrapped))
	assert.Empty(t, OutputOf(errors.New("x")))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "manifest parse", ManifestParse.String())
	assert.Equal(t, "kind(42)", Kind(42).String())
}

func TestStreamed(t *testing.T) {
	err := fmt.Errorf("create: %w", &Error{Kind: ExternalTool, Err: errors.New("exit 1"), Output: "x", Streamed: true})
	assert.True(t, Streamed(err))
	assert.False(t, Streamed(New(ExternalTool, "op", errors.New("exit 1"))))
	assert.False(t, Streamed(errors.New("plain")))
}
