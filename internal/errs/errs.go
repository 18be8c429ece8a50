// Package errs defines the error taxonomy shared by the create and update
// flows. Every failure that leaves the project package is an *Error carrying
// a Kind, so the CLI can pick an exit code and callers can tell a rejected
// input apart from a half-written destination tree.
package errs

import (
	"errors"
	"fmt"
)

// Kind classifies a failure.
type Kind int

const (
	// Unknown is reported for errors that did not pass through this package.
	Unknown Kind = iota
	// InputValidation is a bad package identifier or project name. Nothing was written.
	InputValidation
	// Precondition is a destination that already exists. Nothing was written.
	Precondition
	// Environment is a missing SDK, tool or platform target. Nothing was written.
	Environment
	// Filesystem is a copy, delete or write failure in the middle of a flow.
	Filesystem
	// ManifestParse means the update flow could not find the activity name.
	ManifestParse
	// ExternalTool is a non-zero exit or spawn failure of the SDK tool.
	ExternalTool
)

var kindNames = map[Kind]string{
	Unknown:         "unknown",
	InputValidation: "input validation",
	Precondition:    "precondition",
	Environment:     "environment",
	Filesystem:      "filesystem",
	ManifestParse:   "manifest parse",
	ExternalTool:    "external tool",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Error is a classified failure.
type Error struct {
	Kind Kind
	// Op names the step that failed, e.g. "copy template" or "update project".
	Op  string
	Err error
	// Output holds whatever the external tool printed, when Kind is ExternalTool.
	Output string
	// Streamed is set when Output already reached the console while the tool
	// ran.
	Streamed bool
}

func (e *Error) Error() string {
	if e.Op == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// New wraps err with a kind and operation name. A nil err yields nil.
func New(kind Kind, op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

// Newf builds a classified error from a format string.
func Newf(kind Kind, op, format string, args ...any) error {
	return &Error{Kind: kind, Op: op, Err: fmt.Errorf(format, args...)}
}

// KindOf reports the kind of the outermost *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// OutputOf returns the captured tool output attached to err, if any.
func OutputOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Output
	}
	return ""
}

// Streamed reports whether the tool output attached to err was already
// shown to the user.
func Streamed(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Streamed
	}
	return false
}
