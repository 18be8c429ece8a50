package sdk

import (
	"context"
	"strings"
)

// call records one invocation of fakeRunner.
type call struct {
	Dir  string
	Name string
	Args []string
}

func (c call) String() string {
	return c.Name + " " + strings.Join(c.Args, " ")
}

// fakeRunner returns canned output and records calls.
type fakeRunner struct {
	calls  []call
	output *Output
	err    error
}

func (f *fakeRunner) Run(_ context.Context, dir, name string, args ...string) (*Output, error) {
	f.calls = append(f.calls, call{Dir: dir, Name: name, Args: args})
	out := f.output
	if out == nil {
		out = &Output{}
	}
	return out, f.err
}

func (f *fakeRunner) Capture(ctx context.Context, dir, name string, args ...string) (*Output, error) {
	return f.Run(ctx, dir, name, args...)
}
