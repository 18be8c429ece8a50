package project

import (
	"context"
	"errors"
)

type fakeChecker struct {
	runErr    error
	target    string
	targetErr error
	runs      int
}

func (f *fakeChecker) Run(context.Context) error {
	f.runs++
	return f.runErr
}

func (f *fakeChecker) Target() (string, error) {
	if f.targetErr != nil {
		return "", f.targetErr
	}
	return f.target, nil
}

type linkCall struct {
	Dest   string
	Target string
	Shared bool
}

type fakeLinker struct {
	calls []linkCall
	err   error
}

func (f *fakeLinker) UpdateProject(_ context.Context, dest, target string, shared bool) (string, error) {
	f.calls = append(f.calls, linkCall{Dest: dest, Target: target, Shared: shared})
	if f.err != nil {
		return "", f.err
	}
	return "Updated project.properties", nil
}

var errNoJava = errors.New("java not found")
