package sdk

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/cordova-labs/cordovagen/internal/errs"
	"github.com/cordova-labs/cordovagen/internal/template"
)

// DefaultTool is the SDK command used when none is configured.
const DefaultTool = "android"

// Linker registers a project's subprojects and library reference with the
// SDK build configuration.
type Linker struct {
	Runner Runner
	Tool   string
	Layout template.Layout
	Logger *slog.Logger

	// LookPath and Getenv resolve Tool like SDKChecker does. With a nil
	// LookPath the tool name is run as given.
	LookPath func(string) (string, error)
	Getenv   func(string) string
}

// NewLinker returns a Linker invoking tool through runner.
func NewLinker(runner Runner, tool string, layout template.Layout, logger *slog.Logger) *Linker {
	if tool == "" {
		tool = DefaultTool
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Linker{
		Runner:   runner,
		Tool:     tool,
		Layout:   layout,
		Logger:   logger,
		LookPath: exec.LookPath,
		Getenv:   os.Getenv,
	}
}

// Args returns the arguments for `update project`. The library is given
// relative to dest, which is what the SDK writes into project.properties.
func (l *Linker) Args(dest, target string, shared bool) ([]string, error) {
	absDest, err := filepath.Abs(dest)
	if err != nil {
		return nil, errs.New(errs.Filesystem, "resolve project path", err)
	}
	absLib, err := filepath.Abs(l.Layout.LibraryDir(dest, shared))
	if err != nil {
		return nil, errs.New(errs.Filesystem, "resolve library path", err)
	}
	rel, err := filepath.Rel(absDest, absLib)
	if err != nil {
		return nil, errs.New(errs.Filesystem, "resolve library path", err)
	}
	return []string{
		"update", "project", "--subprojects",
		"--path", dest,
		"--target", target,
		"--library", rel,
	}, nil
}

// UpdateProject runs `<tool> update project` for dest against target and
// returns the tool's stdout.
func (l *Linker) UpdateProject(ctx context.Context, dest, target string, shared bool) (string, error) {
	args, err := l.Args(dest, target, shared)
	if err != nil {
		return "", err
	}

	tool := l.command()
	l.Logger.Info("Running: " + tool + " " + quoteArgs(args))

	out, err := l.Runner.Run(ctx, "", tool, args...)
	if err != nil {
		if errs.KindOf(err) == errs.ExternalTool {
			return "", &errs.Error{
				Kind:     errs.ExternalTool,
				Op:       "update project",
				Err:      err,
				Output:   errs.OutputOf(err),
				Streamed: errs.Streamed(err),
			}
		}
		return "", errs.New(errs.ExternalTool, "update project", err)
	}
	return out.Stdout, nil
}

// command returns the resolved tool path, or Tool itself when it cannot be
// resolved so the runner reports the spawn failure.
func (l *Linker) command() string {
	if l.LookPath == nil {
		return l.Tool
	}
	getenv := l.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	if p, err := ResolveTool(l.Tool, l.LookPath, getenv); err == nil {
		return p
	}
	return l.Tool
}

func quoteArgs(args []string) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		if strings.ContainsAny(a, " \t\"") {
			quoted[i] = fmt.Sprintf("%q", a)
		} else {
			quoted[i] = a
		}
	}
	return strings.Join(quoted, " ")
}
