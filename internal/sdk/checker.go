package sdk

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/cordova-labs/cordovagen/internal/errs"
	"github.com/cordova-labs/cordovagen/internal/template"
)

// Checker verifies the build environment and names the platform target to
// build against. Target is only meaningful after Run succeeds.
type Checker interface {
	Run(ctx context.Context) error
	Target() (string, error)
}

// SDKChecker checks for java, ant and the SDK tool, and that the target
// named in the framework's project.properties is installed.
type SDKChecker struct {
	Runner Runner
	Layout template.Layout
	Tool   string

	// LookPath and Getenv default to exec.LookPath and os.Getenv.
	LookPath func(string) (string, error)
	Getenv   func(string) string
}

// NewSDKChecker returns a checker using the real PATH and environment.
func NewSDKChecker(runner Runner, layout template.Layout, tool string) *SDKChecker {
	if tool == "" {
		tool = DefaultTool
	}
	return &SDKChecker{
		Runner:   runner,
		Layout:   layout,
		Tool:     tool,
		LookPath: exec.LookPath,
		Getenv:   os.Getenv,
	}
}

// Target reads the `target=` entry of the framework's project.properties.
func (c *SDKChecker) Target() (string, error) {
	path := c.Layout.FrameworkProperties()
	f, err := os.Open(path)
	if err != nil {
		return "", errs.New(errs.Environment, "read target", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if found && strings.TrimSpace(key) == "target" {
			return strings.TrimSpace(value), nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", errs.New(errs.Environment, "read target", err)
	}
	return "", errs.Newf(errs.Environment, "read target", "no target entry in %s", path)
}

// Run checks the environment.
func (c *SDKChecker) Run(ctx context.Context) error {
	const op = "check requirements"

	if _, err := c.lookPath("java"); err != nil {
		return errs.Newf(errs.Environment, op,
			"java not found on PATH: install a JDK and make sure `java` is on your PATH")
	}
	if _, err := c.lookPath("ant"); err != nil {
		return errs.Newf(errs.Environment, op,
			"ant not found on PATH: install Apache Ant and make sure `ant` is on your PATH")
	}

	tool, err := c.resolveTool()
	if err != nil {
		return errs.New(errs.Environment, op, err)
	}

	target, err := c.Target()
	if err != nil {
		return err
	}

	out, err := c.Runner.Capture(ctx, "", tool, "list", "targets")
	if err != nil {
		return &errs.Error{
			Kind:   errs.Environment,
			Op:     op,
			Err:    fmt.Errorf("the command `%s list targets` failed: %w", c.Tool, err),
			Output: out.Combined(),
		}
	}
	if !strings.Contains(out.Stdout, `"`+target+`"`) {
		return errs.Newf(errs.Environment, op,
			"please install Android target %q; hint: run %q from your command line to open the SDK manager",
			target, c.Tool)
	}
	return nil
}

func (c *SDKChecker) resolveTool() (string, error) {
	return ResolveTool(c.Tool, c.lookPath, c.getenv)
}

// ResolveTool finds the SDK tool on PATH, falling back to
// $ANDROID_HOME/tools. The checker and the linker both resolve through here
// so the command that passed the check is the one that runs.
func ResolveTool(tool string, lookPath func(string) (string, error), getenv func(string) string) (string, error) {
	if p, err := lookPath(tool); err == nil {
		return p, nil
	}
	if home := getenv("ANDROID_HOME"); home != "" {
		candidate := filepath.Join(home, "tools", tool)
		if _, err := lookPath(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", errors.New("the `" + tool + "` command was not found: install the Android SDK and add its tools/ directory to your PATH, or set ANDROID_HOME")
}

func (c *SDKChecker) lookPath(name string) (string, error) {
	if c.LookPath != nil {
		return c.LookPath(name)
	}
	return exec.LookPath(name)
}

func (c *SDKChecker) getenv(key string) string {
	if c.Getenv != nil {
		return c.Getenv(key)
	}
	return os.Getenv(key)
}

// APILevel extracts the numeric API level from a target such as
// "android-19".
func APILevel(target string) (string, error) {
	parts := strings.Split(target, "-")
	if len(parts) < 2 || parts[1] == "" {
		return "", errs.Newf(errs.Environment, "parse target", "target %q has no API level", target)
	}
	return parts[1], nil
}
