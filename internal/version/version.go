// Package version reads the framework's VERSION file and compares versions
// recorded in generated projects.
package version

import (
	"fmt"
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Read returns the trimmed contents of a VERSION file after checking that it
// parses as a semantic version.
func Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading version file: %w", err)
	}
	v := strings.TrimSpace(string(data))
	if _, err := parse(v); err != nil {
		return "", fmt.Errorf("parsing version %q in %s: %w", v, path, err)
	}
	return v, nil
}

// Compare compares two version strings using semver.
// Returns -1 if a < b, 0 if equal, 1 if a > b.
// A leading "v" is tolerated.
func Compare(a, b string) (int, error) {
	av, err := parse(a)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", a, err)
	}
	bv, err := parse(b)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", b, err)
	}
	return av.Compare(bv), nil
}

// IsDowngrade reports whether moving from previous to next goes backwards.
func IsDowngrade(previous, next string) (bool, error) {
	cmp, err := Compare(previous, next)
	if err != nil {
		return false, err
	}
	return cmp == 1, nil
}

func parse(v string) (*semver.Version, error) {
	return semver.NewVersion(strings.TrimPrefix(v, "v"))
}
