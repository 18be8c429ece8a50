package fsutil

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
)

// Exists reports whether anything is present at path.
func Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// RemoveAll deletes path and everything below it. A missing path is not an
// error.
func RemoveAll(path string) error {
	if err := os.RemoveAll(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// RemoveGlob deletes every file matching pattern and returns the removed
// paths. It stops at the first failed removal.
func RemoveGlob(pattern string) ([]string, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, err
	}
	removed := make([]string, 0, len(matches))
	for _, m := range matches {
		if err := os.Remove(m); err != nil && !errors.Is(err, os.ErrNotExist) {
			return removed, err
		}
		removed = append(removed, m)
	}
	return removed, nil
}

// Step is one unit of best-effort work.
type Step struct {
	Name string
	Run  func() error
}

// BestEffort runs every step in order. Failures, including panics, are
// logged at warn level and never returned; every step runs regardless of
// how the previous one ended. It returns the number of failed steps.
func BestEffort(logger *slog.Logger, steps ...Step) int {
	if logger == nil {
		logger = slog.Default()
	}
	failed := 0
	for _, s := range steps {
		if err := runGuarded(s.Run); err != nil {
			failed++
			logger.Warn("ignoring failed cleanup step", "step", s.Name, "error", err)
		}
	}
	return failed
}

func runGuarded(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.New("panic: " + toString(r))
		}
	}()
	return fn()
}

func toString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case error:
		return x.Error()
	default:
		return "unexpected value"
	}
}
