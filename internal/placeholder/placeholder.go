// Package placeholder performs in-place token substitution in template files.
//
// This is not a template engine. Each substitution reads the whole file,
// replaces the first match of a pattern with a literal string and writes the
// file back. Later matches of the same token are left alone, so a template
// that repeats a token must list the substitution once per occurrence.
package placeholder

import (
	"fmt"
	"os"
	"regexp"

	"github.com/cordova-labs/cordovagen/internal/errs"
)

// Substitution replaces the first Token in File with Replacement.
type Substitution struct {
	File        string
	Token       string
	Replacement string
}

// Token returns the pattern for a bracketed placeholder, e.g. Token("NAME")
// matches "__NAME__".
func Token(name string) *regexp.Regexp {
	return regexp.MustCompile(regexp.QuoteMeta("__" + name + "__"))
}

// Apply performs the substitution.
func (s Substitution) Apply() error {
	return ReplaceFirst(s.File, Token(s.Token), s.Replacement)
}

// ApplyAll applies subs in order and stops at the first failure.
func ApplyAll(subs []Substitution) error {
	for _, s := range subs {
		if err := s.Apply(); err != nil {
			return err
		}
	}
	return nil
}

// ReplaceFirst replaces the first match of pattern in the file at path with
// the literal replacement. "$" in replacement is not expanded. A file without
// a match is left untouched. A missing file is an error.
func ReplaceFirst(path string, pattern *regexp.Regexp, replacement string) error {
	info, err := os.Stat(path)
	if err != nil {
		return errs.New(errs.Filesystem, "substitute "+pattern.String(), err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return errs.New(errs.Filesystem, "substitute "+pattern.String(), err)
	}

	loc := pattern.FindIndex(data)
	if loc == nil {
		return nil
	}

	out := make([]byte, 0, len(data)-(loc[1]-loc[0])+len(replacement))
	out = append(out, data[:loc[0]]...)
	out = append(out, replacement...)
	out = append(out, data[loc[1]:]...)

	if err := os.WriteFile(path, out, info.Mode().Perm()); err != nil {
		return errs.New(errs.Filesystem, "substitute "+pattern.String(),
			fmt.Errorf("writing %s: %w", path, err))
	}
	return nil
}
