package names

import (
	"errors"
	"os"
	"regexp"
	"strings"

	"github.com/cordova-labs/cordovagen/internal/errs"
)

// ReservedActivity is the framework's own activity class. A project may not
// shadow it.
const ReservedActivity = "CordovaActivity"

// Validation reasons. The returned errors wrap one of these, so callers can
// use errors.Is.
var (
	ErrInvalidFormat = errors.New("package name must look like: com.company.Name")
	ErrReservedWord  = errors.New("class is a reserved word")
	ErrEmpty         = errors.New("project name cannot be empty")
	ErrReservedName  = errors.New("project name cannot be " + ReservedActivity)
	ErrInvalidStart  = errors.New("project name must not begin with a number")
	ErrNoIdentifier  = errors.New("project name must contain at least one letter, digit or underscore")
)

var (
	packagePattern  = regexp.MustCompile(`^[a-zA-Z]+(\.[a-zA-Z0-9][a-zA-Z0-9_]*)+$`)
	reservedPattern = regexp.MustCompile(`(?i)\bclass\b`)
	nonWord         = regexp.MustCompile(`\W`)
)

// ValidatePackage checks that name is usable as a Java package for the
// generated activity.
func ValidatePackage(name string) error {
	if !packagePattern.MatchString(name) {
		return errs.New(errs.InputValidation, "validate package", ErrInvalidFormat)
	}
	if reservedPattern.MatchString(name) {
		return errs.New(errs.InputValidation, "validate package", ErrReservedWord)
	}
	return nil
}

// ValidateName checks that name is usable as the activity class name.
func ValidateName(name string) error {
	switch {
	case name == "":
		return errs.New(errs.InputValidation, "validate name", ErrEmpty)
	case name == ReservedActivity:
		return errs.New(errs.InputValidation, "validate name", ErrReservedName)
	case name[0] >= '0' && name[0] <= '9':
		return errs.New(errs.InputValidation, "validate name", ErrInvalidStart)
	}
	return nil
}

// SafeActivityName strips every non-word character from a display name.
func SafeActivityName(name string) string {
	return nonWord.ReplaceAllString(name, "")
}

// PackageAsPath turns "com.example.app" into "com/example/app" using the
// host path separator.
func PackageAsPath(pkg string) string {
	return strings.ReplaceAll(pkg, ".", string(os.PathSeparator))
}
