// Package names validates the package identifier and project name given to
// the create flow and derives the identifiers built from them: the activity
// class name and the package directory path.
package names
