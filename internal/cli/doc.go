// Package cli defines the Cobra command tree for cordovagen. Each file
// registers one top-level command with the root command. Commands delegate
// to internal/project for the work and only handle arguments, wiring and
// output.
package cli
