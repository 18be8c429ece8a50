// Package template stages a project tree from a framework installation.
//
// A Layout names every path inside the installation, so nothing here reads a
// process-wide root. The Copier copies the project template, the bridge
// script, the nested CordovaLib library project, the helper scripts and the
// ant rules into a destination. Placeholder substitution is left to the
// caller.
package template
