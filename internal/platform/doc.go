// Package platform papers over permission differences between Unix and
// Windows hosts when staging helper scripts into a project.
package platform
