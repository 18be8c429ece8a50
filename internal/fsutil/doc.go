// Package fsutil holds the filesystem primitives used to stage a project:
// recursive and single-file copies that overwrite, absence-tolerant removal,
// glob removal and a best-effort runner for cleanup steps whose failure must
// not abort the surrounding flow.
package fsutil
