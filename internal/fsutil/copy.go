package fsutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// excludedNames are never copied out of a framework or template tree.
var excludedNames = map[string]bool{
	".git":      true,
	".DS_Store": true,
}

// CopyDir recursively copies the directory src to dst. dst is created if
// missing and existing files in it are overwritten. Symlinks and other
// special files are skipped.
func CopyDir(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}
	if !srcInfo.IsDir() {
		return fmt.Errorf("%s is not a directory", src)
	}

	if err := os.MkdirAll(dst, srcInfo.Mode().Perm()|0700); err != nil {
		return err
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if shouldExclude(entry.Name()) {
			continue
		}

		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		if entry.IsDir() {
			if err := CopyDir(srcPath, dstPath); err != nil {
				return err
			}
		} else if entry.Type().IsRegular() {
			if err := CopyFile(srcPath, dstPath); err != nil {
				return err
			}
		}
	}

	return nil
}

// CopyFile copies a single file from src to dst, overwriting dst and
// preserving the source permissions plus the owner write bit. Missing parent directories of dst are
// created.
func CopyFile(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}
	if srcInfo.IsDir() {
		return fmt.Errorf("%s is a directory", src)
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}

	// Copies are always owner-writable: placeholders are substituted in place
	// and later updates overwrite them, even from a read-only installation.
	mode := srcInfo.Mode().Perm() | 0200
	if info, err := os.Lstat(dst); err == nil && info.Mode().Perm()&0200 == 0 {
		if err := os.Chmod(dst, info.Mode().Perm()|0200); err != nil {
			return err
		}
	}

	if err := os.WriteFile(dst, data, mode); err != nil {
		return err
	}
	// WriteFile keeps the old mode of an existing file.
	return os.Chmod(dst, mode)
}

// CopyInto copies src (file or directory) into the directory dstDir, keeping
// its base name, like `cp -r src dstDir`.
func CopyInto(src, dstDir string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	target := filepath.Join(dstDir, filepath.Base(src))
	if info.IsDir() {
		return CopyDir(src, target)
	}
	return CopyFile(src, target)
}

func shouldExclude(name string) bool {
	return excludedNames[name]
}
