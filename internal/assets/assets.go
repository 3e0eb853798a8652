// Package assets implements the file operations shared by the platform
// linkers: expanding manifest asset entries into concrete files, font
// detection, and byte-for-byte copy/removal with mode preservation.
package assets

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// fontExtensions are the file extensions treated as fonts. Fonts get
// platform-specific registration on top of the plain copy.
var fontExtensions = map[string]bool{
	".ttf": true,
	".otf": true,
}

// Expand resolves asset entries to concrete files, preserving entry order.
// A file entry contributes itself; a directory entry contributes its
// regular files recursively, sorted by path. Missing entries are an error:
// a manifest pointing at nothing is a packaging bug worth surfacing.
func Expand(entries []string) ([]string, error) {
	var files []string
	for _, entry := range entries {
		info, err := os.Stat(entry)
		if err != nil {
			return nil, fmt.Errorf("asset %s: %w", entry, err)
		}

		if !info.IsDir() {
			files = append(files, entry)
			continue
		}

		var inDir []string
		err = filepath.WalkDir(entry, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() {
				inDir = append(inDir, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking asset directory %s: %w", entry, err)
		}
		sort.Strings(inDir)
		files = append(files, inDir...)
	}
	return files, nil
}

// IsFont reports whether the file is a font by extension.
func IsFont(path string) bool {
	return fontExtensions[strings.ToLower(filepath.Ext(path))]
}

// CopyFile copies src into dstDir under its base name, creating dstDir if
// needed and preserving the source mode. An existing destination file is
// overwritten.
func CopyFile(src, dstDir string) error {
	if err := os.MkdirAll(dstDir, 0755); err != nil {
		return fmt.Errorf("creating asset directory %s: %w", dstDir, err)
	}

	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("reading asset %s: %w", src, err)
	}

	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening asset %s: %w", src, err)
	}
	defer in.Close()

	dst := filepath.Join(dstDir, filepath.Base(src))
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("creating asset copy %s: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copying asset to %s: %w", dst, err)
	}
	return out.Close()
}

// Remove deletes the copy of src from dstDir. A copy that was never made
// (or was removed already) is not an error.
func Remove(src, dstDir string) error {
	dst := filepath.Join(dstDir, filepath.Base(src))
	if err := os.Remove(dst); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing asset copy %s: %w", dst, err)
	}
	return nil
}
