package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// readLines splits a build file into lines, preserving content exactly.
// A trailing newline yields no empty final element.
func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	text := strings.TrimSuffix(string(data), "\n")
	if text == "" {
		return nil, nil
	}
	return strings.Split(text, "\n"), nil
}

// writeLines writes lines back atomically.
func writeLines(path string, lines []string) error {
	return writeFileAtomic(path, []byte(strings.Join(lines, "\n")+"\n"))
}

// writeFileAtomic replaces path via a temp file in the same directory and a
// rename, so a crash never leaves a half-written build file.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("creating temp file for %s: %w", path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", path, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}

// hasLine reports whether any line, trimmed, equals want.
func hasLine(lines []string, want string) bool {
	for _, line := range lines {
		if strings.TrimSpace(line) == want {
			return true
		}
	}
	return false
}

// insertAfter inserts newLines after the first line whose trimmed content
// matches the anchor predicate. Returns false when no anchor line exists.
func insertAfter(lines []string, anchor func(string) bool, newLines ...string) ([]string, bool) {
	for i, line := range lines {
		if anchor(strings.TrimSpace(line)) {
			out := make([]string, 0, len(lines)+len(newLines))
			out = append(out, lines[:i+1]...)
			out = append(out, newLines...)
			out = append(out, lines[i+1:]...)
			return out, true
		}
	}
	return lines, false
}

// removeLines drops every line whose trimmed content matches the predicate.
func removeLines(lines []string, match func(string) bool) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if match(strings.TrimSpace(line)) {
			continue
		}
		out = append(out, line)
	}
	return out
}

// fileHasLine reads a build file and reports whether it contains the line.
func fileHasLine(path, want string) (bool, error) {
	lines, err := readLines(path)
	if err != nil {
		return false, err
	}
	return hasLine(lines, want), nil
}

// relPosix returns the path of target relative to base using forward
// slashes, the form both gradle and Podfile entries expect.
func relPosix(base, target string) (string, error) {
	rel, err := filepath.Rel(base, target)
	if err != nil {
		return "", fmt.Errorf("resolving path of %s relative to %s: %w", target, base, err)
	}
	return filepath.ToSlash(rel), nil
}
