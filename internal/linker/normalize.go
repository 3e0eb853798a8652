package linker

import "strings"

// NormalizePackageName strips a trailing @version or @tag suffix from a raw
// package argument, so "my-pkg@1.2.3" resolves the "my-pkg" dependency.
// The cut happens at the first '@' past position zero: the leading '@' of a
// scoped package is never treated as a version separator, so
// "@org/pkg@2.0.0" yields "@org/pkg" and a bare "@org/pkg" is unchanged.
//
// Known edge case: for a scoped package the scope separator and the version
// separator are the same character, and this function keeps the historical
// first-match behavior rather than guessing an interpretation.
func NormalizePackageName(raw string) string {
	if idx := versionSeparator(raw); idx >= 0 {
		return raw[:idx]
	}
	return raw
}

// VersionSuffix returns the stripped version or tag, "" when none present.
func VersionSuffix(raw string) string {
	if idx := versionSeparator(raw); idx >= 0 {
		return raw[idx+1:]
	}
	return ""
}

// versionSeparator returns the index of the '@' starting the version
// suffix, or -1. The separator must have at least one character on each
// side, so neither a leading nor a trailing '@' qualifies.
func versionSeparator(raw string) int {
	if len(raw) < 3 {
		return -1
	}
	idx := strings.Index(raw[1:], "@")
	if idx < 0 {
		return -1
	}
	abs := idx + 1
	if abs == len(raw)-1 {
		return -1
	}
	return abs
}
