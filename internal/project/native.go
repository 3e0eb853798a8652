package project

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// detectAndroidModule reports the dependency's Android library module, if
// it ships one: an android/ directory containing a gradle build file.
func detectAndroidModule(dir string) *AndroidModule {
	src := filepath.Join(dir, "android")
	for _, build := range []string{"build.gradle", "build.gradle.kts"} {
		if _, err := os.Stat(filepath.Join(src, build)); err == nil {
			return &AndroidModule{SourceDir: src}
		}
	}
	return nil
}

// detectPodModule reports the dependency's CocoaPods podspec, if it ships
// one. The podspec may sit at the package root or under ios/. When several
// are present the lexicographically first wins, matching CocoaPods' own
// resolution of ambiguous specs.
func detectPodModule(dir, podNameOverride string) *PodModule {
	for _, base := range []string{dir, filepath.Join(dir, "ios")} {
		matches, err := filepath.Glob(filepath.Join(base, "*.podspec"))
		if err != nil || len(matches) == 0 {
			continue
		}
		sort.Strings(matches)

		path := matches[0]
		name := podNameOverride
		if name == "" {
			name = strings.TrimSuffix(filepath.Base(path), ".podspec")
		}
		return &PodModule{PodspecPath: path, PodName: name}
	}
	return nil
}
