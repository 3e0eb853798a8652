package project

import (
	"github.com/natlink-labs/natlink/internal/hooks"
)

// Config is the loaded project: root metadata plus the linkable dependency
// map. Platform project detection is layered on top by the linker.
type Config struct {
	// Root is the absolute project root (the directory holding package.json).
	Root string

	// Name and Version come from the project's package.json.
	Name    string
	Version string

	// Dependencies maps package name to its linking record.
	Dependencies map[string]*Dependency

	// Assets are project-level asset paths (absolute), linked by "link"
	// with no package argument alongside the dependencies.
	Assets []string
}

// Dependency is the linking record for one installed package.
type Dependency struct {
	Name    string
	Version string

	// RootDir is the package directory under node_modules.
	RootDir string

	// Assets are the dependency's asset paths, absolute, in manifest order.
	Assets []string

	// Hooks are the bound lifecycle callables. Nil fields mean the phase
	// is not declared and is skipped.
	Hooks Hooks

	// Platforms restricts linking to the named platform keys. Empty means
	// every platform the dependency ships native code for.
	Platforms []string

	// Android is set when the package ships an Android library module.
	Android *AndroidModule

	// IOS is set when the package ships a CocoaPods podspec.
	IOS *PodModule
}

// Hooks holds the optional lifecycle callables of a dependency.
type Hooks struct {
	Prelink    hooks.Func
	Postlink   hooks.Func
	Preunlink  hooks.Func
	Postunlink hooks.Func
}

// AndroidModule describes a dependency's Android library module.
type AndroidModule struct {
	// SourceDir is the absolute path of the module (contains build.gradle).
	SourceDir string
}

// PodModule describes a dependency's CocoaPods integration.
type PodModule struct {
	// PodspecPath is the absolute path of the .podspec file.
	PodspecPath string

	// PodName is the pod name registered in the Podfile.
	PodName string
}

// TargetsPlatform reports whether the dependency may be linked into the
// given platform. An empty Platforms list means no restriction.
func (d *Dependency) TargetsPlatform(key string) bool {
	if len(d.Platforms) == 0 {
		return true
	}
	for _, p := range d.Platforms {
		if p == key {
			return true
		}
	}
	return false
}
