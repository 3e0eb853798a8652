package project

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/natlink-labs/natlink/internal/hooks"
	"github.com/natlink-labs/natlink/internal/manifest"
	"go.trai.ch/zerr"
)

const (
	packageFile  = "package.json"
	manifestFile = "natlink.yaml"
	modulesDir   = "node_modules"
)

// Load builds the linking view of the project rooted at root. Declared
// dependencies that are not installed, or that ship no native code, assets,
// or hooks, are left out of the result.
func Load(root string) (*Config, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving project root: %w", err)
	}

	pkgPath := filepath.Join(abs, packageFile)
	if _, err := os.Stat(pkgPath); err != nil {
		return nil, zerr.With(zerr.Wrap(ErrNoPackageJSON, ""), "root", abs)
	}

	pkg, err := manifest.ParsePackageJSON(pkgPath)
	if err != nil {
		return nil, err
	}

	projectLink := manifest.LinkManifest{}
	if pkg.Natlink != nil {
		projectLink = *pkg.Natlink
	}

	overrides := map[string]manifest.LinkManifest{}
	if pm, err := loadProjectManifest(abs); err != nil {
		return nil, err
	} else if pm != nil {
		projectLink = manifest.Merge(projectLink, manifest.LinkManifest{Assets: pm.Assets})
		overrides = pm.Dependencies
	}

	cfg := &Config{
		Root:         abs,
		Name:         pkg.Name,
		Version:      pkg.Version,
		Dependencies: make(map[string]*Dependency),
		Assets:       resolveAssets(abs, projectLink.Assets),
	}

	runner := &hooks.Runner{}
	for _, name := range declaredNames(pkg) {
		dep, err := loadDependency(runner, abs, name, overrides[name])
		if err != nil {
			return nil, err
		}
		if dep != nil {
			cfg.Dependencies[name] = dep
		}
	}

	return cfg, nil
}

// loadProjectManifest reads and validates natlink.yaml if it exists.
// Returns (nil, nil) when the project has no manifest file.
func loadProjectManifest(root string) (*manifest.ProjectManifest, error) {
	path := filepath.Join(root, manifestFile)
	if _, err := os.Stat(path); err != nil {
		return nil, nil
	}

	result, err := manifest.ValidateFile(path)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		return nil, zerr.With(zerr.Wrap(ErrInvalidManifest, ""), "issues", formatIssues(result.Issues))
	}

	return manifest.ParseProject(path)
}

// loadDependency builds the linking record for one declared package.
// Returns (nil, nil) when the package is not installed or not linkable.
func loadDependency(runner *hooks.Runner, root, name string, override manifest.LinkManifest) (*Dependency, error) {
	dir := filepath.Join(root, modulesDir, filepath.FromSlash(name))
	pkgPath := filepath.Join(dir, packageFile)
	if _, err := os.Stat(pkgPath); err != nil {
		return nil, nil
	}

	pkg, err := manifest.ParsePackageJSON(pkgPath)
	if err != nil {
		return nil, err
	}

	link := manifest.LinkManifest{}
	if pkg.Natlink != nil {
		link = *pkg.Natlink
	}
	link = manifest.Merge(link, override)

	android := detectAndroidModule(dir)
	ios := detectPodModule(dir, link.PodName)

	if android == nil && ios == nil && len(link.Assets) == 0 && !declaresHooks(link.Commands) {
		return nil, nil
	}

	env := map[string]string{
		"PROJECT_ROOT": root,
		"PACKAGE":      name,
	}

	return &Dependency{
		Name:      name,
		Version:   pkg.Version,
		RootDir:   dir,
		Assets:    resolveAssets(dir, link.Assets),
		Hooks:     bindHooks(runner, link.Commands, dir, env),
		Platforms: normalizePlatforms(link.Platforms),
		Android:   android,
		IOS:       ios,
	}, nil
}

// declaredNames returns the union of dependencies and devDependencies,
// sorted for deterministic loading.
func declaredNames(pkg *manifest.PackageJSON) []string {
	seen := make(map[string]bool, len(pkg.Dependencies)+len(pkg.DevDependencies))
	for name := range pkg.Dependencies {
		seen[name] = true
	}
	for name := range pkg.DevDependencies {
		seen[name] = true
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// bindHooks turns declared command lines into executable hook funcs.
// Undeclared phases stay nil.
func bindHooks(runner *hooks.Runner, cmds manifest.LifecycleCommands, dir string, env map[string]string) Hooks {
	var h Hooks
	if cmds.Prelink != "" {
		h.Prelink = runner.Command(cmds.Prelink, dir, env)
	}
	if cmds.Postlink != "" {
		h.Postlink = runner.Command(cmds.Postlink, dir, env)
	}
	if cmds.Preunlink != "" {
		h.Preunlink = runner.Command(cmds.Preunlink, dir, env)
	}
	if cmds.Postunlink != "" {
		h.Postunlink = runner.Command(cmds.Postunlink, dir, env)
	}
	return h
}

func declaresHooks(cmds manifest.LifecycleCommands) bool {
	return cmds.Prelink != "" || cmds.Postlink != "" ||
		cmds.Preunlink != "" || cmds.Postunlink != ""
}

// resolveAssets makes manifest asset entries absolute, preserving order.
func resolveAssets(base string, assets []string) []string {
	resolved := make([]string, 0, len(assets))
	for _, a := range assets {
		if filepath.IsAbs(a) {
			resolved = append(resolved, filepath.Clean(a))
			continue
		}
		resolved = append(resolved, filepath.Join(base, filepath.FromSlash(a)))
	}
	return resolved
}

// normalizePlatforms lower-cases platform keys from manifests.
func normalizePlatforms(keys []string) []string {
	if len(keys) == 0 {
		return nil
	}
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = strings.ToLower(strings.TrimSpace(k))
	}
	return out
}

// formatIssues renders validation issues for error context.
func formatIssues(issues []manifest.ValidationIssue) string {
	parts := make([]string, len(issues))
	for i, issue := range issues {
		if issue.Path == "" {
			parts[i] = issue.Message
			continue
		}
		parts[i] = issue.Path + ": " + issue.Message
	}
	return strings.Join(parts, "; ")
}
