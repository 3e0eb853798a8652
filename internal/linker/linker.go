package linker

import (
	"context"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/natlink-labs/natlink/internal/platform"
	"github.com/natlink-labs/natlink/internal/project"
	"go.uber.org/zap"
)

// Options carry the command-line options of one link/unlink invocation.
type Options struct {
	// Platforms scopes the operation to the given platform keys. Empty
	// means every platform detected in the project.
	Platforms []string
}

// Linker sequences hook, platform-link, and asset steps for dependencies.
type Linker struct {
	logger *zap.Logger
}

// New returns a Linker. A nil logger disables debug traces.
func New(logger *zap.Logger) *Linker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Linker{logger: logger}
}

// Link links one named dependency, or every linkable dependency when
// packageName is empty. The package name may carry an @version suffix,
// which is stripped before lookup. Each failure is terminal: there are no
// retries and completed steps are not rolled back.
func (l *Linker) Link(ctx context.Context, cfg *Config, packageName string, opts Options) error {
	platforms := l.selectPlatforms(cfg, opts)
	l.logger.Debug("targeting platforms", zap.Strings("platforms", displayNames(platforms)))

	if packageName == "" {
		l.logger.Debug("linking all dependencies")
		return l.LinkAll(ctx, cfg)
	}

	name := NormalizePackageName(packageName)
	dep, ok := cfg.Project.Dependencies[name]
	if !ok {
		return ErrUnknownDependency
	}

	l.warnVersionMismatch(packageName, dep)
	l.logger.Debug("linking dependency", zap.String("package", name))

	if err := l.linkDependency(ctx, cfg, platforms, dep); err != nil {
		return &LinkError{Cause: err}
	}
	return nil
}

// linkDependency runs the four link steps strictly in sequence: prelink
// hook, platform registration, postlink hook, asset copy.
func (l *Linker) linkDependency(ctx context.Context, cfg *Config, platforms map[string]platform.Platform, dep *project.Dependency) error {
	if dep.Hooks.Prelink != nil {
		l.logger.Debug("running prelink hook", zap.String("package", dep.Name))
		if err := dep.Hooks.Prelink(ctx); err != nil {
			return err
		}
	}

	for _, key := range sortedKeys(platforms) {
		p := platforms[key]
		if !p.Supports(dep) || !dep.TargetsPlatform(key) {
			continue
		}
		l.logger.Debug("registering native module",
			zap.String("package", dep.Name), zap.String("platform", p.DisplayName()))
		if err := p.Link(cfg.Projects[key], dep); err != nil {
			return err
		}
	}

	if dep.Hooks.Postlink != nil {
		l.logger.Debug("running postlink hook", zap.String("package", dep.Name))
		if err := dep.Hooks.Postlink(ctx); err != nil {
			return err
		}
	}

	if len(dep.Assets) == 0 {
		return nil
	}
	for _, key := range sortedKeys(platforms) {
		if !dep.TargetsPlatform(key) {
			continue
		}
		l.logger.Debug("copying assets",
			zap.String("platform", platforms[key].DisplayName()), zap.Int("count", len(dep.Assets)))
		if err := platforms[key].CopyAssets(cfg.Projects[key], dep.Assets); err != nil {
			return err
		}
	}
	return nil
}

// LinkAll links every linkable dependency plus the project's own assets,
// across all detected platforms. Dependencies already registered on every
// platform they support are skipped. Errors propagate unwrapped.
func (l *Linker) LinkAll(ctx context.Context, cfg *Config) error {
	for _, name := range dependencyNames(cfg.Project) {
		dep := cfg.Project.Dependencies[name]

		linked, err := l.isFullyLinked(cfg, dep)
		if err != nil {
			return err
		}
		if linked {
			l.logger.Debug("already linked", zap.String("package", name))
			continue
		}

		l.logger.Debug("linking dependency", zap.String("package", name))
		if err := l.linkDependency(ctx, cfg, cfg.Platforms, dep); err != nil {
			return err
		}
	}

	return l.copyAssets(cfg.Platforms, cfg, cfg.Project.Assets)
}

// Unlink reverses Link for one named dependency: preunlink hook, platform
// deregistration, postunlink hook, asset removal, strictly in sequence.
func (l *Linker) Unlink(ctx context.Context, cfg *Config, packageName string, opts Options) error {
	platforms := l.selectPlatforms(cfg, opts)
	l.logger.Debug("targeting platforms", zap.Strings("platforms", displayNames(platforms)))

	name := NormalizePackageName(packageName)
	dep, ok := cfg.Project.Dependencies[name]
	if !ok {
		return ErrUnknownDependency
	}

	l.logger.Debug("unlinking dependency", zap.String("package", name))

	if err := l.unlinkDependency(ctx, cfg, platforms, dep); err != nil {
		return &UnlinkError{Cause: err}
	}
	return nil
}

func (l *Linker) unlinkDependency(ctx context.Context, cfg *Config, platforms map[string]platform.Platform, dep *project.Dependency) error {
	if dep.Hooks.Preunlink != nil {
		l.logger.Debug("running preunlink hook", zap.String("package", dep.Name))
		if err := dep.Hooks.Preunlink(ctx); err != nil {
			return err
		}
	}

	for _, key := range sortedKeys(platforms) {
		p := platforms[key]
		if !p.Supports(dep) || !dep.TargetsPlatform(key) {
			continue
		}
		l.logger.Debug("deregistering native module",
			zap.String("package", dep.Name), zap.String("platform", p.DisplayName()))
		if err := p.Unlink(cfg.Projects[key], dep); err != nil {
			return err
		}
	}

	if dep.Hooks.Postunlink != nil {
		l.logger.Debug("running postunlink hook", zap.String("package", dep.Name))
		if err := dep.Hooks.Postunlink(ctx); err != nil {
			return err
		}
	}

	if len(dep.Assets) == 0 {
		return nil
	}
	for _, key := range sortedKeys(platforms) {
		if !dep.TargetsPlatform(key) {
			continue
		}
		if err := platforms[key].RemoveAssets(cfg.Projects[key], dep.Assets); err != nil {
			return err
		}
	}
	return nil
}

// copyAssets copies the given assets into every selected platform project.
func (l *Linker) copyAssets(platforms map[string]platform.Platform, cfg *Config, assetPaths []string) error {
	if len(assetPaths) == 0 {
		return nil
	}
	for _, key := range sortedKeys(platforms) {
		l.logger.Debug("copying assets",
			zap.String("platform", platforms[key].DisplayName()), zap.Int("count", len(assetPaths)))
		if err := platforms[key].CopyAssets(cfg.Projects[key], assetPaths); err != nil {
			return err
		}
	}
	return nil
}

// selectPlatforms applies the --platforms filter to the detected platform
// table, preserving only matching entries. The result is a local copy; the
// config itself is never mutated.
func (l *Linker) selectPlatforms(cfg *Config, opts Options) map[string]platform.Platform {
	if len(opts.Platforms) == 0 {
		return cfg.Platforms
	}

	selected := make(map[string]platform.Platform)
	for _, key := range opts.Platforms {
		key = strings.ToLower(strings.TrimSpace(key))
		if p, ok := cfg.Platforms[key]; ok {
			selected[key] = p
		}
	}
	l.logger.Debug("filtered platforms", zap.Strings("keys", sortedKeys(selected)))
	return selected
}

// isFullyLinked reports whether the dependency is registered on every
// platform it supports and targets.
func (l *Linker) isFullyLinked(cfg *Config, dep *project.Dependency) (bool, error) {
	supported := false
	for _, key := range sortedKeys(cfg.Platforms) {
		p := cfg.Platforms[key]
		if !p.Supports(dep) || !dep.TargetsPlatform(key) {
			continue
		}
		supported = true

		linked, err := p.IsLinked(cfg.Projects[key], dep)
		if err != nil {
			return false, err
		}
		if !linked {
			return false, nil
		}
	}
	// A dependency with no platform targets (hooks or assets only) is
	// never "already linked": its hooks must run.
	return supported, nil
}

// warnVersionMismatch emits a debug trace when a stripped @version suffix
// is valid semver and differs from the installed version. The suffix is
// advisory only; it never fails the link.
func (l *Linker) warnVersionMismatch(rawName string, dep *project.Dependency) {
	suffix := VersionSuffix(rawName)
	if suffix == "" {
		return
	}
	requested, err := semver.NewVersion(suffix)
	if err != nil {
		return
	}
	installed, err := semver.NewVersion(dep.Version)
	if err != nil {
		return
	}
	if !requested.Equal(installed) {
		l.logger.Debug("requested version differs from installed version",
			zap.String("package", dep.Name),
			zap.String("requested", requested.String()),
			zap.String("installed", installed.String()))
	}
}

// displayNames resolves a platform selection to display names for traces.
func displayNames(platforms map[string]platform.Platform) []string {
	names := make([]string, 0, len(platforms))
	for _, key := range sortedKeys(platforms) {
		names = append(names, platforms[key].DisplayName())
	}
	return names
}

// dependencyNames returns the dependency map keys in stable order.
func dependencyNames(proj *project.Config) []string {
	names := make([]string, 0, len(proj.Dependencies))
	for name := range proj.Dependencies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
