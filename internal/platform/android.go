package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/natlink-labs/natlink/internal/assets"
	"github.com/natlink-labs/natlink/internal/project"
	"go.trai.ch/zerr"
)

// AndroidProject is the detected android/ subproject of an app.
type AndroidProject struct {
	// Dir is the android/ directory.
	Dir string

	// SettingsGradle is the settings.gradle path where modules are included.
	SettingsGradle string

	// AppBuildGradle is the app module's build.gradle path.
	AppBuildGradle string

	// FontsDir and RawDir are the asset destinations under app/src/main.
	FontsDir string
	RawDir   string
}

// Root returns the android/ directory.
func (p *AndroidProject) Root() string { return p.Dir }

type androidPlatform struct{}

func (a *androidPlatform) Key() string         { return KeyAndroid }
func (a *androidPlatform) DisplayName() string { return "Android" }

// DetectProject locates android/settings.gradle and the app module's
// build.gradle. Both must be present for the project to be linkable.
func (a *androidPlatform) DetectProject(appRoot string) (Project, bool) {
	dir := filepath.Join(appRoot, "android")

	settings := firstExisting(
		filepath.Join(dir, "settings.gradle"),
		filepath.Join(dir, "settings.gradle.kts"),
	)
	appBuild := firstExisting(
		filepath.Join(dir, "app", "build.gradle"),
		filepath.Join(dir, "app", "build.gradle.kts"),
	)
	if settings == "" || appBuild == "" {
		return nil, false
	}

	mainDir := filepath.Join(dir, "app", "src", "main")
	return &AndroidProject{
		Dir:            dir,
		SettingsGradle: settings,
		AppBuildGradle: appBuild,
		FontsDir:       filepath.Join(mainDir, "assets", "fonts"),
		RawDir:         filepath.Join(mainDir, "res", "raw"),
	}, true
}

func (a *androidPlatform) Supports(dep *project.Dependency) bool {
	return dep.Android != nil
}

// Link includes the dependency's gradle module in settings.gradle and adds
// an implementation entry to the app build.gradle.
func (a *androidPlatform) Link(prj Project, dep *project.Dependency) error {
	p, err := androidProject(prj)
	if err != nil {
		return err
	}

	name := GradleProjectName(dep.Name)

	linked, err := fileHasLine(p.SettingsGradle, includeLine(name))
	if err != nil {
		return err
	}
	if !linked {
		rel, err := relPosix(p.Dir, dep.Android.SourceDir)
		if err != nil {
			return err
		}
		lines, err := readLines(p.SettingsGradle)
		if err != nil {
			return err
		}
		lines = append(lines,
			includeLine(name),
			fmt.Sprintf("project(':%s').projectDir = new File(rootProject.projectDir, '%s')", name, rel),
		)
		if err := writeLines(p.SettingsGradle, lines); err != nil {
			return err
		}
	}

	return a.linkAppGradle(p, name)
}

// linkAppGradle inserts the implementation entry into the app module's
// dependencies block.
func (a *androidPlatform) linkAppGradle(p *AndroidProject, name string) error {
	impl := implementationLine(name)

	lines, err := readLines(p.AppBuildGradle)
	if err != nil {
		return err
	}
	if hasLine(lines, impl) {
		return nil
	}

	lines, ok := insertAfter(lines, func(line string) bool {
		return line == "dependencies {"
	}, "    "+impl)
	if !ok {
		return zerr.With(zerr.Wrap(ErrNoDependenciesBlock, ""), "file", p.AppBuildGradle)
	}
	return writeLines(p.AppBuildGradle, lines)
}

// Unlink removes exactly the lines Link inserted.
func (a *androidPlatform) Unlink(prj Project, dep *project.Dependency) error {
	p, err := androidProject(prj)
	if err != nil {
		return err
	}

	name := GradleProjectName(dep.Name)
	projectDirPrefix := fmt.Sprintf("project(':%s').projectDir", name)

	lines, err := readLines(p.SettingsGradle)
	if err != nil {
		return err
	}
	lines = removeLines(lines, func(line string) bool {
		return line == includeLine(name) || strings.HasPrefix(line, projectDirPrefix)
	})
	if err := writeLines(p.SettingsGradle, lines); err != nil {
		return err
	}

	lines, err = readLines(p.AppBuildGradle)
	if err != nil {
		return err
	}
	lines = removeLines(lines, func(line string) bool {
		return line == implementationLine(name)
	})
	return writeLines(p.AppBuildGradle, lines)
}

// IsLinked reports whether settings.gradle includes the dependency module.
func (a *androidPlatform) IsLinked(prj Project, dep *project.Dependency) (bool, error) {
	p, err := androidProject(prj)
	if err != nil {
		return false, err
	}
	return fileHasLine(p.SettingsGradle, includeLine(GradleProjectName(dep.Name)))
}

// CopyAssets places fonts under app/src/main/assets/fonts and everything
// else under app/src/main/res/raw.
func (a *androidPlatform) CopyAssets(prj Project, assetPaths []string) error {
	p, err := androidProject(prj)
	if err != nil {
		return err
	}

	files, err := assets.Expand(assetPaths)
	if err != nil {
		return err
	}
	for _, file := range files {
		dst := p.RawDir
		if assets.IsFont(file) {
			dst = p.FontsDir
		}
		if err := assets.CopyFile(file, dst); err != nil {
			return err
		}
	}
	return nil
}

// RemoveAssets deletes the copies CopyAssets made.
func (a *androidPlatform) RemoveAssets(prj Project, assetPaths []string) error {
	p, err := androidProject(prj)
	if err != nil {
		return err
	}

	files, err := assets.Expand(assetPaths)
	if err != nil {
		return err
	}
	for _, file := range files {
		dst := p.RawDir
		if assets.IsFont(file) {
			dst = p.FontsDir
		}
		if err := assets.Remove(file, dst); err != nil {
			return err
		}
	}
	return nil
}

// GradleProjectName maps an npm package name to a gradle project name:
// the scope marker is dropped and slashes become underscores, so
// "@org/native-lib" includes as ':org_native-lib'.
func GradleProjectName(pkgName string) string {
	name := strings.TrimPrefix(pkgName, "@")
	return strings.ReplaceAll(name, "/", "_")
}

func includeLine(name string) string {
	return fmt.Sprintf("include ':%s'", name)
}

func implementationLine(name string) string {
	return fmt.Sprintf("implementation project(':%s')", name)
}

func androidProject(prj Project) (*AndroidProject, error) {
	p, ok := prj.(*AndroidProject)
	if !ok {
		return nil, zerr.With(zerr.Wrap(ErrProjectMismatch, ""), "platform", KeyAndroid)
	}
	return p, nil
}

// firstExisting returns the first path that exists, or "".
func firstExisting(paths ...string) string {
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
