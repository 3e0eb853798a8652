package platform

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/natlink-labs/natlink/internal/project"
)

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func readTestFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

// setupAndroidApp writes a minimal android/ tree and an installed native
// dependency, returning the app root and the dependency.
func setupAndroidApp(t *testing.T) (string, *project.Dependency) {
	t.Helper()
	root := t.TempDir()

	writeTestFile(t, filepath.Join(root, "android", "settings.gradle"),
		"rootProject.name = 'demoapp'\ninclude ':app'\n")
	writeTestFile(t, filepath.Join(root, "android", "app", "build.gradle"),
		"apply plugin: 'com.android.application'\n\ndependencies {\n    implementation 'androidx.core:core:1.0.0'\n}\n")

	depRoot := filepath.Join(root, "node_modules", "native-maps")
	writeTestFile(t, filepath.Join(depRoot, "android", "build.gradle"),
		"apply plugin: 'com.android.library'\n")

	dep := &project.Dependency{
		Name:    "native-maps",
		RootDir: depRoot,
		Android: &project.AndroidModule{SourceDir: filepath.Join(depRoot, "android")},
	}
	return root, dep
}

func TestAndroidDetectProject(t *testing.T) {
	root, _ := setupAndroidApp(t)

	p, ok := Get(KeyAndroid)
	if !ok {
		t.Fatal("android platform missing from registry")
	}
	prj, ok := p.DetectProject(root)
	if !ok {
		t.Fatal("expected android project to be detected")
	}
	ap := prj.(*AndroidProject)
	if filepath.Base(ap.SettingsGradle) != "settings.gradle" {
		t.Errorf("unexpected settings path %q", ap.SettingsGradle)
	}

	if _, ok := p.DetectProject(t.TempDir()); ok {
		t.Error("expected detection to fail without android/")
	}
}

func TestAndroidLinkUnlink(t *testing.T) {
	root, dep := setupAndroidApp(t)
	p, _ := Get(KeyAndroid)
	prj, _ := p.DetectProject(root)

	linked, err := p.IsLinked(prj, dep)
	if err != nil {
		t.Fatalf("IsLinked: %v", err)
	}
	if linked {
		t.Fatal("dependency must not be linked yet")
	}

	if err := p.Link(prj, dep); err != nil {
		t.Fatalf("Link: %v", err)
	}

	settings := readTestFile(t, filepath.Join(root, "android", "settings.gradle"))
	if !strings.Contains(settings, "include ':native-maps'") {
		t.Errorf("expected include line, got:\n%s", settings)
	}
	if !strings.Contains(settings, "project(':native-maps').projectDir = new File(rootProject.projectDir, '../node_modules/native-maps/android')") {
		t.Errorf("expected projectDir line, got:\n%s", settings)
	}

	build := readTestFile(t, filepath.Join(root, "android", "app", "build.gradle"))
	if !strings.Contains(build, "    implementation project(':native-maps')") {
		t.Errorf("expected implementation line, got:\n%s", build)
	}

	linked, err = p.IsLinked(prj, dep)
	if err != nil {
		t.Fatalf("IsLinked: %v", err)
	}
	if !linked {
		t.Error("expected dependency to be linked")
	}

	// Linking again must not duplicate anything.
	if err := p.Link(prj, dep); err != nil {
		t.Fatalf("second Link: %v", err)
	}
	settings2 := readTestFile(t, filepath.Join(root, "android", "settings.gradle"))
	if settings2 != settings {
		t.Errorf("second link changed settings.gradle:\n%s", settings2)
	}
	build2 := readTestFile(t, filepath.Join(root, "android", "app", "build.gradle"))
	if build2 != build {
		t.Errorf("second link changed build.gradle:\n%s", build2)
	}

	if err := p.Unlink(prj, dep); err != nil {
		t.Fatalf("Unlink: %v", err)
	}
	settings = readTestFile(t, filepath.Join(root, "android", "settings.gradle"))
	if strings.Contains(settings, "native-maps") {
		t.Errorf("expected include lines removed, got:\n%s", settings)
	}
	build = readTestFile(t, filepath.Join(root, "android", "app", "build.gradle"))
	if strings.Contains(build, "native-maps") {
		t.Errorf("expected implementation line removed, got:\n%s", build)
	}
	if !strings.Contains(build, "implementation 'androidx.core:core:1.0.0'") {
		t.Errorf("unlink must keep unrelated entries, got:\n%s", build)
	}
}

func TestAndroidLinkNoDependenciesBlock(t *testing.T) {
	root, dep := setupAndroidApp(t)
	writeTestFile(t, filepath.Join(root, "android", "app", "build.gradle"),
		"apply plugin: 'com.android.application'\n")

	p, _ := Get(KeyAndroid)
	prj, _ := p.DetectProject(root)

	err := p.Link(prj, dep)
	if !errors.Is(err, ErrNoDependenciesBlock) {
		t.Fatalf("expected ErrNoDependenciesBlock, got %v", err)
	}
}

func TestAndroidCopyAndRemoveAssets(t *testing.T) {
	root, dep := setupAndroidApp(t)
	font := filepath.Join(dep.RootDir, "fonts", "Maps.ttf")
	sound := filepath.Join(dep.RootDir, "sounds", "ping.mp3")
	writeTestFile(t, font, "font-bytes")
	writeTestFile(t, sound, "sound-bytes")

	p, _ := Get(KeyAndroid)
	prj, _ := p.DetectProject(root)

	if err := p.CopyAssets(prj, []string{font, sound}); err != nil {
		t.Fatalf("CopyAssets: %v", err)
	}

	fontCopy := filepath.Join(root, "android", "app", "src", "main", "assets", "fonts", "Maps.ttf")
	soundCopy := filepath.Join(root, "android", "app", "src", "main", "res", "raw", "ping.mp3")
	if _, err := os.Stat(fontCopy); err != nil {
		t.Errorf("expected font copy at %s: %v", fontCopy, err)
	}
	if _, err := os.Stat(soundCopy); err != nil {
		t.Errorf("expected raw copy at %s: %v", soundCopy, err)
	}

	if err := p.RemoveAssets(prj, []string{font, sound}); err != nil {
		t.Fatalf("RemoveAssets: %v", err)
	}
	if _, err := os.Stat(fontCopy); !os.IsNotExist(err) {
		t.Errorf("expected font copy removed, got %v", err)
	}
	if _, err := os.Stat(soundCopy); !os.IsNotExist(err) {
		t.Errorf("expected raw copy removed, got %v", err)
	}
}

func TestGradleProjectName(t *testing.T) {
	tests := []struct {
		pkg  string
		want string
	}{
		{"native-maps", "native-maps"},
		{"@org/native-video", "org_native-video"},
		{"@org/deep/name", "org_deep_name"},
	}
	for _, tt := range tests {
		if got := GradleProjectName(tt.pkg); got != tt.want {
			t.Errorf("GradleProjectName(%q) = %q, want %q", tt.pkg, got, tt.want)
		}
	}
}
