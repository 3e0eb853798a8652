package manifest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeManifest(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

func TestParsePackageJSON(t *testing.T) {
	path := writeManifest(t, "package.json", `{
  "name": "native-maps",
  "version": "1.2.3",
  "dependencies": {"left-pad": "^1.3.0"},
  "natlink": {
    "assets": ["fonts"],
    "platforms": ["android"],
    "pod_name": "NativeMaps",
    "commands": {"prelink": "echo pre", "postunlink": "echo cleanup"}
  }
}`)

	pkg, err := ParsePackageJSON(path)
	if err != nil {
		t.Fatalf("ParsePackageJSON: %v", err)
	}

	if pkg.Name != "native-maps" || pkg.Version != "1.2.3" {
		t.Errorf("unexpected identity %q %q", pkg.Name, pkg.Version)
	}
	if pkg.Dependencies["left-pad"] != "^1.3.0" {
		t.Errorf("unexpected dependencies %v", pkg.Dependencies)
	}
	if pkg.Natlink == nil {
		t.Fatal("expected natlink section")
	}
	if pkg.Natlink.PodName != "NativeMaps" {
		t.Errorf("unexpected pod name %q", pkg.Natlink.PodName)
	}
	if pkg.Natlink.Commands.Prelink != "echo pre" || pkg.Natlink.Commands.Postunlink != "echo cleanup" {
		t.Errorf("unexpected commands %+v", pkg.Natlink.Commands)
	}
	if pkg.Natlink.Commands.Postlink != "" {
		t.Errorf("undeclared command must stay empty, got %q", pkg.Natlink.Commands.Postlink)
	}
}

func TestParsePackageJSONWithoutLinkSection(t *testing.T) {
	path := writeManifest(t, "package.json", `{"name": "left-pad", "version": "1.3.0"}`)

	pkg, err := ParsePackageJSON(path)
	if err != nil {
		t.Fatalf("ParsePackageJSON: %v", err)
	}
	if pkg.Natlink != nil {
		t.Errorf("expected nil natlink section, got %+v", pkg.Natlink)
	}
}

func TestParsePackageJSONNotFound(t *testing.T) {
	_, err := ParsePackageJSON(filepath.Join(t.TempDir(), "package.json"))
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestParseProject(t *testing.T) {
	path := writeManifest(t, "natlink.yaml", `assets:
  - assets/Brand.ttf
dependencies:
  native-maps:
    platforms: [android]
    commands:
      postlink: ./scripts/regen.sh
`)

	m, err := ParseProject(path)
	if err != nil {
		t.Fatalf("ParseProject: %v", err)
	}
	if len(m.Assets) != 1 || m.Assets[0] != "assets/Brand.ttf" {
		t.Errorf("unexpected assets %v", m.Assets)
	}
	override := m.Dependencies["native-maps"]
	if len(override.Platforms) != 1 || override.Platforms[0] != "android" {
		t.Errorf("unexpected platforms %v", override.Platforms)
	}
	if override.Commands.Postlink != "./scripts/regen.sh" {
		t.Errorf("unexpected postlink %q", override.Commands.Postlink)
	}
}

func TestCheckVersion(t *testing.T) {
	if err := CheckVersion("1.2.3"); err != nil {
		t.Errorf("expected 1.2.3 to be valid: %v", err)
	}
	if err := CheckVersion("2.0.0-rc.1"); err != nil {
		t.Errorf("expected prerelease to be valid: %v", err)
	}
	if err := CheckVersion("not-a-version"); err == nil {
		t.Error("expected error for invalid version")
	}
}

func TestMerge(t *testing.T) {
	base := LinkManifest{
		Assets:    []string{"fonts"},
		Platforms: []string{"android", "ios"},
		Commands:  LifecycleCommands{Prelink: "echo pre", Postlink: "echo post"},
	}
	override := LinkManifest{
		Platforms: []string{"android"},
		PodName:   "NativeMaps",
		Commands:  LifecycleCommands{Postlink: "./regen.sh"},
	}

	merged := Merge(base, override)

	if len(merged.Assets) != 1 || merged.Assets[0] != "fonts" {
		t.Errorf("assets must survive when not overridden, got %v", merged.Assets)
	}
	if len(merged.Platforms) != 1 || merged.Platforms[0] != "android" {
		t.Errorf("platforms must be replaced, got %v", merged.Platforms)
	}
	if merged.PodName != "NativeMaps" {
		t.Errorf("unexpected pod name %q", merged.PodName)
	}
	if merged.Commands.Prelink != "echo pre" {
		t.Errorf("prelink must survive, got %q", merged.Commands.Prelink)
	}
	if merged.Commands.Postlink != "./regen.sh" {
		t.Errorf("postlink must be replaced, got %q", merged.Commands.Postlink)
	}
}
