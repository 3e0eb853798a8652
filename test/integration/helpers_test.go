//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const appPodfile = `platform :ios, '13.0'

target 'DemoApp' do
  pod 'React', :path => '../node_modules/react-native'
end
`

const appInfoPlist = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>CFBundleName</key>
	<string>DemoApp</string>
</dict>
</plist>
`

// setupApp writes a complete fake app: package.json, android/ and ios/
// native projects, and one installed native dependency with android code,
// a podspec, a font asset, and lifecycle hooks that drop marker files.
func setupApp(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	writeFile(t, filepath.Join(root, "package.json"), `{
  "name": "demo-app",
  "version": "1.0.0",
  "dependencies": {
    "native-maps": "^1.2.0",
    "left-pad": "^1.3.0"
  }
}`)

	writeFile(t, filepath.Join(root, "android", "settings.gradle"),
		"rootProject.name = 'demoapp'\ninclude ':app'\n")
	writeFile(t, filepath.Join(root, "android", "app", "build.gradle"),
		"apply plugin: 'com.android.application'\n\ndependencies {\n    implementation 'androidx.core:core:1.0.0'\n}\n")
	writeFile(t, filepath.Join(root, "ios", "Podfile"), appPodfile)
	writeFile(t, filepath.Join(root, "ios", "DemoApp", "Info.plist"), appInfoPlist)

	dep := filepath.Join(root, "node_modules", "native-maps")
	writeFile(t, filepath.Join(dep, "package.json"), `{
  "name": "native-maps",
  "version": "1.2.3",
  "natlink": {
    "assets": ["fonts"],
    "commands": {
      "prelink": "echo done > prelink.marker",
      "postlink": "echo done > postlink.marker",
      "preunlink": "echo done > preunlink.marker",
      "postunlink": "echo done > postunlink.marker"
    }
  }
}`)
	writeFile(t, filepath.Join(dep, "android", "build.gradle"),
		"apply plugin: 'com.android.library'\n")
	writeFile(t, filepath.Join(dep, "NativeMaps.podspec"), "Pod::Spec.new do |s|\nend\n")
	writeFile(t, filepath.Join(dep, "fonts", "Maps.ttf"), "font-bytes")

	writeFile(t, filepath.Join(root, "node_modules", "left-pad", "package.json"),
		`{"name": "left-pad", "version": "1.3.0"}`)

	return root
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}

// readLinesCount counts the lines of a file exactly equal to want.
func readLinesCount(path, want string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, line := range strings.Split(string(data), "\n") {
		if line == want {
			count++
		}
	}
	return count, nil
}

func assertFileNotContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if strings.Contains(string(data), substr) {
		t.Errorf("file %s must not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
