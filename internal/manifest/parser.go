package manifest

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Masterminds/semver/v3"
	"go.yaml.in/yaml/v3"
)

// ParsePackageJSON reads and parses a package.json file.
func ParsePackageJSON(path string) (*PackageJSON, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	var pkg PackageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return &pkg, nil
}

// ParseProject reads and parses a natlink.yaml project manifest.
func ParseProject(path string) (*ProjectManifest, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	var m ProjectManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing project manifest %s: %w", path, err)
	}

	return &m, nil
}

// CheckVersion reports whether a package version string is valid semver.
// npm packages are required to carry semver versions, so a failure here
// usually points at a hand-edited package.json.
func CheckVersion(version string) error {
	if _, err := semver.NewVersion(version); err != nil {
		return fmt.Errorf("invalid semver version %q: %w", version, err)
	}
	return nil
}

// readFile reads a file with a friendlier not-found error.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("manifest not found at %s", path)
		}
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	return data, nil
}
