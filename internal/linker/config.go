package linker

import (
	"sort"

	"github.com/natlink-labs/natlink/internal/platform"
	"github.com/natlink-labs/natlink/internal/project"
)

// Config is the complete linking view handed to the linker: the loaded
// project, the platform table, and the detected platform projects. The
// linker treats it as read-only; platform filtering produces local copies.
type Config struct {
	// Project is the loaded app project (dependencies, assets, root).
	Project *project.Config

	// Platforms maps each detected platform key to its implementation.
	Platforms map[string]platform.Platform

	// Projects holds the detected platform project descriptors, keyed like
	// Platforms. Opaque here; only the owning platform looks inside.
	Projects map[string]platform.Project
}

// LoadConfig loads the project at root and detects which of the supported
// platforms it actually contains.
func LoadConfig(root string) (*Config, error) {
	proj, err := project.Load(root)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Project:   proj,
		Platforms: make(map[string]platform.Platform),
		Projects:  make(map[string]platform.Project),
	}
	for key, p := range platform.All() {
		prj, ok := p.DetectProject(proj.Root)
		if !ok {
			continue
		}
		cfg.Platforms[key] = p
		cfg.Projects[key] = prj
	}
	return cfg, nil
}

// sortedKeys returns the platform keys of a selection in stable order.
func sortedKeys(platforms map[string]platform.Platform) []string {
	keys := make([]string, 0, len(platforms))
	for k := range platforms {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
