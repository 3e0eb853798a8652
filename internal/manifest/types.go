package manifest

// PackageJSON holds the subset of package.json fields natlink consumes.
type PackageJSON struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Dependencies    map[string]string `json:"dependencies,omitempty"`
	DevDependencies map[string]string `json:"devDependencies,omitempty"`
	Natlink         *LinkManifest     `json:"natlink,omitempty"`
}

// LinkManifest describes how a dependency participates in linking. It
// appears as the "natlink" section of the dependency's package.json, or as
// a per-dependency override block in the project's natlink.yaml.
type LinkManifest struct {
	// Assets lists files or directories, relative to the dependency root,
	// to copy into each platform project.
	Assets []string `json:"assets,omitempty" yaml:"assets,omitempty"`

	// Commands holds optional lifecycle shell commands.
	Commands LifecycleCommands `json:"commands,omitempty" yaml:"commands,omitempty"`

	// Platforms restricts linking to the named platform keys. Empty means
	// every platform the dependency ships native code for.
	Platforms []string `json:"platforms,omitempty" yaml:"platforms,omitempty"`

	// PodName overrides the CocoaPods pod name derived from the podspec
	// file name.
	PodName string `json:"pod_name,omitempty" yaml:"pod_name,omitempty"`
}

// LifecycleCommands are the optional hook command lines of a dependency.
// An empty string means the hook is not declared.
type LifecycleCommands struct {
	Prelink    string `json:"prelink,omitempty" yaml:"prelink,omitempty"`
	Postlink   string `json:"postlink,omitempty" yaml:"postlink,omitempty"`
	Preunlink  string `json:"preunlink,omitempty" yaml:"preunlink,omitempty"`
	Postunlink string `json:"postunlink,omitempty" yaml:"postunlink,omitempty"`
}

// ProjectManifest is the natlink.yaml structure at the project root.
type ProjectManifest struct {
	// Assets lists project-level files or directories to copy into each
	// platform project, relative to the project root.
	Assets []string `yaml:"assets,omitempty"`

	// Dependencies holds per-dependency overrides, keyed by package name.
	// Override fields replace the dependency's own manifest values.
	Dependencies map[string]LinkManifest `yaml:"dependencies,omitempty"`
}

// Merge overlays the non-empty fields of an override onto a base manifest
// and returns the result. Slices and commands replace wholesale, they are
// not unioned.
func Merge(base, override LinkManifest) LinkManifest {
	out := base
	if len(override.Assets) > 0 {
		out.Assets = override.Assets
	}
	if len(override.Platforms) > 0 {
		out.Platforms = override.Platforms
	}
	if override.PodName != "" {
		out.PodName = override.PodName
	}
	if override.Commands.Prelink != "" {
		out.Commands.Prelink = override.Commands.Prelink
	}
	if override.Commands.Postlink != "" {
		out.Commands.Postlink = override.Commands.Postlink
	}
	if override.Commands.Preunlink != "" {
		out.Commands.Preunlink = override.Commands.Preunlink
	}
	if override.Commands.Postunlink != "" {
		out.Commands.Postunlink = override.Commands.Postunlink
	}
	return out
}
