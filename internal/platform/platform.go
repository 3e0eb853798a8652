package platform

import (
	"sort"

	"github.com/natlink-labs/natlink/internal/project"
)

// Supported platform keys.
const (
	KeyAndroid = "android"
	KeyIOS     = "ios"
)

// Project is a detected native project inside an app repo. Concrete types
// are platform-specific; consumers treat it as opaque and hand it back to
// the platform that produced it.
type Project interface {
	// Root returns the platform project directory.
	Root() string
}

// Platform links dependencies and assets into one native project flavor.
type Platform interface {
	// Key is the identifier used in --platforms and manifests.
	Key() string

	// DisplayName is the human-readable platform name for traces.
	DisplayName() string

	// DetectProject locates the platform's native project under the app
	// root. ok is false when the app has no project for this platform.
	DetectProject(appRoot string) (prj Project, ok bool)

	// Supports reports whether the dependency ships native code for this
	// platform.
	Supports(dep *project.Dependency) bool

	// Link registers the dependency's native module in the project build
	// files. Linking an already-linked dependency is a no-op.
	Link(prj Project, dep *project.Dependency) error

	// Unlink removes the dependency's registration. Unlinking a dependency
	// that is not linked is a no-op.
	Unlink(prj Project, dep *project.Dependency) error

	// IsLinked reports whether the dependency is registered in the project.
	IsLinked(prj Project, dep *project.Dependency) (bool, error)

	// CopyAssets copies the given asset files into the project.
	CopyAssets(prj Project, assetPaths []string) error

	// RemoveAssets removes previously copied asset files from the project.
	RemoveAssets(prj Project, assetPaths []string) error
}

// registry maps each supported platform key to its implementation.
var registry = map[string]Platform{
	KeyAndroid: &androidPlatform{},
	KeyIOS:     &iosPlatform{},
}

// Register adds a platform implementation, replacing any existing entry
// with the same key. Called before any command runs; the registry is not
// safe for concurrent mutation.
func Register(p Platform) {
	registry[p.Key()] = p
}

// Get returns the platform for a key, or false if the key is unknown.
func Get(key string) (Platform, bool) {
	p, ok := registry[key]
	return p, ok
}

// All returns a copy of the platform table.
func All() map[string]Platform {
	out := make(map[string]Platform, len(registry))
	for k, p := range registry {
		out[k] = p
	}
	return out
}

// Keys returns the supported platform keys, sorted.
func Keys() []string {
	keys := make([]string, 0, len(registry))
	for k := range registry {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// DisplayName resolves a platform key to its display name, falling back to
// the key itself for unknown platforms. Used only for traces.
func DisplayName(key string) string {
	if p, ok := registry[key]; ok {
		return p.DisplayName()
	}
	return key
}
