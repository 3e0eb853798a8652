// Package linker orchestrates native dependency linking. It selects the
// target platforms, resolves the named dependency (or all of them), runs
// the dependency's lifecycle hooks, and sequences the platform link and
// asset copy steps. All real file mutation lives in the platform package;
// this package owns ordering, filtering, and error presentation.
package linker
