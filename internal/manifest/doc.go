// Package manifest handles parsing and validation of the two manifest
// sources natlink reads: the "natlink" section of a package's package.json
// (assets, lifecycle commands, platform scope) and the project-level
// natlink.yaml, which can declare project assets and per-dependency
// overrides. natlink.yaml is validated against the embedded JSON Schema.
package manifest
