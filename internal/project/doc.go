// Package project loads the linking view of a mobile app project: the
// project's own package.json and optional natlink.yaml, plus every declared
// dependency under node_modules/ that ships native platform code, assets,
// or lifecycle hooks. The loaded Config is read-only to its consumers.
package project
