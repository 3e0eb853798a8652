package project

import "go.trai.ch/zerr"

var (
	// ErrNoPackageJSON is returned when the project root has no package.json.
	ErrNoPackageJSON = zerr.New("no package.json found in project root")

	// ErrInvalidManifest is returned when natlink.yaml fails schema validation.
	ErrInvalidManifest = zerr.New("natlink.yaml failed schema validation")
)
