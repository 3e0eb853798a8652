package platform

import "go.trai.ch/zerr"

var (
	// ErrProjectMismatch is returned when a platform receives a project
	// descriptor produced by a different platform.
	ErrProjectMismatch = zerr.New("platform project descriptor does not match platform")

	// ErrNoDependenciesBlock is returned when the app build.gradle has no
	// dependencies block to register a module in.
	ErrNoDependenciesBlock = zerr.New("no dependencies block found in app build.gradle")

	// ErrNoTargetBlock is returned when the Podfile has no target block to
	// register a pod in.
	ErrNoTargetBlock = zerr.New("no target block found in Podfile")

	// ErrNoInfoPlist is returned when font assets need registration but the
	// iOS project has no Info.plist.
	ErrNoInfoPlist = zerr.New("no Info.plist found in iOS project")
)
