package linker

import "go.trai.ch/zerr"

// ErrUnknownDependency is returned when the requested package is not among
// the project's linkable dependencies. It is never wrapped further: the
// message is the complete user-facing explanation.
var ErrUnknownDependency = zerr.New("Unknown dependency. Make sure that the package you are trying to link is already installed in your node_modules and present in your package.json dependencies.")

// LinkError wraps any failure during hook execution, platform linking, or
// asset copying. The original error stays reachable through Unwrap for
// errors.Is/As chaining.
type LinkError struct {
	Cause error
}

func (e *LinkError) Error() string {
	return "Something went wrong while linking. Reason: " + e.Cause.Error()
}

func (e *LinkError) Unwrap() error { return e.Cause }

// UnlinkError is the unlink counterpart of LinkError.
type UnlinkError struct {
	Cause error
}

func (e *UnlinkError) Error() string {
	return "Something went wrong while unlinking. Reason: " + e.Cause.Error()
}

func (e *UnlinkError) Unwrap() error { return e.Cause }
