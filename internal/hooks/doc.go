// Package hooks executes dependency lifecycle commands (prelink, postlink,
// preunlink, postunlink). A hook is a shell command line declared in the
// dependency's manifest; it runs in the dependency's root directory with the
// process environment plus NATLINK_* variables, and its output streams to
// the configured writers.
package hooks
