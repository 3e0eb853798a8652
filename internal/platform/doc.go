// Package platform defines the platform linker contract and its two
// built-in implementations, android and ios. A platform knows how to detect
// its native project inside an app repo, register and unregister a
// dependency's native module in the project build files, and copy bundled
// assets to platform-appropriate locations. All build-file mutations are
// idempotent line edits written atomically.
package platform
