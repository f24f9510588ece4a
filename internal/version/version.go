// Package version holds build-time version information.
// The variables are overridden at build time via -ldflags.
package version

// Version is the application version, set at build time.
var Version = "dev"
