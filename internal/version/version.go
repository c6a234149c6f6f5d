// Package version carries hop's build identity.
package version

const (
	// Version is the current semantic version of hop.
	Version = "0.2.0"

	// GitCommit is set during build time (use -ldflags).
	GitCommit = "unknown"
)

// Info returns version information as a string.
func Info() string {
	return Version
}

// FullInfo returns detailed version information.
func FullInfo() string {
	return "hop " + Version + " (commit: " + GitCommit + ")"
}
