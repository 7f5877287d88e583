// Package oiprep holds application-wide metadata.
package oiprep

var (
	// Version is the application version. It is overridden by build flags.
	Version = "v0.1.0"

	// Build is the build timestamp. It is overridden by build flags.
	Build = "n/a"
)
