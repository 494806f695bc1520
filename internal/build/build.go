// Package build holds version information injected at link time.
package build

var (
	// Version is the application version, set via ldflags.
	Version = "dev"
	// Commit is the git commit the binary was built from, set via ldflags.
	Commit = "none"
	// Date is the build date, set via ldflags.
	Date = "unknown"
)
