package domain

import (
	"fmt"

	"go.trai.ch/zerr"
)

var (
	// ErrMissingPrerequisite is returned when a required executable cannot be resolved on PATH.
	ErrMissingPrerequisite = zerr.New("required executable not found on PATH")

	// ErrInstallFailed is returned when the package manager exits with a non-zero status.
	ErrInstallFailed = zerr.New("dependency installation failed")

	// ErrLaunchFailed is returned when the dashboard process cannot be started.
	ErrLaunchFailed = zerr.New("failed to start dashboard application")

	// ErrManifestNotFound is returned when the dependency manifest is not readable.
	ErrManifestNotFound = zerr.New("dependency manifest not found")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrExportNotFound is returned when the export path does not exist.
	ErrExportNotFound = zerr.New("export not found")

	// ErrExportExtractFailed is returned when the export archive cannot be extracted.
	ErrExportExtractFailed = zerr.New("failed to extract export archive")

	// ErrExportDecodeFailed is returned when an export JSON file cannot be decoded.
	ErrExportDecodeFailed = zerr.New("failed to decode export file")

	// ErrExportEmpty is returned when no recognized data files exist in the export.
	ErrExportEmpty = zerr.New("export contains no recognized data files")

	// ErrCacheMiss is returned when a requested summary is not found in the cache.
	ErrCacheMiss = zerr.New("cache miss")

	// ErrCacheReadFailed is returned when a cached summary cannot be read.
	ErrCacheReadFailed = zerr.New("failed to read summary cache")

	// ErrCacheWriteFailed is returned when a summary cannot be written to the cache.
	ErrCacheWriteFailed = zerr.New("failed to write summary cache")

	// ErrWatchFailed is returned when the export watcher cannot be started.
	ErrWatchFailed = zerr.New("failed to watch export path")
)

// ExitStatusError carries the exit status of the launched application so the
// launcher can terminate with the same code.
type ExitStatusError struct {
	Code int
}

func (e *ExitStatusError) Error() string {
	return fmt.Sprintf("application exited with status %d", e.Code)
}
