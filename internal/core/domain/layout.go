package domain

import (
	"os"
	"path/filepath"
)

const (
	// CacheDirName is the name of the per-user cache directory.
	CacheDirName = "garmin-stats"

	// SummaryDirName is the name of the summary cache subdirectory.
	SummaryDirName = "summaries"

	// ConfigFileName is the name of the launcher configuration file.
	ConfigFileName = "garmin.yaml"

	// DefaultManifestName is the conventional dependency manifest name.
	DefaultManifestName = "requirements.txt"

	// DefaultPort is the local port the dashboard binds to.
	DefaultPort = 8501

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultSummaryCachePath returns the default path for cached summaries.
// It falls back to a relative directory when the user cache dir is unknown.
func DefaultSummaryCachePath() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = "." + CacheDirName
	}
	return filepath.Join(base, CacheDirName, SummaryDirName)
}
