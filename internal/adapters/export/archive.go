package export

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/paulohenriquegf/garmin-statistics/internal/core/domain"
	"go.trai.ch/zerr"
)

// extractZip extracts an export archive into dst. Entries escaping dst are
// rejected (zip slip).
func extractZip(src, dst string) error {
	reader, err := zip.OpenReader(src)
	if err != nil {
		return zerr.Wrap(err, domain.ErrExportExtractFailed.Error())
	}
	defer func() { _ = reader.Close() }()

	for _, entry := range reader.File {
		if err := extractEntry(entry, dst); err != nil {
			return err
		}
	}

	return nil
}

func extractEntry(entry *zip.File, dst string) error {
	target := filepath.Join(dst, filepath.Clean(entry.Name))
	if !strings.HasPrefix(target, filepath.Clean(dst)+string(os.PathSeparator)) {
		return zerr.With(domain.ErrExportExtractFailed, "entry", entry.Name)
	}

	if entry.FileInfo().IsDir() {
		if err := os.MkdirAll(target, domain.DirPerm); err != nil {
			return zerr.Wrap(err, domain.ErrExportExtractFailed.Error())
		}
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(target), domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrExportExtractFailed.Error())
	}

	src, err := entry.Open()
	if err != nil {
		return zerr.Wrap(err, domain.ErrExportExtractFailed.Error())
	}
	defer func() { _ = src.Close() }()

	//nolint:gosec // target is validated against the destination root above
	out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, domain.FilePerm)
	if err != nil {
		return zerr.Wrap(err, domain.ErrExportExtractFailed.Error())
	}

	//nolint:gosec // export archives are user-provided local files
	if _, err := io.Copy(out, src); err != nil {
		_ = out.Close()
		return zerr.Wrap(err, domain.ErrExportExtractFailed.Error())
	}

	return out.Close()
}

// findFiles returns every file under root whose base name matches pattern,
// sorted for deterministic processing order.
func findFiles(root, pattern string) ([]string, error) {
	var matches []string

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ok, matchErr := filepath.Match(pattern, d.Name())
		if matchErr != nil {
			return matchErr
		}
		if ok {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, zerr.Wrap(err, "failed to scan export directory")
	}

	return matches, nil
}
