// Package cache implements the summary cache keyed by export content hash.
package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/paulohenriquegf/garmin-statistics/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.SummaryCache using a file-per-summary strategy
// under the user cache directory.
type Store struct {
	dir string
}

// NewStore creates a Store rooted at the default cache path.
func NewStore() *Store {
	return NewStoreWithDir(domain.DefaultSummaryCachePath())
}

// NewStoreWithDir creates a Store rooted at a specific directory.
func NewStoreWithDir(dir string) *Store {
	return &Store{dir: dir}
}

// Key hashes the export content with xxhash. For archives the file content
// is streamed; for directories the file names, sizes and mtimes are hashed,
// which is enough to detect a re-downloaded export without reading every
// file twice.
func (s *Store) Key(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", zerr.With(domain.ErrExportNotFound, "path", path)
	}

	digest := xxhash.New()

	if info.IsDir() {
		if err := hashDirectory(digest, path); err != nil {
			return "", err
		}
	} else {
		//nolint:gosec // path is the user-provided export location
		f, err := os.Open(path)
		if err != nil {
			return "", zerr.Wrap(err, "failed to open export")
		}
		defer func() { _ = f.Close() }()

		if _, err := io.Copy(digest, f); err != nil {
			return "", zerr.Wrap(err, "failed to hash export")
		}
	}

	return fmt.Sprintf("%016x", digest.Sum64()), nil
}

func hashDirectory(digest *xxhash.Digest, root string) error {
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(digest, "%s|%d|%d\n", path, info.Size(), info.ModTime().UnixNano())
		return nil
	})
	if err != nil {
		return zerr.Wrap(err, "failed to hash export directory")
	}
	return nil
}

// Get retrieves the summary cached under key, or domain.ErrCacheMiss.
func (s *Store) Get(key string) (*domain.Summary, error) {
	//nolint:gosec // path is constructed from the trusted cache directory
	data, err := os.ReadFile(s.filename(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrCacheMiss
		}
		return nil, zerr.Wrap(err, domain.ErrCacheReadFailed.Error())
	}

	var summary domain.Summary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, zerr.Wrap(err, domain.ErrCacheReadFailed.Error())
	}

	return &summary, nil
}

// Put stores a summary under key using a temp file and atomic rename.
func (s *Store) Put(key string, summary domain.Summary) error {
	if err := os.MkdirAll(s.dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}

	tmpFile, err := os.CreateTemp(s.dir, "summary-*.json")
	if err != nil {
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}
	tmpName := tmpFile.Name()

	defer func() {
		if _, err := os.Stat(tmpName); err == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}
	if err := tmpFile.Close(); err != nil {
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}

	if err := os.Rename(tmpName, s.filename(key)); err != nil {
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}

	return nil
}

func (s *Store) filename(key string) string {
	return filepath.Join(s.dir, key+".json")
}
