package ports

import "github.com/paulohenriquegf/garmin-statistics/internal/core/domain"

// SummaryCache stores computed summaries keyed by export content hash.
//
//go:generate mockgen -source=summary_cache.go -destination=mocks/mock_summary_cache.go -package=mocks
type SummaryCache interface {
	// Key derives the cache key for an export path from its content.
	Key(path string) (string, error)

	// Get returns the cached summary for a key, or domain.ErrCacheMiss.
	Get(key string) (*domain.Summary, error)

	// Put stores a summary under the given key.
	Put(key string, summary domain.Summary) error
}
