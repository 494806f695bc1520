package ports

import (
	"context"

	"github.com/paulohenriquegf/garmin-statistics/internal/core/domain"
)

// ExportReader loads a Garmin Connect export into a dataset.
//
//go:generate mockgen -source=export_reader.go -destination=mocks/mock_export_reader.go -package=mocks
type ExportReader interface {
	// Read accepts either a ZIP archive or an already-extracted directory.
	Read(ctx context.Context, path string) (*domain.Dataset, error)
}
