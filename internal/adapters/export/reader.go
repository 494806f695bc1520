// Package export reads Garmin Connect account exports into domain datasets.
package export

import (
	"context"
	"fmt"
	"os"

	"github.com/paulohenriquegf/garmin-statistics/internal/core/domain"
	"github.com/paulohenriquegf/garmin-statistics/internal/core/ports"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// tracerName identifies ingest spans emitted by this package.
const tracerName = "garmin-stats/export"

// Reader implements ports.ExportReader for ZIP archives and extracted
// directories.
type Reader struct {
	logger ports.Logger
}

// NewReader creates a new Reader.
func NewReader(logger ports.Logger) *Reader {
	return &Reader{logger: logger}
}

// Read loads every recognized section of the export. Sections load
// concurrently; a missing section is fine, an export with no recognized
// files at all is domain.ErrExportEmpty.
func (r *Reader) Read(ctx context.Context, path string) (*domain.Dataset, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, zerr.With(domain.ErrExportNotFound, "path", path)
	}

	root := path
	if !info.IsDir() {
		tmpDir, err := os.MkdirTemp("", "garmin-export-*")
		if err != nil {
			return nil, zerr.Wrap(err, domain.ErrExportExtractFailed.Error())
		}
		defer func() { _ = os.RemoveAll(tmpDir) }()

		if err := extractZip(path, tmpDir); err != nil {
			return nil, err
		}
		root = tmpDir
	}

	ds := &domain.Dataset{}
	tracer := otel.Tracer(tracerName)

	// Each section owns distinct dataset fields, so the goroutines never
	// share a write target.
	g, ctx := errgroup.WithContext(ctx)

	g.Go(traced(ctx, tracer, "activities", func() (err error) {
		ds.Activities, err = loadActivities(root)
		return err
	}))
	g.Go(traced(ctx, tracer, "sleep", func() (err error) {
		ds.Sleep, err = loadSleep(root)
		return err
	}))
	g.Go(traced(ctx, tracer, "health", func() (err error) {
		ds.Health, err = loadHealth(root)
		return err
	}))
	g.Go(traced(ctx, tracer, "hydration", func() (err error) {
		ds.Hydration, err = loadHydration(root)
		return err
	}))
	g.Go(traced(ctx, tracer, "wellness", func() (err error) {
		ds.BodyBattery, ds.Stress, err = loadWellness(root)
		return err
	}))

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if ds.Empty() {
		return nil, zerr.With(domain.ErrExportEmpty, "path", path)
	}

	r.logger.Info(fmt.Sprintf(
		"loaded export: %d activities, %d sleep nights, %d health days",
		len(ds.Activities), len(ds.Sleep), len(ds.Health),
	))

	return ds, nil
}

// traced wraps a section loader in an ingest span.
func traced(ctx context.Context, tracer trace.Tracer, section string, fn func() error) func() error {
	return func() error {
		_, span := tracer.Start(ctx, "ingest."+section)
		defer span.End()
		return fn()
	}
}
