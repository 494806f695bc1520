// Package app implements the application layer for garmin-stats.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/paulohenriquegf/garmin-statistics/internal/adapters/detector"
	"github.com/paulohenriquegf/garmin-statistics/internal/adapters/report"
	"github.com/paulohenriquegf/garmin-statistics/internal/adapters/telemetry"
	"github.com/paulohenriquegf/garmin-statistics/internal/adapters/tui"
	"github.com/paulohenriquegf/garmin-statistics/internal/adapters/watcher"
	"github.com/paulohenriquegf/garmin-statistics/internal/core/domain"
	"github.com/paulohenriquegf/garmin-statistics/internal/core/ports"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	installer    ports.Installer
	executor     ports.Executor
	reader       ports.ExportReader
	cache        ports.SummaryCache
	logger       ports.Logger
	teaOptions   []tea.ProgramOption
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	installer ports.Installer,
	executor ports.Executor,
	reader ports.ExportReader,
	cache ports.SummaryCache,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		installer:    installer,
		executor:     executor,
		reader:       reader,
		cache:        cache,
		logger:       log,
	}
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// Launch runs the check/install/launch sequence. Each step is terminal on
// failure: a missing prerequisite skips installation, a failed installation
// skips the launch. The dashboard's own exit status is propagated as
// *domain.ExitStatusError.
func (a *App) Launch(ctx context.Context) error {
	cfg, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	if err := a.installer.CheckPrerequisites(ctx, cfg); err != nil {
		return err
	}

	if err := a.installer.Install(ctx, cfg); err != nil {
		return err
	}

	// The bind is the dashboard's business; the address is printed for
	// convenience only.
	a.logger.Info(fmt.Sprintf("starting dashboard at http://localhost:%d", cfg.Port))

	cmd := domain.Command{Argv: cfg.LaunchCommand(), Dir: cfg.WorkingDir}
	if err := a.executor.Execute(ctx, cmd, os.Stdout, os.Stderr); err != nil {
		// An interrupt kills the child through the context; that is the
		// user stopping the dashboard, not a failure.
		if ctx.Err() != nil {
			a.logger.Info("dashboard stopped")
			return nil
		}

		var exitErr *domain.ExitStatusError
		if errors.As(err, &exitErr) {
			return err
		}
		return zerr.Wrap(err, domain.ErrLaunchFailed.Error())
	}

	return nil
}

// StatsOptions configuration for the Stats method.
type StatsOptions struct {
	OutputMode string
	NoCache    bool
	Watch      bool
}

// Stats ingests an export, summarizes it and renders the result.
func (a *App) Stats(ctx context.Context, path string, opts StatsOptions) error {
	// Report ingest stage durations through the logger.
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(telemetry.NewLogProcessor(a.logger)),
	)
	otel.SetTracerProvider(tp)
	defer func() { _ = tp.Shutdown(ctx) }()

	summary, err := a.loadSummary(ctx, path, opts.NoCache)
	if err != nil {
		return err
	}

	mode := detector.ResolveMode(detector.DetectEnvironment(), opts.OutputMode)

	if opts.Watch {
		return a.watchAndRender(ctx, path, *summary)
	}

	var renderer ports.Renderer
	if mode == detector.ModeTUI {
		renderer = tui.NewRenderer(a.teaOptions...)
	} else {
		renderer = report.NewRenderer(os.Stdout)
	}

	return renderer.Render(ctx, *summary)
}

// loadSummary returns the cached summary for the export, computing and
// caching it on a miss.
func (a *App) loadSummary(ctx context.Context, path string, noCache bool) (*domain.Summary, error) {
	key, err := a.cache.Key(path)
	if err != nil {
		return nil, err
	}

	if !noCache {
		if cached, err := a.cache.Get(key); err == nil {
			a.logger.Info("using cached summary")
			return cached, nil
		}
	}

	ds, err := a.reader.Read(ctx, path)
	if err != nil {
		return nil, err
	}

	summary := domain.Summarize(ds)

	if err := a.cache.Put(key, summary); err != nil {
		// Cache write failure downgrades to a warning; the summary is valid.
		a.logger.Warn("could not cache summary: " + err.Error())
	}

	return &summary, nil
}

// watchAndRender renders once, then re-ingests and re-renders whenever the
// export changes, until the context is canceled. Watch mode always uses the
// linear renderer.
func (a *App) watchAndRender(ctx context.Context, path string, summary domain.Summary) error {
	renderer := report.NewRenderer(os.Stdout)

	if err := renderer.Render(ctx, summary); err != nil {
		return err
	}

	w := watcher.NewWatcher(a.logger)
	return w.Watch(ctx, path, func() {
		fresh, err := a.loadSummary(ctx, path, true)
		if err != nil {
			a.logger.Error(err)
			return
		}
		if err := renderer.Render(ctx, *fresh); err != nil {
			a.logger.Error(err)
		}
	})
}
