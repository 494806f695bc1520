// Package pip implements prerequisite checks and dependency installation
// through the Python package manager.
package pip

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"

	"github.com/paulohenriquegf/garmin-statistics/internal/core/domain"
	"github.com/paulohenriquegf/garmin-statistics/internal/core/ports"
	"go.trai.ch/zerr"
)

// Installer implements ports.Installer by shelling out to the configured
// package manager. The manifest format is owned by that tool; the installer
// only cares about its exit status.
type Installer struct {
	executor ports.Executor
	logger   ports.Logger

	// lookPath is swappable for tests.
	lookPath func(name string) (string, error)
	stdout   io.Writer
}

// NewInstaller creates a new Installer.
func NewInstaller(executor ports.Executor, logger ports.Logger) *Installer {
	return &Installer{
		executor: executor,
		logger:   logger,
		lookPath: exec.LookPath,
		stdout:   os.Stdout,
	}
}

// CheckPrerequisites verifies every required executable resolves on PATH.
// It stops at the first missing one and never attempts installation.
func (i *Installer) CheckPrerequisites(_ context.Context, cfg domain.LaunchConfig) error {
	for _, name := range cfg.Prerequisites() {
		if _, err := i.lookPath(name); err != nil {
			return zerr.With(domain.ErrMissingPrerequisite, "executable", name)
		}
		i.logger.Info("found " + name)
	}
	return nil
}

// Install runs the package manager against the manifest. The manifest must
// be readable; the package manager's exit status is the only success signal.
func (i *Installer) Install(ctx context.Context, cfg domain.LaunchConfig) error {
	if _, err := os.Stat(cfg.Manifest); err != nil {
		return zerr.With(domain.ErrManifestNotFound, "manifest", cfg.Manifest)
	}

	i.logger.Info("installing dependencies from " + cfg.Manifest)

	cmd := domain.Command{
		Argv: cfg.InstallCommand(),
		Dir:  cfg.WorkingDir,
	}
	if err := i.executor.Execute(ctx, cmd, i.stdout, i.stdout); err != nil {
		var exitErr *domain.ExitStatusError
		if errors.As(err, &exitErr) {
			return zerr.With(domain.ErrInstallFailed, "exit_code", exitErr.Code)
		}
		return zerr.Wrap(err, domain.ErrInstallFailed.Error())
	}

	return nil
}
