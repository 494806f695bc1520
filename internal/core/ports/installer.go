package ports

import (
	"context"

	"github.com/paulohenriquegf/garmin-statistics/internal/core/domain"
)

// Installer checks launcher prerequisites and installs the dependency
// manifest through the platform package manager.
//
//go:generate mockgen -source=installer.go -destination=mocks/mock_installer.go -package=mocks
type Installer interface {
	// CheckPrerequisites verifies that every required executable resolves
	// on PATH. It has no side effects and returns
	// domain.ErrMissingPrerequisite on the first missing one.
	CheckPrerequisites(ctx context.Context, cfg domain.LaunchConfig) error

	// Install runs the package manager against the manifest and returns
	// domain.ErrInstallFailed when it exits non-zero.
	Install(ctx context.Context, cfg domain.LaunchConfig) error
}
