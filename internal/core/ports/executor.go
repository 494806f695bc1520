package ports

import (
	"context"
	"io"

	"github.com/paulohenriquegf/garmin-statistics/internal/core/domain"
)

// Executor runs external processes and waits for them to finish.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the command and blocks until it exits. A non-zero exit
	// status is returned as *domain.ExitStatusError so callers can propagate
	// the child's code.
	Execute(ctx context.Context, cmd domain.Command, stdout, stderr io.Writer) error
}
