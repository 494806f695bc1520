package ports

import (
	"context"

	"github.com/paulohenriquegf/garmin-statistics/internal/core/domain"
)

// Renderer presents a summary to the user. Implementations decide the
// medium: a linear report on stdout or an interactive TUI.
type Renderer interface {
	// Render blocks until presentation is complete. For interactive
	// renderers this means until the user quits.
	Render(ctx context.Context, summary domain.Summary) error
}
