package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/paulohenriquegf/garmin-statistics/internal/core/domain"
	"go.trai.ch/zerr"
)

// Renderer wraps the Bubble Tea model as a ports.Renderer.
type Renderer struct {
	opts []tea.ProgramOption
}

// NewRenderer creates a new TUI renderer. Program options are primarily
// used by tests to disable input/output.
func NewRenderer(opts ...tea.ProgramOption) *Renderer {
	return &Renderer{opts: opts}
}

// Render runs the TUI and blocks until the user quits.
func (r *Renderer) Render(ctx context.Context, summary domain.Summary) error {
	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, r.opts...)
	program := tea.NewProgram(NewModel(summary), opts...)

	if _, err := program.Run(); err != nil {
		return zerr.Wrap(err, "tui failed")
	}
	return nil
}
