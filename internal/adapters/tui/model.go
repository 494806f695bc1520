// Package tui implements the interactive summary viewer.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/paulohenriquegf/garmin-statistics/internal/core/domain"
)

// Tab identifies one view of the summary.
type Tab int

const (
	// TabOverview shows the headline metrics.
	TabOverview Tab = iota
	// TabActivities shows per-type and weekly activity volume.
	TabActivities
	// TabSleep shows sleep metrics.
	TabSleep
	// TabWellness shows body battery, stress, HRV and hydration.
	TabWellness

	tabCount
)

// tabNames are the tab bar labels, indexed by Tab.
var tabNames = []string{"Overview", "Activities", "Sleep", "Wellness"}

// Model represents the TUI state: one immutable summary and a cursor over
// its tabs.
type Model struct {
	Summary domain.Summary
	Active  Tab
	Width   int
	Height  int
}

// NewModel creates a model for the given summary.
func NewModel(summary domain.Summary) *Model {
	return &Model{Summary: summary}
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "l", "right":
			m.Active = (m.Active + 1) % tabCount
		case "shift+tab", "h", "left":
			m.Active = (m.Active + tabCount - 1) % tabCount
		case "1", "2", "3", "4":
			m.Active = Tab(msg.String()[0] - '1')
		}
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
	}

	return m, nil
}
