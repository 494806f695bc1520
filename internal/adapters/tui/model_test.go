package tui_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/paulohenriquegf/garmin-statistics/internal/adapters/tui"
	"github.com/paulohenriquegf/garmin-statistics/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyMsg(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func update(t *testing.T, m *tui.Model, msg tea.Msg) *tui.Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(*tui.Model)
	require.True(t, ok)
	return model
}

func TestModel_TabNavigation(t *testing.T) {
	m := tui.NewModel(domain.Summary{})
	assert.Equal(t, tui.TabOverview, m.Active)

	m = update(t, m, keyMsg("tab"))
	assert.Equal(t, tui.TabActivities, m.Active)

	m = update(t, m, keyMsg("shift+tab"))
	assert.Equal(t, tui.TabOverview, m.Active)

	// Backwards from the first tab wraps to the last.
	m = update(t, m, keyMsg("shift+tab"))
	assert.Equal(t, tui.TabWellness, m.Active)

	// Forwards from the last tab wraps to the first.
	m = update(t, m, keyMsg("tab"))
	assert.Equal(t, tui.TabOverview, m.Active)
}

func TestModel_NumberJump(t *testing.T) {
	m := tui.NewModel(domain.Summary{})

	m = update(t, m, keyMsg("3"))
	assert.Equal(t, tui.TabSleep, m.Active)

	m = update(t, m, keyMsg("1"))
	assert.Equal(t, tui.TabOverview, m.Active)
}

func TestModel_Quit(t *testing.T) {
	for _, key := range []string{"q", "esc"} {
		m := tui.NewModel(domain.Summary{})
		_, cmd := m.Update(keyMsg(key))
		require.NotNil(t, cmd, "key %q should quit", key)
		assert.Equal(t, tea.Quit(), cmd())
	}
}

func TestModel_WindowSize(t *testing.T) {
	m := tui.NewModel(domain.Summary{})

	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, m.Width)
	assert.Equal(t, 40, m.Height)
}

func TestModel_View(t *testing.T) {
	summary := domain.Summary{
		ActivityCount:   4,
		TotalDistanceKm: 31.5,
		AvgSleepHours:   7.2,
	}

	m := tui.NewModel(summary)

	view := m.View()
	assert.Contains(t, view, "Garmin Connect Analytics")
	assert.Contains(t, view, "Overview")
	assert.Contains(t, view, "31.5 km")

	m = update(t, m, keyMsg("2"))
	view = m.View()
	assert.Contains(t, view, "4")
}
