package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/paulohenriquegf/garmin-statistics/internal/adapters/report"
	"github.com/paulohenriquegf/garmin-statistics/internal/ui/style"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(style.Sky)

	tabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(style.Slate)

	activeTabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Bold(true).
			Foreground(style.Mint)

	labelStyle = lipgloss.NewStyle().
			Width(22).
			Foreground(style.Slate)

	valueStyle = lipgloss.NewStyle().
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(style.Slate)
)

// View renders the active tab.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Garmin Connect Analytics") + "\n")
	if !m.Summary.From.IsZero() {
		b.WriteString(fmt.Sprintf("%s – %s\n",
			m.Summary.From.Format("02 Jan 2006"),
			m.Summary.To.Format("02 Jan 2006"),
		))
	}
	b.WriteString("\n" + m.tabBar() + "\n\n")

	switch m.Active {
	case TabActivities:
		b.WriteString(m.viewActivities())
	case TabSleep:
		b.WriteString(m.viewSleep())
	case TabWellness:
		b.WriteString(m.viewWellness())
	default:
		b.WriteString(m.viewOverview())
	}

	b.WriteString("\n" + helpStyle.Render("tab/←→ switch · 1-4 jump · q quit") + "\n")
	return b.String()
}

func (m *Model) tabBar() string {
	parts := make([]string, len(tabNames))
	for i, name := range tabNames {
		if Tab(i) == m.Active {
			parts[i] = activeTabStyle.Render(name)
		} else {
			parts[i] = tabStyle.Render(name)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) viewOverview() string {
	s := m.Summary
	var b strings.Builder

	row(&b, "Activities", fmt.Sprintf("%d", s.ActivityCount))
	row(&b, "Total distance", fmt.Sprintf("%.1f km", s.TotalDistanceKm))
	row(&b, "Avg sleep", fmt.Sprintf("%.1f h", s.AvgSleepHours))
	row(&b, "Body battery high", fmt.Sprintf("%.0f", s.AvgBodyBatteryHigh))
	row(&b, "Avg stress", fmt.Sprintf("%.0f", s.AvgStressLevel))
	row(&b, "Avg HRV", fmt.Sprintf("%.0f ms", s.AvgHRVMs))

	return b.String()
}

func (m *Model) viewActivities() string {
	s := m.Summary
	var b strings.Builder

	row(&b, "Total", fmt.Sprintf("%d", s.ActivityCount))
	row(&b, "Distance", fmt.Sprintf("%.1f km", s.TotalDistanceKm))
	row(&b, "Calories", fmt.Sprintf("%.0f kcal", s.TotalCalories))
	row(&b, "Avg duration", fmt.Sprintf("%.0f min", s.AvgDurationMin))
	b.WriteString("\n")

	types := make([]string, 0, len(s.ByType))
	for t := range s.ByType {
		types = append(types, t)
	}
	slices.Sort(types)
	for _, t := range types {
		ts := s.ByType[t]
		row(&b, t, fmt.Sprintf("%d × %.1f km", ts.Count, ts.DistanceKm))
	}

	if a := s.Records.FastestPace; a.PaceMinPerKm() > 0 {
		b.WriteString("\n")
		row(&b, "Fastest pace", report.FormatPace(a.PaceMinPerKm())+" /km")
	}

	return b.String()
}

func (m *Model) viewSleep() string {
	s := m.Summary
	var b strings.Builder

	row(&b, "Nights", fmt.Sprintf("%d", s.SleepNights))
	row(&b, "Avg sleep", fmt.Sprintf("%.1f h", s.AvgSleepHours))
	if s.AvgSleepScore > 0 {
		row(&b, "Avg score", fmt.Sprintf("%.0f", s.AvgSleepScore))
	}

	return b.String()
}

func (m *Model) viewWellness() string {
	s := m.Summary
	var b strings.Builder

	row(&b, "Body battery high", fmt.Sprintf("%.0f", s.AvgBodyBatteryHigh))
	row(&b, "Avg stress", fmt.Sprintf("%.0f", s.AvgStressLevel))
	row(&b, "Avg HRV", fmt.Sprintf("%.0f ms", s.AvgHRVMs))
	row(&b, "Hydration", fmt.Sprintf("%.1f L", s.TotalHydrationL))

	return b.String()
}

func row(b *strings.Builder, label, value string) {
	b.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
}
