// Package report renders summaries as a linear terminal report.
package report

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"slices"
	"strings"

	"github.com/muesli/termenv"
	"github.com/paulohenriquegf/garmin-statistics/internal/core/domain"
	"github.com/paulohenriquegf/garmin-statistics/internal/ui/output"
)

// weeklyWindow is how many trailing weeks the report shows.
const weeklyWindow = 8

// Renderer implements ports.Renderer for CI/non-interactive environments.
type Renderer struct {
	stdout io.Writer
	out    *termenv.Output
}

// NewRenderer creates a Renderer writing to stdout with ANSI colors.
func NewRenderer(stdout io.Writer) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}
	return &Renderer{
		stdout: stdout,
		out:    termenv.NewOutput(stdout, termenv.WithProfile(output.ColorProfileANSI())),
	}
}

// NewRendererWithProfile creates a Renderer with an explicit color profile.
// Used by tests to force plain output.
func NewRendererWithProfile(stdout io.Writer, profile termenv.Profile) *Renderer {
	return &Renderer{
		stdout: stdout,
		out:    termenv.NewOutput(stdout, termenv.WithProfile(profile)),
	}
}

// Render writes the full report. It never blocks on user input.
func (r *Renderer) Render(_ context.Context, s domain.Summary) error {
	var b strings.Builder

	b.WriteString(r.title("Garmin Connect Summary") + "\n")
	if !s.From.IsZero() {
		b.WriteString(fmt.Sprintf("Period: %s – %s\n", s.From.Format("02 Jan 2006"), s.To.Format("02 Jan 2006")))
	}
	b.WriteString("\n")

	r.writeActivities(&b, s)
	r.writeSleep(&b, s)
	r.writeWellness(&b, s)
	r.writeRecords(&b, s)
	r.writeWeekly(&b, s)

	_, err := io.WriteString(r.stdout, b.String())
	return err
}

func (r *Renderer) writeActivities(b *strings.Builder, s domain.Summary) {
	b.WriteString(r.section("Activities") + "\n")
	if s.ActivityCount == 0 {
		b.WriteString("  none recorded\n\n")
		return
	}

	writeRow(b, "Total", fmt.Sprintf("%d", s.ActivityCount))
	writeRow(b, "Distance", fmt.Sprintf("%.1f km", s.TotalDistanceKm))
	writeRow(b, "Calories", fmt.Sprintf("%.0f kcal", s.TotalCalories))
	writeRow(b, "Avg duration", fmt.Sprintf("%.0f min", s.AvgDurationMin))

	types := make([]string, 0, len(s.ByType))
	for t := range s.ByType {
		types = append(types, t)
	}
	slices.Sort(types)

	for _, t := range types {
		ts := s.ByType[t]
		writeRow(b, "  "+t, fmt.Sprintf("%d × %.1f km, %.0f min", ts.Count, ts.DistanceKm, ts.DurationMin))
	}
	b.WriteString("\n")
}

func (r *Renderer) writeSleep(b *strings.Builder, s domain.Summary) {
	if s.SleepNights == 0 {
		return
	}

	b.WriteString(r.section("Sleep") + "\n")
	writeRow(b, "Nights", fmt.Sprintf("%d", s.SleepNights))
	writeRow(b, "Avg sleep", fmt.Sprintf("%.1f h", s.AvgSleepHours))
	if s.AvgSleepScore > 0 {
		writeRow(b, "Avg score", fmt.Sprintf("%.0f", s.AvgSleepScore))
	}
	b.WriteString("\n")
}

func (r *Renderer) writeWellness(b *strings.Builder, s domain.Summary) {
	if s.AvgBodyBatteryHigh == 0 && s.AvgStressLevel == 0 && s.AvgHRVMs == 0 && s.TotalHydrationL == 0 {
		return
	}

	b.WriteString(r.section("Wellness") + "\n")
	if s.AvgBodyBatteryHigh > 0 {
		writeRow(b, "Body battery high", fmt.Sprintf("%.0f", s.AvgBodyBatteryHigh))
	}
	if s.AvgStressLevel > 0 {
		writeRow(b, "Avg stress", fmt.Sprintf("%.0f", s.AvgStressLevel))
	}
	if s.AvgHRVMs > 0 {
		writeRow(b, "Avg HRV", fmt.Sprintf("%.0f ms", s.AvgHRVMs))
	}
	if s.TotalHydrationL > 0 {
		writeRow(b, "Hydration", fmt.Sprintf("%.1f L", s.TotalHydrationL))
	}
	b.WriteString("\n")
}

func (r *Renderer) writeRecords(b *strings.Builder, s domain.Summary) {
	rec := s.Records
	if rec.LongestDistance.DistanceKm == 0 && rec.LongestDuration.DurationMin == 0 {
		return
	}

	b.WriteString(r.section("Records") + "\n")
	if a := rec.LongestDistance; a.DistanceKm > 0 {
		writeRow(b, "Longest distance", fmt.Sprintf("%.1f km (%s, %s)", a.DistanceKm, a.Type, a.StartTime.Format("02 Jan 2006")))
	}
	if a := rec.LongestDuration; a.DurationMin > 0 {
		writeRow(b, "Longest activity", fmt.Sprintf("%.0f min (%s, %s)", a.DurationMin, a.Type, a.StartTime.Format("02 Jan 2006")))
	}
	if a := rec.FastestPace; a.PaceMinPerKm() > 0 {
		writeRow(b, "Fastest pace", fmt.Sprintf("%s /km (%s, %s)", FormatPace(a.PaceMinPerKm()), a.Type, a.StartTime.Format("02 Jan 2006")))
	}
	b.WriteString("\n")
}

func (r *Renderer) writeWeekly(b *strings.Builder, s domain.Summary) {
	if len(s.Weekly) == 0 {
		return
	}

	weekly := s.Weekly
	if len(weekly) > weeklyWindow {
		weekly = weekly[len(weekly)-weeklyWindow:]
	}

	b.WriteString(r.section("Weekly volume") + "\n")
	for _, w := range weekly {
		bar := strings.Repeat("█", min(w.Count, 30))
		b.WriteString(fmt.Sprintf("  %s  %-30s %d (%.1f km)\n", w.Week, bar, w.Count, w.DistanceKm))
	}
	b.WriteString("\n")
}

func (r *Renderer) title(text string) string {
	return r.out.String(text).Bold().String()
}

func (r *Renderer) section(text string) string {
	return r.out.String(text).Bold().Underline().String()
}

func writeRow(b *strings.Builder, label, value string) {
	b.WriteString(fmt.Sprintf("  %-18s %s\n", label, value))
}

// FormatPace renders a pace in min/km as "m:ss".
func FormatPace(pace float64) string {
	minutes := int(pace)
	seconds := int(math.Round((pace - float64(minutes)) * 60))
	if seconds == 60 {
		minutes++
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}
