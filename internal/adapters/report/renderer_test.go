package report_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/muesli/termenv"
	"github.com/paulohenriquegf/garmin-statistics/internal/adapters/report"
	"github.com/paulohenriquegf/garmin-statistics/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullSummary() domain.Summary {
	run := domain.Activity{
		Type:        "running",
		StartTime:   time.Date(2025, 8, 4, 7, 0, 0, 0, time.UTC),
		DistanceKm:  10,
		DurationMin: 45,
	}
	ride := domain.Activity{
		Type:        "cycling",
		StartTime:   time.Date(2025, 8, 12, 7, 0, 0, 0, time.UTC),
		DistanceKm:  40,
		DurationMin: 240,
	}

	return domain.Summary{
		From:            run.StartTime,
		To:              ride.StartTime,
		ActivityCount:   3,
		TotalDistanceKm: 55,
		TotalCalories:   1800,
		AvgDurationMin:  110,

		SleepNights:   2,
		AvgSleepHours: 7.5,
		AvgSleepScore: 81,

		AvgBodyBatteryHigh: 80,
		AvgStressLevel:     35,
		AvgHRVMs:           45,
		TotalHydrationL:    1.5,

		ByType: map[string]domain.TypeStats{
			"running": {Count: 2, DistanceKm: 15, DurationMin: 80},
			"cycling": {Count: 1, DistanceKm: 40, DurationMin: 240},
		},
		Weekly: []domain.WeeklyAggregate{
			{Week: "2025-W32", Count: 2, DistanceKm: 15},
			{Week: "2025-W33", Count: 1, DistanceKm: 40},
		},
		Records: domain.Records{
			LongestDistance: ride,
			LongestDuration: ride,
			FastestPace:     run,
		},
	}
}

func render(t *testing.T, s domain.Summary) string {
	t.Helper()
	buf := new(bytes.Buffer)
	renderer := report.NewRendererWithProfile(buf, termenv.Ascii)
	require.NoError(t, renderer.Render(context.Background(), s))
	return buf.String()
}

func TestRenderer_Render(t *testing.T) {
	out := render(t, fullSummary())

	assert.Contains(t, out, "Garmin Connect Summary")
	assert.Contains(t, out, "Period: 04 Aug 2025 – 12 Aug 2025")

	assert.Contains(t, out, "Activities")
	assert.Contains(t, out, "55.0 km")
	assert.Contains(t, out, "1800 kcal")
	assert.Contains(t, out, "cycling")
	assert.Contains(t, out, "running")

	assert.Contains(t, out, "Sleep")
	assert.Contains(t, out, "7.5 h")

	assert.Contains(t, out, "Wellness")
	assert.Contains(t, out, "45 ms")
	assert.Contains(t, out, "1.5 L")

	assert.Contains(t, out, "Records")
	assert.Contains(t, out, "40.0 km (cycling, 12 Aug 2025)")
	assert.Contains(t, out, "4:30 /km (running, 04 Aug 2025)")

	assert.Contains(t, out, "Weekly volume")
	assert.Contains(t, out, "2025-W32")
	assert.Contains(t, out, "2025-W33")
}

func TestRenderer_Render_Empty(t *testing.T) {
	out := render(t, domain.Summary{})

	assert.Contains(t, out, "none recorded")
	// Empty sections disappear entirely.
	assert.NotContains(t, out, "Sleep")
	assert.NotContains(t, out, "Wellness")
	assert.NotContains(t, out, "Records")
	assert.NotContains(t, out, "Weekly volume")
}

func TestRenderer_Render_SkipsUnscoredSleep(t *testing.T) {
	s := domain.Summary{SleepNights: 3, AvgSleepHours: 6.9}

	out := render(t, s)

	assert.Contains(t, out, "Avg sleep")
	assert.NotContains(t, out, "Avg score")
}

func TestFormatPace(t *testing.T) {
	tests := []struct {
		pace float64
		want string
	}{
		{4.5, "4:30"},
		{5.0, "5:00"},
		{6.99999, "7:00"}, // seconds round up into the next minute
		{10.25, "10:15"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, report.FormatPace(tt.pace), "pace %v", tt.pace)
	}
}
