package export

import (
	"encoding/json"
	"os"
	"time"

	"github.com/paulohenriquegf/garmin-statistics/internal/core/domain"
	"go.trai.ch/zerr"
)

// Patterns for the daily wellness files in an export.
const (
	healthPattern    = "*_healthStatusData.json"
	hydrationPattern = "HydrationLogFile*.json"
	udsPattern       = "UDSFile*.json"
)

type rawHealthMetric struct {
	Type   string   `json:"type"`
	Value  *float64 `json:"value"`
	Status string   `json:"status"`
}

type rawHealthDay struct {
	CalendarDate string            `json:"calendarDate"`
	Metrics      []rawHealthMetric `json:"metrics"`
}

// loadHealth decodes daily health status snapshots, expanding the metric
// list into a per-type map the way the dashboard consumes it.
func loadHealth(root string) ([]domain.HealthDay, error) {
	var days []domain.HealthDay

	err := decodeAll(root, healthPattern, func(raw []rawHealthDay) {
		for _, r := range raw {
			date, ok := domain.ParseTimestamp(r.CalendarDate)
			if !ok {
				continue
			}

			day := domain.HealthDay{
				Date:    date,
				Metrics: make(map[string]domain.MetricReading, len(r.Metrics)),
			}
			for _, m := range r.Metrics {
				if m.Type == "" || m.Value == nil {
					continue
				}
				day.Metrics[m.Type] = domain.MetricReading{
					Value:  *m.Value,
					Status: m.Status,
				}
			}
			days = append(days, day)
		}
	})

	return days, err
}

type rawHydrationEntry struct {
	TimestampGMT any      `json:"timestampGMT"`
	ValueInML    *float64 `json:"valueInML"`
}

// loadHydration decodes hydration log entries.
func loadHydration(root string) ([]domain.HydrationEntry, error) {
	var entries []domain.HydrationEntry

	err := decodeAll(root, hydrationPattern, func(raw []rawHydrationEntry) {
		for _, r := range raw {
			ts, ok := domain.ParseTimestamp(r.TimestampGMT)
			if !ok || r.ValueInML == nil {
				continue
			}
			entries = append(entries, domain.HydrationEntry{
				Timestamp: ts,
				ValueML:   *r.ValueInML,
			})
		}
	})

	return entries, err
}

type rawBodyBatteryStat struct {
	StatType   string   `json:"bodyBatteryStatType"`
	StatsValue *float64 `json:"statsValue"`
}

type rawBodyBattery struct {
	ChargedValue *float64             `json:"chargedValue"`
	DrainedValue *float64             `json:"drainedValue"`
	StatList     []rawBodyBatteryStat `json:"bodyBatteryStatList"`
}

type rawStressAggregator struct {
	Type               string   `json:"type"`
	AverageStressLevel *float64 `json:"averageStressLevel"`
	MaxStressLevel     *float64 `json:"maxStressLevel"`
	RestDuration       *float64 `json:"restDuration"`
	LowDuration        *float64 `json:"lowDuration"`
	MediumDuration     *float64 `json:"mediumDuration"`
	HighDuration       *float64 `json:"highDuration"`
	TotalDuration      *float64 `json:"totalDuration"`
}

type rawUDSDay struct {
	CalendarDate string          `json:"calendarDate"`
	BodyBattery  *rawBodyBattery `json:"bodyBattery"`
	AllDayStress *struct {
		AggregatorList []rawStressAggregator `json:"aggregatorList"`
	} `json:"allDayStress"`
}

// loadWellness decodes UDS files into body battery days and all-day stress
// aggregators.
func loadWellness(root string) ([]domain.BodyBatteryDay, []domain.StressDay, error) {
	var battery []domain.BodyBatteryDay
	var stress []domain.StressDay

	err := decodeAll(root, udsPattern, func(raw []rawUDSDay) {
		for _, r := range raw {
			date, ok := domain.ParseTimestamp(r.CalendarDate)
			if !ok {
				continue
			}

			if r.BodyBattery != nil {
				battery = append(battery, convertBodyBattery(date, r.BodyBattery))
			}

			if r.AllDayStress != nil {
				for _, agg := range r.AllDayStress.AggregatorList {
					stress = append(stress, convertStress(date, agg))
				}
			}
		}
	})

	return battery, stress, err
}

func convertBodyBattery(date time.Time, raw *rawBodyBattery) domain.BodyBatteryDay {
	day := domain.BodyBatteryDay{Date: date}

	if raw.ChargedValue != nil {
		day.Charged = *raw.ChargedValue
	}
	if raw.DrainedValue != nil {
		day.Drained = *raw.DrainedValue
	}

	for _, stat := range raw.StatList {
		if stat.StatsValue == nil {
			continue
		}
		switch stat.StatType {
		case "HIGHEST":
			day.Highest = *stat.StatsValue
		case "LOWEST":
			day.Lowest = *stat.StatsValue
		}
	}

	return day
}

// convertStress converts one stress aggregator; durations arrive in seconds
// and are reported in minutes.
func convertStress(date time.Time, raw rawStressAggregator) domain.StressDay {
	return domain.StressDay{
		Date:         date,
		Type:         raw.Type,
		AverageLevel: deref(raw.AverageStressLevel),
		MaxLevel:     deref(raw.MaxStressLevel),
		RestMin:      deref(raw.RestDuration) / 60,
		LowMin:       deref(raw.LowDuration) / 60,
		MediumMin:    deref(raw.MediumDuration) / 60,
		HighMin:      deref(raw.HighDuration) / 60,
		TotalMin:     deref(raw.TotalDuration) / 60,
	}
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// decodeAll reads every file under root matching pattern, unmarshals each
// as a JSON array of T and hands the batch to consume. Files that are not
// arrays (some exports wrap single objects) are skipped rather than fatal.
func decodeAll[T any](root, pattern string, consume func([]T)) error {
	files, err := findFiles(root, pattern)
	if err != nil {
		return err
	}

	for _, file := range files {
		//nolint:gosec // file paths come from walking the export directory
		data, err := os.ReadFile(file)
		if err != nil {
			return zerr.Wrap(err, domain.ErrExportDecodeFailed.Error())
		}

		var raw []T
		if err := json.Unmarshal(data, &raw); err != nil {
			continue
		}

		consume(raw)
	}

	return nil
}
