package domain

import "time"

// MetricReading is one daily health metric sample, keyed by metric type
// (e.g. "HRV", "RESTING_HEART_RATE") in HealthDay.Metrics.
type MetricReading struct {
	Value  float64 `json:"value"`
	Status string  `json:"status"`
}

// HealthDay is a daily snapshot of health status metrics.
type HealthDay struct {
	Date    time.Time                `json:"date"`
	Metrics map[string]MetricReading `json:"metrics"`
}

// HRV returns the day's heart rate variability reading in milliseconds,
// or false when no HRV metric was recorded.
func (h HealthDay) HRV() (float64, bool) {
	m, ok := h.Metrics["HRV"]
	return m.Value, ok
}

// HydrationEntry is a single logged water intake.
type HydrationEntry struct {
	Timestamp time.Time `json:"timestamp"`
	ValueML   float64   `json:"valueML"`
}

// BodyBatteryDay is a day of body battery charge/drain data.
type BodyBatteryDay struct {
	Date    time.Time `json:"date"`
	Charged float64   `json:"charged"`
	Drained float64   `json:"drained"`
	Highest float64   `json:"highest"`
	Lowest  float64   `json:"lowest"`
}

// StressAggregatorTotal is the aggregator type covering the whole day.
// UDS files also carry AWAKE and ASLEEP aggregators.
const StressAggregatorTotal = "TOTAL"

// StressDay is one all-day stress aggregator from a UDS file.
type StressDay struct {
	Date         time.Time `json:"date"`
	Type         string    `json:"type"`
	AverageLevel float64   `json:"averageLevel"`
	MaxLevel     float64   `json:"maxLevel"`
	RestMin      float64   `json:"restMin"`
	LowMin       float64   `json:"lowMin"`
	MediumMin    float64   `json:"mediumMin"`
	HighMin      float64   `json:"highMin"`
	TotalMin     float64   `json:"totalMin"`
}

// Dataset holds every section decoded from one export. Any slice may be
// empty: exports only contain files for features the user's device records.
type Dataset struct {
	Activities  []Activity       `json:"activities"`
	Sleep       []SleepNight     `json:"sleep"`
	Health      []HealthDay      `json:"health"`
	Hydration   []HydrationEntry `json:"hydration"`
	BodyBattery []BodyBatteryDay `json:"bodyBattery"`
	Stress      []StressDay      `json:"stress"`
}

// Empty reports whether no section contains any records.
func (d *Dataset) Empty() bool {
	return len(d.Activities) == 0 &&
		len(d.Sleep) == 0 &&
		len(d.Health) == 0 &&
		len(d.Hydration) == 0 &&
		len(d.BodyBattery) == 0 &&
		len(d.Stress) == 0
}
