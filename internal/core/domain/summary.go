package domain

import (
	"fmt"
	"slices"
	"time"
)

// TypeStats aggregates activities of one type.
type TypeStats struct {
	Count       int     `json:"count"`
	DistanceKm  float64 `json:"distanceKm"`
	DurationMin float64 `json:"durationMin"`
	Calories    float64 `json:"calories"`
}

// WeeklyAggregate is the activity volume of one ISO week.
type WeeklyAggregate struct {
	Week       string  `json:"week"`
	Count      int     `json:"count"`
	DistanceKm float64 `json:"distanceKm"`
}

// Records holds the standout activities of a dataset. Entries are zero-value
// when the dataset has no qualifying activity.
type Records struct {
	LongestDistance Activity `json:"longestDistance"`
	LongestDuration Activity `json:"longestDuration"`
	FastestPace     Activity `json:"fastestPace"`
}

// Summary is the derived view of one export, suitable for rendering and for
// JSON caching keyed by the export's content hash.
type Summary struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`

	ActivityCount   int     `json:"activityCount"`
	TotalDistanceKm float64 `json:"totalDistanceKm"`
	TotalCalories   float64 `json:"totalCalories"`
	AvgDurationMin  float64 `json:"avgDurationMin"`

	SleepNights   int     `json:"sleepNights"`
	AvgSleepHours float64 `json:"avgSleepHours"`
	AvgSleepScore float64 `json:"avgSleepScore"`

	AvgBodyBatteryHigh float64 `json:"avgBodyBatteryHigh"`
	AvgStressLevel     float64 `json:"avgStressLevel"`
	AvgHRVMs           float64 `json:"avgHRVMs"`
	TotalHydrationL    float64 `json:"totalHydrationL"`

	ByType  map[string]TypeStats `json:"byType"`
	Weekly  []WeeklyAggregate    `json:"weekly"`
	Records Records              `json:"records"`
}

// ISOWeek formats a time as an ISO week label, e.g. "2025-W34".
func ISOWeek(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// Summarize computes the derived metrics over a dataset. It never fails:
// empty sections simply leave their summary fields at zero.
func Summarize(ds *Dataset) Summary {
	s := Summary{ByType: make(map[string]TypeStats)}

	summarizeActivities(&s, ds.Activities)
	summarizeSleep(&s, ds.Sleep)
	summarizeWellness(&s, ds)

	return s
}

func summarizeActivities(s *Summary, activities []Activity) {
	if len(activities) == 0 {
		return
	}

	s.ActivityCount = len(activities)

	weekly := make(map[string]*WeeklyAggregate)
	var totalDuration float64

	for _, a := range activities {
		s.TotalDistanceKm += a.DistanceKm
		s.TotalCalories += a.Calories
		totalDuration += a.DurationMin

		if s.From.IsZero() || a.StartTime.Before(s.From) {
			s.From = a.StartTime
		}
		if a.StartTime.After(s.To) {
			s.To = a.StartTime
		}

		ts := s.ByType[a.Type]
		ts.Count++
		ts.DistanceKm += a.DistanceKm
		ts.DurationMin += a.DurationMin
		ts.Calories += a.Calories
		s.ByType[a.Type] = ts

		week := a.Week()
		agg, ok := weekly[week]
		if !ok {
			agg = &WeeklyAggregate{Week: week}
			weekly[week] = agg
		}
		agg.Count++
		agg.DistanceKm += a.DistanceKm

		updateRecords(&s.Records, a)
	}

	s.AvgDurationMin = totalDuration / float64(len(activities))

	s.Weekly = make([]WeeklyAggregate, 0, len(weekly))
	for _, agg := range weekly {
		s.Weekly = append(s.Weekly, *agg)
	}
	slices.SortFunc(s.Weekly, func(a, b WeeklyAggregate) int {
		if a.Week < b.Week {
			return -1
		}
		if a.Week > b.Week {
			return 1
		}
		return 0
	})
}

func updateRecords(r *Records, a Activity) {
	if a.DistanceKm > r.LongestDistance.DistanceKm {
		r.LongestDistance = a
	}
	if a.DurationMin > r.LongestDuration.DurationMin {
		r.LongestDuration = a
	}
	// Fastest pace only makes sense over a meaningful distance; short GPS
	// blips produce absurd paces.
	if pace := a.PaceMinPerKm(); pace > 0 && a.DistanceKm >= 1 {
		if current := r.FastestPace.PaceMinPerKm(); current == 0 || pace < current {
			r.FastestPace = a
		}
	}
}

func summarizeSleep(s *Summary, nights []SleepNight) {
	if len(nights) == 0 {
		return
	}

	s.SleepNights = len(nights)

	var totalHours, totalScore float64
	var scored int

	for _, n := range nights {
		totalHours += n.TotalHours()
		if n.OverallScore > 0 {
			totalScore += n.OverallScore
			scored++
		}
	}

	s.AvgSleepHours = totalHours / float64(len(nights))
	if scored > 0 {
		s.AvgSleepScore = totalScore / float64(scored)
	}
}

func summarizeWellness(s *Summary, ds *Dataset) {
	if len(ds.BodyBattery) > 0 {
		var total float64
		for _, d := range ds.BodyBattery {
			total += d.Highest
		}
		s.AvgBodyBatteryHigh = total / float64(len(ds.BodyBattery))
	}

	var stressTotal float64
	var stressDays int
	for _, d := range ds.Stress {
		if d.Type != StressAggregatorTotal {
			continue
		}
		stressTotal += d.AverageLevel
		stressDays++
	}
	if stressDays > 0 {
		s.AvgStressLevel = stressTotal / float64(stressDays)
	}

	var hrvTotal float64
	var hrvDays int
	for _, d := range ds.Health {
		if v, ok := d.HRV(); ok {
			hrvTotal += v
			hrvDays++
		}
	}
	if hrvDays > 0 {
		s.AvgHRVMs = hrvTotal / float64(hrvDays)
	}

	for _, h := range ds.Hydration {
		s.TotalHydrationL += h.ValueML / 1000
	}
}
