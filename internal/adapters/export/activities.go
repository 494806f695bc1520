package export

import (
	"encoding/json"
	"os"

	"github.com/paulohenriquegf/garmin-statistics/internal/core/domain"
	"go.trai.ch/zerr"
)

// activitiesPattern matches the activity summary files in an export.
const activitiesPattern = "*_summarizedActivities.json"

// rawActivityFile mirrors the nesting of summarizedActivities files: a
// single-element array wrapping the export object.
type rawActivityFile struct {
	SummarizedActivitiesExport []rawActivity `json:"summarizedActivitiesExport"`
}

// rawActivity carries the export fields in their native units: distance in
// centimeters, durations in milliseconds, timestamps in epoch ms. Garmin
// reports the real activity calories in bmrCalories; the calories field is
// inflated and only used as a fallback.
type rawActivity struct {
	ActivityID      int64    `json:"activityId"`
	ActivityType    string   `json:"activityType"`
	StartTimeLocal  any      `json:"startTimeLocal"`
	StartTimeGmt    any      `json:"startTimeGmt"`
	BeginTimestamp  any      `json:"beginTimestamp"`
	ElapsedDuration *float64 `json:"elapsedDuration"`
	Duration        *float64 `json:"duration"`
	Distance        *float64 `json:"distance"`
	BmrCalories     *float64 `json:"bmrCalories"`
	Calories        *float64 `json:"calories"`
	AvgHr           *float64 `json:"avgHr"`
}

// loadActivities decodes every activity summary file under root. Activities
// without a parseable start time are dropped.
func loadActivities(root string) ([]domain.Activity, error) {
	files, err := findFiles(root, activitiesPattern)
	if err != nil {
		return nil, err
	}

	var activities []domain.Activity

	for _, file := range files {
		//nolint:gosec // file paths come from walking the export directory
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, zerr.Wrap(err, domain.ErrExportDecodeFailed.Error())
		}

		var wrapper []rawActivityFile
		if err := json.Unmarshal(data, &wrapper); err != nil {
			return nil, zerr.With(
				zerr.Wrap(err, domain.ErrExportDecodeFailed.Error()),
				"file", file,
			)
		}

		for _, chunk := range wrapper {
			for _, raw := range chunk.SummarizedActivitiesExport {
				if a, ok := convertActivity(raw); ok {
					activities = append(activities, a)
				}
			}
		}
	}

	return activities, nil
}

func convertActivity(raw rawActivity) (domain.Activity, bool) {
	start, ok := domain.ParseTimestamp(raw.StartTimeLocal)
	if !ok {
		start, ok = domain.ParseTimestamp(raw.StartTimeGmt)
	}
	if !ok {
		start, ok = domain.ParseTimestamp(raw.BeginTimestamp)
	}
	if !ok {
		return domain.Activity{}, false
	}

	// elapsedDuration is the total time; duration is a fallback. Both ms.
	var durationMs float64
	switch {
	case raw.ElapsedDuration != nil:
		durationMs = *raw.ElapsedDuration
	case raw.Duration != nil:
		durationMs = *raw.Duration
	}

	// distance comes in centimeters.
	var distanceCm float64
	if raw.Distance != nil {
		distanceCm = *raw.Distance
	}

	var calories float64
	switch {
	case raw.BmrCalories != nil:
		calories = *raw.BmrCalories
	case raw.Calories != nil:
		calories = *raw.Calories
	}

	var avgHr float64
	if raw.AvgHr != nil {
		avgHr = *raw.AvgHr
	}

	activityType := raw.ActivityType
	if activityType == "" {
		activityType = "other"
	}

	return domain.Activity{
		ID:           raw.ActivityID,
		Type:         activityType,
		StartTime:    start,
		DistanceKm:   distanceCm / 100 / 1000,
		DurationMin:  durationMs / 1000 / 60,
		Calories:     calories,
		AvgHeartRate: avgHr,
	}, true
}
