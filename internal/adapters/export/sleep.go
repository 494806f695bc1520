package export

import (
	"encoding/json"
	"os"

	"github.com/paulohenriquegf/garmin-statistics/internal/core/domain"
	"go.trai.ch/zerr"
)

// sleepPattern matches the sleep data files in an export.
const sleepPattern = "*_sleepData.json"

type rawSleepScores struct {
	OverallScore *float64 `json:"overallScore"`
}

type rawSleepNight struct {
	CalendarDate      string          `json:"calendarDate"`
	DeepSleepSeconds  *float64        `json:"deepSleepSeconds"`
	LightSleepSeconds *float64        `json:"lightSleepSeconds"`
	RemSleepSeconds   *float64        `json:"remSleepSeconds"`
	AwakeSleepSeconds *float64        `json:"awakeSleepSeconds"`
	AwakeCount        *int            `json:"awakeCount"`
	SleepScores       *rawSleepScores `json:"sleepScores"`
}

// loadSleep decodes every sleep data file under root. Exports split sleep
// across multiple files; all of them contribute nights.
func loadSleep(root string) ([]domain.SleepNight, error) {
	files, err := findFiles(root, sleepPattern)
	if err != nil {
		return nil, err
	}

	var nights []domain.SleepNight

	for _, file := range files {
		//nolint:gosec // file paths come from walking the export directory
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, zerr.Wrap(err, domain.ErrExportDecodeFailed.Error())
		}

		var raw []rawSleepNight
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, zerr.With(
				zerr.Wrap(err, domain.ErrExportDecodeFailed.Error()),
				"file", file,
			)
		}

		for _, r := range raw {
			if n, ok := convertSleepNight(r); ok {
				nights = append(nights, n)
			}
		}
	}

	return nights, nil
}

func convertSleepNight(raw rawSleepNight) (domain.SleepNight, bool) {
	date, ok := domain.ParseTimestamp(raw.CalendarDate)
	if !ok {
		return domain.SleepNight{}, false
	}

	night := domain.SleepNight{
		Date:       date,
		DeepHours:  secondsToHours(raw.DeepSleepSeconds),
		LightHours: secondsToHours(raw.LightSleepSeconds),
		RemHours:   secondsToHours(raw.RemSleepSeconds),
		AwakeHours: secondsToHours(raw.AwakeSleepSeconds),
	}

	if raw.AwakeCount != nil {
		night.AwakeCount = *raw.AwakeCount
	}
	if raw.SleepScores != nil && raw.SleepScores.OverallScore != nil {
		night.OverallScore = *raw.SleepScores.OverallScore
	}

	return night, true
}

func secondsToHours(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v / 3600
}
