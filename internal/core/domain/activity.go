package domain

import "time"

// Activity is a single recorded activity from a Garmin Connect export.
// Unit conversions from the raw export (centimeters, milliseconds) happen
// at decode time; this type carries display units only.
type Activity struct {
	ID           int64     `json:"id"`
	Type         string    `json:"type"`
	StartTime    time.Time `json:"startTime"`
	DistanceKm   float64   `json:"distanceKm"`
	DurationMin  float64   `json:"durationMin"`
	Calories     float64   `json:"calories"`
	AvgHeartRate float64   `json:"avgHeartRate"`
}

// PaceMinPerKm returns the average pace in minutes per kilometer, or 0 for
// activities without distance (strength training, yoga).
func (a Activity) PaceMinPerKm() float64 {
	if a.DistanceKm <= 0 {
		return 0
	}
	return a.DurationMin / a.DistanceKm
}

// Week returns the ISO week label for the activity, e.g. "2025-W34".
func (a Activity) Week() string {
	return ISOWeek(a.StartTime)
}
