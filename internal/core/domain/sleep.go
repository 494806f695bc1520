package domain

import "time"

// SleepNight is one night of sleep phase data.
type SleepNight struct {
	Date         time.Time `json:"date"`
	DeepHours    float64   `json:"deepHours"`
	LightHours   float64   `json:"lightHours"`
	RemHours     float64   `json:"remHours"`
	AwakeHours   float64   `json:"awakeHours"`
	AwakeCount   int       `json:"awakeCount"`
	OverallScore float64   `json:"overallScore"`
}

// TotalHours returns the total time asleep. Awake time within the sleep
// window is excluded, matching how Garmin reports sleep duration.
func (s SleepNight) TotalHours() float64 {
	return s.DeepHours + s.LightHours + s.RemHours
}
