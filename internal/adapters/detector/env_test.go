package detector_test

import (
	"testing"

	"github.com/paulohenriquegf/garmin-statistics/internal/adapters/detector"
	"github.com/stretchr/testify/assert"
)

func TestResolveMode(t *testing.T) {
	tests := []struct {
		name     string
		detected detector.OutputMode
		flag     string
		want     detector.OutputMode
	}{
		{"tui override wins", detector.ModeLinear, "tui", detector.ModeTUI},
		{"linear override wins", detector.ModeTUI, "linear", detector.ModeLinear},
		{"ci is an alias for linear", detector.ModeTUI, "ci", detector.ModeLinear},
		{"auto keeps detection", detector.ModeLinear, "auto", detector.ModeLinear},
		{"empty keeps detection", detector.ModeTUI, "", detector.ModeTUI},
		{"unknown keeps detection", detector.ModeTUI, "fancy", detector.ModeTUI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, detector.ResolveMode(tt.detected, tt.flag))
		})
	}
}

func TestDetectEnvironment_CI(t *testing.T) {
	t.Setenv("CI", "true")
	assert.Equal(t, detector.ModeLinear, detector.DetectEnvironment())
}
