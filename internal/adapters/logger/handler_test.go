package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/paulohenriquegf/garmin-statistics/internal/adapters/logger"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
)

func TestPrettyHandler_Handle_Levels(t *testing.T) {
	tests := []struct {
		name       string
		level      slog.Level
		msg        string
		goldenName string
	}{
		{
			name:       "info level",
			level:      slog.LevelInfo,
			msg:        "starting dashboard",
			goldenName: "info",
		},
		{
			name:       "warn level",
			level:      slog.LevelWarn,
			msg:        "could not cache summary",
			goldenName: "warn",
		},
		{
			name:       "error level",
			level:      slog.LevelError,
			msg:        "installation failed",
			goldenName: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")

			buf := new(bytes.Buffer)
			handler := logger.NewPrettyHandler(buf, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			})
			lg := slog.New(handler)

			lg.Log(t.Context(), tt.level, tt.msg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestPrettyHandler_WithAttrs(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := new(bytes.Buffer)
	handler := logger.NewPrettyHandler(buf, nil).
		WithAttrs([]slog.Attr{slog.String("port", "8501")})
	lg := slog.New(handler)

	lg.Info("listening")

	g := goldie.New(t)
	g.Assert(t, "attrs", buf.Bytes())
}

func TestPrettyHandler_WithGroup_Ignored(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := new(bytes.Buffer)
	handler := logger.NewPrettyHandler(buf, nil).
		WithGroup("launch").
		WithAttrs([]slog.Attr{slog.String("step", "install")})
	lg := slog.New(handler)

	lg.Info("running")

	g := goldie.New(t)
	g.Assert(t, "group", buf.Bytes())
}

func TestPrettyHandler_Enabled(t *testing.T) {
	handler := logger.NewPrettyHandler(new(bytes.Buffer), &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})

	assert.False(t, handler.Enabled(t.Context(), slog.LevelInfo))
	assert.True(t, handler.Enabled(t.Context(), slog.LevelWarn))
	assert.True(t, handler.Enabled(t.Context(), slog.LevelError))
}
