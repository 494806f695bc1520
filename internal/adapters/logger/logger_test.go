package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/paulohenriquegf/garmin-statistics/internal/adapters/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
)

func newBufferedLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	log := logger.New()
	buf := new(bytes.Buffer)
	log.SetOutput(buf)
	return log, buf
}

func TestLogger_Info(t *testing.T) {
	log, buf := newBufferedLogger(t)

	log.Info("hello")

	assert.Contains(t, buf.String(), "hello")
}

func TestLogger_Warn(t *testing.T) {
	log, buf := newBufferedLogger(t)

	log.Warn("careful")

	assert.Contains(t, buf.String(), "! careful")
}

func TestLogger_Error(t *testing.T) {
	log, buf := newBufferedLogger(t)

	log.Error(zerr.Wrap(errors.New("root"), "outer"))

	out := buf.String()
	assert.Contains(t, out, "Error: outer")
	assert.Contains(t, out, "Caused by:")
	assert.Contains(t, out, "→ root")
}

func TestLogger_ErrorNil(t *testing.T) {
	log, buf := newBufferedLogger(t)

	log.Error(nil)

	assert.Empty(t, buf.String())
}

func TestLogger_JSONMode(t *testing.T) {
	log, buf := newBufferedLogger(t)
	log.SetJSON(true)

	log.Info("structured")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "structured", record["msg"])
	assert.Equal(t, "INFO", record["level"])
}
