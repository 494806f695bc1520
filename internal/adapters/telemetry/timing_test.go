package telemetry_test

import (
	"context"
	"sync"
	"testing"

	"github.com/paulohenriquegf/garmin-statistics/internal/adapters/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

type captureLogger struct {
	mu   sync.Mutex
	info []string
}

func (c *captureLogger) Info(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.info = append(c.info, msg)
}

func (c *captureLogger) Warn(string) {}
func (c *captureLogger) Error(error) {}

func (c *captureLogger) messages() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.info...)
}

func TestLogProcessor_OnEnd(t *testing.T) {
	log := &captureLogger{}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(telemetry.NewLogProcessor(log)),
	)
	defer func() { _ = tp.Shutdown(context.Background()) }()

	_, span := tp.Tracer("test").Start(context.Background(), "ingest.activities")
	span.End()

	msgs := log.messages()
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0], "ingest.activities took ")
}
