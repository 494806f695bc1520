// Package telemetry bridges OpenTelemetry spans to the structured logger.
package telemetry

import (
	"context"
	"fmt"
	"time"

	"github.com/paulohenriquegf/garmin-statistics/internal/core/ports"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// LogProcessor is a SpanProcessor that reports span durations through the
// logger. There is no exporter behind it.
type LogProcessor struct {
	logger ports.Logger
}

// NewLogProcessor creates a new LogProcessor.
func NewLogProcessor(logger ports.Logger) *LogProcessor {
	return &LogProcessor{logger: logger}
}

// OnStart implements sdktrace.SpanProcessor.
func (p *LogProcessor) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd logs the completed span's duration.
func (p *LogProcessor) OnEnd(s sdktrace.ReadOnlySpan) {
	elapsed := s.EndTime().Sub(s.StartTime())
	p.logger.Info(fmt.Sprintf("%s took %s", s.Name(), elapsed.Round(time.Millisecond)))
}

// Shutdown implements sdktrace.SpanProcessor.
func (p *LogProcessor) Shutdown(_ context.Context) error {
	return nil
}

// ForceFlush implements sdktrace.SpanProcessor.
func (p *LogProcessor) ForceFlush(_ context.Context) error {
	return nil
}

var _ sdktrace.SpanProcessor = (*LogProcessor)(nil)
