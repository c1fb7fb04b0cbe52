// internal/telemetry/telemetry.go
package telemetry

import (
	"context"
	"fmt"

	"go-scorched-earth/internal/event"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "go-scorched-earth"

// Recorder считает раунды, выстрелы и исходы.
// Без настроенного провайдера метрики уходят в глобальный no-op.
type Recorder struct {
	rounds   metric.Int64Counter
	shots    metric.Int64Counter
	outcomes metric.Int64Counter
	flight   metric.Float64Histogram
}

// NewRecorder регистрирует инструменты; nil — глобальный провайдер otel
func NewRecorder(mp metric.MeterProvider) (*Recorder, error) {
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	m := mp.Meter(meterName)

	rounds, err := m.Int64Counter("scorched.rounds", metric.WithDescription("Rounds started"))
	if err != nil {
		return nil, fmt.Errorf("failed to create rounds counter: %w", err)
	}
	shots, err := m.Int64Counter("scorched.shots", metric.WithDescription("Shots fired"))
	if err != nil {
		return nil, fmt.Errorf("failed to create shots counter: %w", err)
	}
	outcomes, err := m.Int64Counter("scorched.outcomes", metric.WithDescription("Round outcomes by kind"))
	if err != nil {
		return nil, fmt.Errorf("failed to create outcomes counter: %w", err)
	}
	flight, err := m.Float64Histogram("scorched.flight.duration",
		metric.WithDescription("Real time from fire to impact"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create flight histogram: %w", err)
	}

	return &Recorder{rounds: rounds, shots: shots, outcomes: outcomes, flight: flight}, nil
}

func (r *Recorder) OnEvent(e event.Event) {
	ctx := context.Background()
	switch d := e.Data.(type) {
	case event.RoundStartedData:
		r.rounds.Add(ctx, 1)
	case event.ShotFiredData:
		r.shots.Add(ctx, 1)
	case event.ShotResultData:
		r.outcomes.Add(ctx, 1, metric.WithAttributes(
			attribute.String("outcome", d.Outcome),
			attribute.String("reason", d.Reason),
		))
		r.flight.Record(ctx, d.Duration.Seconds(), metric.WithAttributes(attribute.String("outcome", d.Outcome)))
	case event.RoundAbortedData:
		r.outcomes.Add(ctx, 1, metric.WithAttributes(
			attribute.String("outcome", "aborted"),
			attribute.String("phase", d.Phase),
		))
	}
}
