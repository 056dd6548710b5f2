package eca

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var meter = otel.Meter("eca")

var (
	automataTotal metric.Int64Counter
	runDuration   metric.Float64Histogram

	metricsOnce sync.Once
	metricsErr  error
)

func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		automataTotal, err = meter.Int64Counter(
			"eca_automata_simulated_total",
			metric.WithDescription("Automata simulated by SimulateAll"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		runDuration, err = meter.Float64Histogram(
			"eca_simulate_all_duration_seconds",
			metric.WithDescription("Wall time of SimulateAll runs"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
		}
	})
	return metricsErr
}

// recordRun is a no-op when the instruments could not be created.
func recordRun(ctx context.Context, rule Rule, automata int, elapsed time.Duration, err error) {
	if initMetrics() != nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.Int("rule", rule.Number()),
		attribute.Bool("success", err == nil),
	)
	automataTotal.Add(ctx, int64(automata), attrs)
	runDuration.Record(ctx, elapsed.Seconds(), attrs)
}
