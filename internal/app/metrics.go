package app

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

type appMetricsCollection struct {
	refreshCount     metric.Int64Counter
	refreshDuration  metric.Float64Histogram
	triggerCoalesced metric.Int64Counter
}

var metrics appMetricsCollection

func init() {
	const name = "savewatch/app"
	meter := otel.Meter(name)

	refreshCount, err := meter.Int64Counter(
		"app/refresh_count",
		metric.WithDescription("Total number of save refreshes"),
	)
	if err != nil {
		panic(fmt.Errorf("failed to create refresh count metric: %w", err))
	}

	refreshDuration, err := meter.Float64Histogram(
		"app/refresh_duration_seconds",
		metric.WithDescription("Time spent reading and rendering the save"),
		metric.WithUnit("s"),
	)
	if err != nil {
		panic(fmt.Errorf("failed to create refresh duration metric: %w", err))
	}

	triggerCoalesced, err := meter.Int64Counter(
		"app/trigger_coalesced_count",
		metric.WithDescription("Manual refresh triggers merged into an already queued refresh"),
	)
	if err != nil {
		panic(fmt.Errorf("failed to create trigger coalesced metric: %w", err))
	}

	metrics = appMetricsCollection{
		refreshCount:     refreshCount,
		refreshDuration:  refreshDuration,
		triggerCoalesced: triggerCoalesced,
	}
}
