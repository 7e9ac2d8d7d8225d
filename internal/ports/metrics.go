package ports

import (
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type portsMetricsCollection struct {
	requestCount       metric.Int64Counter
	requestDuration    metric.Float64Histogram
	activeEventStreams metric.Int64UpDownCounter
	refreshesQueued    metric.Int64Counter
}

var metrics portsMetricsCollection

func init() {
	const name = "savewatch/ports"
	meter := otel.Meter(name)

	requestCount, err := meter.Int64Counter(
		"ports/request_count",
		metric.WithDescription("Total number of requests received"),
	)
	if err != nil {
		panic(fmt.Errorf("failed to create request count metric: %w", err))
	}

	requestDuration, err := meter.Float64Histogram(
		"ports/request_duration_seconds",
		metric.WithDescription("Processing time for received requests"),
		metric.WithUnit("s"),
	)
	if err != nil {
		panic(fmt.Errorf("failed to create request duration metric: %w", err))
	}

	activeEventStreams, err := meter.Int64UpDownCounter(
		"ports/active_event_streams",
		metric.WithDescription("Number of connected dashboard event streams"),
	)
	if err != nil {
		panic(fmt.Errorf("failed to create active event streams metric: %w", err))
	}

	refreshesQueued, err := meter.Int64Counter(
		"ports/refresh_request_count",
		metric.WithDescription("Manual refresh requests, by whether they queued a new refresh"),
	)
	if err != nil {
		panic(fmt.Errorf("failed to create refresh request count metric: %w", err))
	}

	metrics = portsMetricsCollection{
		requestCount:       requestCount,
		requestDuration:    requestDuration,
		activeEventStreams: activeEventStreams,
		refreshesQueued:    refreshesQueued,
	}
}

func buildMetricsMiddleware(port string) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			userAgent := r.UserAgent()
			if userAgent == "" {
				userAgent = "<missing>"
			}

			next(w, r)

			attributes := []attribute.KeyValue{
				attribute.String("port", port),
				attribute.String("method", r.Method),
				attribute.String("user_agent", userAgent),
			}

			attributesOption := metric.WithAttributes(attributes...)

			metrics.requestCount.Add(ctx, 1, attributesOption)
			metrics.requestDuration.Record(ctx, time.Since(start).Seconds(), attributesOption)
		}
	}
}
