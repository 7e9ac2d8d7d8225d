package ports

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Amund211/savewatch/internal/logging"
	"github.com/Amund211/savewatch/internal/ratelimiting"
	"github.com/Amund211/savewatch/internal/reporting"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// TriggerRefresh queues a refresh, returning false if one was already queued
type TriggerRefresh func() bool

type refreshResponse struct {
	Success bool `json:"success"`
	Queued  bool `json:"queued"`
}

func MakeRefreshHandler(
	triggerRefresh TriggerRefresh,
	allowedOrigins *DomainSuffixes,
	nowFunc func() time.Time,
	rootLogger *slog.Logger,
	sentryMiddleware func(http.HandlerFunc) http.HandlerFunc,
) http.HandlerFunc {
	ipLimiter, _ := ratelimiting.NewTokenBucketRateLimiter(
		ratelimiting.RefillPerSecond(1),
		ratelimiting.BurstSize(5),
		nowFunc,
	)
	ipRateLimiter := ratelimiting.NewRequestBasedRateLimiter(
		ipLimiter,
		ratelimiting.IPKeyFunc,
	)

	middleware := ComposeMiddlewares(
		buildMetricsMiddleware("refresh"),
		logging.NewRequestLoggerMiddleware(rootLogger),
		sentryMiddleware,
		reporting.NewAddMetaMiddleware("refresh"),
		BuildCORSMiddleware(allowedOrigins),
		NewRateLimitMiddleware(ipRateLimiter, writeRateLimitExceeded),
	)

	handler := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		queued := triggerRefresh()
		metrics.refreshesQueued.Add(ctx, 1, metric.WithAttributes(attribute.Bool("queued", queued)))
		logging.FromContext(ctx).InfoContext(ctx, "Manual refresh requested", "queued", queued)

		response, err := json.Marshal(refreshResponse{Success: true, Queued: queued})
		if err != nil {
			reporting.Report(ctx, fmt.Errorf("failed to marshal refresh response: %w", err))
			writeErrorResponse(w, http.StatusInternalServerError, "internal server error")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		w.Write(response)
	}

	return middleware(handler)
}
