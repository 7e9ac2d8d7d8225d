package ports

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/Amund211/savewatch/internal/adapters/dashboardview"
	"github.com/Amund211/savewatch/internal/logging"
	"github.com/Amund211/savewatch/internal/reporting"
)

const dashboardEvent = "dashboard"

type SnapshotBroadcaster interface {
	SnapshotSource
	Subscribe() (<-chan dashboardview.Snapshot, func())
}

func writeEvent(w io.Writer, event string, snapshot dashboardview.Snapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data)
	if err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}
	return nil
}

// MakeGetEventsHandler streams published dashboard snapshots as server-sent events
//
// The current snapshot is sent as soon as the client connects. A comment line
// is sent every keepAliveInterval so proxies don't close idle streams.
func MakeGetEventsHandler(
	broadcaster SnapshotBroadcaster,
	allowedOrigins *DomainSuffixes,
	keepAliveInterval time.Duration,
	rootLogger *slog.Logger,
	sentryMiddleware func(http.HandlerFunc) http.HandlerFunc,
) http.HandlerFunc {
	middleware := ComposeMiddlewares(
		buildMetricsMiddleware("events"),
		logging.NewRequestLoggerMiddleware(rootLogger),
		sentryMiddleware,
		reporting.NewAddMetaMiddleware("events"),
		BuildCORSMiddleware(allowedOrigins),
	)

	handler := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		logger := logging.FromContext(ctx)
		controller := http.NewResponseController(w)

		// Subscribe before reading the current snapshot so no publish is missed
		snapshots, unsubscribe := broadcaster.Subscribe()
		defer unsubscribe()

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.Header().Set("X-Accel-Buffering", "no")
		w.WriteHeader(http.StatusOK)

		metrics.activeEventStreams.Add(context.WithoutCancel(ctx), 1)
		defer metrics.activeEventStreams.Add(context.WithoutCancel(ctx), -1)

		send := func(snapshot dashboardview.Snapshot) bool {
			if err := writeEvent(w, dashboardEvent, snapshot); err != nil {
				logger.InfoContext(ctx, "Failed to send event, closing stream", "error", err.Error())
				return false
			}
			if err := controller.Flush(); err != nil {
				reporting.Report(ctx, fmt.Errorf("failed to flush event stream: %w", err))
				return false
			}
			return true
		}

		current := broadcaster.Snapshot()
		if !send(current) {
			return
		}
		lastVersion := current.Version

		keepAlive := time.NewTicker(keepAliveInterval)
		defer keepAlive.Stop()

		logger.InfoContext(ctx, "Event stream opened", "version", lastVersion)

		for {
			select {
			case <-ctx.Done():
				logger.InfoContext(ctx, "Event stream closed")
				return
			case snapshot := <-snapshots:
				if snapshot.Version <= lastVersion {
					continue
				}
				if !send(snapshot) {
					return
				}
				lastVersion = snapshot.Version
			case <-keepAlive.C:
				if _, err := io.WriteString(w, ": keepalive\n\n"); err != nil {
					return
				}
				if err := controller.Flush(); err != nil {
					return
				}
			}
		}
	}

	return middleware(handler)
}
