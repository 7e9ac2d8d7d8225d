package ports

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Amund211/savewatch/internal/adapters/dashboardview"
	"github.com/Amund211/savewatch/internal/logging"
	"github.com/Amund211/savewatch/internal/reporting"
)

type SnapshotSource interface {
	Snapshot() dashboardview.Snapshot
}

func MakeGetDashboardHandler(
	source SnapshotSource,
	allowedOrigins *DomainSuffixes,
	rootLogger *slog.Logger,
	sentryMiddleware func(http.HandlerFunc) http.HandlerFunc,
) http.HandlerFunc {
	middleware := ComposeMiddlewares(
		buildMetricsMiddleware("dashboard"),
		logging.NewRequestLoggerMiddleware(rootLogger),
		sentryMiddleware,
		reporting.NewAddMetaMiddleware("dashboard"),
		BuildCORSMiddleware(allowedOrigins),
	)

	handler := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		snapshot := source.Snapshot()
		ctx = logging.AddMetaToContext(ctx, slog.Int64("version", snapshot.Version))

		response, err := json.Marshal(snapshot)
		if err != nil {
			reporting.Report(ctx, fmt.Errorf("failed to marshal dashboard snapshot: %w", err))
			writeErrorResponse(w, http.StatusInternalServerError, "internal server error")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-store")
		w.WriteHeader(http.StatusOK)
		w.Write(response)
	}

	return middleware(handler)
}
