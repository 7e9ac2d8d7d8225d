package ports

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/Amund211/savewatch/internal/adapters/dashboardview"
	"github.com/Amund211/savewatch/internal/logging"
	"github.com/Amund211/savewatch/internal/reporting"
)

//go:embed templates/dashboard.html
var templateFS embed.FS

var dashboardTemplate = template.Must(template.ParseFS(templateFS, "templates/dashboard.html"))

type pageData struct {
	dashboardview.Snapshot

	UpdatedAt     string
	FolderMessage string
	LaunchMessage string
}

func newPageData(snapshot dashboardview.Snapshot, saveSource string) pageData {
	updatedAt := "Never"
	if snapshot.UpdatedAt != nil {
		updatedAt = snapshot.UpdatedAt.Format(time.TimeOnly)
	}

	return pageData{
		Snapshot:      snapshot,
		UpdatedAt:     updatedAt,
		FolderMessage: fmt.Sprintf("📂 Save files are located in: %s\n\nYou can open this folder from your game directory.", saveSource),
		LaunchMessage: "🎮 To launch the game:\n\n1. Navigate to your game folder\n2. Run the game executable\n\nOr create a shortcut on your desktop!",
	}
}

func MakeGetPageHandler(
	source SnapshotSource,
	saveSource string,
	rootLogger *slog.Logger,
	sentryMiddleware func(http.HandlerFunc) http.HandlerFunc,
) http.HandlerFunc {
	middleware := ComposeMiddlewares(
		buildMetricsMiddleware("page"),
		logging.NewRequestLoggerMiddleware(rootLogger),
		sentryMiddleware,
		reporting.NewAddMetaMiddleware("page"),
	)

	handler := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var page bytes.Buffer
		err := dashboardTemplate.Execute(&page, newPageData(source.Snapshot(), saveSource))
		if err != nil {
			reporting.Report(ctx, fmt.Errorf("failed to render dashboard page: %w", err))
			writeErrorResponse(w, http.StatusInternalServerError, "internal server error")
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-cache")
		w.WriteHeader(http.StatusOK)
		w.Write(page.Bytes())
	}

	return middleware(handler)
}
