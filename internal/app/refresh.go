package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Amund211/savewatch/internal/adapters/dashboardview"
	"github.com/Amund211/savewatch/internal/adapters/saveprovider"
	"github.com/Amund211/savewatch/internal/domain"
	"github.com/Amund211/savewatch/internal/logging"
)

// Refresh reads the save and renders it
//
// On failure the view is left as it was. The returned error is informational,
// callers are not expected to act on it.
type Refresh func(ctx context.Context) error

func BuildRefresh(
	provider saveprovider.SaveProvider,
	view dashboardview.DashboardView,
	nowFunc func() time.Time,
) Refresh {
	return func(ctx context.Context) error {
		logger := logging.FromContext(ctx)

		state, err := provider.GetSave(ctx)
		if errors.Is(err, domain.ErrSaveNotFound) {
			logger.InfoContext(ctx, "Save file not found yet, keeping current dashboard", "error", err.Error())
			return fmt.Errorf("could not get save: %w", err)
		} else if errors.Is(err, domain.ErrMalformedSave) {
			logger.WarnContext(ctx, "Save file is malformed, keeping current dashboard", "error", err.Error())
			return fmt.Errorf("could not get save: %w", err)
		} else if err != nil {
			logger.WarnContext(ctx, "Failed to load save file, keeping current dashboard", "error", err.Error())
			return fmt.Errorf("could not get save: %w", err)
		}

		Render(view, state, nowFunc())
		view.Flush()

		logger.DebugContext(ctx, "Rendered save", "level", state.Level(), "score", state.CurrentScore())

		return nil
	}
}
