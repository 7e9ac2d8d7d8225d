package ports_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Amund211/savewatch/internal/adapters/dashboardview"
	"github.com/Amund211/savewatch/internal/app"
	"github.com/Amund211/savewatch/internal/domaintest"
	"github.com/Amund211/savewatch/internal/ports"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func noopMiddleware(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h(w, r)
	}
}

func newAllowedOrigins(t *testing.T) *ports.DomainSuffixes {
	t.Helper()
	allowedOrigins, err := ports.NewDomainSuffixes("example.com")
	require.NoError(t, err)
	return allowedOrigins
}

func newRenderedView(t *testing.T) (*dashboardview.MemoryView, time.Time) {
	t.Helper()

	view := dashboardview.NewMemoryView()
	now := time.Date(2024, time.March, 1, 12, 30, 0, 0, time.UTC)
	state := domaintest.NewGameStateBuilder().
		WithLevel(6).
		WithHealth(45, 180).
		WithEnemiesKilled(12).
		WithScore(1500).
		WithPlayTime(3725).
		WithPotions(3, 1, 0, 2, 4).
		WithHighestFloor(4).
		BuildPtr()
	app.Render(view, state, now)
	view.Flush()

	return view, now
}

func TestMakeGetDashboardHandler(t *testing.T) {
	t.Parallel()

	t.Run("defaults before the first render", func(t *testing.T) {
		t.Parallel()

		view := dashboardview.NewMemoryView()
		handler := ports.MakeGetDashboardHandler(view, newAllowedOrigins(t), testLogger, noopMiddleware)

		w := httptest.NewRecorder()
		handler(w, httptest.NewRequest("GET", "/v1/dashboard", nil))

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "application/json", w.Header().Get("Content-Type"))

		var snapshot dashboardview.Snapshot
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snapshot))
		require.Equal(t, dashboardview.DefaultSnapshot(), snapshot)
	})

	t.Run("published snapshot", func(t *testing.T) {
		t.Parallel()

		view, now := newRenderedView(t)
		handler := ports.MakeGetDashboardHandler(view, newAllowedOrigins(t), testLogger, noopMiddleware)

		w := httptest.NewRecorder()
		handler(w, httptest.NewRequest("GET", "/v1/dashboard", nil))

		require.Equal(t, http.StatusOK, w.Code)

		var snapshot dashboardview.Snapshot
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snapshot))
		require.Equal(t, int64(1), snapshot.Version)
		require.Equal(t, 6, snapshot.Level)
		require.Equal(t, "45/180", snapshot.Health)
		require.InDelta(t, 25.0, snapshot.HealthBarPercent, 1e-9)
		require.Equal(t, "1h 2m", snapshot.PlayTime)
		require.Equal(t, 4, snapshot.Potions.Mana)
		require.NotNil(t, snapshot.UpdatedAt)
		require.True(t, now.Equal(*snapshot.UpdatedAt))

		unlocked := make([]string, 0)
		for _, achievement := range snapshot.Achievements {
			if achievement.Unlocked {
				unlocked = append(unlocked, achievement.ID)
			}
		}
		require.Equal(t, []string{"first-kill", "level-5", "score-1k", "kills-10"}, unlocked)
	})

	t.Run("json field names", func(t *testing.T) {
		t.Parallel()

		view, _ := newRenderedView(t)
		handler := ports.MakeGetDashboardHandler(view, newAllowedOrigins(t), testLogger, noopMiddleware)

		w := httptest.NewRecorder()
		handler(w, httptest.NewRequest("GET", "/v1/dashboard", nil))

		var raw map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
		for _, key := range []string{
			"version", "level", "health", "healthBarPercent", "experience", "weapon",
			"floor", "score", "enemiesKilled", "playTime", "potions", "damageDealt",
			"damageTaken", "potionsUsed", "highestFloor", "lastSave", "achievements", "updatedAt",
		} {
			require.Contains(t, raw, key)
		}
	})

	t.Run("cors", func(t *testing.T) {
		t.Parallel()

		view := dashboardview.NewMemoryView()
		handler := ports.MakeGetDashboardHandler(view, newAllowedOrigins(t), testLogger, noopMiddleware)

		req := httptest.NewRequest("GET", "/v1/dashboard", nil)
		req.Header.Set("Origin", "https://stats.example.com")
		w := httptest.NewRecorder()
		handler(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "https://stats.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	})
}
