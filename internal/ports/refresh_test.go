package ports_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Amund211/savewatch/internal/ports"
	"github.com/stretchr/testify/require"
)

func TestMakeRefreshHandler(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	nowFunc := func() time.Time {
		return now
	}

	makeRequest := func(remoteAddr string) *http.Request {
		req := httptest.NewRequest("POST", "/v1/refresh", nil)
		req.RemoteAddr = remoteAddr
		return req
	}

	t.Run("queues a refresh", func(t *testing.T) {
		t.Parallel()

		calls := 0
		handler := ports.MakeRefreshHandler(func() bool {
			calls++
			return true
		}, newAllowedOrigins(t), nowFunc, testLogger, noopMiddleware)

		w := httptest.NewRecorder()
		handler(w, makeRequest("192.168.1.34:51234"))

		require.Equal(t, http.StatusAccepted, w.Code)
		require.Equal(t, "application/json", w.Header().Get("Content-Type"))
		require.JSONEq(t, `{"success":true,"queued":true}`, w.Body.String())
		require.Equal(t, 1, calls)
	})

	t.Run("coalesced refresh", func(t *testing.T) {
		t.Parallel()

		handler := ports.MakeRefreshHandler(func() bool {
			return false
		}, newAllowedOrigins(t), nowFunc, testLogger, noopMiddleware)

		w := httptest.NewRecorder()
		handler(w, makeRequest("192.168.1.34:51234"))

		require.Equal(t, http.StatusAccepted, w.Code)
		require.JSONEq(t, `{"success":true,"queued":false}`, w.Body.String())
	})

	t.Run("rate limited per ip", func(t *testing.T) {
		t.Parallel()

		calls := 0
		handler := ports.MakeRefreshHandler(func() bool {
			calls++
			return true
		}, newAllowedOrigins(t), nowFunc, testLogger, noopMiddleware)

		// Burst of 5
		for range 5 {
			w := httptest.NewRecorder()
			handler(w, makeRequest("192.168.1.34:51234"))
			require.Equal(t, http.StatusAccepted, w.Code)
		}

		w := httptest.NewRecorder()
		handler(w, makeRequest("192.168.1.34:40000"))
		require.Equal(t, http.StatusTooManyRequests, w.Code)
		require.JSONEq(t, `{"success":false,"cause":"rate limit exceeded"}`, w.Body.String())
		require.Equal(t, 5, calls)

		// Other clients have their own bucket
		w = httptest.NewRecorder()
		handler(w, makeRequest("192.168.1.35:51234"))
		require.Equal(t, http.StatusAccepted, w.Code)
		require.Equal(t, 6, calls)
	})

	t.Run("cors preflight is not rate limited", func(t *testing.T) {
		t.Parallel()

		handler := ports.MakeRefreshHandler(func() bool {
			require.FailNow(t, "preflight should not trigger a refresh")
			return false
		}, newAllowedOrigins(t), nowFunc, testLogger, noopMiddleware)

		for range 10 {
			req := httptest.NewRequest("OPTIONS", "/v1/refresh", nil)
			req.Header.Set("Origin", "https://example.com")
			w := httptest.NewRecorder()
			handler(w, req)
			require.Equal(t, http.StatusNoContent, w.Code)
		}
	})
}
