package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/Amund211/savewatch/internal/logging"
	"github.com/stretchr/testify/assert"
)

type StringAttr struct {
	Key   string
	Value string
}

func TestRequestLoggerMiddleware(t *testing.T) {
	run := func(request *http.Request, useMiddleware bool) []StringAttr {
		t.Helper()

		buf := &bytes.Buffer{}
		middleware := logging.NewRequestLoggerMiddleware(slog.New(slog.NewJSONHandler(buf, nil)))

		logRequest := func(w http.ResponseWriter, r *http.Request) {
			logging.FromContext(r.Context()).Info("test")
		}

		handler := logRequest
		if useMiddleware {
			handler = middleware(logRequest)
		}

		w := httptest.NewRecorder()
		handler(w, request)

		var logEntry map[string]interface{}
		err := json.Unmarshal(buf.Bytes(), &logEntry)
		assert.NoError(t, err)
		attrs := make([]StringAttr, 0)

		foundBase := 0
		for key, value := range logEntry {
			if key == "msg" {
				assert.Equal(t, "test", value)
				foundBase++
			} else if key == "level" {
				assert.Equal(t, "INFO", value)
				foundBase++
			} else if key == "time" {
				foundBase++
			} else {
				attrs = append(attrs, StringAttr{Key: key, Value: value.(string)})
			}
		}

		assert.Equal(t, 3, foundBase)

		return attrs
	}

	t.Run("with middleware", func(t *testing.T) {
		t.Run("all props", func(t *testing.T) {
			requestUrl, err := url.Parse("http://example.com/v1/dashboard")
			assert.NoError(t, err)

			attrs := run(&http.Request{
				URL:        requestUrl,
				Method:     "GET",
				RemoteAddr: "10.0.0.2:51234",
				Header: http.Header{
					"User-Agent": []string{"user-agent/1.0"},
				},
			}, true)

			assert.ElementsMatch(t, []StringAttr{
				{Key: "userAgent", Value: "user-agent/1.0"},
				{Key: "remoteAddr", Value: "10.0.0.2:51234"},
				{Key: "methodPath", Value: "GET /v1/dashboard"},
			}, attrs)
		})

		t.Run("missing props", func(t *testing.T) {
			requestUrl, err := url.Parse("http://example.com/v1/refresh")
			assert.NoError(t, err)

			attrs := run(&http.Request{
				URL:    requestUrl,
				Method: "POST",
			}, true)

			assert.ElementsMatch(t, []StringAttr{
				{Key: "userAgent", Value: "<missing>"},
				{Key: "remoteAddr", Value: "<missing>"},
				{Key: "methodPath", Value: "POST /v1/refresh"},
			}, attrs)
		})
	})

	t.Run("without middleware", func(t *testing.T) {
		logging.FromContext(context.Background()).Info("don't crash when no logger in context")
	})
}
