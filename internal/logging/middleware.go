package logging

import (
	"fmt"
	"log/slog"
	"net/http"
)

func NewRequestLoggerMiddleware(logger *slog.Logger) func(next http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			userAgent := r.UserAgent()
			if userAgent == "" {
				userAgent = "<missing>"
			}

			remoteAddr := r.RemoteAddr
			if remoteAddr == "" {
				remoteAddr = "<missing>"
			}

			requestLogger := logger.With(
				slog.String("methodPath", fmt.Sprintf("%s %s", r.Method, r.URL.Path)),
				slog.String("userAgent", userAgent),
				slog.String("remoteAddr", remoteAddr),
			)

			next(w, r.WithContext(AddToContext(r.Context(), requestLogger)))
		}
	}
}
