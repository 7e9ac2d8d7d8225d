package ports

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Amund211/savewatch/internal/adapters/cache"
	"github.com/Amund211/savewatch/internal/logging"
	"github.com/Amund211/savewatch/internal/reporting"
	"github.com/skip2/go-qrcode"
)

const qrCodeSize = 256
const qrCodeCacheTTL = 1 * time.Hour
const qrCodeCacheCapacity = 16

// Longest DNS name plus room for a port
const maxHostLength = 253 + len(":65535")

// isValidHost reports whether host is a hostname or IP, optionally with a port
func isValidHost(host string) bool {
	if host == "" || len(host) > maxHostLength {
		return false
	}

	hostname := host
	if h, port, err := net.SplitHostPort(host); err == nil {
		portNumber, err := strconv.Atoi(port)
		if err != nil || portNumber < 1 || portNumber > 65535 {
			return false
		}
		hostname = h
	} else if strings.HasPrefix(host, "[") && strings.HasSuffix(host, "]") {
		hostname = host[1 : len(host)-1]
	}

	if net.ParseIP(hostname) != nil {
		return true
	}

	return isValidHostname(hostname)
}

func isValidHostname(hostname string) bool {
	if hostname == "" || len(hostname) > 253 {
		return false
	}

	labelLength := 0
	for i := 0; i < len(hostname); i++ {
		c := hostname[i]
		switch {
		case c == '.':
			if labelLength == 0 {
				return false
			}
			labelLength = 0
		case c == '-', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			labelLength++
			if labelLength > 63 {
				return false
			}
		default:
			return false
		}
	}

	return true
}

// MakeGetQRCodeHandler serves a QR code pointing to the dashboard page
//
// When publicURL is empty the URL is built from the Host the client used.
func MakeGetQRCodeHandler(
	publicURL string,
	rootLogger *slog.Logger,
	sentryMiddleware func(http.HandlerFunc) http.HandlerFunc,
) http.HandlerFunc {
	qrCodeCache := cache.NewBoundedTTLCache[[]byte](qrCodeCacheTTL, qrCodeCacheCapacity)

	middleware := ComposeMiddlewares(
		buildMetricsMiddleware("qrcode"),
		logging.NewRequestLoggerMiddleware(rootLogger),
		sentryMiddleware,
		reporting.NewAddMetaMiddleware("qrcode"),
	)

	handler := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		dashboardURL := publicURL
		if dashboardURL == "" {
			if !isValidHost(r.Host) {
				logging.FromContext(ctx).InfoContext(ctx, "Invalid host for qr code", "hostLength", len(r.Host))
				writeErrorResponse(w, http.StatusBadRequest, "invalid host")
				return
			}
			dashboardURL = fmt.Sprintf("http://%s/", r.Host)
		}
		ctx = reporting.AddExtrasToContext(ctx, map[string]string{"dashboardURL": dashboardURL})

		png, _, err := cache.GetOrCreate(ctx, qrCodeCache, dashboardURL, func() ([]byte, error) {
			return qrcode.Encode(dashboardURL, qrcode.Medium, qrCodeSize)
		})
		if err != nil {
			reporting.Report(ctx, fmt.Errorf("failed to encode qr code: %w", err))
			writeErrorResponse(w, http.StatusInternalServerError, "internal server error")
			return
		}

		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Cache-Control", "no-cache")
		w.WriteHeader(http.StatusOK)
		w.Write(png)
	}

	return middleware(handler)
}
