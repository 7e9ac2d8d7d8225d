package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/Amund211/savewatch/internal/adapters/dashboardview"
	"github.com/Amund211/savewatch/internal/adapters/saveprovider"
	"github.com/Amund211/savewatch/internal/app"
	"github.com/Amund211/savewatch/internal/config"
	"github.com/Amund211/savewatch/internal/logging"
	"github.com/Amund211/savewatch/internal/ports"
	"github.com/Amund211/savewatch/internal/reporting"
	"github.com/Amund211/savewatch/internal/telemetry"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	_ "golang.org/x/crypto/x509roots/fallback"
)

const serviceName = "savewatch"
const eventStreamKeepAlive = 15 * time.Second

func main() {
	instanceID := uuid.New().String()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With("instanceID", instanceID)

	fail := func(msg string, args ...any) {
		logger.Error(msg, args...)
		os.Exit(1)
	}

	if err := godotenv.Load(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			fail("Failed to load .env file", "error", err.Error())
		}
	} else {
		logger.Info("Loaded .env file")
	}

	config, err := config.ConfigFromEnv()
	if err != nil {
		fail("Failed to load config", "error", err.Error())
	}
	logger.Info("Loaded config", "config", config.NonSensitiveString())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if config.OTelEnabled() {
		shutdownOTel, err := telemetry.SetupOTelSDK(ctx, serviceName, config.EnvironmentName())
		if err != nil {
			fail("Failed to set up OpenTelemetry", "error", err.Error())
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdownOTel(shutdownCtx); err != nil {
				logger.Error("Failed to shut down OpenTelemetry", "error", err.Error())
			}
		}()
		logger.Info("Initialized OpenTelemetry")
	}

	sentryMiddleware, flush, err := reporting.NewSentryMiddlewareOrMock(config)
	if err != nil {
		fail("Failed to initialize Sentry", "error", err.Error())
	}
	defer flush()
	logger.Info("Initialized Sentry middleware")

	allowedOrigins, err := ports.NewDomainSuffixes(config.AllowedOrigins()...)
	if err != nil {
		fail("Failed to initialize allowed origins", "error", err.Error())
	}

	httpClient := &http.Client{
		Timeout:   config.RefreshTimeout(),
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
	saveProvider := saveprovider.NewSaveProvider(config.SaveSource(), httpClient)
	logger.Info("Initialized save provider", "source", config.SaveSource())

	view := dashboardview.NewMemoryView()

	refresh := app.BuildRefresh(saveProvider, view, time.Now)
	poller := app.NewPoller(refresh, config.RefreshInterval(), config.RefreshTimeout(), app.SystemTicker)

	mux := http.NewServeMux()

	mux.HandleFunc(
		"GET /{$}",
		ports.MakeGetPageHandler(
			view,
			config.SaveSource(),
			logger.With("port", "page"),
			sentryMiddleware,
		),
	)

	mux.HandleFunc(
		"OPTIONS /v1/dashboard",
		ports.BuildCORSHandler(allowedOrigins),
	)
	mux.HandleFunc(
		"GET /v1/dashboard",
		ports.MakeGetDashboardHandler(
			view,
			allowedOrigins,
			logger.With("port", "dashboard"),
			sentryMiddleware,
		),
	)

	mux.HandleFunc(
		"OPTIONS /v1/events",
		ports.BuildCORSHandler(allowedOrigins),
	)
	mux.HandleFunc(
		"GET /v1/events",
		ports.MakeGetEventsHandler(
			view,
			allowedOrigins,
			eventStreamKeepAlive,
			logger.With("port", "events"),
			sentryMiddleware,
		),
	)

	mux.HandleFunc(
		"OPTIONS /v1/refresh",
		ports.BuildCORSHandler(allowedOrigins),
	)
	mux.HandleFunc(
		"POST /v1/refresh",
		ports.MakeRefreshHandler(
			poller.Trigger,
			allowedOrigins,
			time.Now,
			logger.With("port", "refresh"),
			sentryMiddleware,
		),
	)

	mux.HandleFunc(
		"GET /v1/qr.png",
		ports.MakeGetQRCodeHandler(
			config.PublicURL(),
			logger.With("port", "qrcode"),
			sentryMiddleware,
		),
	)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", config.Port()),
		Handler: otelhttp.NewHandler(mux, serviceName),
		// Cancelled on shutdown so open event streams end
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	var wg sync.WaitGroup

	pollerCtx := logging.AddComponentToContext(ctx, logger, "poller")
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := poller.Run(pollerCtx); err != nil {
			fail("Poller error", "error", err.Error())
		}
		logger.Info("Poller stopped")
	}()

	if config.StdinTrigger() {
		stdinCtx := logging.AddComponentToContext(ctx, logger, "stdin")
		go func() {
			if err := ports.ListenForRefreshKey(stdinCtx, os.Stdin, poller.Trigger); err != nil {
				logger.Error("Stopped listening for refresh key", "error", err.Error())
			}
		}()
		logger.Info("Listening for refresh key on stdin")
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.ListenAndServe()
	}()

	logger.Info("Init complete", "port", config.Port())

	select {
	case err := <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			fail("Server error", "error", err.Error())
		}
	case <-ctx.Done():
		logger.Info("Shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Failed to shut down server", "error", err.Error())
	}

	stop()
	wg.Wait()
	logger.Info("Server shutdown")
}
