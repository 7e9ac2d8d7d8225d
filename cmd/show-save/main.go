package main

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/Amund211/savewatch/internal/adapters/dashboardview"
	"github.com/Amund211/savewatch/internal/adapters/saveprovider"
	"github.com/Amund211/savewatch/internal/app"
	"github.com/Amund211/savewatch/internal/config"
	"github.com/Amund211/savewatch/internal/logging"
	"github.com/joho/godotenv"
)

const (
	exitOK          = 0
	exitUnreadable  = 1
	exitBadUsage    = 2
	showSaveTimeout = 15 * time.Second
)

// Reads the save once and prints the dashboard
//
// Usage: show-save [source]
func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Error("Failed to load .env file", "error", err.Error())
		os.Exit(exitUnreadable)
	}

	ctx, cancel := context.WithTimeout(context.Background(), showSaveTimeout)
	code := run(ctx, os.Args[1:], os.Stdout, logger)
	cancel()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout io.Writer, logger *slog.Logger) int {
	if len(args) > 1 {
		logger.Error("Too many arguments", "usage", "show-save [source]")
		return exitBadUsage
	}

	source := config.SaveSourceFromEnv()
	if len(args) == 1 && args[0] != "" {
		source = args[0]
	}

	httpClient := &http.Client{
		Timeout: 10 * time.Second,
	}
	provider := saveprovider.NewSaveProvider(source, httpClient)

	ctx = logging.AddToContext(ctx, logger.With("source", source))

	view := dashboardview.NewTextView(stdout)
	refresh := app.BuildRefresh(provider, view, time.Now)
	if err := refresh(ctx); err != nil {
		return exitUnreadable
	}

	if err := view.Err(); err != nil {
		logger.Error("Failed to print dashboard", "error", err.Error())
		return exitUnreadable
	}

	return exitOK
}
