package logging

import (
	"context"
	"log/slog"
	"os"
)

type loggerContextKey struct{}

// Used when nothing added a logger to the context
var fallbackLogger = slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(slog.String("logger", "fallback"))

func FromContext(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(loggerContextKey{}).(*slog.Logger)
	if !ok || logger == nil {
		return fallbackLogger
	}
	return logger
}

func AddToContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey{}, logger)
}

// AddComponentToContext stores logger tagged with the background component that owns ctx
//
// Used by the long running loops (poller, stdin listener) that have no request to log.
func AddComponentToContext(ctx context.Context, logger *slog.Logger, component string) context.Context {
	return AddToContext(ctx, logger.With(slog.String("component", component)))
}

func AddMetaToContext(ctx context.Context, attrs ...slog.Attr) context.Context {
	if len(attrs) == 0 {
		return ctx
	}

	handler := FromContext(ctx).Handler().WithAttrs(attrs)
	return AddToContext(ctx, slog.New(handler))
}
