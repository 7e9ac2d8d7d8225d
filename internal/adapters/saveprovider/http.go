package saveprovider

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Amund211/savewatch/internal/constants"
	"github.com/Amund211/savewatch/internal/domain"
	"github.com/Amund211/savewatch/internal/logging"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Larger bodies are not treated as saves
const maxSaveSize = 4 << 20

type HttpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type HTTPSaveProvider struct {
	httpClient HttpClient
	url        string
	tracer     trace.Tracer
}

func NewHTTPSaveProvider(httpClient HttpClient, url string) *HTTPSaveProvider {
	return &HTTPSaveProvider{
		httpClient: httpClient,
		url:        url,
		tracer:     otel.Tracer("savewatch/saveprovider/http"),
	}
}

func (p *HTTPSaveProvider) GetSave(ctx context.Context) (*domain.GameState, error) {
	ctx, span := p.tracer.Start(ctx, "HTTPSaveProvider.GetSave")
	defer span.End()

	state, err := p.getSave(ctx, span)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return state, err
}

func (p *HTTPSaveProvider) getSave(ctx context.Context, span trace.Span) (*domain.GameState, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", constants.USER_AGENT)
	req.Header.Set("Accept", "application/json")
	// The save changes underneath us, never serve it from a cache
	req.Header.Set("Cache-Control", "no-cache")

	start := time.Now()
	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	defer resp.Body.Close()
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxSaveSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	if len(data) > maxSaveSize {
		return nil, fmt.Errorf("%w: response body exceeds %d bytes", domain.ErrMalformedSave, maxSaveSize)
	}
	logging.FromContext(ctx).DebugContext(ctx, "save request completed", "status", resp.StatusCode, "duration", time.Since(start).String())

	return gameStateFromResponse(resp.StatusCode, data)
}

func gameStateFromResponse(statusCode int, data []byte) (*domain.GameState, error) {
	switch statusCode {
	case http.StatusTooManyRequests,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return nil, fmt.Errorf("%w: save source returned status code %d", domain.ErrTemporarilyUnavailable, statusCode)
	}

	switch statusCode {
	case http.StatusNotFound,
		http.StatusNoContent:
		return nil, fmt.Errorf("%w: save source returned status code %d", domain.ErrSaveNotFound, statusCode)
	}

	if statusCode < 200 || statusCode >= 300 {
		return nil, fmt.Errorf("save source returned status code %d", statusCode)
	}

	return ParseGameState(data)
}

func (p *HTTPSaveProvider) String() string {
	return p.url
}
