package app

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/Amund211/savewatch/internal/domain"
	"github.com/Amund211/savewatch/internal/logging"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var ErrPollerRunning = errors.New("poller is already running")

type trigger string

const (
	triggerStartup  trigger = "startup"
	triggerInterval trigger = "interval"
	triggerManual   trigger = "manual"
)

// TickerFunc starts a ticker with the given interval and returns its channel and a stop func
type TickerFunc func(interval time.Duration) (<-chan time.Time, func())

func SystemTicker(interval time.Duration) (<-chan time.Time, func()) {
	ticker := time.NewTicker(interval)
	return ticker.C, ticker.Stop
}

// Poller runs refreshes on startup, on an interval and on manual triggers
//
// All refreshes run on the goroutine calling Run, one at a time. At most one
// manual trigger is queued, further triggers are merged into it.
type Poller struct {
	refresh    Refresh
	interval   time.Duration
	timeout    time.Duration
	tickerFunc TickerFunc

	manual  chan struct{}
	running atomic.Bool
}

func NewPoller(refresh Refresh, interval, timeout time.Duration, tickerFunc TickerFunc) *Poller {
	return &Poller{
		refresh:    refresh,
		interval:   interval,
		timeout:    timeout,
		tickerFunc: tickerFunc,

		manual: make(chan struct{}, 1),
	}
}

// Trigger queues a refresh
//
// Returns false if a manual refresh was already queued, in which case this
// trigger is served by that refresh.
func (p *Poller) Trigger() bool {
	select {
	case p.manual <- struct{}{}:
		return true
	default:
		metrics.triggerCoalesced.Add(context.Background(), 1)
		return false
	}
}

// Run refreshes until ctx is cancelled
func (p *Poller) Run(ctx context.Context) error {
	if !p.running.CompareAndSwap(false, true) {
		return ErrPollerRunning
	}
	defer p.running.Store(false)

	logger := logging.FromContext(ctx)

	ticks, stop := p.tickerFunc(p.interval)
	defer stop()

	logger.InfoContext(ctx, "Starting poller", "interval", p.interval.String())
	p.refreshOnce(ctx, triggerStartup)

	for {
		select {
		case <-ctx.Done():
			logger.InfoContext(ctx, "Stopping poller")
			return nil
		case <-ticks:
			p.refreshOnce(ctx, triggerInterval)
		case <-p.manual:
			p.refreshOnce(ctx, triggerManual)
		}
	}
}

func (p *Poller) refreshOnce(ctx context.Context, trigger trigger) {
	start := time.Now()

	refreshCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	refreshCtx = logging.AddMetaToContext(refreshCtx, slog.String("trigger", string(trigger)))

	// NOTE: Refresh logs its own failures
	err := p.refresh(refreshCtx)

	attributesOption := metric.WithAttributes(
		attribute.String("result", refreshResult(err)),
		attribute.String("trigger", string(trigger)),
	)
	metrics.refreshCount.Add(ctx, 1, attributesOption)
	metrics.refreshDuration.Record(ctx, time.Since(start).Seconds(), attributesOption)
}

func refreshResult(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, domain.ErrSaveNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrMalformedSave):
		return "malformed"
	default:
		return "error"
	}
}
