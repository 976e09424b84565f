package tracker

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/fooddelivery/backend/internal/domain/order"
)

// Config holds configuration for the status tracker
type Config struct {
	Phone        string
	PollInterval time.Duration
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		PollInterval: 10 * time.Second,
	}
}

// Tracker polls the order source on a fixed interval and notifies on
// every status transition of a non-terminal order. An order seen for
// the first time is recorded without a notification.
type Tracker struct {
	source   OrderSource
	notifier Notifier
	config   Config
	logger   *zap.Logger
	reload   func()

	mu       sync.Mutex
	statuses map[int64]order.Status

	runMu  sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// Option configures optional tracker behaviour
type Option func(*Tracker)

// WithReloadFunc sets a callback run after any poll that emitted at
// least one status transition. The callback runs outside the status
// table lock, on the polling goroutine.
func WithReloadFunc(fn func()) Option {
	return func(t *Tracker) {
		t.reload = fn
	}
}

// New creates a tracker. PollInterval falls back to the default when
// left zero.
func New(source OrderSource, notifier Notifier, config Config, logger *zap.Logger, opts ...Option) *Tracker {
	if config.PollInterval <= 0 {
		config.PollInterval = DefaultConfig().PollInterval
	}
	t := &Tracker{
		source:   source,
		notifier: notifier,
		config:   config,
		logger:   logger,
		statuses: make(map[int64]order.Status),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Start launches the polling loop. Calling Start on a running tracker
// stops the previous loop before launching a new one.
func (t *Tracker) Start(ctx context.Context) error {
	t.runMu.Lock()
	defer t.runMu.Unlock()

	if t.cancel != nil {
		t.cancel()
		t.wg.Wait()
	}

	ctx, cancel := context.WithCancel(ctx)
	t.cancel = cancel

	t.wg.Add(1)
	go t.pollLoop(ctx)

	t.logger.Info("status tracker started",
		zap.String("phone", t.config.Phone),
		zap.Duration("poll_interval", t.config.PollInterval),
	)

	return nil
}

// Stop gracefully stops the polling loop
func (t *Tracker) Stop(ctx context.Context) error {
	t.runMu.Lock()
	defer t.runMu.Unlock()

	if t.cancel == nil {
		return nil
	}
	t.cancel()
	t.cancel = nil

	done := make(chan struct{})
	go func() {
		t.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		t.logger.Info("status tracker stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Refresh runs one poll immediately, outside the ticker schedule
func (t *Tracker) Refresh(ctx context.Context) {
	t.poll(ctx)
}

// Statuses returns a snapshot of the last observed status per order
func (t *Tracker) Statuses() map[int64]order.Status {
	t.mu.Lock()
	defer t.mu.Unlock()

	snapshot := make(map[int64]order.Status, len(t.statuses))
	for id, status := range t.statuses {
		snapshot[id] = status
	}
	return snapshot
}

func (t *Tracker) pollLoop(ctx context.Context) {
	defer t.wg.Done()

	ticker := time.NewTicker(t.config.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.poll(ctx)
		}
	}
}

// poll fetches the current orders and diffs them against the last
// observed statuses. Fetch errors are logged and otherwise ignored so
// the loop keeps its schedule.
func (t *Tracker) poll(ctx context.Context) {
	orders, err := t.source.OrdersByPhone(ctx, t.config.Phone)
	if err != nil {
		t.logger.Warn("order status poll failed", zap.Error(err))
		return
	}

	if t.applyStatuses(orders) && t.reload != nil {
		t.reload()
	}
}

// applyStatuses diffs the fetched orders against the status table and
// reports whether any transition was notified.
func (t *Tracker) applyStatuses(orders []*order.WithItems) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	changed := false
	for _, o := range orders {
		if o.Order.Status.IsTerminal() {
			continue
		}

		previous, seen := t.statuses[o.Order.ID]
		if seen && previous != o.Order.Status {
			t.notifier.NotifyStatusChange(o.Order.ID, previous, o.Order.Status)
			changed = true
		}
		t.statuses[o.Order.ID] = o.Order.Status
	}
	return changed
}
