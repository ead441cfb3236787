package syncengine

import (
	"context"
	"sync"
	"time"
	"trimline-service/internal/pkg/constvars"
	"trimline-service/internal/pkg/slots"

	"go.uber.org/zap"
)

const DefaultPollInterval = 4 * time.Second

// Engine keeps a local replica of the remote store converged by polling.
// Local edits apply optimistically before the push round-trips; a successful
// push triggers an immediate pull so the replica reflects whatever the server
// reconciled, while a failed push leaves the optimistic edit in place for the
// next regular poll to sort out.
type Engine struct {
	client   *Client
	schedule slots.DailySchedule
	interval time.Duration
	log      *zap.Logger
	// onUpdate receives a snapshot after every applied remote pull. May be nil.
	onUpdate func(slots.Store)

	mu           sync.Mutex
	store        slots.Store
	pullInFlight bool
	closed       bool
}

func NewEngine(client *Client, schedule slots.DailySchedule, interval time.Duration, logger *zap.Logger, onUpdate func(slots.Store)) *Engine {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Engine{
		client:   client,
		schedule: schedule,
		interval: interval,
		log:      logger,
		onUpdate: onUpdate,
		store:    make(slots.Store),
	}
}

// Run polls until ctx is cancelled. The first pull happens immediately rather
// than one interval in.
func (e *Engine) Run(ctx context.Context) {
	e.Refresh(ctx)

	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			e.log.Info("syncengine.Run stopping", zap.Error(ctx.Err()))
			return
		case <-ticker.C:
			e.Refresh(ctx)
		}
	}
}

// Refresh pulls the remote store and replaces the local replica. At most one
// pull is in flight at a time; callers that arrive while one is running
// return immediately instead of stacking duplicate requests.
func (e *Engine) Refresh(ctx context.Context) {
	e.mu.Lock()
	if e.pullInFlight || e.closed {
		e.mu.Unlock()
		return
	}
	e.pullInFlight = true
	e.mu.Unlock()

	store, err := e.client.FetchStore(ctx)

	e.mu.Lock()
	e.pullInFlight = false
	if e.closed {
		e.mu.Unlock()
		return
	}
	if err != nil {
		e.mu.Unlock()
		e.log.Warn("syncengine.Refresh fetch failed, keeping local replica", zap.Error(err))
		return
	}
	e.store = store
	var snapshot slots.Store
	if e.onUpdate != nil {
		snapshot = store.Clone()
	}
	e.mu.Unlock()

	if e.onUpdate != nil {
		e.onUpdate(snapshot)
	}
}

// NotifyVisible should be called when the consumer regains visibility (a
// terminal coming back to foreground). It forces a pull instead of waiting
// out the remainder of the poll interval.
func (e *Engine) NotifyVisible(ctx context.Context) {
	e.Refresh(ctx)
}

// SetSlot applies the edit locally first, then pushes it. The optimistic edit
// survives a failed push on purpose: the next pull re-converges, and wiping
// the edit early would make the UI flicker back to stale state.
func (e *Engine) SetSlot(ctx context.Context, day, timeLabel, name string) error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return nil
	}
	e.store.Set(day, timeLabel, name)
	e.mu.Unlock()

	if err := e.client.PushSlot(ctx, constvars.MutationOpSet, day, timeLabel, name); err != nil {
		e.log.Warn("syncengine.SetSlot push failed, keeping optimistic edit",
			zap.String(constvars.LoggingDayKey, day),
			zap.String(constvars.LoggingTimeKey, timeLabel),
			zap.Error(err),
		)
		return err
	}

	e.Refresh(ctx)
	return nil
}

func (e *Engine) ClearSlot(ctx context.Context, day, timeLabel string) error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return nil
	}
	e.store.Clear(day, timeLabel)
	e.mu.Unlock()

	if err := e.client.PushSlot(ctx, constvars.MutationOpClear, day, timeLabel, ""); err != nil {
		e.log.Warn("syncengine.ClearSlot push failed, keeping optimistic edit",
			zap.String(constvars.LoggingDayKey, day),
			zap.String(constvars.LoggingTimeKey, timeLabel),
			zap.Error(err),
		)
		return err
	}

	e.Refresh(ctx)
	return nil
}

// Snapshot returns a deep copy of the current replica.
func (e *Engine) Snapshot() slots.Store {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.store.Clone()
}

func (e *Engine) IsDayFull(day string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.store.IsDayFull(e.schedule, day)
}

func (e *Engine) FillRatio(day string) float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.store.FillRatio(e.schedule, day)
}

func (e *Engine) Search(query, sinceDay string) []slots.SearchResult {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.store.Search(query, sinceDay)
}

func (e *Engine) EarliestFree(fromDay string, horizonDays int) (string, string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.store.EarliestFree(e.schedule, fromDay, horizonDays)
}

// Close stops the engine from applying any further remote data. A pull that
// is mid-flight when Close lands is discarded when it returns.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
}
