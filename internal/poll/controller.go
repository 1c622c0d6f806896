// Package poll keeps the dashboard collections fresh by fetching them on a
// fixed period.
package poll

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/bornholm/burnin/internal/kv"
	"github.com/bornholm/burnin/internal/record"
	"github.com/bornholm/burnin/internal/slogx"
	"github.com/pkg/errors"
	"github.com/rs/xid"
)

// IDKey is the store key holding the identifier of the active loop.
const IDKey = "burninPollID"

type Status string

const (
	StatusIdle    Status = "idle"
	StatusPolling Status = "polling"
)

type Controller struct {
	fetcher   Fetcher
	state     *State
	store     kv.Store
	interval  time.Duration
	newTicker TickerFunc
	logger    *slog.Logger

	mu      sync.Mutex
	baseCtx context.Context
	loops   map[string]context.CancelFunc
	wg      sync.WaitGroup
}

// Start cancels the loop recorded in the store, if any, and starts a new
// one. The new loop fetches both collections immediately, then on every
// tick.
func (c *Controller) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if previous, exists := c.store.Get(IDKey); exists {
		if cancel, running := c.loops[previous]; running {
			cancel()
			delete(c.loops, previous)
		}
	}

	id := xid.New().String()

	if err := c.store.Set(IDKey, id); err != nil {
		return errors.WithStack(err)
	}

	ctx, cancel := context.WithCancel(c.baseCtx)
	ctx = slogx.WithAttrs(ctx, slog.String("pollID", id))

	c.loops[id] = cancel

	ticker := c.newTicker(c.interval)

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.loop(ctx, ticker)
	}()

	c.logger.DebugContext(ctx, "poll loop started", slog.Duration("interval", c.interval))

	return nil
}

// Stop cancels every running loop and waits for them to return.
func (c *Controller) Stop() {
	c.mu.Lock()

	for id, cancel := range c.loops {
		cancel()
		delete(c.loops, id)
	}

	if err := c.store.Remove(IDKey); err != nil {
		c.logger.Warn("could not remove poll id", slogx.Error(err))
	}

	c.mu.Unlock()

	c.wg.Wait()
}

// Run starts polling and blocks until ctx is done.
func (c *Controller) Run(ctx context.Context) error {
	c.mu.Lock()
	c.baseCtx = ctx
	c.mu.Unlock()

	if err := c.Start(); err != nil {
		return errors.WithStack(err)
	}

	<-ctx.Done()

	c.Stop()

	return errors.WithStack(ctx.Err())
}

func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.loops) == 0 {
		return StatusIdle
	}

	return StatusPolling
}

func (c *Controller) State() *State {
	return c.state
}

func (c *Controller) loop(ctx context.Context, ticker Ticker) {
	defer ticker.Stop()

	c.fetch(ctx)

	for {
		select {
		case <-ctx.Done():
			c.logger.DebugContext(ctx, "poll loop stopped")
			return
		case <-ticker.C():
			c.fetch(ctx)
		}
	}
}

// fetch issues a fetch of each collection without waiting for the results.
func (c *Controller) fetch(ctx context.Context) {
	ticksTotal.Inc()

	runsSeq := c.state.Issue(CollectionRuns)
	manualSeq := c.state.Issue(CollectionManualRuns)

	c.wg.Add(2)

	go func() {
		defer c.wg.Done()

		entries, err := c.fetcher.FetchRuns(ctx)
		if ctx.Err() != nil {
			return
		}

		c.report(ctx, CollectionRuns, c.state.ApplyRuns(runsSeq, entries, err), err, len(entries), record.CountInvalid(entries))
	}()

	go func() {
		defer c.wg.Done()

		entries, err := c.fetcher.FetchManualRuns(ctx)
		if ctx.Err() != nil {
			return
		}

		c.report(ctx, CollectionManualRuns, c.state.ApplyManualRuns(manualSeq, entries, err), err, len(entries), record.CountInvalid(entries))
	}()
}

func (c *Controller) report(ctx context.Context, collection Collection, applied bool, readErr error, total int, invalid int) {
	if !applied {
		resultsTotal.WithLabelValues(string(collection), "discarded").Inc()
		c.logger.DebugContext(ctx, "stale result discarded", slog.String("collection", string(collection)))
		return
	}

	if readErr != nil {
		resultsTotal.WithLabelValues(string(collection), "failed").Inc()
		c.logger.WarnContext(ctx, "collection could not be read in full",
			slog.String("collection", string(collection)),
			slogx.Error(readErr),
		)
	} else {
		resultsTotal.WithLabelValues(string(collection), "applied").Inc()
	}

	invalidRecords.WithLabelValues(string(collection)).Set(float64(invalid))

	if invalid > 0 {
		c.logger.WarnContext(ctx, "collection contains invalid records",
			slog.String("collection", string(collection)),
			slog.Int("total", total),
			slog.Int("invalid", invalid),
		)
	}
}

func NewController(fetcher Fetcher, state *State, funcs ...OptionFunc) *Controller {
	opts := NewOptions(funcs...)

	return &Controller{
		fetcher:   fetcher,
		state:     state,
		store:     opts.Store,
		interval:  opts.Interval,
		newTicker: opts.NewTicker,
		logger:    opts.Logger.With("component", "poller"),
		baseCtx:   context.Background(),
		loops:     map[string]context.CancelFunc{},
	}
}
