package dashboard

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bornholm/burnin/internal/poll"
	"github.com/bornholm/burnin/internal/record"
	"github.com/bornholm/burnin/internal/slogx"
)

type manualTicker struct {
	ch chan time.Time
}

func (t *manualTicker) C() <-chan time.Time { return t.ch }
func (t *manualTicker) Stop()               {}

type tickerRecorder struct {
	mu        sync.Mutex
	tickers   []*manualTicker
	intervals []time.Duration
}

func (r *tickerRecorder) New(interval time.Duration) poll.Ticker {
	r.mu.Lock()
	defer r.mu.Unlock()

	t := &manualTicker{ch: make(chan time.Time)}
	r.tickers = append(r.tickers, t)
	r.intervals = append(r.intervals, interval)

	return t
}

func (r *tickerRecorder) Last() (*manualTicker, time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := len(r.tickers) - 1
	return r.tickers[i], r.intervals[i]
}

type countingFetcher struct {
	runs       []record.Entry[record.Run]
	runCalls   atomic.Int32
	manualCall atomic.Int32
}

func (f *countingFetcher) FetchRuns(ctx context.Context) ([]record.Entry[record.Run], error) {
	f.runCalls.Add(1)
	return f.runs, nil
}

func (f *countingFetcher) FetchManualRuns(ctx context.Context) ([]record.Entry[record.ManualRun], error) {
	f.manualCall.Add(1)
	return nil, nil
}

func TestPollingRendersFetchedRuns(t *testing.T) {
	env := newTestEnv(t)

	fetcher := &countingFetcher{}
	for i := 1; i <= 4; i++ {
		fetcher.runs = append(fetcher.runs, record.Entry[record.Run]{
			Path:    fmt.Sprintf("runs/run-%d.toml", i),
			Content: record.Run{PullRequest: fmt.Sprintf("https://github.com/paritytech/polkadot/pull/%d", i)},
		})
	}

	tickers := &tickerRecorder{}

	controller := poll.NewController(fetcher, env.State,
		poll.WithTicker(tickers.New),
		poll.WithLogger(slogx.NewTestLogger(t)),
	)

	if err := controller.Start(); err != nil {
		t.Fatalf("%+v", err)
	}

	defer controller.Stop()

	waitUntil(t, "first fetch", func() bool { return len(env.State.Runs()) == len(fetcher.runs) })

	w := env.Do(t, http.MethodGet, "/", nil, nil)

	body := w.Body.String()

	rows := strings.Count(body, `class="primary-row"`) + strings.Count(body, `class="secondary-row"`)
	if e, g := len(fetcher.runs), rows; e != g {
		t.Errorf("rows: expected %d, got %d", e, g)
	}

	ticker, interval := tickers.Last()

	if e, g := 5*time.Second, interval; e != g {
		t.Errorf("interval: expected '%v', got '%v'", e, g)
	}

	if e, g := int32(1), fetcher.runCalls.Load(); e != g {
		t.Errorf("fetches before first tick: expected %d, got %d", e, g)
	}

	ticker.ch <- time.Now()

	waitUntil(t, "second fetch", func() bool {
		return fetcher.runCalls.Load() == 2 && fetcher.manualCall.Load() == 2
	})
}

func waitUntil(t *testing.T, desc string, cond func() bool) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}

	t.Fatalf("timed out waiting for %s", desc)
}
