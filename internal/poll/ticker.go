package poll

import "time"

type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type TickerFunc func(interval time.Duration) Ticker

type timeTicker struct {
	ticker *time.Ticker
}

// C implements Ticker.
func (t *timeTicker) C() <-chan time.Time {
	return t.ticker.C
}

// Stop implements Ticker.
func (t *timeTicker) Stop() {
	t.ticker.Stop()
}

func NewTimeTicker(interval time.Duration) Ticker {
	return &timeTicker{ticker: time.NewTicker(interval)}
}
