package core

import "time"

// Scheduler produces the game's ticks.
type Scheduler interface {
	Start() <-chan time.Time
	Stop()
}

type TickerScheduler struct {
	interval time.Duration
	ticker   *time.Ticker
}

func NewTickerScheduler(interval time.Duration) *TickerScheduler {
	return &TickerScheduler{interval: interval}
}

func (t *TickerScheduler) Start() <-chan time.Time {
	if t.ticker == nil {
		t.ticker = time.NewTicker(t.interval)
	}
	return t.ticker.C
}

func (t *TickerScheduler) Stop() {
	if t.ticker != nil {
		t.ticker.Stop()
	}
}
