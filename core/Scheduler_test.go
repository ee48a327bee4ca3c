package core

import (
	"testing"
	"time"
)

func TestTickerScheduler(t *testing.T) {
	s := NewTickerScheduler(5 * time.Millisecond)
	ticks := s.Start()
	defer s.Stop()

	for i := 0; i < 3; i++ {
		select {
		case <-ticks:
		case <-time.After(time.Second):
			t.Fatalf("Expected tick %d", i)
		}
	}

	if s.Start() != ticks {
		t.Errorf("Expected Start to reuse the running ticker")
	}
}

func TestTickerSchedulerStopBeforeStart(t *testing.T) {
	s := NewTickerScheduler(TickInterval)
	s.Stop()
}
