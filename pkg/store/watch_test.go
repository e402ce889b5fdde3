package store

import (
	"testing"
	"time"
)

func TestEventThrottleCoalescesBurst(t *testing.T) {
	throttle := newEventThrottle(10 * time.Millisecond)
	defer throttle.Stop()

	fired := make(chan struct{}, 8)
	for i := 0; i < 5; i++ {
		throttle.Enqueue(func() { fired <- struct{}{} })
	}

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatalf("expected the throttled send to fire")
	}
	select {
	case <-fired:
		t.Fatalf("expected a burst to coalesce into a single send")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestEventThrottleStopBlocksLateSend(t *testing.T) {
	throttle := newEventThrottle(time.Millisecond)

	// Once Stop returns the channel may be closed; a pending timer callback
	// must never reach the send.
	events := make(chan Event, 1)
	throttle.Enqueue(func() { events <- Event{} })
	throttle.Stop()
	close(events)

	time.Sleep(20 * time.Millisecond)
	if _, ok := <-events; ok {
		t.Fatalf("expected no event after Stop")
	}

	// Enqueue after Stop is also inert.
	throttle.Enqueue(func() { t.Errorf("send after Stop") })
	time.Sleep(20 * time.Millisecond)
}
