package hal

import "time"

// hostTime publishes the milliseconds elapsed since the first step. The
// channel holds only the newest value so a slow reader never sees stale time.
type hostTime struct {
	ch  chan uint64
	now func() time.Time

	start   time.Time
	last    uint64
	started bool
}

func newHostTime() *hostTime {
	return &hostTime{ch: make(chan uint64, 1), now: time.Now}
}

func (t *hostTime) Ticks() <-chan uint64 { return t.ch }

func (t *hostTime) step() {
	now := t.now()
	if !t.started {
		t.start = now
		t.started = true
		t.publish(0)
		return
	}
	ms := uint64(now.Sub(t.start) / time.Millisecond)
	if ms == t.last {
		return
	}
	t.publish(ms)
}

func (t *hostTime) publish(ms uint64) {
	t.last = ms
	select {
	case <-t.ch:
	default:
	}
	t.ch <- ms
}
