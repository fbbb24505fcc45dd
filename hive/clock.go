package hive

import "time"

// TimerHandle cancels a scheduled callback. Cancel is idempotent: canceling
// an already-fired or already-canceled handle is a no-op.
type TimerHandle interface {
	Cancel()
}

// Clock schedules a one-shot callback. Injected so tests can drive time by
// hand; the engine itself never reads wall time.
type Clock interface {
	After(d time.Duration, fn func()) TimerHandle
}

// SystemClock schedules on the runtime timer heap. Callbacks fire on the
// timer goroutine, not on the caller's; the single-threaded precondition of
// this package applies to them too.
type SystemClock struct{}

func (SystemClock) After(d time.Duration, fn func()) TimerHandle {
	return systemTimer{t: time.AfterFunc(d, fn)}
}

type systemTimer struct {
	t *time.Timer
}

func (h systemTimer) Cancel() {
	h.t.Stop()
}
