package hive

import "time"

type tentativeState uint8

const (
	authoritative tentativeState = iota
	tentative
)

// Tentative mirrors a parent but allows a time-boxed local override.
// Authoritative: value tracks the parent. Tentative (entered by
// SetTentative): the local value holds, parent changes are observed and
// cached but not shown, and after the window expires (or on Revert) the
// value snaps back to the parent's latest.
type Tentative[T any] struct {
	readOnly[T]
	sub    *Subscription
	clock  Clock
	window time.Duration
	state  tentativeState
	latest T
	timer  TimerHandle
}

func NewTentative[T any](parent Source[T], changed ChangePredicate[T], clock Clock, window time.Duration) *Tentative[T] {
	t := &Tentative[T]{
		clock:  clock,
		window: window,
		latest: parent.Read(),
	}
	t.readOnly = readOnly[T]{
		cell: NewWithPredicate(t.latest, changed),
		kind: "tentative",
	}
	t.sub = parent.Subscribe(func(v T) {
		t.latest = v
		if t.state == authoritative {
			t.cell.Write(v)
		}
	})
	return t
}

// SetTentative overrides the value locally and starts the revert window.
// A new override while already tentative restarts the window; timers never
// stack.
func (t *Tentative[T]) SetTentative(v T) {
	if t.timer != nil {
		t.timer.Cancel()
	}
	t.state = tentative
	t.timer = t.clock.After(t.window, t.Revert)
	t.cell.Write(v)
}

// Revert cancels any pending timer and resyncs to the parent's current
// value. Reverting while already authoritative is a no-op.
func (t *Tentative[T]) Revert() {
	if t.timer != nil {
		t.timer.Cancel()
		t.timer = nil
	}
	if t.state == authoritative {
		return
	}
	t.state = authoritative
	t.cell.Write(t.latest)
}

// Close cancels any pending timer and detaches from the parent.
func (t *Tentative[T]) Close() {
	if t.timer != nil {
		t.timer.Cancel()
		t.timer = nil
	}
	t.sub.Close()
	t.sub = nil
}
