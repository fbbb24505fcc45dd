package hive

import "weak"

type effectReg struct {
	effect func()
	subs   []*Subscription
	dirty  bool
}

// Updater aggregates (dependencies, side effect) registrations. Each effect
// runs once at registration, re-runs whenever a dependency fires, and
// supports pause/resume: firings absorbed while paused are replayed as one
// catch-up invocation per touched effect on resume.
type Updater struct {
	regs   []*effectReg
	paused bool
}

func NewUpdater() *Updater {
	return &Updater{}
}

// Register runs the effect immediately, regardless of pause state, then
// re-runs it once per propagation reaching any dependency while unpaused.
func (u *Updater) Register(effect func(), deps ...Observable) {
	reg := &effectReg{effect: effect}
	for _, dep := range deps {
		reg.subs = append(reg.subs, dep.observe(func() {
			if u.paused {
				reg.dirty = true
				return
			}
			reg.effect()
		}))
	}
	u.regs = append(u.regs, reg)
	effect()
}

// Pause absorbs dependency firings without invoking effects, marking
// touched effects for replay. Pausing while paused is a no-op.
func (u *Updater) Pause() {
	u.paused = true
}

// Resume invokes every effect that missed at least one firing exactly once,
// in registration order. Effects untouched during the pause are skipped.
func (u *Updater) Resume() {
	if !u.paused {
		return
	}
	u.paused = false
	for _, reg := range u.regs {
		if reg.dirty {
			reg.dirty = false
			reg.effect()
		}
	}
}

// Close drops every dependency subscription; registered effects never run
// again.
func (u *Updater) Close() {
	for _, reg := range u.regs {
		closeAll(reg.subs)
	}
	u.regs = nil
}

// OnTransition observes a node's value transitions: the observer runs
// immediately with (nil, current), then on each firing with the previously
// captured value and the current one, but only when they differ by
// equality.
func OnTransition[T comparable](u *Updater, src Source[T], observer func(old *T, next T)) {
	var prev T
	first := true
	u.Register(func() {
		next := src.Read()
		if first {
			first = false
			prev = next
			observer(nil, next)
			return
		}
		if prev == next {
			return
		}
		old := prev
		prev = next
		observer(&old, next)
	}, src)
}

// Bind assigns the node's current value into a slot on a foreign target on
// every firing. The target is held weakly: once it is collected the
// registration goes inert instead of crashing or pinning it.
func Bind[T, Target any](u *Updater, target *Target, assign func(*Target, T), src Source[T]) {
	ref := weak.Make(target)
	u.Register(func() {
		if t := ref.Value(); t != nil {
			assign(t, src.Read())
		}
	}, src)
}
