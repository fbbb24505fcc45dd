package hive_test

import (
	"testing"
	"time"

	"github.com/delaneyj/cellparty/hive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTimer struct {
	fn       func()
	canceled bool
	fired    bool
}

func (t *fakeTimer) Cancel() {
	t.canceled = true
}

type fakeClock struct {
	timers []*fakeTimer
}

func (c *fakeClock) After(d time.Duration, fn func()) hive.TimerHandle {
	t := &fakeTimer{fn: fn}
	c.timers = append(c.timers, t)
	return t
}

// expire fires every pending timer, like the deadline passing.
func (c *fakeClock) expire() {
	for _, t := range c.timers {
		if t.canceled || t.fired {
			continue
		}
		t.fired = true
		t.fn()
	}
}

const window = 200 * time.Millisecond

func TestTentativeMirrorsParentWhileAuthoritative(t *testing.T) {
	parent := hive.New(3)
	clock := &fakeClock{}
	tent := hive.NewTentative(parent, hive.Equality[int](), clock, window)
	assert.Equal(t, 3, tent.Read())

	parent.Write(4)
	assert.Equal(t, 4, tent.Read())
}

func TestTentativeOverrideAndTimerRevert(t *testing.T) {
	parent := hive.New(3)
	clock := &fakeClock{}
	tent := hive.NewTentative(parent, hive.Equality[int](), clock, window)

	tent.SetTentative(76)
	assert.Equal(t, 76, tent.Read())

	// parent writes during the window are cached, not shown
	parent.Write(41)
	assert.Equal(t, 76, tent.Read())

	clock.expire()
	assert.Equal(t, 41, tent.Read())

	// authoritative again, parent changes flow through
	parent.Write(42)
	assert.Equal(t, 42, tent.Read())
}

func TestTentativeManualRevert(t *testing.T) {
	parent := hive.New(3)
	clock := &fakeClock{}
	tent := hive.NewTentative(parent, hive.Equality[int](), clock, window)

	tent.SetTentative(76)
	tent.Revert()
	assert.Equal(t, 3, tent.Read())

	require.Len(t, clock.timers, 1)
	assert.True(t, clock.timers[0].canceled)

	// late expiry of a canceled timer must do nothing
	clock.expire()
	assert.Equal(t, 3, tent.Read())
}

func TestTentativeRevertWhenAuthoritativeIsNoop(t *testing.T) {
	parent := hive.New(3)
	clock := &fakeClock{}
	tent := hive.NewTentative(parent, hive.Equality[int](), clock, window)

	callCount := 0
	tent.Subscribe(func(int) {
		callCount++
	})

	tent.Revert()
	assert.Equal(t, 0, callCount)
}

func TestTentativeNewWriteRestartsTimer(t *testing.T) {
	parent := hive.New(3)
	clock := &fakeClock{}
	tent := hive.NewTentative(parent, hive.Equality[int](), clock, window)

	tent.SetTentative(10)
	tent.SetTentative(20)

	// timers never stack: the first one was canceled by the second write
	require.Len(t, clock.timers, 2)
	assert.True(t, clock.timers[0].canceled)
	assert.False(t, clock.timers[1].canceled)
	assert.Equal(t, 20, tent.Read())

	clock.expire()
	assert.Equal(t, 3, tent.Read())
}

func TestTentativeCloseDetachesAndCancels(t *testing.T) {
	parent := hive.New(3)
	clock := &fakeClock{}
	tent := hive.NewTentative(parent, hive.Equality[int](), clock, window)
	require.Equal(t, 1, parent.SubscriberCount())

	tent.SetTentative(10)
	tent.Close()
	assert.Equal(t, 0, parent.SubscriberCount())
	assert.True(t, clock.timers[0].canceled)
}
