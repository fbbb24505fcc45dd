package hive

import (
	mapset "github.com/deckarep/golang-set/v2"
)

type registration[T any] struct {
	id uint64
	fn func(T)
}

// Cell is the primitive observable: a value, a change predicate, and an
// ordered callback list. All other node kinds compose one.
type Cell[T any] struct {
	value   T
	changed ChangePredicate[T]
	regs    []registration[T]
	nextID  uint64

	// dispatch bookkeeping: ids unsubscribed while a dispatch is running
	// must be skipped by every snapshot still walking.
	depth   int
	removed mapset.Set[uint64]
}

// New creates a cell with the equality predicate.
func New[T comparable](value T) *Cell[T] {
	return NewWithPredicate(value, Equality[T]())
}

// NewWithPredicate creates a cell with an explicit change predicate.
func NewWithPredicate[T any](value T, changed ChangePredicate[T]) *Cell[T] {
	return &Cell[T]{
		value:   value,
		changed: changed,
		removed: mapset.NewThreadUnsafeSet[uint64](),
	}
}

// Read returns the current value. No side effects.
func (c *Cell[T]) Read() T {
	return c.value
}

// Write replaces the value. If the predicate reports a change, every
// currently registered callback fires synchronously in registration order.
// Re-entrant writes from inside a callback recurse and complete before the
// outer dispatch resumes.
func (c *Cell[T]) Write(next T) {
	old := c.value
	if !c.changed(old, next) {
		return
	}
	c.value = next
	c.dispatch(next)
}

// WriteFunc writes the result of applying update to the current value.
func (c *Cell[T]) WriteFunc(update func(T) T) {
	c.Write(update(c.value))
}

func (c *Cell[T]) dispatch(next T) {
	snapshot := make([]registration[T], len(c.regs))
	copy(snapshot, c.regs)

	c.depth++
	defer func() {
		c.depth--
		if c.depth == 0 {
			c.removed.Clear()
		}
	}()

	for _, reg := range snapshot {
		if c.removed.Contains(reg.id) {
			continue
		}
		reg.fn(next)
	}
}

// Subscribe registers a callback and returns the handle that removes it.
// Callbacks added during a dispatch do not run in that dispatch.
func (c *Cell[T]) Subscribe(fn func(T)) *Subscription {
	c.nextID++
	id := c.nextID
	c.regs = append(c.regs, registration[T]{id: id, fn: fn})
	return &Subscription{source: c, id: id}
}

// SubscriberCount reports how many callbacks are currently registered.
func (c *Cell[T]) SubscriberCount() int {
	return len(c.regs)
}

func (c *Cell[T]) unsubscribe(id uint64) {
	for i, reg := range c.regs {
		if reg.id != id {
			continue
		}
		c.regs = append(c.regs[:i], c.regs[i+1:]...)
		if c.depth > 0 {
			c.removed.Add(id)
		}
		return
	}
}

func (c *Cell[T]) observe(fn func()) *Subscription {
	return c.Subscribe(func(T) { fn() })
}

// ReadErased returns the current value as any.
func (c *Cell[T]) ReadErased() any {
	return c.value
}

// ValueType describes the cell's value type.
func (c *Cell[T]) ValueType() TypeDescriptor {
	return describeType[T]()
}

// WriteErased force-sets the value from a type-erased one. A dynamic type
// mismatch is a contract violation and goes to the fatal handler.
func (c *Cell[T]) WriteErased(v any) {
	tv, ok := v.(T)
	if !ok {
		fatal(&TypeMismatchError{Want: describeType[T](), Got: describeValue(v)})
		return
	}
	c.Write(tv)
}
