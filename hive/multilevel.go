package hive

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// Multilevel chases a pointer through a dynamic chain: a selector picks an
// inner node out of the outer node's current value, and the multilevel's
// value mirrors that inner node. Whenever the outer value changes the inner
// subscription is replaced, new before old, so no notification window is
// lost.
type Multilevel[Outer, Inner any] struct {
	readOnly[Inner]
	selector func(Outer) Source[Inner]
	outerSub *Subscription
	innerSub *Subscription
}

func NewMultilevel[Outer, Inner any](
	outer Source[Outer],
	selector func(Outer) Source[Inner],
	changed ChangePredicate[Inner],
) *Multilevel[Outer, Inner] {
	m := &Multilevel[Outer, Inner]{selector: selector}
	inner := selector(outer.Read())
	m.readOnly = readOnly[Inner]{
		cell: NewWithPredicate(inner.Read(), changed),
		kind: "multilevel",
	}
	m.innerSub = inner.Subscribe(m.cell.Write)
	m.outerSub = outer.Subscribe(m.rebind)
	return m
}

func (m *Multilevel[Outer, Inner]) rebind(outer Outer) {
	inner := m.selector(outer)
	next := inner.Subscribe(m.cell.Write)
	m.innerSub.Close()
	m.innerSub = next
	m.cell.Write(inner.Read())
}

// Close drops both the outer and the active inner subscription.
func (m *Multilevel[Outer, Inner]) Close() {
	m.outerSub.Close()
	m.innerSub.Close()
	m.outerSub, m.innerSub = nil, nil
}

// MultilevelCollection fans out over a dynamic set of child nodes: the
// selector picks one child per element of the outer slice, and any child
// signal or outer replacement refreshes the value to the outer slice's
// current snapshot. Children are notification fan-in only; their values
// never substitute into the stored slice.
type MultilevelCollection[E any] struct {
	readOnly[[]E]
	outer    Source[[]E]
	selector func(E) Observable
	outerSub *Subscription
	children map[Observable]*Subscription
}

func NewMultilevelCollection[E any](outer Source[[]E], selector func(E) Observable) *MultilevelCollection[E] {
	c := &MultilevelCollection[E]{
		outer:    outer,
		selector: selector,
		children: map[Observable]*Subscription{},
	}
	// Slices are not comparable, so the snapshot cell fires on every write.
	c.readOnly = readOnly[[]E]{
		cell: NewWithPredicate(outer.Read(), Always[[]E]()),
		kind: "multilevel collection",
	}
	c.outerSub = outer.Subscribe(func([]E) { c.refresh() })
	c.resubscribe()
	return c
}

func (c *MultilevelCollection[E]) refresh() {
	c.resubscribe()
	c.cell.Write(c.outer.Read())
}

// resubscribe diffs the selected child set against the currently-subscribed
// one: stale children stop firing into this node, new ones start.
func (c *MultilevelCollection[E]) resubscribe() {
	next := mapset.NewThreadUnsafeSet[Observable]()
	for _, el := range c.outer.Read() {
		next.Add(c.selector(el))
	}
	prev := mapset.NewThreadUnsafeSet[Observable]()
	for child := range c.children {
		prev.Add(child)
	}
	for child := range prev.Difference(next).Iter() {
		c.children[child].Close()
		delete(c.children, child)
	}
	for child := range next.Difference(prev).Iter() {
		c.children[child] = child.observe(c.childChanged)
	}
}

func (c *MultilevelCollection[E]) childChanged() {
	c.refresh()
}

// Close drops the outer subscription and every child subscription.
func (c *MultilevelCollection[E]) Close() {
	c.outerSub.Close()
	c.outerSub = nil
	for child, sub := range c.children {
		sub.Close()
		delete(c.children, child)
	}
}
