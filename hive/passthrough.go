package hive

// PassThrough is a one-directional mirror of exactly one parent. No write
// capability is exposed; its value tracks the parent's through the internal
// update path only.
type PassThrough[T any] struct {
	readOnly[T]
	sub *Subscription
}

func NewPassThrough[T any](parent Source[T], changed ChangePredicate[T]) *PassThrough[T] {
	p := &PassThrough[T]{
		readOnly: readOnly[T]{
			cell: NewWithPredicate(parent.Read(), changed),
			kind: "pass-through",
		},
	}
	p.sub = parent.Subscribe(p.cell.Write)
	return p
}

// Close detaches the mirror from its parent.
func (p *PassThrough[T]) Close() {
	p.sub.Close()
	p.sub = nil
}

// Connectable is a mirror with a rebindable source. It starts unconnected
// on a caller-supplied default and can be pointed at a live source or a
// constant at any time.
type Connectable[T any] struct {
	readOnly[T]
	sub *Subscription
}

func NewConnectable[T any](def T, changed ChangePredicate[T]) *Connectable[T] {
	return &Connectable[T]{
		readOnly: readOnly[T]{
			cell: NewWithPredicate(def, changed),
			kind: "connectable",
		},
	}
}

// Connect replaces the active source. The new subscription is taken before
// the previous one is dropped, then the value syncs immediately, firing a
// change notification iff the predicate reports one.
func (c *Connectable[T]) Connect(src Source[T]) {
	prev := c.sub
	c.sub = src.Subscribe(c.cell.Write)
	prev.Close()
	c.cell.Write(src.Read())
}

// ConnectConstant disconnects any live source and assigns a constant,
// leaving the node in constant mode until reconnected.
func (c *Connectable[T]) ConnectConstant(v T) {
	c.sub.Close()
	c.sub = nil
	c.cell.Write(v)
}

// Close drops the active source subscription, if any.
func (c *Connectable[T]) Close() {
	c.sub.Close()
	c.sub = nil
}
