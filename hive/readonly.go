package hive

// readOnly is the shared surface of every node whose value is only updated
// through its own internal write path. Variants compose it around their
// backing cell instead of reimplementing the read/subscribe/erased methods.
type readOnly[T any] struct {
	cell *Cell[T]
	kind string
}

func (r *readOnly[T]) Read() T {
	return r.cell.Read()
}

func (r *readOnly[T]) Subscribe(fn func(T)) *Subscription {
	return r.cell.Subscribe(fn)
}

// SubscriberCount reports how many callbacks are registered on this node.
func (r *readOnly[T]) SubscriberCount() int {
	return r.cell.SubscriberCount()
}

func (r *readOnly[T]) ReadErased() any {
	return r.cell.ReadErased()
}

func (r *readOnly[T]) ValueType() TypeDescriptor {
	return r.cell.ValueType()
}

// WriteErased on a read-only node is a contract violation.
func (r *readOnly[T]) WriteErased(any) {
	fatal(&ReadOnlyError{Node: r.kind, Type: r.cell.ValueType()})
}

func (r *readOnly[T]) observe(fn func()) *Subscription {
	return r.cell.observe(fn)
}
