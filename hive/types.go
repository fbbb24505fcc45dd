package hive

// Readable is the typed capability shared by every node kind: read the
// current value, or register a callback for future changes.
type Readable[T any] interface {
	Read() T
	Subscribe(fn func(T)) *Subscription
}

// Source is a node usable as a dependency of another node. Every node in
// this package implements it.
type Source[T any] interface {
	Readable[T]
	Observable
}

// ChangePredicate decides whether a write counts as a change worth
// notifying about.
type ChangePredicate[T any] func(old, next T) bool

// Equality reports a change iff the values differ.
func Equality[T comparable]() ChangePredicate[T] {
	return func(old, next T) bool { return old != next }
}

// Identity treats every write as a change. Value types have no stable
// identity to compare, so this is the conservative default for
// non-comparable values: redundant firings are possible, missed ones are
// not.
func Identity[T any]() ChangePredicate[T] {
	return func(T, T) bool { return true }
}

// Always forces a notification on every write. Meant for diagnostics and
// tests.
func Always[T any]() ChangePredicate[T] {
	return func(T, T) bool { return true }
}
