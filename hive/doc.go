// Package hive is a reactive dependency graph built on explicit
// subscriptions rather than implicit tracking: a Cell holds a value and an
// ordered callback list, derived nodes subscribe to their sources and
// recompute on change, and an Updater batches side effects with
// pause/resume.
//
// Propagation is synchronous and depth-first. A Write does not return until
// everything downstream of it has recomputed and every unpaused effect has
// run. There is no scheduler and no queue.
//
// Nothing in this package is goroutine-safe. Callers using the graph from
// more than one goroutine must serialize access themselves; SystemClock
// timer callbacks fire on their own goroutine and need the same treatment.
//
// Dependency edges point from dependent to dependency: a derived node owns
// subscriptions to its sources, a source never holds on to its dependents
// beyond the registered callback. Closing a node releases every
// subscription it owns, so a graph can be torn down piecemeal in any order.
package hive
