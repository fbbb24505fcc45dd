package hive

type unsubscriber interface {
	unsubscribe(id uint64)
}

// Subscription is the handle for one registered callback: a back-reference
// to the cell plus the callback id. Closing it removes the callback; the
// cell itself never holds a handle to its subscribers.
type Subscription struct {
	source unsubscriber
	id     uint64
	closed bool
}

// Close removes the callback from the source. Closing twice, or closing
// from inside the very dispatch that is invoking the callback, is fine:
// the dispatch skips ids removed while it runs.
func (s *Subscription) Close() {
	if s == nil || s.closed {
		return
	}
	s.closed = true
	s.source.unsubscribe(s.id)
}

func closeAll(subs []*Subscription) {
	for _, sub := range subs {
		sub.Close()
	}
}
