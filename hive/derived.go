package hive

// Derived is a read-only cell recomputed from one or more sources via a
// pure calculator. Immediately after any source change propagates here the
// value equals the calculator applied to the sources' current values; each
// source change propagates independently and fully.
//
// Use the Derived1..Derived8 constructors in derived_gen.go; they carry the
// static types of the sources.
type Derived[O any] struct {
	readOnly[O]
	calc func() O
	subs []*Subscription
}

func newDerived[O any](changed ChangePredicate[O], calc func() O, sources ...Observable) *Derived[O] {
	d := &Derived[O]{
		readOnly: readOnly[O]{
			cell: NewWithPredicate(calc(), changed),
			kind: "derived",
		},
		calc: calc,
	}
	for _, src := range sources {
		d.subs = append(d.subs, src.observe(d.recompute))
	}
	return d
}

func (d *Derived[O]) recompute() {
	d.cell.Write(d.calc())
}

// Close drops the subscriptions to every source. The last value stays
// readable but no longer tracks anything.
func (d *Derived[O]) Close() {
	closeAll(d.subs)
	d.subs = nil
}

// ManualDerived is the manual-only variant: no subscriptions are created
// and the value updates only on an explicit Recalculate. It decouples a
// non-reactive calculator from propagation.
type ManualDerived[O any] struct {
	readOnly[O]
	calc func() O
}

// DeriveManual computes the initial value immediately, like the automatic
// constructors, then waits for Recalculate calls.
func DeriveManual[O any](changed ChangePredicate[O], calc func() O) *ManualDerived[O] {
	return &ManualDerived[O]{
		readOnly: readOnly[O]{
			cell: NewWithPredicate(calc(), changed),
			kind: "manual derived",
		},
		calc: calc,
	}
}

// Recalculate re-runs the calculator and writes the result through the
// predicate-gated path, notifying subscribers iff the value changed.
func (d *ManualDerived[O]) Recalculate() {
	d.cell.Write(d.calc())
}
