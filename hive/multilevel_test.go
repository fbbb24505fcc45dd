package hive_test

import (
	"testing"

	"github.com/delaneyj/cellparty/hive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct {
	label *hive.Cell[string]
}

func newWidget(label string) *widget {
	return &widget{label: hive.New(label)}
}

func widgetLabel(w *widget) hive.Source[string] {
	return w.label
}

func TestMultilevelFollowsInnerCell(t *testing.T) {
	a := newWidget("aaa")
	outer := hive.New(a)
	ml := hive.NewMultilevel(outer, widgetLabel, hive.Equality[string]())
	assert.Equal(t, "aaa", ml.Read())

	a.label.Write("bbb")
	assert.Equal(t, "bbb", ml.Read())
}

func TestMultilevelResubscribesOnOuterChange(t *testing.T) {
	a := newWidget("aaa")
	b := newWidget("ccc")
	outer := hive.New(a)
	ml := hive.NewMultilevel(outer, widgetLabel, hive.Equality[string]())
	require.Equal(t, "aaa", ml.Read())

	outer.Write(b)
	assert.Equal(t, "ccc", ml.Read())

	// the old inner subscription was dropped: mutating A's label no longer
	// reaches the multilevel
	a.label.Write("zzz")
	assert.Equal(t, "ccc", ml.Read())
	assert.Equal(t, 0, a.label.SubscriberCount())
	assert.Equal(t, 1, b.label.SubscriberCount())
}

func TestMultilevelCloseDropsBothSubscriptions(t *testing.T) {
	a := newWidget("aaa")
	outer := hive.New(a)
	ml := hive.NewMultilevel(outer, widgetLabel, hive.Equality[string]())

	ml.Close()
	assert.Equal(t, 0, outer.SubscriberCount())
	assert.Equal(t, 0, a.label.SubscriberCount())
}

type item struct {
	qty *hive.Cell[int]
}

func newItem(qty int) *item {
	return &item{qty: hive.New(qty)}
}

func itemQty(it *item) hive.Observable {
	return it.qty
}

func TestMultilevelCollectionFansInChildSignals(t *testing.T) {
	x := newItem(1)
	y := newItem(2)
	outer := hive.NewWithPredicate([]*item{x, y}, hive.Identity[[]*item]())
	col := hive.NewMultilevelCollection(outer, itemQty)

	callCount := 0
	col.Subscribe(func(items []*item) {
		callCount++
		// value identity is the outer collection's contents
		assert.Equal(t, []*item{x, y}, items)
	})

	x.qty.Write(10)
	assert.Equal(t, 1, callCount)
	y.qty.Write(20)
	assert.Equal(t, 2, callCount)
}

func TestMultilevelCollectionDiffsChildrenOnOuterChange(t *testing.T) {
	x := newItem(1)
	y := newItem(2)
	z := newItem(3)
	outer := hive.NewWithPredicate([]*item{x, y}, hive.Identity[[]*item]())
	col := hive.NewMultilevelCollection(outer, itemQty)
	require.Equal(t, 1, x.qty.SubscriberCount())
	require.Equal(t, 1, y.qty.SubscriberCount())
	require.Equal(t, 0, z.qty.SubscriberCount())

	callCount := 0
	col.Subscribe(func([]*item) {
		callCount++
	})

	// y leaves, z joins
	outer.Write([]*item{x, z})
	assert.Equal(t, 1, callCount)
	assert.Equal(t, []*item{x, z}, col.Read())
	assert.Equal(t, 1, x.qty.SubscriberCount())
	assert.Equal(t, 0, y.qty.SubscriberCount())
	assert.Equal(t, 1, z.qty.SubscriberCount())

	// stale children must not keep firing into this node
	y.qty.Write(200)
	assert.Equal(t, 1, callCount)

	z.qty.Write(300)
	assert.Equal(t, 2, callCount)
}

func TestMultilevelCollectionCloseDropsEverything(t *testing.T) {
	x := newItem(1)
	y := newItem(2)
	outer := hive.NewWithPredicate([]*item{x, y}, hive.Identity[[]*item]())
	col := hive.NewMultilevelCollection(outer, itemQty)

	col.Close()
	assert.Equal(t, 0, outer.SubscriberCount())
	assert.Equal(t, 0, x.qty.SubscriberCount())
	assert.Equal(t, 0, y.qty.SubscriberCount())
}
