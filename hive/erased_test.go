package hive_test

import (
	"testing"

	"github.com/delaneyj/cellparty/hive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErasedReadAndType(t *testing.T) {
	c := hive.New(3)
	var o hive.Observable = c

	assert.Equal(t, 3, o.ReadErased())

	td := o.ValueType()
	assert.Equal(t, "int", td.Name)
	assert.NotZero(t, td.Hash)

	// descriptors are stable across nodes of the same value type
	d := hive.Derived1(c, double)
	assert.Equal(t, td, d.ValueType())
}

func TestErasedWriteMatchingType(t *testing.T) {
	c := hive.New(3)
	var o hive.Observable = c

	o.WriteErased(42)
	assert.Equal(t, 42, c.Read())
}

func TestErasedWriteMismatchHitsFatalHandler(t *testing.T) {
	c := hive.New(3)

	var captured error
	uninstall := hive.InstallFatalHandler(func(err error) {
		captured = err
	})
	defer uninstall()

	c.WriteErased("not an int")
	require.Error(t, captured)

	var mismatch *hive.TypeMismatchError
	require.ErrorAs(t, captured, &mismatch)
	assert.Equal(t, "int", mismatch.Want.Name)
	assert.Equal(t, "string", mismatch.Got.Name)

	// the write was rejected
	assert.Equal(t, 3, c.Read())
}

func TestErasedWriteMismatchPanicsWithoutHandler(t *testing.T) {
	c := hive.New(3)
	assert.Panics(t, func() {
		c.WriteErased("boom")
	})
}

func TestErasedWriteOnReadOnlyNode(t *testing.T) {
	c := hive.New(3)
	d := hive.Derived1(c, double)

	var captured error
	uninstall := hive.InstallFatalHandler(func(err error) {
		captured = err
	})
	defer uninstall()

	var o hive.Observable = d
	o.WriteErased(99)

	var readOnly *hive.ReadOnlyError
	require.ErrorAs(t, captured, &readOnly)
	assert.Equal(t, "derived", readOnly.Node)
	assert.Equal(t, 6, d.Read())
}

func TestFatalHandlerUninstallRestoresPrevious(t *testing.T) {
	var outer, inner error
	uninstallOuter := hive.InstallFatalHandler(func(err error) { outer = err })
	defer uninstallOuter()

	uninstallInner := hive.InstallFatalHandler(func(err error) { inner = err })
	uninstallInner()

	c := hive.New(3)
	c.WriteErased("nope")
	assert.Nil(t, inner)
	assert.Error(t, outer)
}
