package hive

import (
	"fmt"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// Observable is the type-erased view over any node in this package,
// enabling generic tooling that inspects or force-sets values without
// static knowledge of the value type. Only writable nodes accept
// WriteErased; on read-only nodes it is a contract violation.
type Observable interface {
	ReadErased() any
	ValueType() TypeDescriptor
	WriteErased(v any)

	observe(fn func()) *Subscription
}

// TypeDescriptor identifies a value type across the erased boundary.
type TypeDescriptor struct {
	Name string
	Hash uint64
}

func describeType[T any]() TypeDescriptor {
	name := reflect.TypeOf((*T)(nil)).Elem().String()
	return TypeDescriptor{Name: name, Hash: xxhash.Sum64String(name)}
}

func describeValue(v any) TypeDescriptor {
	if v == nil {
		return TypeDescriptor{Name: "<nil>", Hash: xxhash.Sum64String("<nil>")}
	}
	name := reflect.TypeOf(v).String()
	return TypeDescriptor{Name: name, Hash: xxhash.Sum64String(name)}
}

// TypeMismatchError reports a WriteErased whose dynamic type does not match
// the node's value type.
type TypeMismatchError struct {
	Want, Got TypeDescriptor
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("hive: type mismatch, node holds %s but got %s", e.Want.Name, e.Got.Name)
}

// ReadOnlyError reports a WriteErased on a node with no write capability.
type ReadOnlyError struct {
	Node string
	Type TypeDescriptor
}

func (e *ReadOnlyError) Error() string {
	return fmt.Sprintf("hive: %s node of %s is read-only", e.Node, e.Type.Name)
}

var fatalHandler func(error)

// InstallFatalHandler replaces the handler invoked on contract violations
// and returns the function that restores the previous one. Without an
// installed handler the violation panics. Test infrastructure installs a
// capturing handler before the test and uninstalls it after.
func InstallFatalHandler(h func(error)) (uninstall func()) {
	prev := fatalHandler
	fatalHandler = h
	return func() { fatalHandler = prev }
}

func fatal(err error) {
	if fatalHandler != nil {
		fatalHandler(err)
		return
	}
	panic(err)
}
