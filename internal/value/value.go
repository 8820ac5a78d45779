package value

import (
	"errors"
	"fmt"
	"sync/atomic"
)

const (
	DEFAULT_OBJECT_CLASS = "stdClass"
)

var (
	ErrUnsupportedGoValue = errors.New("unsupported Go value")

	_ = []Value{Null, Bool(false), Int(0), Float(0), Str(""), &LegacyArray{}, &List{}, &Map{}, &Set{}, &Object{}, &Resource{}}

	lastObjectID   atomic.Int64
	lastResourceID atomic.Int64
)

// Value is implemented by every runtime value. Values are immutable once constructed.
type Value interface {
	Kind() Kind
}

//-----------------------------------------------------------------------------
// Scalars
//-----------------------------------------------------------------------------

type NullT struct{}

var Null = NullT{}

func (NullT) Kind() Kind { return KindNull }

type Bool bool

const (
	True  = Bool(true)
	False = Bool(false)
)

func (Bool) Kind() Kind { return KindBool }

type Int int64

func (Int) Kind() Kind { return KindInt }

type Float float64

func (Float) Kind() Kind { return KindFloat }

type Str string

func (Str) Kind() Kind { return KindStr }

//-----------------------------------------------------------------------------
// Opaque handles
//-----------------------------------------------------------------------------

// Object is an identity handle, two distinct *Object values are never identical.
type Object struct {
	id    int64
	class string
}

func NewObject(class string) *Object {
	if class == "" {
		class = DEFAULT_OBJECT_CLASS
	}
	return &Object{id: lastObjectID.Add(1), class: class}
}

func (*Object) Kind() Kind { return KindObject }

func (o *Object) ID() int64 { return o.id }

func (o *Object) Class() string { return o.class }

// Resource is an opaque handle to a host resource (file, image, stream, ...).
type Resource struct {
	id  int64
	typ string
}

func NewResource(typ string) *Resource {
	return &Resource{id: lastResourceID.Add(1), typ: typ}
}

func (*Resource) Kind() Kind { return KindResource }

func (r *Resource) ID() int64 { return r.id }

func (r *Resource) Type() string { return r.typ }

//-----------------------------------------------------------------------------
// Go interop
//-----------------------------------------------------------------------------

// Of converts a Go value to a Value: nil, bool, integers, float64, string are supported,
// Values are returned as is. Of panics for other types.
func Of(v any) Value {
	switch val := v.(type) {
	case nil:
		return Null
	case Value:
		return val
	case bool:
		return Bool(val)
	case int:
		return Int(val)
	case int32:
		return Int(val)
	case int64:
		return Int(val)
	case float32:
		return Float(val)
	case float64:
		return Float(val)
	case string:
		return Str(val)
	default:
		panic(fmt.Errorf("%w: %T", ErrUnsupportedGoValue, v))
	}
}

func ofAll(elems []any) []Value {
	values := make([]Value, len(elems))
	for i, e := range elems {
		values[i] = Of(e)
	}
	return values
}

// ListOf creates a vec from Go values, see Of.
func ListOf(elems ...any) *List {
	return NewList(ofAll(elems)...)
}

// ArrayOf creates a list-shaped legacy array (keys 0..n-1) from Go values, see Of.
func ArrayOf(elems ...any) *LegacyArray {
	return NewLegacyList(ofAll(elems)...)
}

// KeysetOf creates a keyset from Go values, it panics if an element is not an int or a string.
func KeysetOf(elems ...any) *Set {
	set, err := NewSet(ofAll(elems)...)
	if err != nil {
		panic(err)
	}
	return set
}

// DictOf creates a dict from alternating keys and values, it panics on an odd number of
// arguments or on a key that is neither an int nor a string.
func DictOf(keysAndValues ...any) *Map {
	m, err := NewMap(pairsOf(keysAndValues)...)
	if err != nil {
		panic(err)
	}
	return m
}

// DArrayOf creates a legacy array from alternating keys and values, keys are coerced the way
// legacy arrays coerce keys.
func DArrayOf(keysAndValues ...any) *LegacyArray {
	arr, err := NewLegacyArray(pairsOf(keysAndValues)...)
	if err != nil {
		panic(err)
	}
	return arr
}

func pairsOf(keysAndValues []any) []Pair {
	if len(keysAndValues)%2 != 0 {
		panic(errors.New("odd number of arguments: keys and values should alternate"))
	}
	pairs := make([]Pair, 0, len(keysAndValues)/2)
	for i := 0; i < len(keysAndValues); i += 2 {
		pairs = append(pairs, KV(Of(keysAndValues[i]), Of(keysAndValues[i+1])))
	}
	return pairs
}
