package value

import (
	"errors"
	"fmt"
)

var (
	ErrNotIterable = errors.New("value is not iterable")

	_ = []Container{&LegacyArray{}, &List{}, &Map{}, &Set{}}
)

// Pair is a construction-time (optional key, value) pair, a nil Key means "next integer key".
type Pair struct {
	Key   Value
	Value Value
}

func KV(key, val Value) Pair {
	return Pair{Key: key, Value: val}
}

func Elem(val Value) Pair {
	return Pair{Value: val}
}

// Iterator walks the entries of a container in insertion order. For vecs the keys are the indexes,
// for keysets the key and the value are the same.
type Iterator interface {
	HasNext() bool
	Next() bool
	Key() Value
	Value() Value
}

// A Container is a legacy array or a modern container (vec, dict, keyset).
type Container interface {
	Value
	Len() int
	// Iterator returns a fresh iterator, iterating twice yields the same order.
	Iterator() Iterator
	// Lookup returns the value stored at key, for vecs the key should be an int index.
	Lookup(key Key) (Value, bool)
}

// Iterate returns an iterator over the entries of v, ErrNotIterable is returned if v is not a container.
func Iterate(v Value) (Iterator, error) {
	container, ok := v.(Container)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotIterable, KindOf(v))
	}
	return container.Iterator(), nil
}

// MustIterate is like Iterate but panics if v is not a container.
func MustIterate(v Value) Iterator {
	it, err := Iterate(v)
	if err != nil {
		panic(err)
	}
	return it
}

// KeysOf returns the keys of a container in insertion order.
func KeysOf(c Container) []Key {
	switch container := c.(type) {
	case *LegacyArray:
		return container.entries.keys()
	case *Map:
		return container.entries.keys()
	case *Set:
		return container.entries.keys()
	case *List:
		keys := make([]Key, len(container.elements))
		for i := range container.elements {
			keys[i] = IntKey(int64(i))
		}
		return keys
	}
	var keys []Key
	it := c.Iterator()
	for it.Next() {
		k, err := KeyFromValue(it.Key())
		if err != nil {
			panic(err)
		}
		keys = append(keys, k)
	}
	return keys
}

//-----------------------------------------------------------------------------
// Legacy array
//-----------------------------------------------------------------------------

// LegacyArray is the PHP array: an ordered key -> value map whose int-like string keys are
// normalized to ints.
type LegacyArray struct {
	entries *entries
}

// NewLegacyArray creates a legacy array, keys are coerced with LegacyKey. A later pair with an already
// present key overwrites the value but keeps the position of the first one.
func NewLegacyArray(pairs ...Pair) (*LegacyArray, error) {
	arr := &LegacyArray{entries: newEntries()}
	for _, pair := range pairs {
		if pair.Key == nil {
			arr.entries.append(Of(pair.Value))
			continue
		}
		key, err := LegacyKey(pair.Key)
		if err != nil {
			return nil, err
		}
		arr.entries.put(key, Of(pair.Value))
	}
	return arr, nil
}

// NewLegacyList creates a legacy array with the keys 0..n-1.
func NewLegacyList(values ...Value) *LegacyArray {
	arr := &LegacyArray{entries: newEntries()}
	for _, v := range values {
		arr.entries.append(Of(v))
	}
	return arr
}

func (*LegacyArray) Kind() Kind { return KindLegacyArray }

func (a *LegacyArray) Len() int { return a.entries.len() }

func (a *LegacyArray) Iterator() Iterator { return a.entries.iterator() }

func (a *LegacyArray) Lookup(key Key) (Value, bool) { return a.entries.get(key) }

func (a *LegacyArray) Keys() []Key { return a.entries.keys() }

func (a *LegacyArray) Values() []Value { return a.entries.values() }

// IsList reports whether the keys of the array are exactly 0..n-1 in order.
func (a *LegacyArray) IsList() bool {
	for i, k := range a.entries.keys() {
		if !k.IsInt() || k.Int() != int64(i) {
			return false
		}
	}
	return true
}

//-----------------------------------------------------------------------------
// Vec
//-----------------------------------------------------------------------------

// List is the vec container: a dense sequence indexed from 0.
type List struct {
	elements []Value
}

func NewList(values ...Value) *List {
	elements := make([]Value, len(values))
	for i, v := range values {
		elements[i] = Of(v)
	}
	return &List{elements: elements}
}

func (*List) Kind() Kind { return KindList }

func (l *List) Len() int { return len(l.elements) }

func (l *List) At(i int) Value { return l.elements[i] }

// Elements returns a copy of the elements.
func (l *List) Elements() []Value {
	return append([]Value(nil), l.elements...)
}

func (l *List) Lookup(key Key) (Value, bool) {
	if !key.IsInt() || key.Int() < 0 || key.Int() >= int64(len(l.elements)) {
		return nil, false
	}
	return l.elements[key.Int()], true
}

func (l *List) Iterator() Iterator {
	return &listIterator{list: l, i: -1}
}

type listIterator struct {
	list *List
	i    int
}

func (it *listIterator) HasNext() bool { return it.i+1 < len(it.list.elements) }

func (it *listIterator) Next() bool {
	if !it.HasNext() {
		return false
	}
	it.i++
	return true
}

func (it *listIterator) Key() Value { return Int(it.i) }

func (it *listIterator) Value() Value { return it.list.elements[it.i] }

//-----------------------------------------------------------------------------
// Dict
//-----------------------------------------------------------------------------

// Map is the dict container: ordered key -> value map whose keys are ints or strings, never normalized.
type Map struct {
	entries *entries
}

// NewMap creates a dict, a pair without key gets the next integer key.
func NewMap(pairs ...Pair) (*Map, error) {
	m := &Map{entries: newEntries()}
	for _, pair := range pairs {
		if pair.Key == nil {
			m.entries.append(Of(pair.Value))
			continue
		}
		key, err := KeyFromValue(pair.Key)
		if err != nil {
			return nil, err
		}
		m.entries.put(key, Of(pair.Value))
	}
	return m, nil
}

func (*Map) Kind() Kind { return KindMap }

func (m *Map) Len() int { return m.entries.len() }

func (m *Map) Iterator() Iterator { return m.entries.iterator() }

func (m *Map) Lookup(key Key) (Value, bool) { return m.entries.get(key) }

func (m *Map) Keys() []Key { return m.entries.keys() }

func (m *Map) Values() []Value { return m.entries.values() }

//-----------------------------------------------------------------------------
// Keyset
//-----------------------------------------------------------------------------

// Set is the keyset container: ordered unique ints and strings.
type Set struct {
	entries *entries
}

// NewSet creates a keyset, duplicates are ignored and elements should be ints or strings.
func NewSet(elems ...Value) (*Set, error) {
	s := &Set{entries: newEntries()}
	for _, elem := range elems {
		key, err := KeyFromValue(elem)
		if err != nil {
			return nil, err
		}
		if !s.entries.has(key) {
			s.entries.put(key, key.Value())
		}
	}
	return s, nil
}

func (*Set) Kind() Kind { return KindSet }

func (s *Set) Len() int { return s.entries.len() }

func (s *Set) Iterator() Iterator { return s.entries.iterator() }

func (s *Set) Lookup(key Key) (Value, bool) { return s.entries.get(key) }

func (s *Set) Has(v Value) bool {
	key, err := KeyFromValue(v)
	return err == nil && s.entries.has(key)
}

func (s *Set) Keys() []Key { return s.entries.keys() }
