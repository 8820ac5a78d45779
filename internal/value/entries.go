package value

import (
	"math"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// entries is the insertion-ordered key -> value storage shared by legacy arrays, dicts and keysets.
// Overwriting an existing key keeps its original position.
type entries struct {
	table     *linkedhashmap.Map //Key -> Value
	nextIndex int64
}

func newEntries() *entries {
	return &entries{table: linkedhashmap.New()}
}

func (e *entries) put(k Key, v Value) {
	e.table.Put(k, v)
	if k.IsInt() && k.Int() >= e.nextIndex && k.Int() < math.MaxInt64 {
		e.nextIndex = k.Int() + 1
	}
}

func (e *entries) append(v Value) {
	e.put(IntKey(e.nextIndex), v)
}

func (e *entries) get(k Key) (Value, bool) {
	if e == nil {
		return nil, false
	}
	v, ok := e.table.Get(k)
	if !ok {
		return nil, false
	}
	return v.(Value), true
}

func (e *entries) has(k Key) bool {
	_, ok := e.get(k)
	return ok
}

func (e *entries) len() int {
	if e == nil {
		return 0
	}
	return e.table.Size()
}

func (e *entries) keys() []Key {
	if e == nil {
		return nil
	}
	rawKeys := e.table.Keys()
	keys := make([]Key, len(rawKeys))
	for i, k := range rawKeys {
		keys[i] = k.(Key)
	}
	return keys
}

func (e *entries) values() []Value {
	if e == nil {
		return nil
	}
	rawValues := e.table.Values()
	values := make([]Value, len(rawValues))
	for i, v := range rawValues {
		values[i] = v.(Value)
	}
	return values
}

func (e *entries) iterator() *entriesIterator {
	var rawKeys []interface{}
	if e != nil {
		rawKeys = e.table.Keys()
	}
	return &entriesIterator{entries: e, keys: rawKeys, i: -1}
}

type entriesIterator struct {
	entries *entries
	keys    []interface{}
	i       int
}

func (it *entriesIterator) HasNext() bool {
	return it.i+1 < len(it.keys)
}

func (it *entriesIterator) Next() bool {
	if !it.HasNext() {
		return false
	}
	it.i++
	return true
}

func (it *entriesIterator) Key() Value {
	return it.keys[it.i].(Key).Value()
}

func (it *entriesIterator) Value() Value {
	v, _ := it.entries.get(it.keys[it.i].(Key))
	return v
}
