package compare

import (
	"github.com/inoxlang/arrcompat/internal/value"
)

func keyOf(v value.Value) (value.Key, bool) {
	key, err := value.KeyFromValue(v)
	return key, err == nil
}

// compareModern orders two modern containers of the same kind: vecs by size and then element-wise,
// dicts and keysets like legacy arrays. Containers of different kinds have no order.
func (inv *invocation) compareModern(a, b value.Container, depth int) (result int, comparable bool) {
	if a.Kind() != b.Kind() {
		//not comparable
		return
	}

	left, ok := a.(*value.List)
	if !ok {
		return inv.compareEntries(a, b, depth)
	}
	right := b.(*value.List)

	if left.Len() != right.Len() {
		return threeWay(left.Len(), right.Len()), true
	}

	for i := 0; i < left.Len(); i++ {
		result, comparable = inv.compare(left.At(i), right.At(i), depth+1)
		if !comparable || result != 0 {
			return
		}
	}
	return 0, true
}

// compareEntries is the legacy array ordering: the smaller container is lower, containers of the
// same size are compared by walking the keys of a. A key of a missing in b makes the pair incomparable.
func (inv *invocation) compareEntries(a, b value.Container, depth int) (result int, comparable bool) {
	if a.Len() != b.Len() {
		return threeWay(a.Len(), b.Len()), true
	}

	it := a.Iterator()
	for it.Next() {
		key, ok := keyOf(it.Key())
		if !ok {
			return 0, false
		}
		otherVal, ok := b.Lookup(key)
		if !ok {
			//not comparable
			return 0, false
		}
		result, comparable = inv.compare(it.Value(), otherVal, depth+1)
		if !comparable || result != 0 {
			return
		}
	}
	return 0, true
}

func (inv *invocation) modernEqual(a, b value.Container, depth int) bool {
	if a.Kind() != b.Kind() {
		return false
	}

	left, ok := a.(*value.List)
	if !ok {
		return inv.entriesEqual(a, b, depth)
	}
	right := b.(*value.List)

	if left.Len() != right.Len() {
		return false
	}
	for i := 0; i < left.Len(); i++ {
		if !inv.looseEqual(left.At(i), right.At(i), depth+1) {
			return false
		}
	}
	return true
}

// entriesEqual checks that a and b have the same keys, in any order, with loosely equal values.
func (inv *invocation) entriesEqual(a, b value.Container, depth int) bool {
	if a.Len() != b.Len() {
		return false
	}

	it := a.Iterator()
	for it.Next() {
		key, ok := keyOf(it.Key())
		if !ok {
			return false
		}
		otherVal, ok := b.Lookup(key)
		if !ok {
			return false
		}
		if !inv.looseEqual(it.Value(), otherVal, depth+1) {
			return false
		}
	}
	return true
}

// strictEqual never reports boundary crossings: values of different kinds are simply not identical.
func strictEqual(a, b value.Value, depth int) bool {
	if depth > MAX_COMPARISON_DEPTH {
		return false
	}
	a, b = normalize(a), normalize(b)

	if a.Kind() != b.Kind() {
		return false
	}

	switch left := a.(type) {
	case *value.LegacyArray, *value.Map:
		return sameOrderedEntries(left.(value.Container), b.(value.Container), depth)
	case *value.List:
		right := b.(*value.List)
		if left.Len() != right.Len() {
			return false
		}
		for i := 0; i < left.Len(); i++ {
			if !strictEqual(left.At(i), right.At(i), depth+1) {
				return false
			}
		}
		return true
	case *value.Set:
		right := b.(*value.Set)
		if left.Len() != right.Len() {
			return false
		}
		for _, key := range left.Keys() {
			if _, ok := right.Lookup(key); !ok {
				return false
			}
		}
		return true
	case *value.Object, *value.Resource:
		return a == b
	default:
		return strictEqualScalars(a, b)
	}
}

// sameOrderedEntries checks that a and b have the same keys in the same order with identical values.
func sameOrderedEntries(a, b value.Container, depth int) bool {
	if a.Len() != b.Len() {
		return false
	}

	itA := a.Iterator()
	itB := b.Iterator()
	for itA.Next() {
		if !itB.Next() {
			return false
		}
		if !strictEqualScalars(itA.Key(), itB.Key()) {
			return false
		}
		if !strictEqual(itA.Value(), itB.Value(), depth+1) {
			return false
		}
	}
	return !itB.HasNext()
}
