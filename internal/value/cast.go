package value

// The casts below are shallow: nested containers keep their own representation, a vec nested in a
// dict cast to a legacy array is still a vec.

// ToLegacy casts a container to a legacy array. Dict keys are normalized the way legacy arrays
// normalize keys, so "1" becomes 1. ErrNotIterable is returned for non-containers.
func ToLegacy(v Value) (*LegacyArray, error) {
	if arr, ok := v.(*LegacyArray); ok {
		return arr, nil
	}
	it, err := Iterate(v)
	if err != nil {
		return nil, err
	}
	var pairs []Pair
	for it.Next() {
		pairs = append(pairs, KV(it.Key(), it.Value()))
	}
	return NewLegacyArray(pairs...)
}

// MustLegacy is like ToLegacy but panics on error.
func MustLegacy(v Value) *LegacyArray {
	arr, err := ToLegacy(v)
	if err != nil {
		panic(err)
	}
	return arr
}

// ToList returns the values of a container as a vec.
func ToList(v Value) (*List, error) {
	if list, ok := v.(*List); ok {
		return list, nil
	}
	it, err := Iterate(v)
	if err != nil {
		return nil, err
	}
	var values []Value
	for it.Next() {
		values = append(values, it.Value())
	}
	return NewList(values...), nil
}

// ToMap casts a container to a dict, keys are kept as they are.
func ToMap(v Value) (*Map, error) {
	if m, ok := v.(*Map); ok {
		return m, nil
	}
	it, err := Iterate(v)
	if err != nil {
		return nil, err
	}
	var pairs []Pair
	for it.Next() {
		pairs = append(pairs, KV(it.Key(), it.Value()))
	}
	return NewMap(pairs...)
}

// ToSet casts a container to a keyset built from its values, ErrInvalidKey is returned
// if a value is neither an int nor a string.
func ToSet(v Value) (*Set, error) {
	if s, ok := v.(*Set); ok {
		return s, nil
	}
	it, err := Iterate(v)
	if err != nil {
		return nil, err
	}
	var values []Value
	for it.Next() {
		values = append(values, it.Value())
	}
	return NewSet(values...)
}
