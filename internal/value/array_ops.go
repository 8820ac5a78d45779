package value

// MergeRecursive merges legacy arrays from left to right: int keys are renumbered, string keys
// present on both sides are merged recursively. On a string key collision the existing value is
// kept as is if it is an array and wrapped in a single element array otherwise.
func MergeRecursive(arrays ...*LegacyArray) *LegacyArray {
	result := &LegacyArray{entries: newEntries()}
	for _, arr := range arrays {
		mergeInto(result.entries, arr.entries)
	}
	return result
}

func mergeInto(dest, src *entries) {
	it := src.iterator()
	for it.Next() {
		key := it.keys[it.i].(Key)
		val := it.Value()

		if key.IsInt() {
			dest.append(val)
			continue
		}

		existing, ok := dest.get(key)
		if !ok {
			dest.put(key, val)
			continue
		}

		merged := &LegacyArray{entries: newEntries()}
		if existingArr, ok := existing.(*LegacyArray); ok {
			existingIt := existingArr.entries.iterator()
			for existingIt.Next() {
				merged.entries.put(existingIt.keys[existingIt.i].(Key), existingIt.Value())
			}
		} else {
			merged.entries.append(existing)
		}

		if srcArr, ok := val.(*LegacyArray); ok {
			mergeInto(merged.entries, srcArr.entries)
		} else {
			merged.entries.append(val)
		}
		dest.put(key, merged)
	}
}

// IntersectValues returns the entries of arr whose string form is found among the values of every other
// container, keys are preserved.
func IntersectValues(arr *LegacyArray, others ...Container) *LegacyArray {
	sets := make([]map[string]struct{}, len(others))
	for i, other := range others {
		set := map[string]struct{}{}
		it := other.Iterator()
		for it.Next() {
			set[ToString(it.Value())] = struct{}{}
		}
		sets[i] = set
	}

	result := &LegacyArray{entries: newEntries()}
	it := arr.entries.iterator()

entries:
	for it.Next() {
		str := ToString(it.Value())
		for _, set := range sets {
			if _, ok := set[str]; !ok {
				continue entries
			}
		}
		result.entries.put(it.keys[it.i].(Key), it.Value())
	}
	return result
}
