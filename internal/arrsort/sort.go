// Package arrsort implements the legacy array sorting functions (sort, asort, ksort and their
// reverse variants) on top of the comparator.
package arrsort

import (
	"fmt"
	"slices"
	"strings"

	"github.com/inoxlang/arrcompat/internal/compare"
	"github.com/inoxlang/arrcompat/internal/value"
	"github.com/maruel/natural"
)

// Flag selects how elements are compared.
type Flag int

const (
	// compare items with the comparator (loose ordering).
	SortRegular Flag = iota
	// compare items as floats.
	SortNumeric
	// compare the string forms byte-wise.
	SortString
	// compare the string forms in natural order ("img2" < "img10").
	SortNatural
)

func (f Flag) String() string {
	switch f {
	case SortRegular:
		return "SORT_REGULAR"
	case SortNumeric:
		return "SORT_NUMERIC"
	case SortString:
		return "SORT_STRING"
	case SortNatural:
		return "SORT_NATURAL"
	default:
		return fmt.Sprintf("unknown_sort_flag_%d", int(f))
	}
}

// ParseFlag accepts the names returned by Flag.String, with or without the SORT_ prefix, in any case.
func ParseFlag(s string) (Flag, error) {
	name := strings.ToUpper(s)
	if !strings.HasPrefix(name, "SORT_") {
		name = "SORT_" + name
	}
	for _, flag := range []Flag{SortRegular, SortNumeric, SortString, SortNatural} {
		if flag.String() == name {
			return flag, nil
		}
	}
	return 0, fmt.Errorf("unknown sort flag %q", s)
}

type entry struct {
	key value.Value
	val value.Value
}

// Sorter sorts legacy arrays, boundary crossings between elements are reported to the comparator's sink
// when SortRegular is used.
type Sorter struct {
	cmp *compare.Comparator
}

func NewSorter(cmp *compare.Comparator) *Sorter {
	return &Sorter{cmp: cmp}
}

func (s *Sorter) compareFn(flag Flag) func(a, b value.Value) int {
	switch flag {
	case SortNumeric:
		return func(a, b value.Value) int {
			fa, fb := value.ToFloat(a), value.ToFloat(b)
			switch {
			case fa < fb:
				return -1
			case fa > fb:
				return 1
			default:
				return 0
			}
		}
	case SortString:
		return func(a, b value.Value) int {
			return strings.Compare(value.ToString(a), value.ToString(b))
		}
	case SortNatural:
		return func(a, b value.Value) int {
			sa, sb := value.ToString(a), value.ToString(b)
			switch {
			case sa == sb:
				return 0
			case natural.Less(sa, sb):
				return -1
			default:
				return 1
			}
		}
	default:
		return func(a, b value.Value) int {
			result, comparable := s.cmp.Spaceship(a, b)
			if !comparable {
				//keep the current relative order of incomparable elements.
				return 0
			}
			return result
		}
	}
}

func entriesOf(arr *value.LegacyArray) []entry {
	var entries []entry
	it := arr.Iterator()
	for it.Next() {
		entries = append(entries, entry{key: it.Key(), val: it.Value()})
	}
	return entries
}

func (s *Sorter) sortEntries(arr *value.LegacyArray, flag Flag, byKey, reverse bool) []entry {
	entries := entriesOf(arr)
	cmp := s.compareFn(flag)

	slices.SortStableFunc(entries, func(a, b entry) int {
		var result int
		if byKey {
			result = cmp(a.key, b.key)
		} else {
			result = cmp(a.val, b.val)
		}
		if reverse {
			return -result
		}
		return result
	})
	return entries
}

// Sort returns the values of arr sorted, the keys are renumbered from 0.
func (s *Sorter) Sort(arr *value.LegacyArray, flag Flag) *value.LegacyArray {
	return s.sortValues(arr, flag, false)
}

// RSort is Sort in reverse order.
func (s *Sorter) RSort(arr *value.LegacyArray, flag Flag) *value.LegacyArray {
	return s.sortValues(arr, flag, true)
}

func (s *Sorter) sortValues(arr *value.LegacyArray, flag Flag, reverse bool) *value.LegacyArray {
	entries := s.sortEntries(arr, flag, false, reverse)
	values := make([]value.Value, len(entries))
	for i, e := range entries {
		values[i] = e.val
	}
	return value.NewLegacyList(values...)
}

// ASort returns arr sorted by value, keys are kept associated with their values.
func (s *Sorter) ASort(arr *value.LegacyArray, flag Flag) *value.LegacyArray {
	return rebuild(s.sortEntries(arr, flag, false, false))
}

// ARSort is ASort in reverse order.
func (s *Sorter) ARSort(arr *value.LegacyArray, flag Flag) *value.LegacyArray {
	return rebuild(s.sortEntries(arr, flag, false, true))
}

// KSort returns arr sorted by key.
func (s *Sorter) KSort(arr *value.LegacyArray, flag Flag) *value.LegacyArray {
	return rebuild(s.sortEntries(arr, flag, true, false))
}

// KRSort is KSort in reverse order.
func (s *Sorter) KRSort(arr *value.LegacyArray, flag Flag) *value.LegacyArray {
	return rebuild(s.sortEntries(arr, flag, true, true))
}

func rebuild(entries []entry) *value.LegacyArray {
	pairs := make([]value.Pair, len(entries))
	for i, e := range entries {
		pairs[i] = value.KV(e.key, e.val)
	}
	//keys come from an existing legacy array so they are valid.
	arr, err := value.NewLegacyArray(pairs...)
	if err != nil {
		panic(err)
	}
	return arr
}
