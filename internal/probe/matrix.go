package probe

import (
	"github.com/inoxlang/arrcompat/internal/diag"
	"github.com/inoxlang/arrcompat/internal/value"
)

const (
	COMPARE_FIXTURE_MATRIX_NAME = "hack_arr_compat/compare"
	GD_RESOURCE_TYPE            = "gd"
)

// Case is a pair of operands and the variant whose latch is observed.
type Case struct {
	Left    value.Value
	Right   value.Value
	Variant diag.Variant
}

type Matrix struct {
	Name  string
	Cases []Case
}

// AddBothOrders adds (a, b) and (b, a).
func (m *Matrix) AddBothOrders(a, b value.Value, variant diag.Variant) {
	m.Cases = append(m.Cases, Case{Left: a, Right: b, Variant: variant}, Case{Left: b, Right: a, Variant: variant})
}

func (m *Matrix) Add(a, b value.Value, variant diag.Variant) {
	m.Cases = append(m.Cases, Case{Left: a, Right: b, Variant: variant})
}

// CompareFixtureMatrix rebuilds the data set of the legacy/modern comparison fixture: every legacy array
// of the first group is compared in both orders with the non-container and legacy values of the second
// group (non-any-array latch) and with the modern containers of the third group (hack array latch).
// The scalar controls run last for both latches.
func CompareFixtureMatrix() Matrix {
	x1 := []value.Value{
		value.ArrayOf(),
		value.ArrayOf(1, 2, value.ArrayOf(3, 4)),
		value.DArrayOf("a", "b", "c", "d"),
	}

	x2NonHackArrays := []value.Value{
		value.True,
		value.False,
		value.Null,
		value.Int(123),
		value.Float(4.567),
		value.Str("abc"),
		value.NewObject(value.DEFAULT_OBJECT_CLASS),
		value.NewResource(GD_RESOURCE_TYPE),
		value.ArrayOf(1, value.ArrayOf(2, 5), value.ArrayOf(3, 4)),
		value.DArrayOf("a", value.ArrayOf(), "c", value.ArrayOf(1, 2)),
	}

	x2HackArrays := []value.Value{
		value.ListOf(),
		value.ListOf(1, 2, 3),
		value.DictOf(),
		value.DictOf("a", "b", "c", "d"),
		value.KeysetOf(),
		value.KeysetOf("a", "b", "c"),
		value.ArrayOf(1, 2, value.ListOf(3, 4)),
	}

	m := Matrix{Name: COMPARE_FIXTURE_MATRIX_NAME}

	for _, a := range x1 {
		for _, b := range x2NonHackArrays {
			m.AddBothOrders(a, b, diag.NonAnyArrayBoundary)
		}
		for _, b := range x2HackArrays {
			m.AddBothOrders(a, b, diag.HackArrayBoundary)
		}
	}

	for _, variant := range diag.Variants {
		m.Add(value.Null, value.Null, variant)
		m.Add(value.True, value.False, variant)
		m.Add(value.Int(1), value.Int(2), variant)
	}

	return m
}
