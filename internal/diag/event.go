// Package diag implements the diagnostic channel of the comparator: boundary crossing events,
// the sinks receiving them and the two latches the compatibility probes read.
package diag

import (
	"fmt"

	"github.com/inoxlang/arrcompat/internal/value"
)

// Variant identifies the kind of boundary crossing.
type Variant int

const (
	// A legacy array compared with a modern container.
	HackArrayBoundary Variant = iota
	// A container compared with a value that is not a container.
	NonAnyArrayBoundary

	variantCount
)

const (
	HACK_ARRAY_BOUNDARY_MSG    = "Hack Array Compat: Comparing PHP array with Hack array"
	NON_ANY_ARRAY_BOUNDARY_MSG = "Hack Array Compat: Comparing PHP array with non any-array"
)

var (
	Variants = []Variant{HackArrayBoundary, NonAnyArrayBoundary}
)

func (v Variant) String() string {
	switch v {
	case HackArrayBoundary:
		return "hack-array"
	case NonAnyArrayBoundary:
		return "non-any-array"
	default:
		return fmt.Sprintf("unknown_variant_%d", int(v))
	}
}

// Message is the notice text of the variant.
func (v Variant) Message() string {
	switch v {
	case HackArrayBoundary:
		return HACK_ARRAY_BOUNDARY_MSG
	case NonAnyArrayBoundary:
		return NON_ANY_ARRAY_BOUNDARY_MSG
	default:
		return v.String()
	}
}

// ParseVariant accepts the names returned by Variant.String.
func ParseVariant(s string) (Variant, error) {
	for _, v := range Variants {
		if v.String() == s {
			return v, nil
		}
	}
	return 0, fmt.Errorf("unknown diagnostic variant %q", s)
}

// Event is a boundary crossing reported during a comparison.
type Event struct {
	Variant Variant
	Op      string
	Left    value.Kind
	Right   value.Kind
}

func (e Event) Message() string {
	return e.Variant.Message()
}

func (e Event) String() string {
	return fmt.Sprintf("%s (%s %s %s)", e.Message(), e.Left, e.Op, e.Right)
}
