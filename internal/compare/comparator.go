// Package compare implements the comparison operators between runtime values, including
// the legacy array / modern container boundary rules.
package compare

import (
	"github.com/inoxlang/arrcompat/internal/diag"
	"github.com/inoxlang/arrcompat/internal/value"
)

const (
	MAX_COMPARISON_DEPTH = 200

	// result of <=> for an incomparable pair, legacy arrays with different keys compare as 1.
	INCOMPARABLE_SPACESHIP_RESULT = 1
)

// Comparator evaluates comparison operators and reports boundary crossings to its sink.
// A Comparator never panics and never returns an error: every pair of values is comparable
// with every operator, incomparable pairs make ordering operators return false.
type Comparator struct {
	sink diag.Sink
}

// New creates a comparator reporting to sink, a nil sink discards events.
func New(sink diag.Sink) *Comparator {
	if sink == nil {
		sink = diag.Discard
	}
	return &Comparator{sink: sink}
}

// invocation is the state of a single operator evaluation. Each variant is reported at most once per
// invocation, even when several nested pairs cross the same boundary.
type invocation struct {
	sink  diag.Sink
	op    Op
	fired uint8
}

func (c *Comparator) begin(op Op) *invocation {
	return &invocation{sink: c.sink, op: op}
}

func (inv *invocation) signal(variant diag.Variant, a, b value.Value) {
	mask := uint8(1) << uint(variant)
	if inv.fired&mask != 0 {
		return
	}
	inv.fired |= mask
	inv.sink.Report(diag.Event{
		Variant: variant,
		Op:      inv.op.String(),
		Left:    value.KindOf(a),
		Right:   value.KindOf(b),
	})
}

func (c *Comparator) Less(a, b value.Value) bool {
	result, comparable := c.begin(OpLess).compare(a, b, 0)
	return comparable && result < 0
}

func (c *Comparator) LessEqual(a, b value.Value) bool {
	result, comparable := c.begin(OpLessEqual).compare(a, b, 0)
	return comparable && result <= 0
}

func (c *Comparator) Greater(a, b value.Value) bool {
	result, comparable := c.begin(OpGreater).compare(a, b, 0)
	return comparable && result > 0
}

func (c *Comparator) GreaterEqual(a, b value.Value) bool {
	result, comparable := c.begin(OpGreaterEqual).compare(a, b, 0)
	return comparable && result >= 0
}

// Spaceship is the three-way comparison, comparable is false if a and b have no defined order.
func (c *Comparator) Spaceship(a, b value.Value) (result int, comparable bool) {
	return c.begin(OpSpaceship).compare(a, b, 0)
}

// Equal is the loose equality (==).
func (c *Comparator) Equal(a, b value.Value) bool {
	return c.begin(OpEqual).looseEqual(a, b, 0)
}

func (c *Comparator) NotEqual(a, b value.Value) bool {
	return !c.begin(OpNotEqual).looseEqual(a, b, 0)
}

// Same is the strict equality (===): same kinds, same values and for legacy arrays and dicts the
// same key order.
func (c *Comparator) Same(a, b value.Value) bool {
	return strictEqual(a, b, 0)
}

func (c *Comparator) NotSame(a, b value.Value) bool {
	return !strictEqual(a, b, 0)
}

// Comparable reports whether comparing a and b with a non-strict operator would not
// cross a representation boundary. Nothing is reported to the sink.
func (c *Comparator) Comparable(a, b value.Value) bool {
	inv := &invocation{sink: diag.Discard, op: OpSpaceship}
	inv.compare(a, b, 0)
	inv.op = OpEqual
	inv.looseEqual(a, b, 0)
	return inv.fired == 0
}

// Apply evaluates op and returns a Bool, or an Int for <=>. The <=> of an incomparable
// pair is INCOMPARABLE_SPACESHIP_RESULT.
func (c *Comparator) Apply(op Op, a, b value.Value) value.Value {
	switch op {
	case OpLess:
		return value.Bool(c.Less(a, b))
	case OpLessEqual:
		return value.Bool(c.LessEqual(a, b))
	case OpGreater:
		return value.Bool(c.Greater(a, b))
	case OpGreaterEqual:
		return value.Bool(c.GreaterEqual(a, b))
	case OpSpaceship:
		result, comparable := c.Spaceship(a, b)
		if !comparable {
			return value.Int(INCOMPARABLE_SPACESHIP_RESULT)
		}
		return value.Int(result)
	case OpEqual:
		return value.Bool(c.Equal(a, b))
	case OpNotEqual:
		return value.Bool(c.NotEqual(a, b))
	case OpSame:
		return value.Bool(c.Same(a, b))
	case OpNotSame:
		return value.Bool(c.NotSame(a, b))
	default:
		return value.False
	}
}

func normalize(v value.Value) value.Value {
	if v == nil {
		return value.Null
	}
	return v
}

func isLegacyModernPair(a, b value.RepresentationClass) bool {
	return (a == value.ClassLegacy && b == value.ClassModern) || (a == value.ClassModern && b == value.ClassLegacy)
}

// compare is the loose three-way comparison, the rules are tried in order.
func (inv *invocation) compare(a, b value.Value, depth int) (result int, comparable bool) {
	if depth > MAX_COMPARISON_DEPTH {
		return
	}
	a, b = normalize(a), normalize(b)
	classA, classB := value.Class(a), value.Class(b)

	switch {
	case classA == value.ClassScalar && classB == value.ClassScalar:
		return compareScalars(a, b)
	case classA == value.ClassModern && classB == value.ClassModern:
		return inv.compareModern(a.(value.Container), b.(value.Container), depth)
	case classA == value.ClassLegacy && classB == value.ClassLegacy:
		return inv.compareEntries(a.(value.Container), b.(value.Container), depth)
	case isLegacyModernPair(classA, classB):
		inv.signal(diag.HackArrayBoundary, a, b)
		return inv.compareEntries(a.(value.Container), b.(value.Container), depth)
	case value.IsContainer(a) || value.IsContainer(b):
		inv.signal(diag.NonAnyArrayBoundary, a, b)
		return
	}

	//objects and resources have no order
	return
}

func (inv *invocation) looseEqual(a, b value.Value, depth int) bool {
	if depth > MAX_COMPARISON_DEPTH {
		return false
	}
	a, b = normalize(a), normalize(b)
	classA, classB := value.Class(a), value.Class(b)

	switch {
	case classA == value.ClassScalar && classB == value.ClassScalar:
		return looseEqualScalars(a, b)
	case classA == value.ClassModern && classB == value.ClassModern:
		return inv.modernEqual(a.(value.Container), b.(value.Container), depth)
	case classA == value.ClassLegacy && classB == value.ClassLegacy:
		return inv.entriesEqual(a.(value.Container), b.(value.Container), depth)
	case isLegacyModernPair(classA, classB):
		inv.signal(diag.HackArrayBoundary, a, b)
		return inv.entriesEqual(a.(value.Container), b.(value.Container), depth)
	case value.IsContainer(a) || value.IsContainer(b):
		inv.signal(diag.NonAnyArrayBoundary, a, b)
		return false
	case classA == value.ClassOpaque && classB == value.ClassOpaque:
		return opaqueLooseEqual(a, b)
	}
	return false
}

func opaqueLooseEqual(a, b value.Value) bool {
	switch left := a.(type) {
	case *value.Object:
		right, ok := b.(*value.Object)
		//objects have no properties in this model: two instances of the same class are loosely equal.
		return ok && (left == right || left.Class() == right.Class())
	case *value.Resource:
		right, ok := b.(*value.Resource)
		return ok && left == right
	}
	return false
}
