package compare

import (
	"math"
	"strings"

	"github.com/inoxlang/arrcompat/internal/value"
	"golang.org/x/exp/constraints"
)

func threeWay[N constraints.Integer | constraints.Float](a, b N) int {
	if a < b {
		return -1
	}
	if a == b {
		return 0
	}
	return 1
}

func negated(result int, comparable bool) (int, bool) {
	return -result, comparable
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func float64Compare(a, b float64) (result int, comparable bool) {
	if math.IsNaN(a) || math.IsNaN(b) {
		//not comparable
		return
	}
	return threeWay(a, b), true
}

// compareScalars implements the loose ordering of null, bools, ints, floats and strings.
func compareScalars(a, b value.Value) (result int, comparable bool) {
	//bools win over every other type: both operands are converted to bool.
	_, aIsBool := a.(value.Bool)
	_, bIsBool := b.(value.Bool)
	if aIsBool || bIsBool {
		return threeWay(boolToInt(value.ToBool(a)), boolToInt(value.ToBool(b))), true
	}

	switch left := a.(type) {
	case value.NullT:
		switch right := b.(type) {
		case value.NullT:
			return 0, true
		case value.Str:
			if right == "" {
				return 0, true
			}
			return -1, true
		default:
			return threeWay(0, boolToInt(value.ToBool(b))), true
		}
	case value.Int:
		switch right := b.(type) {
		case value.NullT:
			return negated(compareScalars(b, a))
		case value.Int:
			return threeWay(left, right), true
		case value.Float:
			return float64Compare(float64(left), float64(right))
		case value.Str:
			return compareNumberWithString(a, string(right))
		}
	case value.Float:
		switch right := b.(type) {
		case value.NullT:
			return negated(compareScalars(b, a))
		case value.Int, value.Float:
			return float64Compare(float64(left), value.ToFloat(right))
		case value.Str:
			return compareNumberWithString(a, string(right))
		}
	case value.Str:
		switch right := b.(type) {
		case value.NullT, value.Int, value.Float:
			return negated(compareScalars(b, a))
		case value.Str:
			return compareStrings(string(left), string(right))
		}
	}

	//not comparable
	return
}

// compareNumberWithString converts s to a number using its numeric prefix, a string without
// numeric prefix is 0.
func compareNumberWithString(num value.Value, s string) (result int, comparable bool) {
	n := value.ParseNumeric(s)

	if i, ok := num.(value.Int); ok && (n.Kind == value.NumericInt || n.Kind == value.NotNumeric) {
		return threeWay(int64(i), n.Int), true
	}
	return float64Compare(value.ToFloat(num), n.AsFloat())
}

// compareStrings compares numerically if both strings are numeric, byte-wise otherwise.
func compareStrings(a, b string) (result int, comparable bool) {
	na := value.ParseNumeric(a)
	nb := value.ParseNumeric(b)

	if na.Kind != value.NotNumeric && na.Whole && nb.Kind != value.NotNumeric && nb.Whole {
		if na.Kind == value.NumericInt && nb.Kind == value.NumericInt {
			return threeWay(na.Int, nb.Int), true
		}
		return float64Compare(na.AsFloat(), nb.AsFloat())
	}

	return strings.Compare(a, b), true
}

func looseEqualScalars(a, b value.Value) bool {
	result, comparable := compareScalars(a, b)
	return comparable && result == 0
}

func strictEqualScalars(a, b value.Value) bool {
	switch left := a.(type) {
	case value.NullT:
		_, ok := b.(value.NullT)
		return ok
	case value.Bool:
		right, ok := b.(value.Bool)
		return ok && left == right
	case value.Int:
		right, ok := b.(value.Int)
		return ok && left == right
	case value.Float:
		right, ok := b.(value.Float)
		//=== is reflexive, NaN is identical to NaN
		return ok && (left == right || (math.IsNaN(float64(left)) && math.IsNaN(float64(right))))
	case value.Str:
		right, ok := b.(value.Str)
		return ok && left == right
	}
	return false
}
