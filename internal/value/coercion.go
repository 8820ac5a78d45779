package value

import (
	"math"
	"strconv"
	"strings"
)

const (
	// number of significant digits used when converting floats to strings.
	STRING_FLOAT_PRECISION = 14

	// number of significant digits used when dumping floats, the shortest representation that
	// round-trips is used.
	REPR_FLOAT_PRECISION = 17
)

// ToBool is the truthiness of v: null, false, 0, 0.0, "", "0" and empty containers are falsy.
func ToBool(v Value) bool {
	switch val := v.(type) {
	case nil, NullT:
		return false
	case Bool:
		return bool(val)
	case Int:
		return val != 0
	case Float:
		return val != 0
	case Str:
		return val != "" && val != "0"
	case Container:
		return val.Len() != 0
	default:
		return true
	}
}

// ToInt converts v to an int. Strings are converted using their numeric prefix ("12abc" -> 12),
// NaN, infinities and out-of-range floats become 0.
func ToInt(v Value) int64 {
	switch val := v.(type) {
	case nil, NullT:
		return 0
	case Bool:
		if val {
			return 1
		}
		return 0
	case Int:
		return int64(val)
	case Float:
		return floatToInt(float64(val))
	case Str:
		n := ParseNumeric(string(val))
		switch n.Kind {
		case NumericInt:
			return n.Int
		case NumericFloat:
			return floatToInt(n.Float)
		}
		return 0
	case Container:
		if val.Len() != 0 {
			return 1
		}
		return 0
	case *Resource:
		return val.ID()
	default:
		return 1
	}
}

func floatToInt(f float64) int64 {
	if math.IsNaN(f) || math.IsInf(f, 0) || f >= math.MaxInt64 || f < math.MinInt64 {
		return 0
	}
	return int64(f)
}

// ToFloat converts v to a float, see ToInt for the string rules.
func ToFloat(v Value) float64 {
	switch val := v.(type) {
	case Float:
		return float64(val)
	case Str:
		return ParseNumeric(string(val)).AsFloat()
	default:
		return float64(ToInt(v))
	}
}

// ToString converts v to a string. Floats use 14 significant digits, legacy arrays become "Array"
// and modern containers their capitalized kind name ("Vec", "Dict", "Keyset").
func ToString(v Value) string {
	switch val := v.(type) {
	case nil, NullT:
		return ""
	case Bool:
		if val {
			return "1"
		}
		return ""
	case Int:
		return strconv.FormatInt(int64(val), 10)
	case Float:
		return FormatFloat(float64(val), STRING_FLOAT_PRECISION)
	case Str:
		return string(val)
	case *LegacyArray:
		return "Array"
	case *List:
		return "Vec"
	case *Map:
		return "Dict"
	case *Set:
		return "Keyset"
	case *Object:
		return "Object"
	case *Resource:
		return "Resource id #" + strconv.FormatInt(val.ID(), 10)
	default:
		return ""
	}
}

// FormatFloat formats f with at most precision significant digits. REPR_FLOAT_PRECISION selects
// the shortest representation that round-trips. The exponent notation (1.0E+25, 1.0E-5) is
// used when the decimal exponent is below -4 or not lower than precision.
func FormatFloat(f float64, precision int) string {
	switch {
	case math.IsNaN(f):
		return "NAN"
	case math.IsInf(f, 1):
		return "INF"
	case math.IsInf(f, -1):
		return "-INF"
	case f == 0:
		if math.Signbit(f) {
			return "-0"
		}
		return "0"
	}

	var repr string
	if precision >= REPR_FLOAT_PRECISION {
		repr = strconv.FormatFloat(f, 'e', -1, 64)
	} else {
		repr = strconv.FormatFloat(f, 'e', precision-1, 64)
	}

	sign := ""
	if repr[0] == '-' {
		sign = "-"
		repr = repr[1:]
	}

	mantissa, exponent, _ := strings.Cut(repr, "e")
	digits := strings.TrimRight(strings.Replace(mantissa, ".", "", 1), "0")
	if digits == "" {
		digits = "0"
	}
	exp, _ := strconv.Atoi(exponent)
	decimalPointPos := exp + 1

	if decimalPointPos < -3 || decimalPointPos > precision {
		var b strings.Builder
		b.WriteString(sign)
		b.WriteByte(digits[0])
		b.WriteByte('.')
		if len(digits) > 1 {
			b.WriteString(digits[1:])
		} else {
			b.WriteByte('0')
		}
		b.WriteByte('E')
		if exp >= 0 {
			b.WriteByte('+')
		}
		b.WriteString(strconv.Itoa(exp))
		return b.String()
	}

	switch {
	case decimalPointPos <= 0:
		return sign + "0." + strings.Repeat("0", -decimalPointPos) + digits
	case decimalPointPos >= len(digits):
		return sign + digits + strings.Repeat("0", decimalPointPos-len(digits))
	default:
		return sign + digits[:decimalPointPos] + "." + digits[decimalPointPos:]
	}
}
