package value

import (
	"strconv"
)

type NumericKind int

const (
	NotNumeric NumericKind = iota
	NumericInt
	NumericFloat
)

// Numeric is the result of parsing a string as a number.
type Numeric struct {
	Kind  NumericKind
	Int   int64
	Float float64

	// Whole is true when the entire string is numeric (leading whitespace allowed, trailing
	// characters not allowed). When Whole is false Kind and the values describe the numeric prefix.
	Whole bool
}

// AsFloat returns the parsed number as a float64, 0 if the string has no numeric prefix.
func (n Numeric) AsFloat() float64 {
	switch n.Kind {
	case NumericInt:
		return float64(n.Int)
	case NumericFloat:
		return n.Float
	default:
		return 0
	}
}

func isNumericWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f'
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// ParseNumeric parses the decimal number at the start of s (after optional whitespace).
// Hexadecimal, octal and binary notations are not numeric. An int literal that does not fit in
// an int64 is returned as a float.
func ParseNumeric(s string) Numeric {
	i := 0
	for i < len(s) && isNumericWhitespace(s[i]) {
		i++
	}
	start := i

	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	intDigits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		intDigits++
	}

	isFloat := false
	fracDigits := 0
	if i < len(s) && s[i] == '.' {
		j := i + 1
		for j < len(s) && isDigit(s[j]) {
			j++
			fracDigits++
		}
		if intDigits > 0 || fracDigits > 0 {
			isFloat = true
			i = j
		}
	}

	if intDigits == 0 && fracDigits == 0 {
		return Numeric{Kind: NotNumeric}
	}

	//exponent
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		expDigits := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			expDigits++
		}
		if expDigits > 0 {
			isFloat = true
			i = j
		}
	}

	literal := s[start:i]
	result := Numeric{Whole: i == len(s)}

	if !isFloat {
		n, err := strconv.ParseInt(literal, 10, 64)
		if err == nil {
			result.Kind = NumericInt
			result.Int = n
			return result
		}
		//overflow: fall back to a float
	}

	f, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		//ParseFloat only fails on out of range literals and returns ±Inf in that case.
		if numErr, ok := err.(*strconv.NumError); !ok || numErr.Err != strconv.ErrRange {
			return Numeric{Kind: NotNumeric}
		}
	}
	result.Kind = NumericFloat
	result.Float = f
	return result
}

// IsNumericString reports whether the entire string s is numeric.
func IsNumericString(s string) bool {
	n := ParseNumeric(s)
	return n.Kind != NotNumeric && n.Whole
}
