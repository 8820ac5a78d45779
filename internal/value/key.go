package value

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

var (
	ErrInvalidKey = errors.New("invalid container key: only ints and strings are allowed")
)

// Key is a container key, either an int or a string. Keys are comparable with ==.
type Key struct {
	isStr bool
	i     int64
	s     string
}

func IntKey(i int64) Key {
	return Key{i: i}
}

func StrKey(s string) Key {
	return Key{isStr: true, s: s}
}

// KeyFromValue returns the key for an Int or a Str, other values are rejected.
// Modern containers use KeyFromValue, keys are never normalized.
func KeyFromValue(v Value) (Key, error) {
	switch val := v.(type) {
	case Int:
		return IntKey(int64(val)), nil
	case Str:
		return StrKey(string(val)), nil
	default:
		return Key{}, fmt.Errorf("%w: %s", ErrInvalidKey, KindOf(v))
	}
}

// LegacyKey converts v to a key the way legacy arrays do: decimal integer strings become int keys,
// bools become 0 or 1, floats are truncated and null becomes the empty string.
func LegacyKey(v Value) (Key, error) {
	switch val := v.(type) {
	case nil, NullT:
		return StrKey(""), nil
	case Bool:
		if val {
			return IntKey(1), nil
		}
		return IntKey(0), nil
	case Int:
		return IntKey(int64(val)), nil
	case Float:
		f := float64(val)
		if math.IsNaN(f) || math.IsInf(f, 0) || f >= math.MaxInt64 || f <= math.MinInt64 {
			return IntKey(0), nil
		}
		return IntKey(int64(f)), nil
	case Str:
		if i, ok := canonicalIntString(string(val)); ok {
			return IntKey(i), nil
		}
		return StrKey(string(val)), nil
	default:
		return Key{}, fmt.Errorf("%w: %s", ErrInvalidKey, KindOf(v))
	}
}

// canonicalIntString reports whether s is the canonical decimal representation of an int64:
// no leading zeros, no plus sign, no "-0" and no surrounding whitespace.
func canonicalIntString(s string) (int64, bool) {
	if s == "" || len(s) > 20 {
		return 0, false
	}
	digits := s
	if s[0] == '-' {
		digits = s[1:]
	}
	if digits == "" || (digits[0] == '0' && len(s) > 1) {
		return 0, false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, false
		}
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return i, true
}

func (k Key) IsInt() bool { return !k.isStr }

func (k Key) IsStr() bool { return k.isStr }

func (k Key) Int() int64 { return k.i }

func (k Key) Str() string { return k.s }

// Value returns the key as an Int or a Str.
func (k Key) Value() Value {
	if k.isStr {
		return Str(k.s)
	}
	return Int(k.i)
}

func (k Key) String() string {
	if k.isStr {
		return strconv.Quote(k.s)
	}
	return strconv.FormatInt(k.i, 10)
}
