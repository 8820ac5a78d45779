package value

import "fmt"

// Kind identifies the runtime tag of a value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindStr
	KindLegacyArray
	KindList
	KindMap
	KindSet
	KindObject
	KindResource
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindStr:
		return "string"
	case KindLegacyArray:
		return "array"
	case KindList:
		return "vec"
	case KindMap:
		return "dict"
	case KindSet:
		return "keyset"
	case KindObject:
		return "object"
	case KindResource:
		return "resource"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// RepresentationClass groups kinds by the way the comparator treats them.
type RepresentationClass int

const (
	ClassScalar RepresentationClass = iota
	ClassLegacy
	ClassModern
	ClassOpaque
)

func (c RepresentationClass) String() string {
	switch c {
	case ClassScalar:
		return "scalar"
	case ClassLegacy:
		return "legacy"
	case ClassModern:
		return "modern"
	case ClassOpaque:
		return "opaque"
	default:
		return fmt.Sprintf("unknown_class_%d", int(c))
	}
}

// Class returns the representation class of v. A nil Value is treated as Null.
func Class(v Value) RepresentationClass {
	if v == nil {
		return ClassScalar
	}
	switch v.Kind() {
	case KindNull, KindBool, KindInt, KindFloat, KindStr:
		return ClassScalar
	case KindLegacyArray:
		return ClassLegacy
	case KindList, KindMap, KindSet:
		return ClassModern
	default:
		return ClassOpaque
	}
}

// IsContainer reports whether v is a legacy array or a modern container.
func IsContainer(v Value) bool {
	class := Class(v)
	return class == ClassLegacy || class == ClassModern
}

// KindOf is like v.Kind() but maps a nil Value to KindNull.
func KindOf(v Value) Kind {
	if v == nil {
		return KindNull
	}
	return v.Kind()
}
