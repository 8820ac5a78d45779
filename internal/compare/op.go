package compare

import (
	"fmt"
)

// Op is a comparison operator.
type Op int

const (
	OpLess Op = iota
	OpLessEqual
	OpGreater
	OpGreaterEqual
	OpSpaceship
	OpEqual
	OpNotEqual
	OpSame
	OpNotSame
)

var (
	// Ops lists the operators in the order the compatibility probes print them.
	Ops = []Op{OpLess, OpLessEqual, OpGreater, OpGreaterEqual, OpSpaceship, OpEqual, OpNotEqual, OpSame, OpNotSame}
)

func (op Op) String() string {
	switch op {
	case OpLess:
		return "<"
	case OpLessEqual:
		return "<="
	case OpGreater:
		return ">"
	case OpGreaterEqual:
		return ">="
	case OpSpaceship:
		return "<=>"
	case OpEqual:
		return "=="
	case OpNotEqual:
		return "!="
	case OpSame:
		return "==="
	case OpNotSame:
		return "!=="
	default:
		return fmt.Sprintf("unknown_op_%d", int(op))
	}
}

// IsStrict reports whether op is === or !==, strict operators never report boundary crossings.
func (op Op) IsStrict() bool {
	return op == OpSame || op == OpNotSame
}

// IsOrdering reports whether op is one of <, <=, >, >= and <=>.
func (op Op) IsOrdering() bool {
	return op >= OpLess && op <= OpSpaceship
}

// ParseOp accepts the operator symbols returned by Op.String.
func ParseOp(s string) (Op, error) {
	for _, op := range Ops {
		if op.String() == s {
			return op, nil
		}
	}
	return 0, fmt.Errorf("unknown comparison operator %q", s)
}
