// Package dump renders values the way var_dump does.
package dump

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/inoxlang/arrcompat/internal/value"
)

const (
	INDENT_UNIT = "  "
)

// String returns the dump of v, it always ends with a newline.
func String(v value.Value) string {
	buf := bytes.NewBuffer(nil)
	Dump(buf, v)
	return buf.String()
}

// Dump writes the dump of v to w.
func Dump(w io.Writer, v value.Value) error {
	buf := bytes.NewBuffer(nil)
	writeValue(buf, v, 0)
	_, err := w.Write(buf.Bytes())
	return err
}

func writeValue(buf *bytes.Buffer, v value.Value, depth int) {
	indent := strings.Repeat(INDENT_UNIT, depth)
	buf.WriteString(indent)

	switch val := v.(type) {
	case nil, value.NullT:
		buf.WriteString("NULL\n")
	case value.Bool:
		fmt.Fprintf(buf, "bool(%t)\n", bool(val))
	case value.Int:
		fmt.Fprintf(buf, "int(%d)\n", int64(val))
	case value.Float:
		fmt.Fprintf(buf, "float(%s)\n", value.FormatFloat(float64(val), value.REPR_FLOAT_PRECISION))
	case value.Str:
		fmt.Fprintf(buf, "string(%d) \"%s\"\n", len(val), string(val))
	case *value.Set:
		fmt.Fprintf(buf, "%s(%d) {\n", val.Kind(), val.Len())
		it := val.Iterator()
		for it.Next() {
			writeValue(buf, it.Value(), depth+1)
		}
		buf.WriteString(indent + "}\n")
	case value.Container:
		fmt.Fprintf(buf, "%s(%d) {\n", val.Kind(), val.Len())
		it := val.Iterator()
		for it.Next() {
			buf.WriteString(indent + INDENT_UNIT)
			writeKey(buf, it.Key())
			buf.WriteString("=>\n")
			writeValue(buf, it.Value(), depth+1)
		}
		buf.WriteString(indent + "}\n")
	case *value.Object:
		fmt.Fprintf(buf, "object(%s) (0) {\n", val.Class())
		buf.WriteString(indent + "}\n")
	case *value.Resource:
		fmt.Fprintf(buf, "resource(%d) of type (%s)\n", val.ID(), val.Type())
	default:
		fmt.Fprintf(buf, "unknown(%s)\n", value.KindOf(v))
	}
}

func writeKey(buf *bytes.Buffer, key value.Value) {
	switch k := key.(type) {
	case value.Int:
		buf.WriteString("[" + strconv.FormatInt(int64(k), 10) + "]")
	default:
		buf.WriteString("[\"" + value.ToString(k) + "\"]")
	}
}
