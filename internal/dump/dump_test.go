package dump

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/inoxlang/arrcompat/internal/testconfig"
	"github.com/inoxlang/arrcompat/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDump(t *testing.T) {
	testconfig.AllowParallelization(t)

	resource := value.NewResource("gd")

	testCases := []struct {
		name   string
		input  value.Value
		result string
	}{
		{"nil", nil, "NULL\n"},
		{"null", value.Null, "NULL\n"},
		{"true", value.True, "bool(true)\n"},
		{"false", value.False, "bool(false)\n"},
		{"int", value.Int(-123), "int(-123)\n"},
		{"float", value.Float(4.567), "float(4.567)\n"},
		{"integral float", value.Float(2), "float(2)\n"},
		{"large float", value.Float(1e25), "float(1.0E+25)\n"},
		{"string", value.Str("abc"), "string(3) \"abc\"\n"},
		{"string length is in bytes", value.Str("é"), "string(2) \"é\"\n"},
		{"empty array", value.ArrayOf(), "array(0) {\n}\n"},
		{
			"array",
			value.DArrayOf(0, 1, "a", "b"),
			"array(2) {\n" +
				"  [0]=>\n" +
				"  int(1)\n" +
				"  [\"a\"]=>\n" +
				"  string(1) \"b\"\n" +
				"}\n",
		},
		{
			"nested containers",
			value.ArrayOf(1, value.ListOf(2, value.DictOf("k", nil))),
			"array(2) {\n" +
				"  [0]=>\n" +
				"  int(1)\n" +
				"  [1]=>\n" +
				"  vec(2) {\n" +
				"    [0]=>\n" +
				"    int(2)\n" +
				"    [1]=>\n" +
				"    dict(1) {\n" +
				"      [\"k\"]=>\n" +
				"      NULL\n" +
				"    }\n" +
				"  }\n" +
				"}\n",
		},
		{
			"keyset elements are listed without keys",
			value.KeysetOf("a", 1),
			"keyset(2) {\n" +
				"  string(1) \"a\"\n" +
				"  int(1)\n" +
				"}\n",
		},
		{
			"object",
			value.NewObject(value.DEFAULT_OBJECT_CLASS),
			"object(stdClass) (0) {\n}\n",
		},
		{
			"resource",
			resource,
			fmt.Sprintf("resource(%d) of type (gd)\n", resource.ID()),
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			if diff := cmp.Diff(testCase.result, String(testCase.input)); diff != "" {
				t.Errorf("unexpected dump (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDumpToWriter(t *testing.T) {
	testconfig.AllowParallelization(t)

	buf := bytes.NewBuffer(nil)
	require.NoError(t, Dump(buf, value.ListOf()))
	assert.Equal(t, "vec(0) {\n}\n", buf.String())
}
