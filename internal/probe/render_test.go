package probe

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
	"github.com/inoxlang/arrcompat/internal/diag"
	"github.com/inoxlang/arrcompat/internal/testconfig"
	"github.com/inoxlang/arrcompat/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	testconfig.AllowParallelization(t)

	harness := NewHarness(Options{Latches: diag.NewLatches()})
	rows := []Row{
		harness.DoCompares(value.Null, value.Null, diag.HackArrayBoundary),
		harness.DoCompares(value.ArrayOf(), value.ListOf(1), diag.HackArrayBoundary),
	}

	buf := bytes.NewBuffer(nil)
	require.NoError(t, Render(buf, rows))

	expected := strings.Join([]string{
		ROW_HEADER,
		"NULL",
		"NULL",
		"F F F F F F F F F",
		ROW_FOOTER,
		ROW_HEADER,
		"array(0) {",
		"}",
		"vec(1) {",
		"  [0]=>",
		"  int(1)",
		"}",
		"T T T T T T T F F",
		ROW_FOOTER,
		"",
	}, "\n")

	if diff := cmp.Diff(expected, buf.String()); diff != "" {
		t.Errorf("unexpected output (-want +got):\n%s", diff)
	}

	t.Run("custom flag formatter", func(t *testing.T) {
		buf := bytes.NewBuffer(nil)
		err := RenderWith(buf, rows[:1], func(fired bool) string {
			return "<" + PlainFlag(fired) + ">"
		})
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "\n<F> <F> <F> <F> <F> <F> <F> <F> <F>\n")
	})

	t.Run("no rows", func(t *testing.T) {
		buf := bytes.NewBuffer(nil)
		require.NoError(t, Render(buf, nil))
		assert.Zero(t, buf.Len())
	})
}

func TestReport(t *testing.T) {
	testconfig.AllowParallelization(t)

	harness := NewHarness(Options{Latches: diag.NewLatches()})
	rows := []Row{
		harness.DoCompares(value.ArrayOf(), value.Int(123), diag.NonAnyArrayBoundary),
		harness.DoCompares(value.Int(1), value.Int(2), diag.NonAnyArrayBoundary),
	}

	report := NewReport("test", rows)
	assert.Len(t, report.RunID, 26)
	assert.Equal(t, "test", report.Matrix)
	assert.WithinDuration(t, time.Now(), report.Date, time.Minute)
	assert.Equal(t, 1, report.Fired)
	require.Len(t, report.Rows, 2)

	first := report.Rows[0]
	assert.Equal(t, "array(0) {\n}\n", first.Left)
	assert.Equal(t, "int(123)\n", first.Right)
	assert.Equal(t, "non-any-array", first.Variant)
	assert.True(t, first.Flags["<"])
	assert.False(t, first.Flags["==="])
	assert.Equal(t, int64(1), first.Results["<=>"])
	assert.Equal(t, false, first.Results["=="])

	assert.NotEqual(t, report.RunID, NewReport("test", rows).RunID)

	t.Run("JSON", func(t *testing.T) {
		buf := bytes.NewBuffer(nil)
		require.NoError(t, report.WriteJSON(buf))

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

		assert.Equal(t, report.RunID, decoded["runId"])
		assert.Equal(t, "test", decoded["matrix"])
		assert.EqualValues(t, 1, decoded["fired"])

		decodedRows := decoded["rows"].([]any)
		require.Len(t, decodedRows, 2)

		second := decodedRows[1].(map[string]any)
		assert.Equal(t, "int(1)\n", second["left"])
		assert.EqualValues(t, -1, second["results"].(map[string]any)["<=>"])
		assert.Equal(t, true, second["results"].(map[string]any)["<"])
	})
}
