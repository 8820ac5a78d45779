package arrsort

import (
	"testing"

	"github.com/inoxlang/arrcompat/internal/compare"
	"github.com/inoxlang/arrcompat/internal/diag"
	"github.com/inoxlang/arrcompat/internal/testconfig"
	"github.com/inoxlang/arrcompat/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlag(t *testing.T) {
	testconfig.AllowParallelization(t)

	for _, flag := range []Flag{SortRegular, SortNumeric, SortString, SortNatural} {
		parsed, err := ParseFlag(flag.String())
		require.NoError(t, err)
		assert.Equal(t, flag, parsed)
	}

	flag, err := ParseFlag("natural")
	require.NoError(t, err)
	assert.Equal(t, SortNatural, flag)

	flag, err = ParseFlag("Sort_Numeric")
	require.NoError(t, err)
	assert.Equal(t, SortNumeric, flag)

	_, err = ParseFlag("locale_string")
	assert.Error(t, err)
}

func TestSort(t *testing.T) {
	testconfig.AllowParallelization(t)

	sorter := NewSorter(compare.New(nil))

	testCases := []struct {
		name   string
		input  *value.LegacyArray
		flag   Flag
		result []value.Value
	}{
		{
			"regular",
			value.ArrayOf(3, "10", 1.5, "2"),
			SortRegular,
			[]value.Value{value.Float(1.5), value.Str("2"), value.Int(3), value.Str("10")},
		},
		{
			"numeric sort is stable",
			value.ArrayOf("10", "9", "1e1"),
			SortNumeric,
			[]value.Value{value.Str("9"), value.Str("10"), value.Str("1e1")},
		},
		{
			"string",
			value.ArrayOf("img12", "img10", "img2", "img1"),
			SortString,
			[]value.Value{value.Str("img1"), value.Str("img10"), value.Str("img12"), value.Str("img2")},
		},
		{
			"natural",
			value.ArrayOf("img12", "img10", "img2", "img1"),
			SortNatural,
			[]value.Value{value.Str("img1"), value.Str("img2"), value.Str("img10"), value.Str("img12")},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			result := sorter.Sort(testCase.input, testCase.flag)
			assert.True(t, result.IsList())
			assert.Equal(t, testCase.result, result.Values())
		})
	}

	t.Run("empty", func(t *testing.T) {
		assert.Zero(t, sorter.Sort(value.ArrayOf(), SortRegular).Len())
	})

	t.Run("keys are renumbered", func(t *testing.T) {
		result := sorter.Sort(value.DArrayOf("x", 2, "y", 1), SortRegular)
		assert.Equal(t, []value.Key{value.IntKey(0), value.IntKey(1)}, result.Keys())
	})

	t.Run("reverse", func(t *testing.T) {
		result := sorter.RSort(value.ArrayOf(1, 3, 2), SortRegular)
		assert.Equal(t, []value.Value{value.Int(3), value.Int(2), value.Int(1)}, result.Values())
	})

	t.Run("the input is not modified", func(t *testing.T) {
		input := value.ArrayOf(2, 1)
		sorter.Sort(input, SortRegular)
		assert.Equal(t, []value.Value{value.Int(2), value.Int(1)}, input.Values())
	})
}

func TestASort(t *testing.T) {
	testconfig.AllowParallelization(t)

	sorter := NewSorter(compare.New(nil))
	input := value.DArrayOf("b", 2, "a", 1, "c", 3)

	result := sorter.ASort(input, SortRegular)
	assert.Equal(t, []value.Key{value.StrKey("a"), value.StrKey("b"), value.StrKey("c")}, result.Keys())
	assert.Equal(t, []value.Value{value.Int(1), value.Int(2), value.Int(3)}, result.Values())

	result = sorter.ARSort(input, SortRegular)
	assert.Equal(t, []value.Key{value.StrKey("c"), value.StrKey("b"), value.StrKey("a")}, result.Keys())
}

func TestKSort(t *testing.T) {
	testconfig.AllowParallelization(t)

	sorter := NewSorter(compare.New(nil))
	input := value.DArrayOf("b", 1, "a", 2, 10, 3, 9, 4)

	t.Run("regular", func(t *testing.T) {
		result := sorter.KSort(input, SortRegular)
		assert.Equal(t, []value.Key{value.StrKey("a"), value.StrKey("b"), value.IntKey(9), value.IntKey(10)}, result.Keys())
		assert.Equal(t, []value.Value{value.Int(2), value.Int(1), value.Int(4), value.Int(3)}, result.Values())
	})

	t.Run("string", func(t *testing.T) {
		result := sorter.KSort(input, SortString)
		assert.Equal(t, []value.Key{value.IntKey(10), value.IntKey(9), value.StrKey("a"), value.StrKey("b")}, result.Keys())
	})

	t.Run("reverse", func(t *testing.T) {
		result := sorter.KRSort(input, SortString)
		assert.Equal(t, []value.Key{value.StrKey("b"), value.StrKey("a"), value.IntKey(9), value.IntKey(10)}, result.Keys())
	})
}

func TestSortReportsBoundaryCrossings(t *testing.T) {
	testconfig.AllowParallelization(t)

	mixed := value.ArrayOf(value.ListOf(1), value.ArrayOf(1))

	t.Run("regular", func(t *testing.T) {
		counter := &diag.Counter{}
		NewSorter(compare.New(counter)).Sort(mixed, SortRegular)

		assert.Positive(t, counter.Count(diag.HackArrayBoundary))
		last, ok := counter.Last()
		require.True(t, ok)
		assert.Equal(t, compare.OpSpaceship.String(), last.Op)
	})

	t.Run("string", func(t *testing.T) {
		counter := &diag.Counter{}
		result := NewSorter(compare.New(counter)).Sort(mixed, SortString)

		assert.Zero(t, counter.Total())
		//"Array" < "Vec"
		assert.Equal(t, value.KindLegacyArray, result.Values()[0].Kind())
	})
}
