package value

import (
	"testing"

	"github.com/inoxlang/arrcompat/internal/testconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeRecursive(t *testing.T) {
	testconfig.AllowParallelization(t)

	t.Run("int keys are renumbered", func(t *testing.T) {
		result := MergeRecursive(DArrayOf(5, "a", 9, "b"), DArrayOf(3, "c"))
		assert.Equal(t, []Key{IntKey(0), IntKey(1), IntKey(2)}, result.Keys())
		assert.Equal(t, []Value{Str("a"), Str("b"), Str("c")}, result.Values())
	})

	t.Run("scalar values of a common string key are collected", func(t *testing.T) {
		result := MergeRecursive(DArrayOf("color", "red", 0, 1), DArrayOf("color", "green", 0, 2))

		assert.Equal(t, []Key{StrKey("color"), IntKey(0), IntKey(1)}, result.Keys())

		color, ok := result.Lookup(StrKey("color"))
		require.True(t, ok)
		colorArr := color.(*LegacyArray)
		assert.Equal(t, []Value{Str("red"), Str("green")}, colorArr.Values())
	})

	t.Run("nested arrays are merged", func(t *testing.T) {
		first := DArrayOf("opts", DArrayOf("a", 1, 0, "x"))
		second := DArrayOf("opts", DArrayOf("a", 2, "b", 3))

		result := MergeRecursive(first, second)

		opts, ok := result.Lookup(StrKey("opts"))
		require.True(t, ok)
		optsArr := opts.(*LegacyArray)
		assert.Equal(t, []Key{StrKey("a"), IntKey(0), StrKey("b")}, optsArr.Keys())

		a, _ := optsArr.Lookup(StrKey("a"))
		assert.Equal(t, []Value{Int(1), Int(2)}, a.(*LegacyArray).Values())

		//the inputs are not modified.
		firstOpts, _ := first.Lookup(StrKey("opts"))
		assert.Equal(t, 2, firstOpts.(*LegacyArray).Len())
	})

	t.Run("no arrays", func(t *testing.T) {
		assert.Equal(t, 0, MergeRecursive().Len())
	})
}

func TestIntersectValues(t *testing.T) {
	testconfig.AllowParallelization(t)

	arr := DArrayOf("a", "green", 0, "red", 1, "blue", 2, 1)

	result := IntersectValues(arr, ArrayOf("green", "yellow", "red", "1"))
	assert.Equal(t, []Key{StrKey("a"), IntKey(0), IntKey(2)}, result.Keys())
	assert.Equal(t, []Value{Str("green"), Str("red"), Int(1)}, result.Values())

	t.Run("modern containers", func(t *testing.T) {
		result := IntersectValues(arr, KeysetOf("red", "blue"), ListOf("blue"))
		assert.Equal(t, []Key{IntKey(1)}, result.Keys())
	})

	t.Run("no other container", func(t *testing.T) {
		assert.Equal(t, arr.Len(), IntersectValues(arr).Len())
	})
}
