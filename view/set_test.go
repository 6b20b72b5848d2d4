package view_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphview/view"
)

func TestSet_Basics(t *testing.T) {
	s := view.NewSet(1, 2, 3)
	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Contains(2))
	assert.False(t, s.Contains(4))
	assert.True(t, s.Equal(view.NewSet(3, 2, 1)))
	assert.False(t, s.Equal(view.NewSet(1, 2)))
	assert.ElementsMatch(t, []int{1, 2, 3}, collect(s.All()))
}

func TestSet_Unhashable(t *testing.T) {
	s := make(view.Set[any])
	require.NoError(t, s.Add("ok"))
	require.ErrorIs(t, s.Add([]int{1}), view.ErrUnhashable)
	require.ErrorIs(t, s.Add(map[string]any{}), view.ErrUnhashable)
	require.False(t, s.Contains([]int{1}))

	_, err := view.Collect(seqOf[any](1, "two", []string{"three"}))
	require.ErrorIs(t, err, view.ErrUnhashable)

	require.Panics(t, func() { view.NewSet[any]([]int{1}) })
}

func TestSet_FreeFunctionsOverSets(t *testing.T) {
	a := view.NewSet(1, 2, 3)
	b := []int{2, 3, 4}

	inter, err := view.Intersection[int](a, seqOf(b...))
	require.NoError(t, err)
	require.True(t, inter.Equal(view.NewSet(2, 3)))

	sym, err := view.SymmetricDifference[int](a, seqOf(b...))
	require.NoError(t, err)
	require.True(t, sym.Equal(view.NewSet(1, 4)))

	_, err = view.Difference[any](view.NewSet[any](1), seqOf[any]([]int{1}))
	require.ErrorIs(t, err, view.ErrUnhashable)
}

func TestSelector(t *testing.T) {
	require.True(t, view.NoData().IsNone())
	require.Equal(t, view.NoData(), view.Selector{})
	require.Equal(t, view.SelectAll, view.AllData().Kind())

	name, ok := view.Attr("weight").Name()
	require.True(t, ok)
	require.Equal(t, "weight", name)
	_, ok = view.AllData().Name()
	require.False(t, ok)

	require.Equal(t, "false", view.NoData().String())
	require.Equal(t, "true", view.AllData().String())
	require.Equal(t, `"weight"`, view.Attr("weight").String())
}
