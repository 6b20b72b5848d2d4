package view_test

import (
	"fmt"
	"slices"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphview/core"
	"github.com/katalvlaran/graphview/view"
)

func TestNodeView_Basics(t *testing.T) {
	g := pathGraph(9)
	nv := view.NewNodeView[int](g)

	require.Equal(t, 9, nv.Len())
	require.True(t, nv.Contains(7))
	require.False(t, nv.Contains(9))
	require.Equal(t, rangeOf(0, 9), collect(nv.All()))

	require.NoError(t, g.SetNodeAttr(3, attrFoo, "bar"))
	a, err := nv.Get(3)
	require.NoError(t, err)
	require.Equal(t, core.Attrs{attrFoo: "bar"}, a)

	_, err = nv.Get(42)
	require.ErrorIs(t, err, view.ErrNotFound)
}

func TestNodeView_ReadThrough(t *testing.T) {
	g := pathGraph(3)
	nv := view.NewNodeView[int](g)
	dv := nv.WithData(view.Attr(attrFoo), "biz")

	g.AddNode(10, core.Attrs{attrFoo: 1})
	require.Equal(t, 4, nv.Len())
	require.True(t, nv.Contains(10))
	require.True(t, dv.Contains(view.NodeData[int]{Node: 10, Data: 1}))

	require.NoError(t, g.RemoveNode(0))
	require.False(t, nv.Contains(0))
	require.Equal(t, []int{1, 2, 10}, collect(nv.All()))
}

func TestNodeView_CallIdentity(t *testing.T) {
	nv := view.NewNodeView[int](pathGraph(3))

	require.Same(t, nv, nv.Call(view.NodeConfig{}))
	require.Same(t, nv, nv.Data(view.NoData(), "ignored"))

	report := nv.Call(view.NodeConfig{Data: view.AllData()})
	_, ok := report.(*view.NodeDataView[int])
	require.True(t, ok)
	require.Equal(t, 3, report.Len())
}

func TestNodeView_SetAlgebra(t *testing.T) {
	nv := view.NewNodeView[int](pathGraph(9))
	other := rangeOf(5, 12)

	inter, err := view.Intersection[int](nv, slices.Values(other))
	require.NoError(t, err)
	require.True(t, inter.Equal(view.NewSet(5, 6, 7, 8)))

	union, err := view.Union[int](nv, slices.Values(other))
	require.NoError(t, err)
	require.True(t, union.Equal(view.NewSet(rangeOf(0, 12)...)))

	sym, err := view.SymmetricDifference[int](nv, slices.Values(other))
	require.NoError(t, err)
	require.True(t, sym.Equal(view.NewSet(0, 1, 2, 3, 4, 9, 10, 11)))

	diff, err := view.Difference[int](nv, slices.Values(other))
	require.NoError(t, err)
	require.True(t, diff.Equal(view.NewSet(0, 1, 2, 3, 4)))

	rdiff, err := view.DifferenceFrom[int](slices.Values(other), nv)
	require.NoError(t, err)
	require.True(t, rdiff.Equal(view.NewSet(9, 10, 11)))

	// Intersection and union do not depend on operand order.
	flipped, err := view.Intersection[int](view.NewSet(other...), nv.All())
	require.NoError(t, err)
	require.True(t, flipped.Equal(inter))
}

func TestNodeView_Equal(t *testing.T) {
	g := pathGraph(4)
	nv := view.NewNodeView[int](g)

	require.True(t, nv.Equal(view.NewSet(0, 1, 2, 3)))
	require.True(t, nv.Equal(view.NewNodeView[int](g.Clone())))
	require.False(t, nv.Equal(view.NewSet(0, 1, 2)))
}

func TestNodeDataView_Contains(t *testing.T) {
	g := pathGraph(9)
	require.NoError(t, g.SetNodeAttr(3, attrFoo, "bar"))
	nv := view.NewNodeView[int](g)

	all := nv.WithData(view.AllData(), nil)
	require.True(t, all.Contains(view.NodeData[int]{Node: 7, Data: core.Attrs{}}))
	require.True(t, all.Contains(view.NodeData[int]{Node: 3, Data: map[string]any{attrFoo: "bar"}}))
	require.False(t, all.Contains(view.NodeData[int]{Node: 3, Data: core.Attrs{}}))
	require.False(t, all.Contains(view.NodeData[int]{Node: 90, Data: core.Attrs{}}))

	foo := nv.WithData(view.Attr(attrFoo), nil)
	require.True(t, foo.Contains(view.NodeData[int]{Node: 3, Data: "bar"}))
	require.True(t, foo.Contains(view.NodeData[int]{Node: 7, Data: nil}))

	biz := nv.WithData(view.Attr(attrFoo), "biz")
	require.True(t, biz.Contains(view.NodeData[int]{Node: 7, Data: "biz"}))
	require.True(t, biz.Contains(view.NodeData[int]{Node: 3, Data: "bar"}))
	require.False(t, biz.Contains(view.NodeData[int]{Node: 7, Data: nil}))
}

func TestNodeDataView_GetAndItems(t *testing.T) {
	g := pathGraph(9)
	require.NoError(t, g.SetNodeAttr(3, attrFoo, "bar"))
	dv := view.NewNodeDataView[int](g, view.Attr(attrFoo), "biz")

	v, err := dv.Get(3)
	require.NoError(t, err)
	require.Equal(t, "bar", v)

	v, err = dv.Get(7)
	require.NoError(t, err)
	require.Equal(t, "biz", v)

	_, err = dv.Get(90)
	require.ErrorIs(t, err, view.ErrNotFound)

	for n, d := range dv.Items() {
		if n == 3 {
			assert.Equal(t, "bar", d)
			continue
		}
		assert.Equal(t, "biz", d)
	}

	first := collect(dv.All())[0]
	require.Equal(t, view.NodeData[int]{Node: 0, Data: "biz"}, first)
}

func TestNodeDataView_Hashing(t *testing.T) {
	g := pathGraph(9)
	require.NoError(t, g.SetNodeAttr(3, attrFoo, "bar"))
	nv := view.NewNodeView[int](g)

	_, err := nv.WithData(view.AllData(), nil).Set()
	require.ErrorIs(t, err, view.ErrUnhashable)

	s, err := nv.WithData(view.Attr(attrFoo), nil).Set()
	require.NoError(t, err)
	require.Equal(t, 9, s.Len())
	require.True(t, s.Contains(view.NodeData[int]{Node: 3, Data: "bar"}))

	plain, err := nv.Set()
	require.NoError(t, err)
	require.Equal(t, 9, plain.Len())

	require.NoError(t, g.SetNodeAttr(4, attrFoo, []int{1, 2}))
	_, err = nv.WithData(view.Attr(attrFoo), nil).Set()
	require.ErrorIs(t, err, view.ErrUnhashable)
}

func TestNodeDataView_Equal(t *testing.T) {
	g := pathGraph(3)
	require.NoError(t, g.SetNodeAttr(1, attrFoo, "bar"))

	a := view.NewNodeDataView[int](g, view.Attr(attrFoo), nil)
	b := view.NewNodeDataView[int](g.Clone(), view.Attr(attrFoo), nil)
	require.True(t, a.Equal(b))

	require.NoError(t, g.SetNodeAttr(2, attrFoo, "baz"))
	require.False(t, a.Equal(b))
}

func TestNodeView_Render(t *testing.T) {
	g := pathGraph(9)
	nv := view.NewNodeView[int](g)
	require.Equal(t, "[0, 1, 2, 3, 4, 5, 6, 7, 8]", nv.String())
	require.Equal(t, "[0, 1, 2, 3, 4, 5, 6, 7, 8]", fmt.Sprint(nv))

	gd := goldie.New(t)
	gd.Assert(t, "NodeView", []byte(fmt.Sprintf("%#v", nv)))
	gd.Assert(t, "NodeDataView", []byte(nv.WithData(view.AllData(), nil).GoString()))

	single := core.NewGraph[string]()
	single.AddNode("a")
	require.Equal(t, `NodeView(("a",))`, view.NewNodeView[string](single).GoString())

	small := pathGraph(3)
	require.NoError(t, small.SetNodeAttr(1, attrFoo, "bar"))
	dv := view.NewNodeDataView[int](small, view.Attr(attrFoo), nil)
	require.Equal(t, `[(0, nil), (1, "bar"), (2, nil)]`, dv.String())
	require.Equal(t, `NodeDataView({0: nil, 1: "bar", 2: nil}, data="foo")`, dv.GoString())
	require.Equal(t, `[(0, {}), (1, {"foo": "bar"}), (2, {})]`,
		view.NewNodeDataView[int](small, view.AllData(), nil).String())
}
