package view_test

import (
	"iter"

	"github.com/katalvlaran/graphview/core"
	"github.com/katalvlaran/graphview/view"
)

const attrFoo = "foo"

// pathGraph returns 0-1-...-(n-1).
func pathGraph(n int, opts ...core.GraphOption) *core.Graph[int] {
	g := core.NewGraph[int](opts...)
	for i := 0; i < n; i++ {
		g.AddNode(i)
	}
	for i := 0; i+1 < n; i++ {
		g.AddEdge(i, i+1)
	}

	return g
}

// degreeFixture is path(6) plus (1,3) added twice with foo=2 then foo=3.
// Simple graphs keep a single (1,3) edge carrying foo=3.
func degreeFixture(opts ...core.GraphOption) *core.Graph[int] {
	g := pathGraph(6, opts...)
	g.AddEdge(1, 3, core.Attrs{attrFoo: 2})
	g.AddEdge(1, 3, core.Attrs{attrFoo: 3})

	return g
}

// multiPath is path(9) on a multigraph plus the parallel edge (1, 2, 3) with foo=bar.
func multiPath(opts ...core.GraphOption) *core.Graph[int] {
	g := pathGraph(9, append(opts, core.WithMultiEdges())...)
	if err := g.AddEdgeKey(1, 2, 3, core.Attrs{attrFoo: "bar"}); err != nil {
		panic(err)
	}

	return g
}

func collect[T any](seq iter.Seq[T]) []T {
	var out []T
	for x := range seq {
		out = append(out, x)
	}

	return out
}

func degrees(dv *view.DegreeView[int]) []float64 {
	var out []float64
	for _, d := range dv.All() {
		out = append(out, d)
	}

	return out
}

func seqOf[T any](xs ...T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range xs {
			if !yield(x) {
				return
			}
		}
	}
}

func rangeOf(lo, hi int) []int {
	out := make([]int, 0, hi-lo)
	for i := lo; i < hi; i++ {
		out = append(out, i)
	}

	return out
}
