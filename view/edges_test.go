package view_test

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/graphview/core"
	"github.com/katalvlaran/graphview/view"
)

// EdgeViewSuite runs the shared edge view contract against one member of
// the family. The fixture is path(9); multigraph members add (1, 2, 3).
type EdgeViewSuite struct {
	suite.Suite

	name     string
	directed bool
	multi    bool
	in       bool

	g  *core.Graph[int]
	ev *view.EdgeView[int]
}

func (s *EdgeViewSuite) SetupTest() {
	var opts []core.GraphOption
	if s.directed {
		opts = append(opts, core.WithDirected())
	}
	if s.multi {
		s.g = multiPath(opts...)
	} else {
		s.g = pathGraph(9, opts...)
	}
	if s.in {
		s.ev = view.NewInEdgeView[int](s.g)
	} else {
		s.ev = view.NewEdgeView[int](s.g)
	}
}

// expected lists the bare elements in iteration order.
func (s *EdgeViewSuite) expected() []view.Edge[int] {
	var out []view.Edge[int]
	for i := 0; i < 8; i++ {
		out = append(out, view.Edge[int]{U: i, V: i + 1})
		if s.multi && i == 1 {
			out = append(out, view.Edge[int]{U: 1, V: 2, Key: 3})
		}
	}

	return out
}

func (s *EdgeViewSuite) TestName() {
	s.Equal(s.name, s.ev.Name())
	s.Equal(s.dataName(), s.ev.WithData(view.AllData(), nil).Name())
	s.Equal(s.dataName(), s.ev.WithNodeSubset(1).Name())
}

// dataName is the member name of the data-bearing counterpart.
func (s *EdgeViewSuite) dataName() string {
	return strings.TrimSuffix(s.name, "View") + "DataView"
}

func (s *EdgeViewSuite) TestIterationOrder() {
	s.Equal(s.expected(), collect(s.ev.All()))

	// Sequences restart from the beginning.
	for e := range s.ev.All() {
		s.Equal(view.Edge[int]{U: 0, V: 1}, e)
		break
	}
	s.Equal(s.expected(), collect(s.ev.All()))
}

func (s *EdgeViewSuite) TestLen() {
	want := 8
	if s.multi {
		want = 9
	}
	s.Equal(want, s.ev.Len())
	s.Equal(want, s.ev.WithData(view.Attr(attrFoo), nil).Len())
}

func (s *EdgeViewSuite) TestSubsetLen() {
	type counts struct{ one, three int }
	var want counts
	switch {
	case !s.directed && !s.multi:
		want = counts{2, 4}
	case !s.directed && s.multi:
		want = counts{3, 5}
	case !s.in && !s.multi:
		want = counts{1, 3}
	case !s.in && s.multi:
		want = counts{2, 4}
	case !s.multi:
		want = counts{1, 3}
	default:
		want = counts{1, 4}
	}

	s.Equal(want.one, s.ev.WithNodeSubset(1).Len())
	s.Equal(want.three, s.ev.WithNodeSubset(1, 2, 3).Len())
	s.Equal(want.three, s.ev.WithNodeSubset(3, 1, 2, 1, 99).Len(), "duplicates and unknown nodes are skipped")
	s.Equal(0, s.ev.WithNodeSubset().Len(), "an empty subset selects nothing")
}

func (s *EdgeViewSuite) TestContains() {
	s.True(s.ev.Has(1, 2))
	s.Equal(!s.directed, s.ev.Has(2, 1))
	s.False(s.ev.Has(1, 4))
	s.False(s.ev.Has(1, 90))
	s.False(s.ev.Has(90, 1))

	s.True(s.ev.Contains(view.Edge[int]{U: 1, V: 2}))
	s.Equal(!s.directed, s.ev.Contains(view.Edge[int]{U: 2, V: 1}))
	s.Equal(s.multi, s.ev.HasKey(1, 2, 3))
	s.Equal(s.multi, s.ev.Contains(view.Edge[int]{U: 1, V: 2, Key: 3}))
	if s.multi {
		s.False(s.ev.Contains(view.Edge[int]{U: 1, V: 2, Key: 5}))
	}

	// Views without keys ignore the key field.
	nokeys := s.ev.WithKeys(false)
	s.True(nokeys.Contains(view.Edge[int]{U: 1, V: 2, Key: 5}))
}

func (s *EdgeViewSuite) TestContainsData() {
	ev := s.ev.WithKeys(false).WithData(view.Attr(attrFoo), 1)
	s.True(ev.Contains(view.Edge[int]{U: 0, V: 1, Data: 1}))
	s.False(ev.Contains(view.Edge[int]{U: 0, V: 1, Data: 2}))

	a, err := s.g.EdgeAttrs(2, 3)
	s.Require().NoError(err)
	a[attrFoo] = "bar"

	s.True(ev.Contains(view.Edge[int]{U: 2, V: 3, Data: "bar"}))
	s.Equal(!s.directed, ev.Contains(view.Edge[int]{U: 3, V: 2, Data: "bar"}))
	s.Equal(s.multi, ev.Contains(view.Edge[int]{U: 1, V: 2, Data: "bar"}))

	for e := range ev.All() {
		if e.U == 2 && e.V == 3 {
			s.Equal("bar", e.Data)
		}
	}
}

func (s *EdgeViewSuite) TestCallIdentity() {
	bare := view.EdgeConfig[int]{Keys: s.multi}
	s.Same(s.ev, s.ev.Call(bare))
	s.Same(s.ev, s.ev.Call(view.EdgeConfig[int]{Data: view.NoData(), Default: "dropped", Keys: s.multi}))
	s.NotSame(s.ev, s.ev.Call(view.EdgeConfig[int]{Data: view.AllData(), Keys: s.multi}))
	s.NotSame(s.ev, s.ev.Call(view.EdgeConfig[int]{Nbunch: []int{1}, Keys: s.multi}))
	s.NotSame(s.ev, s.ev.WithNodeSubset(0, 1, 2, 3, 4, 5, 6, 7, 8))

	if s.multi {
		// A multigraph call without keys is a different view.
		derived := s.ev.Call(view.EdgeConfig[int]{})
		s.NotSame(s.ev, derived)
		s.Equal(s.dataName(), derived.Name())
	} else {
		// Keys on a simple graph are ignored.
		s.Same(s.ev, s.ev.Call(view.EdgeConfig[int]{Keys: true}))
	}
}

func (s *EdgeViewSuite) TestDataAlwaysAllocates() {
	fresh := s.ev.Data(view.NoData(), nil, s.multi)
	s.NotSame(s.ev, fresh)
	s.True(fresh.Equal(s.ev))
	s.True(s.ev.Equal(fresh))
}

func (s *EdgeViewSuite) TestReadThrough() {
	before := s.ev.Len()
	sub := s.ev.WithNodeSubset(8, 9)

	s.g.AddEdge(8, 9)
	s.Equal(before+1, s.ev.Len())
	s.True(s.ev.Has(8, 9))
	s.True(sub.Has(8, 9), "subsets resolve at read time")

	s.Require().NoError(s.g.RemoveNode(0))
	s.Equal(before, s.ev.Len())
	s.False(s.ev.Has(0, 1))
}

func (s *EdgeViewSuite) TestGet() {
	a, err := s.ev.Get(1, 2)
	s.Require().NoError(err)
	s.Equal(core.Attrs{}, a)

	_, err = s.ev.Get(1, 90)
	s.ErrorIs(err, view.ErrNotFound)

	a, err = s.ev.GetKey(1, 2, 3)
	if s.multi {
		s.Require().NoError(err)
		s.Equal(core.Attrs{attrFoo: "bar"}, a)
	} else {
		s.ErrorIs(err, view.ErrNotFound)
	}

	_, err = s.ev.WithNodeSubset(5).Get(1, 2)
	s.ErrorIs(err, view.ErrNotFound)
}

func (s *EdgeViewSuite) TestSetAlgebra() {
	some := []view.Edge[int]{{U: 0, V: 1}, {U: 1, V: 0}, {U: 0, V: 2}}
	n := s.ev.Len()

	inter, err := view.Intersection[view.Edge[int]](s.ev, seqOf(some...))
	s.Require().NoError(err)
	if s.directed {
		s.True(inter.Equal(view.NewSet(some[0])))
	} else {
		s.True(inter.Equal(view.NewSet(some[0], some[1])))
	}

	union, err := view.Union[view.Edge[int]](s.ev, seqOf(some...))
	s.Require().NoError(err)
	s.Equal(n+2, union.Len())

	diff, err := view.Difference[view.Edge[int]](s.ev, seqOf(some...))
	s.Require().NoError(err)
	s.Equal(n-1, diff.Len())
	s.False(diff.Contains(some[0]))

	rdiff, err := view.DifferenceFrom[view.Edge[int]](seqOf(some...), s.ev)
	s.Require().NoError(err)
	if s.directed {
		s.True(rdiff.Equal(view.NewSet(some[1], some[2])))
	} else {
		s.True(rdiff.Equal(view.NewSet(some[2])))
	}

	sym, err := view.SymmetricDifference[view.Edge[int]](s.ev, seqOf(some...))
	s.Require().NoError(err)
	want := view.NewSet(s.expected()[1:]...)
	s.Require().NoError(want.Add(some[2]))
	if s.directed {
		s.Require().NoError(want.Add(some[1]))
	}
	s.True(sym.Equal(want), "%v", sym)
}

func (s *EdgeViewSuite) TestHashing() {
	plain, err := s.ev.Set()
	s.Require().NoError(err)
	s.Equal(s.ev.Len(), plain.Len())

	_, err = s.ev.WithData(view.AllData(), nil).Set()
	s.ErrorIs(err, view.ErrUnhashable)

	scalar, err := s.ev.WithData(view.Attr(attrFoo), 1).Set()
	s.Require().NoError(err)
	s.Equal(s.ev.Len(), scalar.Len())
}

func (s *EdgeViewSuite) TestRender() {
	gd := goldie.New(s.T())
	gd.Assert(s.T(), s.name, []byte(s.ev.GoString()))
	data := s.ev.Call(view.EdgeConfig[int]{Data: view.AllData()})
	gd.Assert(s.T(), data.Name(), []byte(data.GoString()))
}

func TestEdgeViewFamily(t *testing.T) {
	members := []*EdgeViewSuite{
		{name: "EdgeView"},
		{name: "OutEdgeView", directed: true},
		{name: "InEdgeView", directed: true, in: true},
		{name: "MultiEdgeView", multi: true},
		{name: "OutMultiEdgeView", directed: true, multi: true},
		{name: "InMultiEdgeView", directed: true, multi: true, in: true},
	}
	for _, m := range members {
		t.Run(m.name, func(t *testing.T) {
			suite.Run(t, m)
		})
	}
}

func TestEdgeView_UndirectedSelfLoop(t *testing.T) {
	g := pathGraph(3)
	g.AddEdge(1, 1)
	ev := view.NewEdgeView[int](g)

	require.Equal(t, 3, ev.Len())
	require.Equal(t, []view.Edge[int]{{U: 0, V: 1}, {U: 1, V: 2}, {U: 1, V: 1}}, collect(ev.All()))
	require.Equal(t, 3, g.EdgeCount())
}
