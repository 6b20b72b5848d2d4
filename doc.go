// Package graphview is a read-through reporting layer over an in-memory graph.
//
// Views never copy the graph. They hold a reference to it and answer every
// query against its current state, so a view built before a mutation
// reflects that mutation immediately.
//
// What is inside:
//
//	core/          - Graph[N]: insertion-ordered nodes, edges and parallel-edge keys
//	view/          - NodeView, EdgeView family, DegreeView family, set algebra, specs
//	builder/       - deterministic fixtures (Path, Cycle, Star, Wheel, Complete, …)
//	converters/    - YAML/JSON graph documents ⇄ core.Graph[string]
//	cmd/graphview/ - CLI printing node, edge and degree views
//
// Quick example:
//
//	    0───1───2
//	        │
//	        3
//
//	g := core.NewGraph[int]()
//	g.AddEdge(0, 1)
//	g.AddEdge(1, 2)
//	g.AddEdge(1, 3)
//	deg := view.NewDegreeView[int](g)
//	fmt.Println(deg) // [(0, 1), (1, 3), (2, 1), (3, 1)]
//
// Six edge views cover every combination of orientation (undirected, out,
// in) and multiplicity (simple, multi); eight degree views add a total side
// for directed graphs. A view's configuration round-trips through
// view.EncodeSpec and the Restore* functions.
//
//	go install github.com/katalvlaran/graphview/cmd/graphview@latest
package graphview
