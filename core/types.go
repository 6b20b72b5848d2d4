// SPDX-License-Identifier: MIT
// Package core defines the central Graph type backing every report view,
// together with its attribute, direction and adjacency value types.
//
// This file declares Attrs, Direction, Adjacent, Graph, GraphOption,
// sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrNodeNotFound     - requested node does not exist.
//	ErrEdgeNotFound     - requested edge (or parallel-edge key) does not exist.
//	ErrKeysNotSupported - explicit edge key used on a simple graph.
package core

import (
	"errors"

	"github.com/google/uuid"
	"github.com/kataras/golog"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge or key.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrKeysNotSupported indicates an explicit parallel-edge key on a simple graph.
	ErrKeysNotSupported = errors.New("core: edge keys require a multigraph")
)

// Attrs is an attribute dictionary attached to a node or an edge.
// The maps handed out by Graph are live: writes through them are visible
// to every reader, including views built on top of the graph.
type Attrs map[string]any

// Direction selects which side of the adjacency a traversal reads.
// Undirected graphs store a single symmetric adjacency, so both values
// address the same buckets there.
type Direction int

const (
	// DirOut walks successors: edges u->v for a given u.
	DirOut Direction = iota
	// DirIn walks predecessors: edges u->v for a given v.
	DirIn
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	if d == DirIn {
		return "in"
	}

	return "out"
}

// Adjacent is one adjacency record produced by Graph.Adjacency.
// Simple graphs always report Key == 0.
type Adjacent[N comparable] struct {
	// Neighbor is the node on the far side of the edge.
	Neighbor N

	// Key distinguishes parallel edges between the same pair.
	Key int

	// Attrs is the live attribute map of the edge.
	Attrs Attrs
}

// bundle holds every parallel edge between one ordered node pair.
// Undirected graphs share one bundle between adj[u][v] and adj[v][u].
type bundle = ordered[int, Attrs]

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(c *graphConfig)

type graphConfig struct {
	directed   bool
	multigraph bool
	logger     *golog.Logger
}

// WithDirected makes every edge one-way (u->v).
func WithDirected() GraphOption {
	return func(c *graphConfig) { c.directed = true }
}

// WithMultiEdges permits parallel edges, distinguished by integer keys.
func WithMultiEdges() GraphOption {
	return func(c *graphConfig) { c.multigraph = true }
}

// WithLogger routes mutation diagnostics to l instead of the silent default.
func WithLogger(l *golog.Logger) GraphOption {
	return func(c *graphConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// Graph is the in-memory graph storage consumed by the view layer.
//
// Nodes and adjacency buckets keep insertion order, so every enumeration is
// deterministic and matches the order in which the graph was built.
// succ and pred alias each other for undirected graphs.
// Graph is not safe for concurrent mutation.
type Graph[N comparable] struct {
	id         uuid.UUID
	directed   bool
	multigraph bool
	log        *golog.Logger

	nodes *ordered[N, Attrs]

	// succ[u][v] and pred[v][u] point at the same bundle.
	succ map[N]*ordered[N, *bundle]
	pred map[N]*ordered[N, *bundle]
}

// NewGraph creates an empty Graph. By default it is undirected and simple.
// Complexity: O(1)
func NewGraph[N comparable](opts ...GraphOption) *Graph[N] {
	cfg := graphConfig{logger: defaultLogger}
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Graph[N]{
		id:         uuid.New(),
		directed:   cfg.directed,
		multigraph: cfg.multigraph,
		log:        cfg.logger,
		nodes:      newOrdered[N, Attrs](),
		succ:       make(map[N]*ordered[N, *bundle]),
	}
	if g.directed {
		g.pred = make(map[N]*ordered[N, *bundle])
	} else {
		g.pred = g.succ
	}

	return g
}

// defaultLogger is silent unless a caller raises its level.
var defaultLogger = func() *golog.Logger {
	l := golog.New()
	l.SetPrefix("[core] ")
	l.SetLevel("disable")
	return l
}()
