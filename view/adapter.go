// SPDX-License-Identifier: MIT
//
// File: adapter.go
// Role: The read-through contract every view consumes, plus the package logger.

package view

import (
	"iter"

	"github.com/google/uuid"
	"github.com/kataras/golog"

	"github.com/katalvlaran/graphview/core"
)

// Adapter is the graph storage a view borrows. Views hold the reference for
// their whole lifetime, never copy adjacency, and never mutate it, so every
// read reflects the adapter's current state.
//
// Simple graphs report key 0 for every edge.
type Adapter[N comparable] interface {
	HasNode(n N) bool
	NodeAttrs(n N) (core.Attrs, error)
	NodeCount() int
	Nodes() iter.Seq[N]

	Directed() bool
	Multigraph() bool

	// Adjacency yields one record per edge on the chosen side of n.
	Adjacency(n N, dir core.Direction) iter.Seq[core.Adjacent[N]]
	HasEdge(u, v N) bool
	HasEdgeKey(u, v N, key int) bool
	// EdgeBundle yields every parallel edge u->v as (key, attrs).
	EdgeBundle(u, v N) iter.Seq2[int, core.Attrs]
}

var _ Adapter[int] = (*core.Graph[int])(nil)

// identified is implemented by adapters that carry an instance identity,
// such as *core.Graph. Specs record it when available.
type identified interface {
	ID() uuid.UUID
}

func adapterID[N comparable](g Adapter[N]) string {
	if id, ok := g.(identified); ok {
		return id.ID().String()
	}

	return ""
}

var logger = func() *golog.Logger {
	l := golog.New()
	l.SetPrefix("[view] ")
	l.SetLevel("disable")
	return l
}()

// SetLogger replaces the package logger. A nil logger is ignored.
func SetLogger(l *golog.Logger) {
	if l != nil {
		logger = l
	}
}
