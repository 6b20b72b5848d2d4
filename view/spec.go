// SPDX-License-Identifier: MIT
//
// File: spec.go
// Role: Serializable view descriptions and their restoration onto an adapter.
// Contract:
//   - A spec holds configuration only, never adjacency.
//   - Restoring a spec onto an equivalent adapter yields a view equal to the
//     source view and reporting the same spec.
//   - The recorded graph ID is informational; a mismatch is logged, not rejected.

package view

import (
	"math"
	"strconv"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// NodeSpec describes a NodeView or NodeDataView.
type NodeSpec struct {
	Kind    string       `yaml:"kind" json:"kind"`
	Graph   string       `yaml:"graph,omitempty" json:"graph,omitempty"`
	Data    SelectorKind `yaml:"data" json:"data"`
	Attr    string       `yaml:"attr,omitempty" json:"attr,omitempty"`
	Default any          `yaml:"default,omitempty" json:"default,omitempty"`
}

// EdgeSpec describes any EdgeView member.
type EdgeSpec[N comparable] struct {
	Kind    string       `yaml:"kind" json:"kind"`
	Graph   string       `yaml:"graph,omitempty" json:"graph,omitempty"`
	Subset  bool         `yaml:"subset" json:"subset"`
	Nbunch  []N          `yaml:"nbunch,omitempty" json:"nbunch,omitempty"`
	Data    SelectorKind `yaml:"data" json:"data"`
	Attr    string       `yaml:"attr,omitempty" json:"attr,omitempty"`
	Default any          `yaml:"default,omitempty" json:"default,omitempty"`
	Keys    bool         `yaml:"keys" json:"keys"`
}

// DegreeSpec describes any DegreeView member.
type DegreeSpec[N comparable] struct {
	Kind    string   `yaml:"kind" json:"kind"`
	Graph   string   `yaml:"graph,omitempty" json:"graph,omitempty"`
	Subset  bool     `yaml:"subset" json:"subset"`
	Nbunch  []N      `yaml:"nbunch,omitempty" json:"nbunch,omitempty"`
	Weight  string   `yaml:"weight,omitempty" json:"weight,omitempty"`
	Default *float64 `yaml:"default,omitempty" json:"default,omitempty"`
}

// Plain twins of the spec types, encoded without the float tagging below.
type nodeSpecFields NodeSpec

type edgeSpecFields[N comparable] EdgeSpec[N]

// MarshalYAML keeps a float64 default typed as a float, so 1.0 does not come
// back as the integer 1.
func (s NodeSpec) MarshalYAML() (any, error) {
	s.Default = tagFloat(s.Default)

	return nodeSpecFields(s), nil
}

// MarshalYAML keeps a float64 default typed as a float.
func (s EdgeSpec[N]) MarshalYAML() (any, error) {
	s.Default = tagFloat(s.Default)

	return edgeSpecFields[N](s), nil
}

// floatScalar encodes as an explicit !!float scalar.
type floatScalar float64

func (f floatScalar) MarshalYAML() (any, error) {
	v := float64(f)
	var text string
	switch {
	case math.IsNaN(v):
		text = ".nan"
	case math.IsInf(v, 1):
		text = ".inf"
	case math.IsInf(v, -1):
		text = "-.inf"
	default:
		text = strconv.FormatFloat(v, 'g', -1, 64)
	}

	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: text}, nil
}

func tagFloat(v any) any {
	if f, ok := v.(float64); ok {
		return floatScalar(f)
	}

	return v
}

// EncodeSpec renders a spec as YAML.
func EncodeSpec(spec any) ([]byte, error) {
	out, err := yaml.Marshal(spec)
	if err != nil {
		return nil, errors.Wrap(err, "encode view spec")
	}

	return out, nil
}

// DecodeSpec parses YAML produced by EncodeSpec into spec, which must be a
// pointer to NodeSpec, EdgeSpec or DegreeSpec.
func DecodeSpec(data []byte, spec any) error {
	if err := yaml.Unmarshal(data, spec); err != nil {
		return errors.Wrapf(ErrInvalidArgument, "decode view spec: %v", err)
	}

	return nil
}

// Spec describes the NodeView.
func (nv *NodeView[N]) Spec() NodeSpec {
	return NodeSpec{Kind: "NodeView", Graph: adapterID(nv.g), Data: SelectNone}
}

// Spec describes the NodeDataView.
func (dv *NodeDataView[N]) Spec() NodeSpec {
	attr, _ := dv.sel.Name()

	return NodeSpec{Kind: "NodeDataView", Graph: adapterID(dv.g), Data: dv.sel.Kind(), Attr: attr, Default: dv.def}
}

// RestoreNodeView rebuilds a NodeView from its spec.
func RestoreNodeView[N comparable](g Adapter[N], s NodeSpec) (*NodeView[N], error) {
	if s.Kind != "NodeView" {
		return nil, errors.Wrapf(ErrInvalidArgument, "kind %q is not NodeView", s.Kind)
	}
	if err := checkGraphID(g, s.Graph); err != nil {
		return nil, err
	}

	return NewNodeView(g), nil
}

// RestoreNodeDataView rebuilds a NodeDataView from its spec.
func RestoreNodeDataView[N comparable](g Adapter[N], s NodeSpec) (*NodeDataView[N], error) {
	if s.Kind != "NodeDataView" {
		return nil, errors.Wrapf(ErrInvalidArgument, "kind %q is not NodeDataView", s.Kind)
	}
	sel, ok := selectorFromSpec(s.Data, s.Attr)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidArgument, "unknown data selector %q", s.Data)
	}
	if err := checkGraphID(g, s.Graph); err != nil {
		return nil, err
	}

	return NewNodeDataView(g, sel, s.Default), nil
}

// Spec describes the edge view.
func (ev *EdgeView[N]) Spec() EdgeSpec[N] {
	cfg := ev.Config()
	attr, _ := cfg.Data.Name()

	return EdgeSpec[N]{
		Kind:    ev.pol.prefix() + "EdgeView",
		Graph:   adapterID(ev.g),
		Subset:  cfg.Nbunch != nil,
		Nbunch:  cfg.Nbunch,
		Data:    cfg.Data.Kind(),
		Attr:    attr,
		Default: cfg.Default,
		Keys:    cfg.Keys,
	}
}

// RestoreEdgeView rebuilds an edge view from its spec. The spec kind must
// match g's directedness and multiplicity.
func RestoreEdgeView[N comparable](g Adapter[N], s EdgeSpec[N]) (*EdgeView[N], error) {
	pol, ok := parsePolicy(s.Kind, "EdgeView", edgePolicies)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidArgument, "unknown edge view kind %q", s.Kind)
	}
	if !pol.fits(g.Directed(), g.Multigraph()) {
		return nil, errors.Wrapf(ErrInvalidArgument, "%s cannot read a graph with directed=%t multigraph=%t",
			s.Kind, g.Directed(), g.Multigraph())
	}
	sel, ok := selectorFromSpec(s.Data, s.Attr)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidArgument, "unknown data selector %q", s.Data)
	}
	if err := checkGraphID(g, s.Graph); err != nil {
		return nil, err
	}

	cfg := EdgeConfig[N]{Data: sel, Default: s.Default, Keys: s.Keys}
	if s.Subset {
		cfg.Nbunch = append([]N{}, s.Nbunch...)
	}

	return newEdgeView(g, pol, cfg), nil
}

// Spec describes the degree view.
func (dv *DegreeView[N]) Spec() DegreeSpec[N] {
	cfg := dv.Config()

	return DegreeSpec[N]{
		Kind:    dv.Name(),
		Graph:   adapterID(dv.g),
		Subset:  cfg.Nbunch != nil,
		Nbunch:  cfg.Nbunch,
		Weight:  cfg.Weight,
		Default: cfg.Default,
	}
}

// RestoreDegreeView rebuilds a degree view from its spec. The spec kind must
// match g's directedness and multiplicity.
func RestoreDegreeView[N comparable](g Adapter[N], s DegreeSpec[N]) (*DegreeView[N], error) {
	pol, ok := parsePolicy(s.Kind, "DegreeView", degreePolicies)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidArgument, "unknown degree view kind %q", s.Kind)
	}
	if !pol.fits(g.Directed(), g.Multigraph()) {
		return nil, errors.Wrapf(ErrInvalidArgument, "%s cannot read a graph with directed=%t multigraph=%t",
			s.Kind, g.Directed(), g.Multigraph())
	}
	if err := checkGraphID(g, s.Graph); err != nil {
		return nil, err
	}

	cfg := DegreeConfig[N]{Weight: s.Weight}
	if s.Subset {
		cfg.Nbunch = append([]N{}, s.Nbunch...)
	}
	if s.Default != nil {
		d := *s.Default
		cfg.Default = &d
	}

	return &DegreeView[N]{g: g, pol: pol, cfg: cfg}, nil
}

// checkGraphID validates the recorded graph ID and logs when the spec was
// taken from a different graph instance.
func checkGraphID[N comparable](g Adapter[N], recorded string) error {
	if recorded == "" {
		return nil
	}
	if _, err := uuid.Parse(recorded); err != nil {
		return errors.Wrapf(ErrInvalidArgument, "graph id %q: %v", recorded, err)
	}
	if current := adapterID(g); current != "" && current != recorded {
		logger.Debugf("restoring view recorded on graph %s onto graph %s", recorded, current)
	}

	return nil
}
