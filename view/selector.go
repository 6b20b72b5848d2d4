// SPDX-License-Identifier: MIT
//
// File: selector.go
// Role: Data selectors choosing what accompanies each node or edge in a data view.

package view

import (
	"strconv"

	"github.com/katalvlaran/graphview/core"
)

// SelectorKind names a selector mode in specs and on the command line.
type SelectorKind string

const (
	// SelectNone reports plain identities.
	SelectNone SelectorKind = "none"
	// SelectAll reports the full attribute map.
	SelectAll SelectorKind = "all"
	// SelectAttr reports one named attribute, or the default when absent.
	SelectAttr SelectorKind = "attr"
)

// Selector chooses the data payload of a node or edge view.
// The zero value is NoData().
type Selector struct {
	kind SelectorKind
	attr string
}

// NoData selects no payload.
func NoData() Selector { return Selector{} }

// AllData selects the full, live attribute map.
func AllData() Selector { return Selector{kind: SelectAll} }

// Attr selects a single attribute value, falling back to the view's default.
func Attr(name string) Selector { return Selector{kind: SelectAttr, attr: name} }

// Kind returns the selector mode.
func (s Selector) Kind() SelectorKind {
	if s.kind == "" {
		return SelectNone
	}

	return s.kind
}

// Name returns the attribute name for Attr selectors.
func (s Selector) Name() (string, bool) {
	return s.attr, s.kind == SelectAttr
}

// IsNone reports whether the selector carries no payload.
func (s Selector) IsNone() bool { return s.Kind() == SelectNone }

// String renders the selector as it appears in debug forms.
func (s Selector) String() string {
	switch s.Kind() {
	case SelectAll:
		return "true"
	case SelectAttr:
		return strconv.Quote(s.attr)
	default:
		return "false"
	}
}

// project extracts the payload from a live attribute map.
func (s Selector) project(a core.Attrs, def any) any {
	switch s.Kind() {
	case SelectAll:
		return a
	case SelectAttr:
		if v, ok := a[s.attr]; ok {
			return v
		}
		return def
	default:
		return nil
	}
}

// selectorFromSpec rebuilds a Selector from its serialized fields.
func selectorFromSpec(kind SelectorKind, attr string) (Selector, bool) {
	switch kind {
	case "", SelectNone:
		return NoData(), true
	case SelectAll:
		return AllData(), true
	case SelectAttr:
		return Attr(attr), true
	default:
		return Selector{}, false
	}
}
