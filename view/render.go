// SPDX-License-Identifier: MIT
//
// File: render.go
// Role: Literal renderings used by String/GoString of every view.
// Determinism:
//   - Map payloads are printed with keys sorted by their rendered form.
//   - Floats use the shortest exact representation, so 3.0 prints as 3.

package view

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// formatValue renders a node, key or payload value as a literal.
func formatValue(x any) string {
	switch v := x.(type) {
	case nil:
		return "nil"
	case string:
		return strconv.Quote(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case fmt.Stringer:
		return v.String()
	}

	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Map:
		if rv.IsNil() {
			return "{}"
		}
		parts := make([]string, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			parts = append(parts, formatValue(iter.Key().Interface())+": "+formatValue(iter.Value().Interface()))
		}
		sort.Strings(parts)
		return "{" + strings.Join(parts, ", ") + "}"
	case reflect.Slice, reflect.Array:
		parts := make([]string, rv.Len())
		for i := range parts {
			parts[i] = formatValue(rv.Index(i).Interface())
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case reflect.Pointer:
		if rv.IsNil() {
			return "nil"
		}
		return formatValue(rv.Elem().Interface())
	default:
		return fmt.Sprint(x)
	}
}

// formatTuple renders values as a parenthesized tuple.
func formatTuple(xs ...any) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = formatValue(x)
	}

	return "(" + strings.Join(parts, ", ") + ")"
}

// listOf joins already-rendered items as a list literal.
func listOf(items []string) string {
	return "[" + strings.Join(items, ", ") + "]"
}

// tupleOf joins already-rendered items as a tuple literal; a single item
// keeps its trailing comma.
func tupleOf(items []string) string {
	if len(items) == 1 {
		return "(" + items[0] + ",)"
	}

	return "(" + strings.Join(items, ", ") + ")"
}

// mappingOf renders keys and values pairwise in the given order.
func mappingOf(keys, vals []string) string {
	parts := make([]string, len(keys))
	for i := range keys {
		parts[i] = keys[i] + ": " + vals[i]
	}

	return "{" + strings.Join(parts, ", ") + "}"
}
