// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps a zero-based index to a node identifier. It must be pure:
// the same idx always yields the same string.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx: 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn returns the uppercase Latin letter for idx in [0..25].
// Panics outside that range.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}

	return string('A' + rune(idx))
}

// ExcelColumnIDFn returns spreadsheet-style column names: 0→"A", 25→"Z", 26→"AA".
// Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be >= 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// PrefixedIDFn returns prefix + decimal index: "v0", "v1", ...
func PrefixedIDFn(prefix string) IDFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}

// WithDefaultIDs resets the ID scheme to DefaultIDFn.
func WithDefaultIDs() BuilderOption { return WithIDScheme(DefaultIDFn) }

// WithSymbolIDs sets the ID scheme to SymbolIDFn.
func WithSymbolIDs() BuilderOption { return WithIDScheme(SymbolIDFn) }

// WithExcelColumnIDs sets the ID scheme to ExcelColumnIDFn.
func WithExcelColumnIDs() BuilderOption { return WithIDScheme(ExcelColumnIDFn) }

// WithPrefixedIDs sets the ID scheme to PrefixedIDFn(prefix).
func WithPrefixedIDs(prefix string) BuilderOption { return WithIDScheme(PrefixedIDFn(prefix)) }

// IDScheme resolves a scheme name as accepted on the command line:
// "default", "symbol", "excel", or "prefix:<p>".
func IDScheme(name string) (IDFn, error) {
	switch name {
	case "", "default":
		return DefaultIDFn, nil
	case "symbol":
		return SymbolIDFn, nil
	case "excel":
		return ExcelColumnIDFn, nil
	}
	if len(name) > len("prefix:") && name[:len("prefix:")] == "prefix:" {
		return PrefixedIDFn(name[len("prefix:"):]), nil
	}

	return nil, builderErrorf(ErrConstructFailed, "IDScheme", "unknown scheme %q", name)
}
