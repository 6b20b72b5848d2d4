package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphview/builder"
)

func TestIDFns(t *testing.T) {
	tests := []struct {
		name        string
		fn          builder.IDFn
		input       int
		want        string
		shouldPanic bool
	}{
		{"DefaultIDFn_zero", builder.DefaultIDFn, 0, "0", false},
		{"DefaultIDFn_multi", builder.DefaultIDFn, 123, "123", false},
		{"SymbolIDFn_min", builder.SymbolIDFn, 0, "A", false},
		{"SymbolIDFn_max", builder.SymbolIDFn, 25, "Z", false},
		{"SymbolIDFn_over", builder.SymbolIDFn, 26, "", true},
		{"SymbolIDFn_negative", builder.SymbolIDFn, -1, "", true},
		{"ExcelColumnIDFn_A", builder.ExcelColumnIDFn, 0, "A", false},
		{"ExcelColumnIDFn_AA", builder.ExcelColumnIDFn, 26, "AA", false},
		{"ExcelColumnIDFn_ZZ", builder.ExcelColumnIDFn, 701, "ZZ", false},
		{"ExcelColumnIDFn_AAA", builder.ExcelColumnIDFn, 702, "AAA", false},
		{"ExcelColumnIDFn_negative", builder.ExcelColumnIDFn, -1, "", true},
		{"PrefixedIDFn", builder.PrefixedIDFn("n"), 4, "n4", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.shouldPanic {
				assert.Panics(t, func() { tc.fn(tc.input) })
				return
			}
			assert.Equal(t, tc.want, tc.fn(tc.input))
		})
	}
}

func TestIDScheme(t *testing.T) {
	for name, want := range map[string]string{
		"":         "2",
		"default":  "2",
		"symbol":   "C",
		"excel":    "C",
		"prefix:x": "x2",
	} {
		fn, err := builder.IDScheme(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, fn(2), name)
	}

	_, err := builder.IDScheme("roman")
	require.ErrorIs(t, err, builder.ErrConstructFailed)
	_, err = builder.IDScheme("prefix:")
	require.ErrorIs(t, err, builder.ErrConstructFailed)
}
