package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/graphview/builder"
)

func TestWeightFnConstructors_Panic(t *testing.T) {
	tests := []struct {
		name        string
		constructor func() builder.WeightFn
	}{
		{"ConstantWeightFn_negative", func() builder.WeightFn { return builder.ConstantWeightFn(-1) }},
		{"UniformWeightFn_minNegative", func() builder.WeightFn { return builder.UniformWeightFn(-1, 5) }},
		{"UniformWeightFn_maxLessThanMin", func() builder.WeightFn { return builder.UniformWeightFn(5, 4) }},
		{"IntegerWeightFn_maxLessThanMin", func() builder.WeightFn { return builder.IntegerWeightFn(3, 2) }},
		{"NormalWeightFn_stddevNegative", func() builder.WeightFn { return builder.NormalWeightFn(0, -0.1) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Panics(t, func() { tc.constructor() })
		})
	}
}

func TestWeightFns_NilRandFallsBack(t *testing.T) {
	for name, fn := range map[string]builder.WeightFn{
		"default": builder.DefaultWeightFn,
		"uniform": builder.UniformWeightFn(3, 9),
		"integer": builder.IntegerWeightFn(3, 9),
		"normal":  builder.NormalWeightFn(10, 2),
	} {
		assert.Equal(t, builder.DefaultEdgeWeight, fn(nil), name)
	}
	assert.Equal(t, 4.5, builder.ConstantWeightFn(4.5)(nil))
}

func TestWeightFns_Ranges(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	uniform := builder.UniformWeightFn(2, 5)
	integer := builder.IntegerWeightFn(1, 3)
	normal := builder.NormalWeightFn(0, 1)
	for i := 0; i < 200; i++ {
		u := uniform(rng)
		assert.GreaterOrEqual(t, u, 2.0)
		assert.Less(t, u, 5.0)

		n := integer(rng)
		assert.Contains(t, []float64{1, 2, 3}, n)

		assert.GreaterOrEqual(t, normal(rng), 0.0)
	}
	assert.Equal(t, 2.0, builder.UniformWeightFn(2, 2)(rng))
}
