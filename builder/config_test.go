package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderConfig_Defaults(t *testing.T) {
	cfg := newBuilderConfig()
	assert.Equal(t, "7", cfg.idFn(7))
	assert.Nil(t, cfg.rng)
	assert.Equal(t, DefaultEdgeWeight, cfg.weightFn(nil))
	assert.Empty(t, cfg.weightAttr)
	assert.Nil(t, cfg.edgeAttrs())
	assert.Equal(t, defaultLeftPrefix, cfg.leftPrefix)
	assert.Equal(t, defaultRightPrefix, cfg.rightPrefix)
}

func TestBuilderConfig_LaterOptionsWin(t *testing.T) {
	cfg := newBuilderConfig(WithSymbolIDs(), WithExcelColumnIDs())
	assert.Equal(t, "AB", cfg.idFn(27))

	cfg = newBuilderConfig(WithSymbolIDs(), WithDefaultIDs())
	assert.Equal(t, "3", cfg.idFn(3))

	cfg = newBuilderConfig(WithPrefixedIDs("v"))
	assert.Equal(t, "v12", cfg.idFn(12))
}

func TestBuilderConfig_PartitionPrefixFallback(t *testing.T) {
	cfg := newBuilderConfig(WithPartitionPrefix("", "Right"))
	assert.Equal(t, defaultLeftPrefix, cfg.leftPrefix)
	assert.Equal(t, "Right", cfg.rightPrefix)
}

func TestBuilderConfig_EdgeAttrs(t *testing.T) {
	cfg := newBuilderConfig(WithWeightAttr("w"), WithConstantWeight(2.5))
	attrs := cfg.edgeAttrs()
	require.Len(t, attrs, 1)
	assert.Equal(t, 2.5, attrs[0]["w"])
}

func TestBuilderConfig_SeedIsReproducible(t *testing.T) {
	a := newBuilderConfig(WithSeed(42))
	b := newBuilderConfig(WithSeed(42))
	for i := 0; i < 5; i++ {
		assert.Equal(t, a.rng.Int63(), b.rng.Int63())
	}

	r := rand.New(rand.NewSource(1))
	assert.Same(t, r, newBuilderConfig(WithRand(r)).rng)
}

func TestBuilderOptions_PanicOnNil(t *testing.T) {
	assert.Panics(t, func() { WithIDScheme(nil) })
	assert.Panics(t, func() { WithRand(nil) })
	assert.Panics(t, func() { WithWeightFn(nil) })
}

func TestBuilderErrorf_KeepsSentinel(t *testing.T) {
	err := builderErrorf(ErrTooFewVertices, MethodPath, "n=%d", 1)
	assert.ErrorIs(t, err, ErrTooFewVertices)
	assert.Equal(t, "Path: n=1: builder: parameter too small", err.Error())
}
