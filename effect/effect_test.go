package effect_test

import (
	"testing"

	"github.com/mixgraph/mixgraph/effect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetBasics(t *testing.T) {
	s := effect.NewSet(effect.Calming, effect.Energizing)
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Has(effect.Calming))
	assert.False(t, s.Has(effect.Toxic))

	s2 := s.With(effect.Toxic)
	assert.Equal(t, 3, s2.Len())

	s3 := s2.Without(effect.Calming)
	assert.False(t, s3.Has(effect.Calming))
	assert.Equal(t, 2, s3.Len())
}

func TestSetOrderingMatchesBitPosition(t *testing.T) {
	s := effect.NewSet(effect.Zombifying, effect.AntiGravity, effect.Balding)
	got := s.Effects()
	require.Len(t, got, 3)
	assert.Equal(t, effect.AntiGravity, got[0])
	assert.Equal(t, effect.Balding, got[1])
	assert.Equal(t, effect.Zombifying, got[2])
}

func TestParseCodeRoundTrip(t *testing.T) {
	for i := 0; i < effect.N; i++ {
		e := effect.Effect(i)
		got, err := effect.ParseCode(e.Code())
		require.NoError(t, err)
		assert.Equal(t, e, got)
	}
}

func TestParseCodeUnknown(t *testing.T) {
	_, err := effect.ParseCode("Zz")
	require.ErrorIs(t, err, effect.ErrUnknownCode)
}

func TestSetAlgebra(t *testing.T) {
	a := effect.NewSet(effect.Calming, effect.Toxic)
	b := effect.NewSet(effect.Toxic, effect.Balding)

	assert.Equal(t, effect.NewSet(effect.Calming, effect.Toxic, effect.Balding), a.Union(b))
	assert.Equal(t, effect.NewSet(effect.Toxic), a.Intersect(b))
	assert.Equal(t, effect.NewSet(effect.Calming), a.Subtract(b))
	assert.True(t, a.ContainsAll(effect.NewSet(effect.Toxic)))
	assert.False(t, a.DisjointFrom(b))
	assert.True(t, a.DisjointFrom(effect.NewSet(effect.Balding)))
}

func TestUniverseSize(t *testing.T) {
	assert.Equal(t, 34, effect.N)
}
