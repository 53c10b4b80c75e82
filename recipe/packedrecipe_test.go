package recipe_test

import (
	"testing"

	"github.com/mixgraph/mixgraph/recipe"
	"github.com/mixgraph/mixgraph/substance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushGetRoundTrip(t *testing.T) {
	var p recipe.PackedRecipe
	seq := []substance.Substance{substance.Cuke, substance.Banana, substance.HorseSemen}
	for _, s := range seq {
		require.NoError(t, p.Push(s))
	}

	assert.Equal(t, len(seq), p.Len())
	for i, want := range seq {
		got, ok := p.Get(i)
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
	assert.Equal(t, seq, p.Substances())
}

func TestPushFullReturnsErrFull(t *testing.T) {
	var p recipe.PackedRecipe
	for i := 0; i < recipe.MaxEntries; i++ {
		require.NoError(t, p.Push(substance.Cuke))
	}
	assert.ErrorIs(t, p.Push(substance.Cuke), recipe.ErrFull)
}

func TestSetOverwrites(t *testing.T) {
	var p recipe.PackedRecipe
	require.NoError(t, p.Push(substance.Cuke))
	require.NoError(t, p.Push(substance.Banana))

	assert.True(t, p.Set(1, substance.Battery))
	got, _ := p.Get(1)
	assert.Equal(t, substance.Battery, got)

	assert.False(t, p.Set(5, substance.Battery))
}

func TestPopAndClear(t *testing.T) {
	var p recipe.PackedRecipe
	require.NoError(t, p.Push(substance.Cuke))
	require.NoError(t, p.Push(substance.Banana))

	last, ok := p.Pop()
	require.True(t, ok)
	assert.Equal(t, substance.Banana, last)
	assert.Equal(t, 1, p.Len())

	p.Clear()
	assert.Equal(t, 0, p.Len())
	_, ok = p.Pop()
	assert.False(t, ok)
}

func TestFromSubstancesRejectsOversize(t *testing.T) {
	seq := make([]substance.Substance, recipe.MaxEntries+1)
	_, err := recipe.FromSubstances(seq)
	assert.ErrorIs(t, err, recipe.ErrFull)
}

func TestFromBitsRoundTrip(t *testing.T) {
	seq := []substance.Substance{substance.Cuke, substance.Battery, substance.MegaBean}
	p, err := recipe.FromSubstances(seq)
	require.NoError(t, err)

	reconstructed := recipe.FromBits(p.Bits(), p.Len())
	assert.Equal(t, p.Substances(), reconstructed.Substances())
}
