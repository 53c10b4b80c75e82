package effectgraph_test

import (
	"testing"

	"github.com/mixgraph/mixgraph/combinatorial"
	"github.com/mixgraph/mixgraph/effect"
	"github.com/mixgraph/mixgraph/effectgraph"
	"github.com/mixgraph/mixgraph/rules"
	"github.com/mixgraph/mixgraph/substance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSmallGraph(t *testing.T) {
	mr, err := rules.Load("../rules/testdata/rules.json")
	require.NoError(t, err)

	enc := combinatorial.New(effect.N, 4)
	g := effectgraph.Build(mr, enc)

	assert.Equal(t, enc.MaximumIndex(), g.M())

	// From the empty effect set, applying HorseSemen must land on the
	// same node Encode(NewSet(LongFaced)) names.
	emptyIdx := enc.Encode(effect.Empty.Bits())
	wantIdx := enc.Encode(effect.NewSet(effect.LongFaced).Bits())
	assert.Equal(t, wantIdx, g.Successor(emptyIdx, substance.HorseSemen))

	// That successor must record emptyIdx as one of its predecessors,
	// unless the edge is a self-loop (which it is not, here).
	assert.Contains(t, g.Predecessors(wantIdx), emptyIdx)
}

func TestSelfLoopsOmittedFromPredecessors(t *testing.T) {
	mr, err := rules.Load("../rules/testdata/rules.json")
	require.NoError(t, err)

	enc := combinatorial.New(effect.N, 4)
	g := effectgraph.Build(mr, enc)

	// A substance with no rule and no inherent effect relevant to a given
	// set (e.g. Gasoline, which has neither in this fixture) is a
	// self-loop: it must not appear in its own predecessor list via that
	// edge, though it may appear via a different substance's edge.
	emptyIdx := enc.Encode(effect.Empty.Bits())
	selfIdx := g.Successor(emptyIdx, substance.Gasoline)
	assert.Equal(t, emptyIdx, selfIdx)
	assert.NotContains(t, g.Predecessors(emptyIdx), emptyIdx)
}

func TestFromPartsRoundTrip(t *testing.T) {
	mr, err := rules.Load("../rules/testdata/rules.json")
	require.NoError(t, err)

	enc := combinatorial.New(effect.N, 3)
	g := effectgraph.Build(mr, enc)

	values, offsets := g.RawPredecessors()
	reconstructed := effectgraph.FromParts(g.M(), g.RawSuccessors(), values, offsets)

	idx := enc.Encode(effect.Empty.Bits())
	for _, s := range substance.All {
		assert.Equal(t, g.Successor(idx, s), reconstructed.Successor(idx, s))
	}
}
