package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mixgraph/mixgraph/baseproduct"
	"github.com/mixgraph/mixgraph/combinatorial"
	"github.com/mixgraph/mixgraph/effect"
	"github.com/mixgraph/mixgraph/effectgraph"
	"github.com/mixgraph/mixgraph/mosp"
	"github.com/mixgraph/mixgraph/query"
	"github.com/mixgraph/mixgraph/rules"
)

func buildTestPermanent(t *testing.T, start effect.Set) (*combinatorial.Encoder, [][]mosp.Label) {
	t.Helper()
	mr, err := rules.Load("../rules/testdata/rules.json")
	require.NoError(t, err)
	enc := combinatorial.New(uint8(effect.N), 4)
	g := effectgraph.Build(mr, enc)
	startIdx := enc.Encode(start.Bits())
	return enc, mosp.Run(g, startIdx)
}

func TestLookupReconstructsEveryLabel(t *testing.T) {
	enc, permanent := buildTestPermanent(t, effect.Empty)

	recipes, err := query.Lookup(permanent, enc.Encode(effect.Empty.Bits()))
	require.NoError(t, err)
	require.NotEmpty(t, recipes)

	for _, r := range recipes {
		assert.Equal(t, int(r.Length), len(r.Substances()))
	}
}

func TestLookupRejectsOutOfRangeIndex(t *testing.T) {
	_, permanent := buildTestPermanent(t, effect.Empty)

	_, err := query.Lookup(permanent, uint32(len(permanent))+1)
	assert.ErrorIs(t, err, query.ErrIndexOutOfRange)
}

func TestExactMatchFindsStartingNode(t *testing.T) {
	enc, permanent := buildTestPermanent(t, effect.Empty)

	recipes, err := query.ExactMatch(enc, permanent, effect.Empty)
	require.NoError(t, err)
	require.NotEmpty(t, recipes)

	var sawZeroLength bool
	for _, r := range recipes {
		if r.Length == 0 {
			sawZeroLength = true
			assert.Empty(t, r.Substances())
		}
	}
	assert.True(t, sawZeroLength)
}

func TestInexactMatchWithEmptyTargetMatchesEveryReachableNode(t *testing.T) {
	enc, permanent := buildTestPermanent(t, effect.Empty)

	bestCost, bestLength, err := query.InexactMatch(enc, permanent, effect.Empty)
	require.NoError(t, err)
	require.NotNil(t, bestCost)
	require.NotNil(t, bestLength)

	assert.Equal(t, uint16(0), bestCost.Recipe.Cost)
	assert.Equal(t, uint8(0), bestLength.Recipe.Length)
}

func TestInexactMatchHonorsTargetFilter(t *testing.T) {
	enc, permanent := buildTestPermanent(t, effect.Empty)

	target := effect.NewSet(effect.LongFaced)
	bestCost, bestLength, err := query.InexactMatch(enc, permanent, target)
	require.NoError(t, err)

	if bestCost != nil {
		decoded := effect.FromBits(enc.Decode(bestCost.Node))
		assert.True(t, decoded.ContainsAll(target))
	}
	if bestLength != nil {
		decoded := effect.FromBits(enc.Decode(bestLength.Node))
		assert.True(t, decoded.ContainsAll(target))
	}
}

func TestProfitRankOrdersDescendingByProfit(t *testing.T) {
	_, permanent := buildTestPermanent(t, effect.Empty)

	multipliers := make([]float64, len(permanent))
	for i := range multipliers {
		multipliers[i] = 1.0
	}

	entries, err := query.ProfitRank(permanent, multipliers, baseproduct.BasePrice[baseproduct.Cocaine], 0, query.NoMaxPrice, query.NoMixinCap, 5)
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	for i := 1; i < len(entries); i++ {
		assert.GreaterOrEqual(t, entries[i-1].Profit, entries[i].Profit)
	}
	assert.LessOrEqual(t, len(entries), 5)
}

func TestProfitRankHonorsMixinCap(t *testing.T) {
	_, permanent := buildTestPermanent(t, effect.Empty)

	multipliers := make([]float64, len(permanent))
	for i := range multipliers {
		multipliers[i] = 1.0
	}

	entries, err := query.ProfitRank(permanent, multipliers, baseproduct.BasePrice[baseproduct.Meth], 0, query.NoMaxPrice, 1, 10)
	require.NoError(t, err)
	for _, e := range entries {
		assert.LessOrEqual(t, e.Recipe.Length, uint8(1))
	}
}

func TestSummarizeReportsReachabilityForEveryProduct(t *testing.T) {
	mr, err := rules.Load("../rules/testdata/rules.json")
	require.NoError(t, err)
	enc := combinatorial.New(uint8(effect.N), 4)
	g := effectgraph.Build(mr, enc)

	var permanentByProduct [baseproduct.Count][][]mosp.Label
	for _, product := range baseproduct.All {
		startIdx := enc.Encode(baseproduct.InherentEffects[product].Bits())
		permanentByProduct[product] = mosp.Run(g, startIdx)
	}

	summaries, err := query.Summarize(enc, permanentByProduct)
	require.NoError(t, err)

	for _, product := range baseproduct.All {
		s := summaries[product]
		assert.GreaterOrEqual(t, s.ReachableNodes, 1)
		require.NotNil(t, s.Cheapest)
		require.NotNil(t, s.Shortest)
	}
}
