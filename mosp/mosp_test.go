package mosp_test

import (
	"testing"

	"github.com/mixgraph/mixgraph/combinatorial"
	"github.com/mixgraph/mixgraph/effect"
	"github.com/mixgraph/mixgraph/effectgraph"
	"github.com/mixgraph/mixgraph/mosp"
	"github.com/mixgraph/mixgraph/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSmallGraph(t *testing.T) (*effectgraph.Graph, *combinatorial.Encoder) {
	t.Helper()
	mr, err := rules.Load("../rules/testdata/rules.json")
	require.NoError(t, err)
	enc := combinatorial.New(effect.N, 4)
	return effectgraph.Build(mr, enc), enc
}

func TestStartingNodeGetsZeroLabel(t *testing.T) {
	g, enc := buildSmallGraph(t)
	start := enc.Encode(effect.Empty.Bits())

	permanent := mosp.Run(g, start)

	require.NotEmpty(t, permanent[start])
	first := permanent[start][0]
	assert.Equal(t, uint8(0), first.Length)
	assert.Equal(t, uint16(0), first.Cost)
	assert.False(t, first.HasBacklink())
}

func TestEveryReachableNodeSettlesAtLeastOneLabel(t *testing.T) {
	g, enc := buildSmallGraph(t)
	start := enc.Encode(effect.Empty.Bits())

	permanent := mosp.Run(g, start)

	// Nodes reachable from start along successor edges must settle a
	// label; every other node must stay empty.
	reachable := make([]bool, g.M())
	reachable[start] = true
	stack := []uint32{start}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, child := range g.Successors(node) {
			if !reachable[child] {
				reachable[child] = true
				stack = append(stack, child)
			}
		}
	}

	for idx := uint32(0); idx < g.M(); idx++ {
		if reachable[idx] {
			assert.NotEmpty(t, permanent[idx], "node %d never settled a label", idx)
		} else {
			assert.Empty(t, permanent[idx], "unreachable node %d settled a label", idx)
		}
	}
}

func TestSettledSetsArePairwiseNondominated(t *testing.T) {
	g, enc := buildSmallGraph(t)
	start := enc.Encode(effect.Empty.Bits())

	permanent := mosp.Run(g, start)

	for idx, labels := range permanent {
		for i := range labels {
			for j := range labels {
				if i == j {
					continue
				}
				a, b := labels[i], labels[j]
				dominated := a.Length <= b.Length && a.Cost <= b.Cost && (a.Length < b.Length || a.Cost < b.Cost)
				assert.False(t, dominated, "node %d: label %+v dominates %+v", idx, a, b)
			}
		}
	}
}

func TestPathToReconstructsApplicationOrder(t *testing.T) {
	g, enc := buildSmallGraph(t)
	start := enc.Encode(effect.Empty.Bits())

	permanent := mosp.Run(g, start)

	targetSet := effect.NewSet(effect.LongFaced)
	targetIdx := enc.Encode(targetSet.Bits())
	require.NotEmpty(t, permanent[targetIdx])

	label := permanent[targetIdx][0]
	packed, err := mosp.PathTo(permanent, label)
	require.NoError(t, err)
	path := packed.Substances()
	require.Len(t, path, int(label.Length))

	// Replaying the path from the empty set via the rule engine must
	// reproduce the target node's decoded effect set.
	mr, err := rules.Load("../rules/testdata/rules.json")
	require.NoError(t, err)

	set := effect.Empty
	for _, s := range path {
		set = mr.Apply(s, set)
	}
	assert.Equal(t, targetSet, set)
}
