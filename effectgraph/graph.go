package effectgraph

import (
	"github.com/mixgraph/mixgraph/combinatorial"
	"github.com/mixgraph/mixgraph/effect"
	"github.com/mixgraph/mixgraph/flatstore"
	"github.com/mixgraph/mixgraph/rules"
	"github.com/mixgraph/mixgraph/substance"
)

// Graph is the dense effect-transition multigraph over [0, M) nodes,
// S outgoing edges per node. It is immutable after Build and safe for
// concurrent read access.
type Graph struct {
	m            uint32
	successors   []uint32 // flat, length m*substance.S; row idx at [idx*S, idx*S+S)
	predecessors *flatstore.FlatRagged[uint32]
}

// Build constructs the full transition graph by streaming every index in
// [0, M) once (never recursively), applying every substance's rule set
// to the decoded effect set and re-encoding the result.
func Build(mr *rules.MixtureRules, enc *combinatorial.Encoder) *Graph {
	m := enc.MaximumIndex()
	successors := make([]uint32, int(m)*substance.S)
	predRows := make([][]uint32, m)

	for idx := uint32(0); idx < m; idx++ {
		effects := effect.FromBits(enc.Decode(idx))
		row := successors[int(idx)*substance.S : int(idx)*substance.S+substance.S]

		for sIdx, s := range substance.All {
			newEffects := mr.Apply(s, effects)
			newIdx := enc.Encode(newEffects.Bits())
			row[sIdx] = newIdx

			if newIdx == idx {
				continue
			}
			if !containsU32(predRows[newIdx], idx) {
				predRows[newIdx] = append(predRows[newIdx], idx)
			}
		}
	}

	return &Graph{
		m:            m,
		successors:   successors,
		predecessors: flatstore.Build(predRows),
	}
}

func containsU32(s []uint32, v uint32) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

// M returns the number of nodes in the graph.
func (g *Graph) M() uint32 {
	return g.m
}

// Successor returns the node reached from idx by applying s.
func (g *Graph) Successor(idx uint32, s substance.Substance) uint32 {
	return g.successors[int(idx)*substance.S+int(s)]
}

// Successors returns all S outgoing edges from idx, indexed by
// substance.Substance.
func (g *Graph) Successors(idx uint32) []uint32 {
	return g.successors[int(idx)*substance.S : int(idx)*substance.S+substance.S]
}

// Predecessors returns every node with an edge leading to idx (excluding
// self-loops).
func (g *Graph) Predecessors(idx uint32) []uint32 {
	return g.predecessors.Row(int(idx))
}

// PredEdge names a predecessor node and the substance whose edge leads
// from it to the node PredecessorEdges was called on.
type PredEdge struct {
	From uint32
	Via  substance.Substance
}

// PredecessorEdges returns, for every predecessor of idx, the first
// substance (in catalog order) whose edge from that predecessor lands on
// idx — the same deterministic tie-break the source's
// predecessors_with_substances uses when more than one substance maps a
// predecessor to the same node.
func (g *Graph) PredecessorEdges(idx uint32) []PredEdge {
	preds := g.Predecessors(idx)
	edges := make([]PredEdge, 0, len(preds))
	for _, pred := range preds {
		row := g.Successors(pred)
		for sIdx, target := range row {
			if target == idx {
				edges = append(edges, PredEdge{From: pred, Via: substance.Substance(sIdx)})
				break
			}
		}
	}
	return edges
}

// FromParts reconstructs a Graph from previously-extracted arrays, e.g.
// when loading a persisted artifact.
func FromParts(m uint32, successors []uint32, predValues []uint32, predOffsets []uint32) *Graph {
	return &Graph{
		m:            m,
		successors:   successors,
		predecessors: flatstore.FromParts(predValues, predOffsets),
	}
}

// RawSuccessors returns the raw flat successor array, for artifact
// persistence.
func (g *Graph) RawSuccessors() []uint32 {
	return g.successors
}

// RawPredecessors returns the predecessor index's flat values and
// offsets arrays, for artifact persistence.
func (g *Graph) RawPredecessors() ([]uint32, []uint32) {
	return g.predecessors.Values(), g.predecessors.Offsets()
}
