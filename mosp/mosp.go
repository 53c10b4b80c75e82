package mosp

import (
	"github.com/mixgraph/mixgraph/effectgraph"
	"github.com/mixgraph/mixgraph/recipe"
	"github.com/mixgraph/mixgraph/substance"
)

// Run computes the Pareto-minimal (length, cost) label set reachable
// from startIdx at every node of g, using substance.Cost as the per-edge
// cost table.
//
// The returned slice has length g.M(); permanent[i] holds every
// non-dominated label settled for node i, in settling order. A label's
// Backlink/PrevSubstance pair names the predecessor node and the
// substance that produced it; a label with Backlink == Niche is the
// starting label.
func Run(g *effectgraph.Graph, startIdx uint32) [][]Label {
	permanent := make([][]Label, g.M())
	pending := newPendingQueue()

	pending.pushOrImprove(startIdx, Label{Length: 0, Cost: 0, PrevSubstance: 0, Backlink: Niche})

	for !pending.empty() {
		node, label, _ := pending.pop()
		permanent[node] = append(permanent[node], label)

		if candidate, ok := nextCandidateLabel(node, g, permanent); ok {
			pending.pushOrImprove(node, candidate)
		}

		for sIdx, child := range g.Successors(node) {
			s := substance.All[sIdx]
			newLabel := Label{
				Length:        label.Length + 1,
				Cost:          label.Cost + substance.Cost[s],
				PrevSubstance: s,
				Backlink:      node,
			}
			propagate(newLabel, child, permanent[child], pending)
		}
	}

	return permanent
}

// nextCandidateLabel looks for another label reachable at node from an
// already-settled predecessor label, now that node itself has a new
// settled label that may have unblocked it. It mirrors the backfill
// lookahead step of the source algorithm: for each predecessor edge, at
// most one candidate is drawn (the first of that predecessor's settled
// labels that is not dominated by node's own settled labels), and the
// smallest candidate across all predecessors is returned.
func nextCandidateLabel(node uint32, g *effectgraph.Graph, permanent [][]Label) (Label, bool) {
	existing := permanent[node]

	var best Label
	found := false

	for _, edge := range g.PredecessorEdges(node) {
		for _, old := range permanent[edge.From] {
			candidate := Label{
				Length:        old.Length + 1,
				Cost:          old.Cost + substance.Cost[edge.Via],
				PrevSubstance: edge.Via,
				Backlink:      edge.From,
			}
			if labelNondominatedNonequal(candidate, existing) {
				if !found || candidate.Less(best) {
					best = candidate
					found = true
				}
				break
			}
		}
	}

	return best, found
}

// propagate offers newLabel for child, admitting it into the pending
// queue only if no label already settled at child dominates or
// duplicates it.
func propagate(newLabel Label, child uint32, childPermanent []Label, pending *pendingQueue) {
	if !labelNondominatedNonequal(newLabel, childPermanent) {
		return
	}
	pending.pushOrImprove(child, newLabel)
}

// PathTo reconstructs one path ending at a settled label by walking
// Backlink pointers back to the starting node, returning the substances
// applied, in application order, packed the way a recipe must be
// represented for its encoding to stay stable across runs.
func PathTo(permanent [][]Label, endLabel Label) (recipe.PackedRecipe, error) {
	var reversed []substance.Substance
	label := endLabel
	for label.HasBacklink() {
		reversed = append(reversed, label.PrevSubstance)
		prevIdx := label.Backlink
		label = findPredecessorLabel(permanent[prevIdx], label)
	}

	ordered := make([]substance.Substance, len(reversed))
	for i, s := range reversed {
		ordered[len(reversed)-1-i] = s
	}
	return recipe.FromSubstances(ordered)
}

// findPredecessorLabel locates, among a predecessor node's settled
// labels, the one child's label was built from: exactly one step
// shorter, and one substance's cost cheaper.
func findPredecessorLabel(candidates []Label, child Label) Label {
	wantCost := child.Cost - substance.Cost[child.PrevSubstance]
	for _, c := range candidates {
		if c.Length == child.Length-1 && c.Cost == wantCost {
			return c
		}
	}
	// Should not happen for a label Run actually produced; fall back to
	// the cheapest candidate one step shorter.
	var best Label
	found := false
	for _, c := range candidates {
		if c.Length != child.Length-1 {
			continue
		}
		if !found || c.Cost < best.Cost {
			best, found = c, true
		}
	}
	return best
}
