package mosp

import (
	"math"

	"github.com/mixgraph/mixgraph/substance"
)

// Niche marks a Label with no predecessor: the starting node's label.
// The name mirrors the "niche" sentinel the source implementation uses
// for its backlink field's absent-value marker.
const Niche uint32 = math.MaxUint32

// Label is one Pareto-tracked (length, cost) path record at a node, plus
// enough of a backlink to reconstruct the path: the node a Label belongs
// to is implicit (the slice this Label lives in is indexed by node), so
// only the substance used to reach it and the node it was reached from are
// stored.
type Label struct {
	Length        uint8
	Cost          uint16
	PrevSubstance substance.Substance
	Backlink      uint32
}

// HasBacklink reports whether l has a predecessor, i.e. is not a
// starting label.
func (l Label) HasBacklink() bool {
	return l.Backlink != Niche
}

// Less orders labels the way the source's derived field-order Ord does:
// primarily by Length, then Cost, then PrevSubstance, then Backlink. This
// total order orders the pending queue and picks the smallest among
// several non-dominated backfill candidates; the Pareto dominance check
// in dominates.go is what actually drives admission.
func (l Label) Less(other Label) bool {
	if l.Length != other.Length {
		return l.Length < other.Length
	}
	if l.Cost != other.Cost {
		return l.Cost < other.Cost
	}
	if l.PrevSubstance != other.PrevSubstance {
		return l.PrevSubstance < other.PrevSubstance
	}
	return l.Backlink < other.Backlink
}
