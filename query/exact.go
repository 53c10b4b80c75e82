package query

import (
	"github.com/mixgraph/mixgraph/combinatorial"
	"github.com/mixgraph/mixgraph/effect"
	"github.com/mixgraph/mixgraph/mosp"
)

// ExactMatch looks up the recipes reaching exactly the target effect
// set, i.e. every Pareto label at encode(target).
func ExactMatch(enc *combinatorial.Encoder, permanent [][]mosp.Label, target effect.Set) ([]Recipe, error) {
	idx := enc.Encode(target.Bits())
	return Lookup(permanent, idx)
}
