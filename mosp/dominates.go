package mosp

import (
	"log"

	"github.com/mixgraph/mixgraph/pareto"
)

// labelNondominatedNonequal reports whether label should be admitted
// alongside existing: false if some existing label dominates it or
// duplicates it exactly. Domination itself is decided by a pareto.Front
// seeded with existing, keyed on (Length, Cost) the same way the source
// algorithm's derived Ord does.
//
// Finding an existing label that the *candidate* dominates should never
// happen — the algorithm only ever proposes candidates built from
// already-settled labels, so a newly-settled one should never be able to
// beat something already on file — but if it does, the candidate is
// logged and kept rather than silently discarded, since discarding it
// would make the search miss a Pareto-optimal path.
func labelNondominatedNonequal(label Label, existing []Label) bool {
	front := pareto.New(
		func(l Label) uint8 { return l.Length },
		func(l Label) uint16 { return l.Cost },
	)
	for _, ex := range existing {
		front.Add(ex)
	}

	before := front.Len()
	admitted := front.Add(label)
	if admitted && front.Len() < before+1 {
		log.Printf("mosp: new label dominates an existing one: %+v", label)
	}
	return admitted
}
