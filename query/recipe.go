package query

import (
	"errors"
	"fmt"

	"github.com/mixgraph/mixgraph/mosp"
	"github.com/mixgraph/mixgraph/recipe"
	"github.com/mixgraph/mixgraph/substance"
)

// ErrIndexOutOfRange is returned when a caller passes a node index
// outside [0, M) to an operation over a label set.
var ErrIndexOutOfRange = errors.New("query: index out of range")

// Recipe is one reconstructed application order, plus the label it was
// reconstructed from. Packed holds the substances in the same
// fixed-width encoding the results artifact's trace reconstruction is
// expected to round-trip, rather than a plain slice.
type Recipe struct {
	Packed recipe.PackedRecipe
	Length uint8
	Cost   uint16
}

// Substances unpacks the recipe's ordered substance list.
func (r Recipe) Substances() []substance.Substance {
	return r.Packed.Substances()
}

// Lookup returns one Recipe per Pareto label at node idx, in the order
// the labels appear in permanent[idx].
func Lookup(permanent [][]mosp.Label, idx uint32) ([]Recipe, error) {
	if int(idx) >= len(permanent) {
		return nil, fmt.Errorf("%w: %d", ErrIndexOutOfRange, idx)
	}

	labels := permanent[idx]
	recipes := make([]Recipe, len(labels))
	for i, l := range labels {
		packed, err := mosp.PathTo(permanent, l)
		if err != nil {
			return nil, fmt.Errorf("query: reconstruct recipe at node %d: %w", idx, err)
		}
		recipes[i] = Recipe{
			Packed: packed,
			Length: l.Length,
			Cost:   l.Cost,
		}
	}
	return recipes, nil
}
