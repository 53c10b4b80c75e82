package query

import (
	"github.com/mixgraph/mixgraph/baseproduct"
	"github.com/mixgraph/mixgraph/combinatorial"
	"github.com/mixgraph/mixgraph/effect"
	"github.com/mixgraph/mixgraph/mosp"
)

// Summary is one base product's aggregate entry in a Summarize report.
type Summary struct {
	Product        baseproduct.Product
	ReachableNodes int
	Cheapest       *Match
	Shortest       *Match
}

// Summarize reports, for every base product, how many distinct effect
// sets it can reach plus its single cheapest and single shortest
// recipe overall. It exists for the metadata command's aggregate view;
// every number it reports is otherwise already derivable by scanning
// the per-base label sets directly.
func Summarize(enc *combinatorial.Encoder, permanentByProduct [baseproduct.Count][][]mosp.Label) ([baseproduct.Count]Summary, error) {
	var out [baseproduct.Count]Summary

	for _, product := range baseproduct.All {
		permanent := permanentByProduct[product]

		reachable := 0
		for _, labels := range permanent {
			if len(labels) > 0 {
				reachable++
			}
		}

		cheapest, shortest, err := InexactMatch(enc, permanent, effect.Empty)
		if err != nil {
			return out, err
		}

		out[product] = Summary{
			Product:        product,
			ReachableNodes: reachable,
			Cheapest:       cheapest,
			Shortest:       shortest,
		}
	}

	return out, nil
}
