package artifact

import (
	"fmt"
	"io"

	gojson "github.com/goccy/go-json"

	"github.com/mixgraph/mixgraph/effectgraph"
	"github.com/mixgraph/mixgraph/mosp"
	"github.com/mixgraph/mixgraph/substance"
)

// graphDTO is the flat, wire-stable JSON shape of a graph artifact.
type graphDTO struct {
	Version     uint16   `json:"version"`
	N           uint8    `json:"n"`
	K           uint8    `json:"k"`
	S           uint8    `json:"s"`
	M           uint32   `json:"m"`
	Successors  []uint32 `json:"successors"`
	PredValues  []uint32 `json:"pred_values"`
	PredOffsets []uint32 `json:"pred_offsets"`
}

// SaveGraphJSON writes g as JSON to w.
func SaveGraphJSON(w io.Writer, n, k uint8, g *effectgraph.Graph) error {
	predValues, predOffsets := g.RawPredecessors()
	dto := graphDTO{
		Version:     formatVersion,
		N:           n,
		K:           k,
		S:           uint8(substance.S),
		M:           g.M(),
		Successors:  g.RawSuccessors(),
		PredValues:  predValues,
		PredOffsets: predOffsets,
	}
	return gojson.NewEncoder(w).Encode(dto)
}

// LoadGraphJSON reads a graph artifact written by SaveGraphJSON.
func LoadGraphJSON(r io.Reader) (n, k uint8, g *effectgraph.Graph, err error) {
	var dto graphDTO
	if err := gojson.NewDecoder(r).Decode(&dto); err != nil {
		return 0, 0, nil, err
	}
	if dto.Version != formatVersion {
		return 0, 0, nil, ErrVersionMismatch
	}
	if err := validateOffsets(dto.PredOffsets); err != nil {
		return 0, 0, nil, err
	}
	return dto.N, dto.K, effectgraph.FromParts(dto.M, dto.Successors, dto.PredValues, dto.PredOffsets), nil
}

// labelDTO is the flat JSON shape of one mosp.Label.
type labelDTO struct {
	Length        uint8  `json:"length"`
	Cost          uint16 `json:"cost"`
	PrevSubstance uint8  `json:"prev_substance"`
	Backlink      uint32 `json:"backlink"`
}

// resultsDTO is the flat, wire-stable JSON shape of a results artifact.
type resultsDTO struct {
	Version          uint16     `json:"version"`
	N                uint8      `json:"n"`
	K                uint8      `json:"k"`
	S                uint8      `json:"s"`
	BaseProduct      uint8      `json:"base_product"`
	M                uint32     `json:"m"`
	LabelOffsets     []uint32   `json:"label_offsets"`
	Labels           []labelDTO `json:"labels"`
	PriceMultipliers []uint16   `json:"price_multipliers"`
}

// SaveResultsJSON writes a completed mosp label set, along with its
// per-node quantized price multipliers, as JSON to w.
func SaveResultsJSON(w io.Writer, n, k, baseProduct uint8, labels [][]mosp.Label, priceMultipliers []uint16) error {
	if len(priceMultipliers) != len(labels) {
		return fmt.Errorf("artifact: priceMultipliers length %d does not match label count %d", len(priceMultipliers), len(labels))
	}

	offsets := make([]uint32, len(labels)+1)
	var flat []labelDTO
	for i, row := range labels {
		offsets[i+1] = offsets[i] + uint32(len(row))
		for _, l := range row {
			flat = append(flat, labelDTO{Length: l.Length, Cost: l.Cost, PrevSubstance: uint8(l.PrevSubstance), Backlink: l.Backlink})
		}
	}

	dto := resultsDTO{
		Version:          formatVersion,
		N:                n,
		K:                k,
		S:                uint8(substance.S),
		BaseProduct:      baseProduct,
		M:                uint32(len(labels)),
		LabelOffsets:     offsets,
		Labels:           flat,
		PriceMultipliers: priceMultipliers,
	}
	return gojson.NewEncoder(w).Encode(dto)
}

// LoadResultsJSON reads a results artifact written by SaveResultsJSON.
// The returned priceMultipliers are still quantized.
func LoadResultsJSON(r io.Reader) (n, k, baseProduct uint8, labels [][]mosp.Label, priceMultipliers []uint16, err error) {
	var dto resultsDTO
	if err := gojson.NewDecoder(r).Decode(&dto); err != nil {
		return 0, 0, 0, nil, nil, err
	}
	if dto.Version != formatVersion {
		return 0, 0, 0, nil, nil, ErrVersionMismatch
	}
	if err := validateOffsets(dto.LabelOffsets); err != nil {
		return 0, 0, 0, nil, nil, err
	}
	if uint32(len(dto.PriceMultipliers)) != dto.M {
		return 0, 0, 0, nil, nil, ErrCorrupt
	}

	labels = make([][]mosp.Label, dto.M)
	for i := range labels {
		start, end := dto.LabelOffsets[i], dto.LabelOffsets[i+1]
		if end > uint32(len(dto.Labels)) {
			return 0, 0, 0, nil, nil, ErrCorrupt
		}
		row := make([]mosp.Label, 0, end-start)
		for _, l := range dto.Labels[start:end] {
			row = append(row, mosp.Label{
				Length:        l.Length,
				Cost:          l.Cost,
				PrevSubstance: substance.Substance(l.PrevSubstance),
				Backlink:      l.Backlink,
			})
		}
		labels[i] = row
	}

	return dto.N, dto.K, dto.BaseProduct, labels, dto.PriceMultipliers, nil
}
