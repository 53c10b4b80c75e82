package artifact

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/mixgraph/mixgraph/effectgraph"
	"github.com/mixgraph/mixgraph/mosp"
	"github.com/mixgraph/mixgraph/substance"
)

const (
	graphMagic    uint32 = 0x4D584758 // "MXGX"
	resultsMagic  uint32 = 0x4D585253 // "MXRS"
	formatVersion uint16 = 1
)

// graphHeader is the fixed 14-byte prefix of a binary graph artifact.
type graphHeader struct {
	Magic   uint32
	Version uint16
	N       uint8
	K       uint8
	S       uint8
	_       uint8 // reserved, always zero
	M       uint32
}

// SaveGraph writes g's successor and predecessor arrays to w in the
// canonical binary container format.
func SaveGraph(w io.Writer, n, k uint8, g *effectgraph.Graph) error {
	bw := bufio.NewWriter(w)

	hdr := graphHeader{Magic: graphMagic, Version: formatVersion, N: n, K: k, S: uint8(substance.S), M: g.M()}
	if err := writeGraphHeader(bw, hdr); err != nil {
		return err
	}

	if err := binary.Write(bw, binary.LittleEndian, g.RawSuccessors()); err != nil {
		return fmt.Errorf("artifact: write successors: %w", err)
	}

	predValues, predOffsets := g.RawPredecessors()
	if err := binary.Write(bw, binary.LittleEndian, predOffsets); err != nil {
		return fmt.Errorf("artifact: write predecessor offsets: %w", err)
	}
	if err := binary.Write(bw, binary.LittleEndian, predValues); err != nil {
		return fmt.Errorf("artifact: write predecessor values: %w", err)
	}

	return bw.Flush()
}

// LoadGraph reads a binary graph artifact previously written by
// SaveGraph.
func LoadGraph(r io.Reader) (n, k uint8, g *effectgraph.Graph, err error) {
	br := bufio.NewReader(r)

	hdr, err := readGraphHeader(br)
	if err != nil {
		return 0, 0, nil, err
	}

	successors := make([]uint32, int(hdr.M)*int(hdr.S))
	if err := binary.Read(br, binary.LittleEndian, successors); err != nil {
		return 0, 0, nil, fmt.Errorf("artifact: read successors: %w", err)
	}

	predOffsets := make([]uint32, hdr.M+1)
	if err := binary.Read(br, binary.LittleEndian, predOffsets); err != nil {
		return 0, 0, nil, fmt.Errorf("artifact: read predecessor offsets: %w", err)
	}
	if err := validateOffsets(predOffsets); err != nil {
		return 0, 0, nil, err
	}

	predValues := make([]uint32, predOffsets[len(predOffsets)-1])
	if err := binary.Read(br, binary.LittleEndian, predValues); err != nil {
		return 0, 0, nil, fmt.Errorf("artifact: read predecessor values: %w", err)
	}
	for _, v := range predValues {
		if v >= hdr.M {
			return 0, 0, nil, fmt.Errorf("%w: predecessor index %d outside [0,%d)", ErrCorrupt, v, hdr.M)
		}
	}

	return hdr.N, hdr.K, effectgraph.FromParts(hdr.M, successors, predValues, predOffsets), nil
}

func writeGraphHeader(w io.Writer, hdr graphHeader) error {
	for _, field := range []any{hdr.Magic, hdr.Version, hdr.N, hdr.K, hdr.S, uint8(0), hdr.M} {
		if err := binary.Write(w, binary.LittleEndian, field); err != nil {
			return fmt.Errorf("artifact: write graph header: %w", err)
		}
	}
	return nil
}

func readGraphHeader(r io.Reader) (graphHeader, error) {
	var hdr graphHeader
	var reserved uint8
	fields := []any{&hdr.Magic, &hdr.Version, &hdr.N, &hdr.K, &hdr.S, &reserved, &hdr.M}
	for _, field := range fields {
		if err := binary.Read(r, binary.LittleEndian, field); err != nil {
			return graphHeader{}, fmt.Errorf("artifact: read graph header: %w", err)
		}
	}
	if hdr.Magic != graphMagic || hdr.Version != formatVersion {
		return graphHeader{}, ErrVersionMismatch
	}
	return hdr, nil
}

// resultsHeader is the fixed prefix of a binary results artifact.
type resultsHeader struct {
	Magic       uint32
	Version     uint16
	N           uint8
	K           uint8
	S           uint8
	BaseProduct uint8
	QuantScale  uint16
	M           uint32
}

// SaveResults writes a completed mosp label set and its per-node
// quantized price multipliers to w in the canonical binary container
// format. priceMultipliers must have one entry per node, already
// quantized via QuantizePrice.
func SaveResults(w io.Writer, n, k uint8, baseProduct uint8, labels [][]mosp.Label, priceMultipliers []uint16) error {
	bw := bufio.NewWriter(w)

	m := uint32(len(labels))
	if uint32(len(priceMultipliers)) != m {
		return fmt.Errorf("artifact: priceMultipliers length %d does not match label count %d", len(priceMultipliers), m)
	}

	hdr := resultsHeader{
		Magic: resultsMagic, Version: formatVersion,
		N: n, K: k, S: uint8(substance.S), BaseProduct: baseProduct, QuantScale: quantScale, M: m,
	}
	if err := writeResultsHeader(bw, hdr); err != nil {
		return err
	}

	offsets := make([]uint32, m+1)
	for i, row := range labels {
		offsets[i+1] = offsets[i] + uint32(len(row))
	}
	if err := binary.Write(bw, binary.LittleEndian, offsets); err != nil {
		return fmt.Errorf("artifact: write label offsets: %w", err)
	}

	for _, row := range labels {
		for _, label := range row {
			if err := writeLabel(bw, label); err != nil {
				return err
			}
		}
	}

	if err := binary.Write(bw, binary.LittleEndian, priceMultipliers); err != nil {
		return fmt.Errorf("artifact: write price multipliers: %w", err)
	}

	return bw.Flush()
}

// LoadResults reads a binary results artifact previously written by
// SaveResults. The returned priceMultipliers are still quantized;
// callers pass individual entries to DequantizePrice.
func LoadResults(r io.Reader) (n, k, baseProduct uint8, labels [][]mosp.Label, priceMultipliers []uint16, err error) {
	br := bufio.NewReader(r)

	hdr, err := readResultsHeader(br)
	if err != nil {
		return 0, 0, 0, nil, nil, err
	}

	offsets := make([]uint32, hdr.M+1)
	if err := binary.Read(br, binary.LittleEndian, offsets); err != nil {
		return 0, 0, 0, nil, nil, fmt.Errorf("artifact: read label offsets: %w", err)
	}
	if err := validateOffsets(offsets); err != nil {
		return 0, 0, 0, nil, nil, err
	}

	labels = make([][]mosp.Label, hdr.M)
	for i := range labels {
		count := offsets[i+1] - offsets[i]
		row := make([]mosp.Label, count)
		for j := range row {
			label, err := readLabel(br)
			if err != nil {
				return 0, 0, 0, nil, nil, err
			}
			if label.HasBacklink() && label.Backlink >= hdr.M {
				return 0, 0, 0, nil, nil, fmt.Errorf("%w: backlink %d outside [0,%d)", ErrCorrupt, label.Backlink, hdr.M)
			}
			row[j] = label
		}
		labels[i] = row
	}

	priceMultipliers = make([]uint16, hdr.M)
	if err := binary.Read(br, binary.LittleEndian, priceMultipliers); err != nil {
		return 0, 0, 0, nil, nil, fmt.Errorf("artifact: read price multipliers: %w", err)
	}

	return hdr.N, hdr.K, hdr.BaseProduct, labels, priceMultipliers, nil
}

func writeResultsHeader(w io.Writer, hdr resultsHeader) error {
	fields := []any{hdr.Magic, hdr.Version, hdr.N, hdr.K, hdr.S, hdr.BaseProduct, hdr.QuantScale, hdr.M}
	for _, field := range fields {
		if err := binary.Write(w, binary.LittleEndian, field); err != nil {
			return fmt.Errorf("artifact: write results header: %w", err)
		}
	}
	return nil
}

func readResultsHeader(r io.Reader) (resultsHeader, error) {
	var hdr resultsHeader
	fields := []any{&hdr.Magic, &hdr.Version, &hdr.N, &hdr.K, &hdr.S, &hdr.BaseProduct, &hdr.QuantScale, &hdr.M}
	for _, field := range fields {
		if err := binary.Read(r, binary.LittleEndian, field); err != nil {
			return resultsHeader{}, fmt.Errorf("artifact: read results header: %w", err)
		}
	}
	if hdr.Magic != resultsMagic || hdr.Version != formatVersion {
		return resultsHeader{}, ErrVersionMismatch
	}
	return hdr, nil
}

// writeLabel writes one Label as its stable 8-byte record: length(1),
// cost(2), prevSubstance(1), backlink(4).
func writeLabel(w io.Writer, l mosp.Label) error {
	fields := []any{l.Length, l.Cost, uint8(l.PrevSubstance), l.Backlink}
	for _, field := range fields {
		if err := binary.Write(w, binary.LittleEndian, field); err != nil {
			return fmt.Errorf("artifact: write label: %w", err)
		}
	}
	return nil
}

func readLabel(r io.Reader) (mosp.Label, error) {
	var l mosp.Label
	var prevSubstance uint8
	fields := []any{&l.Length, &l.Cost, &prevSubstance, &l.Backlink}
	for _, field := range fields {
		if err := binary.Read(r, binary.LittleEndian, field); err != nil {
			return mosp.Label{}, fmt.Errorf("artifact: read label: %w", err)
		}
	}
	l.PrevSubstance = substance.Substance(prevSubstance)
	return l, nil
}

// validateOffsets checks that a flat-ragged offsets array is
// monotonically nondecreasing and starts at zero.
func validateOffsets(offsets []uint32) error {
	if len(offsets) == 0 || offsets[0] != 0 {
		return fmt.Errorf("%w: offsets must start at 0", ErrCorrupt)
	}
	for i := 1; i < len(offsets); i++ {
		if offsets[i] < offsets[i-1] {
			return fmt.Errorf("%w: offsets must be nondecreasing", ErrCorrupt)
		}
	}
	return nil
}
