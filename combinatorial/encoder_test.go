package combinatorial_test

import (
	"math/bits"
	"testing"

	"github.com/mixgraph/mixgraph/combinatorial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpectedSizeN34K8(t *testing.T) {
	enc := combinatorial.New(34, 8)
	assert.Equal(t, uint32(25574936), enc.MaximumIndex())
}

func TestRoundTripSmallUniverse(t *testing.T) {
	enc := combinatorial.New(5, 3)

	var all []uint64
	for mask := uint64(0); mask < (1 << 5); mask++ {
		if bits.OnesCount64(mask) <= 3 {
			all = append(all, mask)
		}
	}

	seen := make(map[uint32]uint64, len(all))
	for _, mask := range all {
		idx := enc.Encode(mask)
		require.Less(t, idx, enc.MaximumIndex())
		if other, ok := seen[idx]; ok {
			t.Fatalf("collision: %#b and %#b both encode to %d", mask, other, idx)
		}
		seen[idx] = mask

		got := enc.Decode(idx)
		assert.Equal(t, mask, got, "decode(encode(%#b)) should round-trip", mask)
	}

	assert.Len(t, seen, len(all), "encode should be a bijection onto [0, M)")
}

func TestOrderingIsSizeThenLex(t *testing.T) {
	enc := combinatorial.New(6, 4)

	empty := enc.Encode(0)
	assert.Equal(t, uint32(0), empty, "the empty set must be index 0")

	// Singletons {0}, {1}, {2} must appear, in order, immediately after ∅.
	idx0 := enc.Encode(1 << 0)
	idx1 := enc.Encode(1 << 1)
	idx2 := enc.Encode(1 << 2)
	assert.Less(t, empty, idx0)
	assert.Less(t, idx0, idx1)
	assert.Less(t, idx1, idx2)

	// Every size-1 combination must precede every size-2 combination.
	maxSingleton := enc.Encode(1 << 5)
	minPair := enc.Encode((1 << 0) | (1 << 1))
	assert.Less(t, maxSingleton, minPair)
}

func TestEncodeRejectsOversizeSet(t *testing.T) {
	enc := combinatorial.New(8, 2)
	assert.Panics(t, func() {
		enc.Encode(0b0000_0111) // popcount 3 > K=2
	})
}

func TestDecodeRejectsOutOfRangeIndex(t *testing.T) {
	enc := combinatorial.New(8, 2)
	assert.Panics(t, func() {
		enc.Decode(enc.MaximumIndex())
	})
}

func TestFullUniverseEqualsTwoPowN(t *testing.T) {
	// K == N means every subset is admissible, so M == 2^N.
	enc := combinatorial.New(4, 4)
	assert.Equal(t, uint32(16), enc.MaximumIndex())
}

func TestAccessors(t *testing.T) {
	enc := combinatorial.New(34, 8)
	assert.Equal(t, uint8(34), enc.N())
	assert.Equal(t, uint8(8), enc.K())
}
