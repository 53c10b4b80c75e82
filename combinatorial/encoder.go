package combinatorial

import (
	"fmt"
	"math/bits"
	"sort"
)

// Encoder is a bijection between effect subsets of size ≤ K drawn from a
// universe of N elements (represented as the low N bits of a uint64) and
// a contiguous range [0, MaximumIndex()).
//
// Encoder is immutable after construction and safe for concurrent read
// access from multiple goroutines.
type Encoder struct {
	n, k uint8

	// binom holds Pascal's triangle C(row, col) for row,col in [0,n], laid
	// out column-major per triangleIndex — grounded on
	// original_source/src/combinatorial/mod.rs's layout, which keeps the
	// working set for a single encode/decode call tight.
	binom []uint32

	// sizeOffsets[s] is the number of combinations of size < s; it has
	// length k+2, with sizeOffsets[k+1] == MaximumIndex().
	sizeOffsets []uint32
}

// triangleIndex computes the flat column-major index for (row, column) in
// a triangle with n+1 rows, mirroring
// original_source/src/combinatorial/mod.rs::triangle_index exactly.
func triangleIndex(row, column, n uint8) int {
	r, c, nn := int(row), int(column), int(n)
	return c*(2*nn-c+1)/2 + r
}

func binomialCoeff(triangle []uint32, row, column, n uint8) uint32 {
	if row < column {
		return 0
	}
	return triangle[triangleIndex(row, column, n)]
}

// New builds an Encoder for subsets of the first n elements with size at
// most k. n must be ≤ 64 (Set is backed by a uint64) and k ≤ n.
func New(n, k uint8) *Encoder {
	if k > n {
		panic("combinatorial: k must be <= n")
	}

	binom := make([]uint32, (int(n)+1)*(int(n)+2)/2)
	binom[0] = 1

	for row := uint8(1); ; row++ {
		for column := uint8(0); column <= row; column++ {
			var v uint32
			if column == 0 || column == row {
				v = 1
			} else {
				v = binomialCoeff(binom, row-1, column-1, n) + binomialCoeff(binom, row-1, column, n)
			}
			binom[triangleIndex(row, column, n)] = v
		}
		if row == n {
			break
		}
	}

	sizeOffsets := make([]uint32, int(k)+2)
	var running uint32
	for s := uint8(0); s <= k; s++ {
		sizeOffsets[s] = running
		running += binom[triangleIndex(n, s, n)]
	}
	sizeOffsets[int(k)+1] = running

	return &Encoder{n: n, k: k, binom: binom, sizeOffsets: sizeOffsets}
}

// N returns the size of the effect universe this Encoder was built for.
func (e *Encoder) N() uint8 { return e.n }

// K returns the maximum subset size this Encoder was built for.
func (e *Encoder) K() uint8 { return e.k }

// MaximumIndex returns M, the number of valid indices: Σ_{s=0..K} C(N,s).
func (e *Encoder) MaximumIndex() uint32 {
	return e.sizeOffsets[len(e.sizeOffsets)-1]
}

// Encode maps a bitmask (its popcount must be ≤ K) to its index in
// [0, MaximumIndex()). Encode is strictly increasing in popcount, and
// within equal popcount, in the lexicographic order of the sorted element
// list — the size-then-lex ordering contract.
//
// Encode with a bitmask whose popcount exceeds K is a contract violation;
// it panics rather than returning an error, since a caller that builds
// an oversized bitset has a bug worth surfacing immediately.
func (e *Encoder) Encode(bitset uint64) uint32 {
	k := bits.OnesCount64(bitset)
	if k > int(e.k) {
		panic(fmt.Sprintf("combinatorial: encode: |S|=%d exceeds K=%d", k, e.k))
	}

	var localIdx uint32
	remaining := bitset
	counter := uint8(1)
	for remaining != 0 {
		elem := uint8(bits.TrailingZeros64(remaining))
		remaining &= remaining - 1 // clear lowest set bit

		if elem >= counter {
			localIdx += e.binom[triangleIndex(elem, counter, e.n)]
		}
		counter++
	}

	return e.sizeOffsets[k] + localIdx
}

// Decode is the inverse of Encode. Decode with idx ≥ MaximumIndex() is a
// contract violation; it panics.
func (e *Encoder) Decode(idx uint32) uint64 {
	if idx >= e.MaximumIndex() {
		panic(fmt.Sprintf("combinatorial: decode: idx=%d out of range [0,%d)", idx, e.MaximumIndex()))
	}

	// Bucket search: find the largest s with sizeOffsets[s] <= idx.
	s := sort.Search(len(e.sizeOffsets), func(i int) bool {
		return e.sizeOffsets[i] > idx
	}) - 1
	k := uint8(s)

	var bitset uint64
	localIdx := idx - e.sizeOffsets[k]
	for k > 0 {
		elem := e.n
		value := e.binom[triangleIndex(elem, k, e.n)]
		for value > localIdx {
			elem--
			if elem < k {
				value = 0
			} else {
				value = e.binom[triangleIndex(elem, k, e.n)]
			}
		}
		bitset |= 1 << elem
		localIdx -= value
		k--
	}

	return bitset
}
