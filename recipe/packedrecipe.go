package recipe

import (
	"errors"
	"fmt"

	"github.com/mixgraph/mixgraph/substance"
)

// BitsPerEntry is the width reserved for each packed substance. 8 bits
// comfortably covers substance.S=16 distinct values with room to spare,
// and divides 64 so no entry straddles a word boundary.
const BitsPerEntry = 8

// MaxEntries is the largest number of substances a single PackedRecipe
// can hold: 128 bits total / BitsPerEntry.
const MaxEntries = 128 / BitsPerEntry

// entryMask isolates the low BitsPerEntry bits of a word.
const entryMask = (uint64(1) << BitsPerEntry) - 1

// ErrFull is returned by Push when the recipe already holds MaxEntries
// substances.
var ErrFull = errors.New("recipe: packed recipe is full")

// PackedRecipe is an ordered, fixed-capacity list of substances packed
// into 128 bits. The zero value is an empty recipe.
type PackedRecipe struct {
	data  [2]uint64
	count int
}

// wordAndShift locates entry index's bit range: data[word] bits
// [shift, shift+BitsPerEntry).
func wordAndShift(index int) (word int, shift uint) {
	pos := index * BitsPerEntry
	return pos / 64, uint(pos % 64)
}

// Push appends s to the recipe. It returns ErrFull once MaxEntries
// substances are already stored.
func (p *PackedRecipe) Push(s substance.Substance) error {
	if p.count >= MaxEntries {
		return ErrFull
	}
	word, shift := wordAndShift(p.count)
	p.data[word] &^= entryMask << shift
	p.data[word] |= uint64(s) << shift
	p.count++
	return nil
}

// Get returns the substance stored at index. The second return value is
// false if index is out of [0, Len()).
func (p *PackedRecipe) Get(index int) (substance.Substance, bool) {
	if index < 0 || index >= p.count {
		return 0, false
	}
	word, shift := wordAndShift(index)
	return substance.Substance((p.data[word] >> shift) & entryMask), true
}

// Set overwrites the substance at index. It returns false if index is out
// of [0, Len()).
func (p *PackedRecipe) Set(index int, s substance.Substance) bool {
	if index < 0 || index >= p.count {
		return false
	}
	word, shift := wordAndShift(index)
	p.data[word] &^= entryMask << shift
	p.data[word] |= uint64(s) << shift
	return true
}

// Pop removes and returns the last substance. The second return value is
// false if the recipe is empty.
func (p *PackedRecipe) Pop() (substance.Substance, bool) {
	if p.count == 0 {
		return 0, false
	}
	s, _ := p.Get(p.count - 1)
	p.count--
	return s, true
}

// Len returns the number of substances currently stored.
func (p *PackedRecipe) Len() int {
	return p.count
}

// Clear empties the recipe in place.
func (p *PackedRecipe) Clear() {
	p.data = [2]uint64{}
	p.count = 0
}

// Substances returns the recipe's contents as an ordinary slice, in
// application order.
func (p *PackedRecipe) Substances() []substance.Substance {
	out := make([]substance.Substance, p.count)
	for i := range out {
		out[i], _ = p.Get(i)
	}
	return out
}

// Bits returns the raw 128-bit packed representation.
func (p *PackedRecipe) Bits() [2]uint64 {
	return p.data
}

// FromSubstances builds a PackedRecipe from an ordered slice, which must
// have length ≤ MaxEntries.
func FromSubstances(substances []substance.Substance) (PackedRecipe, error) {
	var p PackedRecipe
	for _, s := range substances {
		if err := p.Push(s); err != nil {
			return PackedRecipe{}, fmt.Errorf("recipe: %w: %d substances given, max %d", err, len(substances), MaxEntries)
		}
	}
	return p, nil
}

// FromBits reconstructs a PackedRecipe from its raw packed representation
// and a known entry count, e.g. when loading a persisted artifact.
func FromBits(data [2]uint64, count int) PackedRecipe {
	return PackedRecipe{data: data, count: count}
}
