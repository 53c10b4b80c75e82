// Package recipe packs an ordered list of substances into a fixed-width
// integer instead of a slice, so a graph edge label or a map key can be a
// plain value type.
//
// Grounded on original_source/src/packing/mod.rs's
// PackedValues<T, BITS_PER_ENTRY>, which packs entries into a u128. Go has
// no native 128-bit integer, so PackedRecipe here is realized over
// [2]uint64: with BitsPerEntry=8 dividing 64 evenly, each entry's bit
// range never crosses the word boundary, keeping Get/Set/Push arithmetic
// branch-free.
package recipe
