// Package combinatorial implements a bijective combinatorial encoder: a
// total, order-preserving map between effect subsets of size ≤ K drawn
// from a universe of N elements and a contiguous integer range [0, M).
//
// For a combination {c_1 < c_2 < ... < c_k}, the combinatorial index is
//
//	Σ_{i=1..k} C(c_i, i)
//
// offset by size_offsets[k] so that all combinations of size k precede
// all combinations of size k+1 (the "size-then-lex" ordering contract:
// encode is strictly increasing in |S| first, then in lexicographic order
// of the sorted element list within equal sizes).
//
// Go has no const-generic integers, so unlike the source implementation's
// CombinatorialEncoder<const N: u8, const MAX_K: u8>, Encoder here takes
// n and k as ordinary constructor arguments (see DESIGN.md's "const-generic
// encoder parameters" Open Question resolution). Binomial coefficients are
// precomputed once into a column-major triangle, grounded directly on
// original_source/src/combinatorial/mod.rs's triangle_index layout.
package combinatorial
