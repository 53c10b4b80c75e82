// Package effectgraph builds the dense effect-transition multigraph:
// one node per combinatorial index in [0, M), one outgoing edge per
// substance (S edges per node, self-loops where a substance leaves the
// effect set unchanged), and a predecessor index for backward traversal
// during search.
//
// Grounded on original_source/src/effect_graph/mod.rs's EffectGraph::new.
// Construction there recurses implicitly through Rust's range iterator;
// here it is an explicit streaming loop over [0, M) so construction
// never recurses (M can exceed 25 million for the N=34,K=8
// configuration, which would overflow a call stack). successors is a
// flat []uint32 of length M*S instead of a Vec<[u32; S]>, since Go has
// no fixed-size-array-of-const-generic-width equivalent; predecessors
// is a flatstore.FlatRagged[uint32] instead of a Vec<Vec<u32>>, for the
// same compactness.
package effectgraph
