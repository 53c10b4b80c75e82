// Package flatstore implements a compressed ragged array: a [][]T stored
// as one flat values slice plus an offsets index, so that row access is
// O(1) and the whole structure is two contiguous allocations instead of
// one per row.
//
// Grounded on original_source/src/flat_storage/mod.rs's FlatStorage<T>;
// realized here with a Go type parameter since FlatStorage<T> needs no
// const-generic argument, only an ordinary one.
package flatstore
