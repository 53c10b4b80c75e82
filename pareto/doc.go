// Package pareto implements a generic two-objective Pareto front: a set
// of items where no kept item dominates another on both objectives, used
// by mosp to track the non-dominated (length, cost) labels at a node.
//
// Grounded on original_source/src/search/pareto.rs's
// ParetoFront<T,K1,K2,F1,F2>; realized here with Go generics instead of
// Rust's Fn-typed key-function type parameters, since Go cannot
// parameterize a type by a closure's concrete type the way Rust can —
// the key functions are stored as ordinary func values instead.
package pareto
