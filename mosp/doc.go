// Package mosp implements a multi-objective shortest path search: a
// label-setting algorithm over effectgraph.Graph tracking, at every
// node, the Pareto-minimal set of (path length, cost) labels reachable
// from a starting node.
//
// Grounded on original_source/src/mosp/mod.rs, which implements
// Maristany de las Casas, Sedeño-Noda, Borndörfer, "An Improved
// Multiobjective Shortest Path Algorithm" (Computers and Operations
// Research 135, 2021). The source's priority_queue::PriorityQueue with
// Reverse-wrapped labels and push_increase is realized here as an
// ordinary container/heap min-heap with an index map for decrease-key,
// in the style of katalvlaran/lvlath/dijkstra's runner.
package mosp
