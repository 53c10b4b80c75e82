// Package query answers the four read-only questions this system exists
// to serve, against a precomputed per-base-product label set: lookup by
// effect index, exact match, inexact ("contains these effects") match,
// and profit ranking. A fifth operation, Summarize, aggregates across
// every base product for the command surface's metadata report.
//
// Every operation here is a pure function over a combinatorial.Encoder
// and the MOSP label set produced by mosp.Run — none of it mutates its
// inputs, and the label set may be shared read-only across concurrent
// callers.
// Inexact search and profit ranking partition [0, M) into shards and
// reduce with golang.org/x/sync/errgroup plus a bounded semaphore,
// mirroring the fan-out pattern in
// SeleniaProject-Orizon/cmd/orizon/pkg/utils/graph.go.
//
// Grounded on original_source/src/search/mod.rs's lookup/search/profit
// functions.
package query
