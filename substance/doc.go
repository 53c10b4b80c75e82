// Package substance defines the fixed catalog of S=16 additive substances
// that can be applied to a mixture, plus their single-character wire
// codes ("A"…"P") and per-substance dollar costs used as MOSP edge
// weights.
//
// Names and the ordering below are grounded on
// original_source/src/mixing/mod.rs's Substance enum and SUBSTANCES slice;
// costs are grounded on original_source/src/main.rs's substance_cost table.
package substance
