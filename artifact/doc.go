// Package artifact persists the two durable data products this system
// produces — a built effectgraph.Graph and a completed mosp label set —
// to disk and back.
//
// The canonical format is a small hand-rolled binary container: a
// versioned header followed by the graph's successor/predecessor arrays
// or the result set's label records, written field-by-field through
// encoding/binary rather than via Go struct layout, so the on-disk byte
// positions are an explicit contract instead of an implementation detail
// of the compiler's alignment choices. JSON (github.com/goccy/go-json)
// and MessagePack (github.com/vmihailenco/msgpack/v5) variants are also
// provided for interop; both round-trip the same logical fields through
// a flat DTO.
//
// Grounded on original_source/src/effect_graph/mod.rs's savefile-based
// serialize method; the source's savefile crate (a general Rust
// serialization library with versioning support) has no direct Go
// equivalent in use here, so the binary layer is bespoke on
// encoding/binary — see DESIGN.md.
package artifact
