package artifact

import "errors"

var (
	// ErrVersionMismatch is returned when a loaded artifact's magic or
	// format version does not match what this package writes.
	ErrVersionMismatch = errors.New("artifact: magic or format version mismatch")

	// ErrCorrupt is returned when a loaded artifact's internal structure
	// fails a sanity check: a non-monotone offsets array or an index
	// pointing outside [0, M). A truncated binary body surfaces as the
	// wrapped read error instead.
	ErrCorrupt = errors.New("artifact: corrupt artifact")
)
