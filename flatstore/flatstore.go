package flatstore

// FlatRagged is an immutable, compressed ragged array of T. Row i's
// elements are values[offsets[i]:offsets[i+1]].
type FlatRagged[T any] struct {
	values  []T
	offsets []uint32
}

// Build compresses rows (a ragged [][]T) into a FlatRagged. Build copies
// the elements; rows' backing slices are not retained, so the caller's
// rows may be modified or discarded afterward.
func Build[T any](rows [][]T) *FlatRagged[T] {
	numRows := len(rows)
	var total int
	for _, r := range rows {
		total += len(r)
	}

	values := make([]T, 0, total)
	offsets := make([]uint32, numRows+1)
	for i, r := range rows {
		offsets[i+1] = offsets[i] + uint32(len(r))
		values = append(values, r...)
	}

	return &FlatRagged[T]{values: values, offsets: offsets}
}

// NumRows returns the number of rows.
func (f *FlatRagged[T]) NumRows() int {
	return len(f.offsets) - 1
}

// Row returns row idx as a slice view into the shared backing array.
// The caller must not mutate the returned slice's elements in place if
// other rows' views are still in use, since rows are contiguous.
func (f *FlatRagged[T]) Row(idx int) []T {
	start := f.offsets[idx]
	end := f.offsets[idx+1]
	return f.values[start:end]
}

// Values returns the flat backing slice of every row's elements,
// concatenated in row order. Used directly by artifact persistence.
func (f *FlatRagged[T]) Values() []T {
	return f.values
}

// Offsets returns the row-boundary index, length NumRows()+1. Used
// directly by artifact persistence.
func (f *FlatRagged[T]) Offsets() []uint32 {
	return f.offsets
}

// FromParts reconstructs a FlatRagged from previously-extracted values
// and offsets, e.g. when loading a persisted artifact. The caller is
// responsible for offsets being a valid, monotonically nondecreasing
// boundary index into values.
func FromParts[T any](values []T, offsets []uint32) *FlatRagged[T] {
	return &FlatRagged[T]{values: values, offsets: offsets}
}
