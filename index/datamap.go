package index

import "fmt"

// DataMap is an IndexMap plus a view onto the application's array for a
// continuous port. Rather than the raw pointer arithmetic of the C++
// original, the Go translation addresses application memory through a
// byte slice and an element size, which keeps the runtime's read/write
// access bounds-checked by the Go runtime instead of by convention.
type DataMap struct {
	IndexMap    *Map
	Base        []byte
	ElementSize int
}

// NewDataMap builds a DataMap over base, treating it as a contiguous array
// of elements of size elementSize addressed by indexMap.
func NewDataMap(indexMap *Map, base []byte, elementSize int) *DataMap {
	if elementSize <= 0 {
		panic(fmt.Sprintf("index: element size must be positive, got %d", elementSize))
	}
	return &DataMap{IndexMap: indexMap, Base: base, ElementSize: elementSize}
}

// At returns the byte slice for the local element at position i within the
// DataMap's own rank-local numbering (0-based from the start of Base).
func (d *DataMap) At(i int) []byte {
	start := i * d.ElementSize
	end := start + d.ElementSize
	if start < 0 || end > len(d.Base) {
		panic(fmt.Sprintf("index: element %d out of bounds for data map of %d bytes", i, len(d.Base)))
	}
	return d.Base[start:end]
}

// Count returns the number of elements addressable in Base.
func (d *DataMap) Count() int {
	return len(d.Base) / d.ElementSize
}
