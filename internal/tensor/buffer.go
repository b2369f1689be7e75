package tensor

import "fmt"

// Ownership records who is responsible for the storage behind a Buffer.
type Ownership int

// Buffer ownership kinds.
const (
	// Owned storage was allocated for the buffer and lives as long as the buffer does.
	Owned Ownership = iota
	// Aliased storage is borrowed from the caller (typically a mapped model file),
	// which must keep it valid and unmodified for as long as the buffer is in use.
	Aliased
)

// String returns a human-readable ownership name.
func (o Ownership) String() string {
	switch o {
	case Owned:
		return "owned"
	case Aliased:
		return "aliased"
	default:
		return "unknown"
	}
}

// Buffer is a fixed-length sequence of float32 values with an explicit ownership tag.
// The length never changes after construction.
type Buffer struct {
	data      []float32
	ownership Ownership
}

// NewOwnedBuffer allocates an owned buffer of n values from alloc.
// A nil alloc uses DefaultAllocator.
func NewOwnedBuffer(n int, alloc Allocator) (Buffer, error) {
	if n < 0 {
		return Buffer{}, fmt.Errorf("invalid buffer length %d", n)
	}
	data := allocatorOrDefault(alloc).Alloc(n)
	if len(data) < n {
		return Buffer{}, fmt.Errorf("buffer of %d floats: %w", n, ErrAllocationFailure)
	}
	return Buffer{data: data[:n:n], ownership: Owned}, nil
}

// AliasBuffer wraps data without copying it.
func AliasBuffer(data []float32) Buffer {
	return Buffer{data: data[:len(data):len(data)], ownership: Aliased}
}

// Len returns the number of values.
func (b Buffer) Len() int {
	return len(b.data)
}

// Data returns the underlying values. Aliased data must be treated as read-only.
func (b Buffer) Data() []float32 {
	return b.data
}

// At returns the i-th value.
func (b Buffer) At(i int) float32 {
	return b.data[i]
}

// Ownership returns the ownership tag.
func (b Buffer) Ownership() Ownership {
	return b.ownership
}
