package tensor

import (
	"errors"
	"math"
)

// ErrAllocationFailure is returned when an allocator yields less storage than requested.
var ErrAllocationFailure = errors.New("allocation failure")

// Allocator provides float32 storage for mats and weight buffers.
//
// Alloc must return a slice of length n, or a shorter (usually nil) slice
// to signal that the allocation could not be satisfied.
type Allocator interface {
	Alloc(n int) []float32
}

// AllocatorFunc adapts an ordinary function to the Allocator interface.
type AllocatorFunc func(n int) []float32

// Alloc calls f(n).
func (f AllocatorFunc) Alloc(n int) []float32 {
	return f(n)
}

// MaxAllocLen is the largest number of values HeapAllocator hands out.
// Counts in the binary formats are int32, so nothing larger can be loaded.
const MaxAllocLen = math.MaxInt32

// HeapAllocator allocates zeroed storage on the Go heap.
type HeapAllocator struct{}

// Alloc returns make([]float32, n), or nil if n is negative or above MaxAllocLen.
func (HeapAllocator) Alloc(n int) []float32 {
	if n < 0 || n > MaxAllocLen {
		return nil
	}
	return make([]float32, n)
}

// DefaultAllocator is used when a nil Allocator is supplied.
var DefaultAllocator Allocator = HeapAllocator{}

func allocatorOrDefault(a Allocator) Allocator {
	if a == nil {
		return DefaultAllocator
	}
	return a
}
