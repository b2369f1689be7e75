// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public tensor and buffer types used by layercore layers.
//
// Mat is a width × height × channels float32 tensor stored channel-major, with
// each channel plane contiguous. Buffer is a fixed-length weight vector tagged
// Owned or Aliased.
//
// Example:
//
//	m := tensor.NewMat(56, 56, 64, nil)
//	if m.Empty() {
//	    return tensor.ErrAllocationFailure
//	}
//	plane := m.Channel(0) // 56*56 values
package tensor

import (
	"github.com/born-ml/layercore/internal/tensor"
)

// Mat is a 3D float32 tensor with contiguous channel planes.
type Mat = tensor.Mat

// Buffer is a fixed-length float32 vector with an ownership tag.
type Buffer = tensor.Buffer

// Ownership tells whether a Buffer owns or borrows its storage.
type Ownership = tensor.Ownership

// Ownership constants.
const (
	Owned   Ownership = tensor.Owned
	Aliased Ownership = tensor.Aliased
)

// Allocator provides float32 storage.
type Allocator = tensor.Allocator

// AllocatorFunc adapts a function to Allocator.
type AllocatorFunc = tensor.AllocatorFunc

// HeapAllocator allocates on the Go heap.
type HeapAllocator = tensor.HeapAllocator

// ErrAllocationFailure is returned when storage cannot be allocated.
var ErrAllocationFailure = tensor.ErrAllocationFailure

// NewMat allocates a w×h×c mat. Check Empty() for allocation failure.
func NewMat(w, h, c int, alloc Allocator) *Mat {
	return tensor.NewMat(w, h, c, alloc)
}

// FromData wraps data as a w×h×c mat without copying.
func FromData(w, h, c int, data []float32) (*Mat, error) {
	return tensor.FromData(w, h, c, data)
}

// NewOwnedBuffer allocates an owned buffer of n values.
func NewOwnedBuffer(n int, alloc Allocator) (Buffer, error) {
	return tensor.NewOwnedBuffer(n, alloc)
}

// AliasBuffer wraps data as an aliased buffer.
func AliasBuffer(data []float32) Buffer {
	return tensor.AliasBuffer(data)
}
