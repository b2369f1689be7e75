// Package tensor provides the 3D float32 mat and weight buffer types used by layers.
package tensor

import (
	"fmt"
	"math"
)

// Mat is a 3D float32 tensor laid out channel-major: each of the c channel
// planes holds w*h contiguous values.
//
// A Mat whose storage could not be allocated reports Empty() == true.
// A zero-sized Mat (any dimension 0) is valid and not empty.
type Mat struct {
	data []float32
	w    int
	h    int
	c    int
}

// NewMat allocates a w×h×c mat from alloc (nil uses DefaultAllocator).
// Callers must check Empty() to detect allocation failure.
func NewMat(w, h, c int, alloc Allocator) *Mat {
	m := &Mat{w: w, h: h, c: c}
	if m.invalid() {
		return m
	}
	data := allocatorOrDefault(alloc).Alloc(m.Total())
	if len(data) < m.Total() {
		return m
	}
	m.data = data[:m.Total():m.Total()]
	return m
}

// FromData wraps data as a w×h×c mat without copying.
func FromData(w, h, c int, data []float32) (*Mat, error) {
	m := &Mat{w: w, h: h, c: c}
	if m.invalid() {
		return nil, fmt.Errorf("invalid mat dimensions %dx%dx%d", w, h, c)
	}
	if len(data) != m.Total() {
		return nil, fmt.Errorf("data length %d does not match %dx%dx%d", len(data), w, h, c)
	}
	m.data = data
	return m, nil
}

// invalid reports negative dimensions or a w*h*c that overflows int.
func (m *Mat) invalid() bool {
	if m.w < 0 || m.h < 0 || m.c < 0 {
		return true
	}
	if m.h > 0 && m.w > math.MaxInt/m.h {
		return true
	}
	plane := m.w * m.h
	return m.c > 0 && plane > math.MaxInt/m.c
}

// W returns the width.
func (m *Mat) W() int { return m.w }

// H returns the height.
func (m *Mat) H() int { return m.h }

// C returns the number of channels.
func (m *Mat) C() int { return m.c }

// PlaneSize returns the number of values in one channel plane (w*h).
func (m *Mat) PlaneSize() int {
	return m.w * m.h
}

// Total returns the number of values across all channels.
func (m *Mat) Total() int {
	return m.w * m.h * m.c
}

// Empty reports whether the mat lacks the storage its dimensions require.
// Dimensions whose product overflows int always report empty.
func (m *Mat) Empty() bool {
	if m == nil || m.invalid() {
		return true
	}
	return len(m.data) < m.Total()
}

// Data returns all values, channel-major.
func (m *Mat) Data() []float32 {
	return m.data
}

// Channel returns the contiguous plane for channel q.
// Writes through the returned slice modify the mat.
func (m *Mat) Channel(q int) []float32 {
	size := m.PlaneSize()
	return m.data[q*size : (q+1)*size : (q+1)*size]
}

// Clone returns a deep copy of m using the default allocator.
func (m *Mat) Clone() *Mat {
	out := NewMat(m.w, m.h, m.c, nil)
	copy(out.data, m.data)
	return out
}

// String returns a short description of the mat's shape.
func (m *Mat) String() string {
	return fmt.Sprintf("Mat(%dx%dx%d)", m.w, m.h, m.c)
}
