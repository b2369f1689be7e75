package serialization

import (
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/born-ml/layercore/internal/tensor"
)

// Cursor reads a model blob held in memory and advances past what it reads.
//
// A Cursor implements both ParamReader and ModelReader. It performs no size
// validation of its own: the caller guarantees that enough bytes remain.
// Reading past the end of the blob panics with an index-out-of-range error.
//
// Weight blocks are aliased, not copied, when they are 4-byte aligned. The blob
// must remain valid and unmodified for as long as any buffer returned by
// ReadFloat32s is in use. Blobs from NewMmapReader or make([]byte) start
// aligned; EncodeBlob keeps weights at offset 4.
// Aliasing reinterprets bytes in host order, which matches the little-endian
// encoding on every platform Go supports for this package.
type Cursor struct {
	data []byte
	pos  int
}

// NewCursor returns a cursor positioned at the start of data.
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Pos returns the current offset from the start of the blob.
func (c *Cursor) Pos() int {
	return c.pos
}

// Remaining returns the number of bytes after the current position.
func (c *Cursor) Remaining() int {
	return len(c.data) - c.pos
}

// ReadInt32 reads one little-endian int32 and advances by 4 bytes.
func (c *Cursor) ReadInt32() int32 {
	v := int32(binary.LittleEndian.Uint32(c.data[c.pos : c.pos+4])) //nolint:gosec // G115: two's complement reinterpretation
	c.pos += 4
	return v
}

// ReadInt implements ParamReader. It never fails.
func (c *Cursor) ReadInt() (int, error) {
	return int(c.ReadInt32()), nil
}

// ReadFloat32s implements ModelReader by aliasing n float32 values at the
// current position, then advancing by n*4 bytes.
//
// A block that is not 4-byte aligned, for example in a cursor over blob[1:],
// cannot be viewed as []float32. It is decoded into an owned buffer instead,
// which is the only case that can fail (with tensor.ErrAllocationFailure).
func (c *Cursor) ReadFloat32s(n int) (tensor.Buffer, error) {
	if n == 0 {
		return tensor.AliasBuffer(nil), nil
	}
	block := c.data[c.pos : c.pos+n*4]
	if uintptr(unsafe.Pointer(&block[0]))%unsafe.Alignof(float32(0)) != 0 {
		buf, err := tensor.NewOwnedBuffer(n, nil)
		if err != nil {
			return tensor.Buffer{}, err
		}
		for i := range buf.Data() {
			buf.Data()[i] = math.Float32frombits(binary.LittleEndian.Uint32(block[i*4:]))
		}
		c.pos += n * 4
		return buf, nil
	}
	//nolint:gosec // unsafe.Slice for zero-copy weights, length bounded by block
	view := unsafe.Slice((*float32)(unsafe.Pointer(&block[0])), n)
	c.pos += n * 4
	return tensor.AliasBuffer(view), nil
}
