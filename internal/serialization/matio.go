package serialization

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/born-ml/layercore/internal/tensor"
)

// ReadMat reads a w×h×c mat stored as raw little-endian float32 values,
// channel-major with no header. A nil alloc uses tensor.DefaultAllocator.
func ReadMat(r io.Reader, w, h, c int, alloc tensor.Allocator) (*tensor.Mat, error) {
	m := tensor.NewMat(w, h, c, alloc)
	if m.Empty() {
		return nil, fmt.Errorf("mat %dx%dx%d: %w", w, h, c, tensor.ErrAllocationFailure)
	}
	if err := binary.Read(r, binary.LittleEndian, m.Data()); err != nil {
		return nil, fmt.Errorf("%w: mat %dx%dx%d: %v", ErrShortRead, w, h, c, err)
	}
	return m, nil
}

// WriteMat writes m as raw little-endian float32 values, channel-major.
func WriteMat(w io.Writer, m *tensor.Mat) error {
	for q := 0; q < m.C(); q++ {
		if err := binary.Write(w, binary.LittleEndian, m.Channel(q)); err != nil {
			return fmt.Errorf("failed to write channel %d: %w", q, err)
		}
	}
	return nil
}
