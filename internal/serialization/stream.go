package serialization

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/born-ml/layercore/internal/tensor"
)

// TextParamReader reads whitespace-delimited decimal integers.
type TextParamReader struct {
	r io.Reader
}

// NewTextParamReader returns a ParamReader over a textual param stream.
// Consecutive reads share one buffer, so several layers can be read from the same stream.
func NewTextParamReader(r io.Reader) *TextParamReader {
	if _, ok := r.(io.RuneScanner); ok {
		return &TextParamReader{r: r}
	}
	return &TextParamReader{r: bufio.NewReader(r)}
}

// ReadInt parses the next integer token.
// Returns ErrMalformedConfig if no integer could be parsed.
func (p *TextParamReader) ReadInt() (int, error) {
	var v int
	n, err := fmt.Fscan(p.r, &v)
	if n != 1 {
		return 0, fmt.Errorf("%w: parsed %d of 1 values: %v", ErrMalformedConfig, n, err)
	}
	return v, nil
}

// BinaryParamReader reads raw little-endian int32 values.
type BinaryParamReader struct {
	r io.Reader
}

// NewBinaryParamReader returns a ParamReader over a binary param stream.
func NewBinaryParamReader(r io.Reader) *BinaryParamReader {
	return &BinaryParamReader{r: r}
}

// ReadInt reads one little-endian int32.
//
// Short reads are not detected: missing bytes decode as zero and no error is
// returned. Callers that need a size guarantee must validate the stream length
// themselves.
func (p *BinaryParamReader) ReadInt() (int, error) {
	var buf [4]byte
	_, _ = io.ReadFull(p.r, buf[:])
	return int(int32(binary.LittleEndian.Uint32(buf[:]))), nil //nolint:gosec // G115: two's complement reinterpretation
}

// StreamModelReader copies weight blocks out of a binary stream into owned buffers.
type StreamModelReader struct {
	r     io.Reader
	alloc tensor.Allocator
}

// NewStreamModelReader returns a ModelReader over r. A nil alloc uses tensor.DefaultAllocator.
func NewStreamModelReader(r io.Reader, alloc tensor.Allocator) *StreamModelReader {
	return &StreamModelReader{r: r, alloc: alloc}
}

// ReadFloat32s allocates an owned buffer of n values and fills it with a
// single block read of n*4 little-endian bytes.
//
// Returns tensor.ErrAllocationFailure if the buffer cannot be allocated and
// ErrShortRead if the stream holds fewer than n*4 bytes. On error no buffer
// is returned.
func (s *StreamModelReader) ReadFloat32s(n int) (tensor.Buffer, error) {
	buf, err := tensor.NewOwnedBuffer(n, s.alloc)
	if err != nil {
		return tensor.Buffer{}, err
	}
	if err := binary.Read(s.r, binary.LittleEndian, buf.Data()); err != nil {
		return tensor.Buffer{}, fmt.Errorf("%w: want %d bytes: %v", ErrShortRead, n*4, err)
	}
	return buf, nil
}
