package serialization

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/layercore/internal/tensor"
)

func TestTextParamReader(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []int
	}{
		{"single", "4", []int{4}},
		{"trailing newline", "4\n", []int{4}},
		{"leading whitespace", "  \n\t 12", []int{12}},
		{"several layers", "3 0\n7", []int{3, 0, 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pr := NewTextParamReader(strings.NewReader(tt.input))
			for _, want := range tt.want {
				got, err := pr.ReadInt()
				require.NoError(t, err)
				assert.Equal(t, want, got)
			}
		})
	}
}

func TestTextParamReaderPlainReader(t *testing.T) {
	// OneByteReader is not an io.RuneScanner, so the reader gets buffered.
	pr := NewTextParamReader(iotest.OneByteReader(strings.NewReader("3 0\n7")))

	for _, want := range []int{3, 0, 7} {
		v, err := pr.ReadInt()
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}

	_, err := pr.ReadInt()
	assert.True(t, errors.Is(err, ErrMalformedConfig), "got %v", err)
}

func TestTextParamReaderMalformed(t *testing.T) {
	for _, input := range []string{"", "   ", "abc", "x4"} {
		t.Run(input, func(t *testing.T) {
			_, err := NewTextParamReader(strings.NewReader(input)).ReadInt()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedConfig), "got %v", err)
		})
	}
}

func TestBinaryParamReader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteParamBinary(&buf, 5))
	require.NoError(t, WriteParamBinary(&buf, -2))

	pr := NewBinaryParamReader(&buf)

	v, err := pr.ReadInt()
	require.NoError(t, err)
	assert.Equal(t, 5, v)

	v, err = pr.ReadInt()
	require.NoError(t, err)
	assert.Equal(t, -2, v)
}

// The binary param path does not detect short reads.
func TestBinaryParamReaderShortReadIsNotReported(t *testing.T) {
	pr := NewBinaryParamReader(bytes.NewReader([]byte{0x03}))

	v, err := pr.ReadInt()
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	v, err = pr.ReadInt()
	require.NoError(t, err)
	assert.Equal(t, 0, v)
}

func TestStreamModelReader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteWeights(&buf, []float32{1.5, -2, 0.25}))

	weights, err := NewStreamModelReader(&buf, nil).ReadFloat32s(3)
	require.NoError(t, err)

	assert.Equal(t, tensor.Owned, weights.Ownership())
	assert.Equal(t, []float32{1.5, -2, 0.25}, weights.Data())
	assert.Equal(t, 0, buf.Len())
}

func TestStreamModelReaderShortRead(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteWeights(&buf, []float32{1, 2}))

	weights, err := NewStreamModelReader(&buf, nil).ReadFloat32s(3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrShortRead), "got %v", err)
	assert.Equal(t, 0, weights.Len())
}

func TestStreamModelReaderEmptyStream(t *testing.T) {
	_, err := NewStreamModelReader(bytes.NewReader(nil), nil).ReadFloat32s(1)
	assert.True(t, errors.Is(err, ErrShortRead), "got %v", err)
}

func TestStreamModelReaderZero(t *testing.T) {
	weights, err := NewStreamModelReader(bytes.NewReader(nil), nil).ReadFloat32s(0)
	require.NoError(t, err)
	assert.Equal(t, 0, weights.Len())
	assert.Equal(t, tensor.Owned, weights.Ownership())
}

func TestStreamModelReaderAllocationFailure(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteWeights(&buf, []float32{1, 2}))

	failing := tensor.AllocatorFunc(func(int) []float32 { return nil })
	_, err := NewStreamModelReader(&buf, failing).ReadFloat32s(2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, tensor.ErrAllocationFailure), "got %v", err)

	// Nothing was consumed from the stream.
	assert.Equal(t, 8, buf.Len())
}

func TestStreamModelReaderOversizeIsAllocationFailure(t *testing.T) {
	n := tensor.MaxAllocLen
	n++

	_, err := NewStreamModelReader(bytes.NewReader(nil), nil).ReadFloat32s(n)
	require.Error(t, err)
	assert.True(t, errors.Is(err, tensor.ErrAllocationFailure), "got %v", err)
}
