package serialization

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/layercore/internal/tensor"
)

func TestMmapReaderBasic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bias.bin")
	require.NoError(t, WriteBlobFile(path, []float32{1, -1, 0.5, 8}))

	reader, err := NewMmapReader(path)
	require.NoError(t, err)
	defer reader.Close()

	assert.Equal(t, int64(4+4*4), reader.Size())

	c, err := reader.Cursor()
	require.NoError(t, err)

	n, err := c.ReadInt()
	require.NoError(t, err)
	require.Equal(t, 4, n)

	weights, err := c.ReadFloat32s(n)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, -1, 0.5, 8}, weights.Data())
	assert.Equal(t, tensor.Aliased, weights.Ownership())
}

func TestMmapReaderChecksum(t *testing.T) {
	weights := []float32{2, 4}
	path := filepath.Join(t.TempDir(), "bias.bin")
	require.NoError(t, WriteBlobFile(path, weights))

	reader, err := NewMmapReader(path)
	require.NoError(t, err)
	defer reader.Close()

	sum, err := reader.Checksum()
	require.NoError(t, err)
	assert.Equal(t, ComputeChecksum(EncodeBlob(weights)), sum)
}

func TestMmapReaderEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.bin")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	reader, err := NewMmapReader(path)
	require.NoError(t, err)
	defer reader.Close()

	c, err := reader.Cursor()
	require.NoError(t, err)
	assert.Equal(t, 0, c.Remaining())
}

func TestMmapReaderClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bias.bin")
	require.NoError(t, WriteBlobFile(path, []float32{1}))

	reader, err := NewMmapReader(path)
	require.NoError(t, err)

	require.NoError(t, reader.Close())
	// Double close is safe.
	require.NoError(t, reader.Close())

	_, err = reader.Cursor()
	assert.True(t, errors.Is(err, ErrReaderClosed))

	_, err = reader.Checksum()
	assert.True(t, errors.Is(err, ErrReaderClosed))
}

func TestMmapReaderMissingFile(t *testing.T) {
	_, err := NewMmapReader(filepath.Join(t.TempDir(), "missing.bin"))
	assert.Error(t, err)
}
