package tensor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOwnedBuffer(t *testing.T) {
	b, err := NewOwnedBuffer(3, nil)
	require.NoError(t, err)

	assert.Equal(t, 3, b.Len())
	assert.Equal(t, Owned, b.Ownership())
	assert.Equal(t, []float32{0, 0, 0}, b.Data())
}

func TestNewOwnedBufferZeroLength(t *testing.T) {
	b, err := NewOwnedBuffer(0, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, Owned, b.Ownership())
}

func TestNewOwnedBufferAllocationFailure(t *testing.T) {
	failing := AllocatorFunc(func(int) []float32 { return nil })

	_, err := NewOwnedBuffer(4, failing)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAllocationFailure))

	_, err = NewOwnedBuffer(-1, nil)
	assert.Error(t, err)
}

func TestHeapAllocatorRejectsOversize(t *testing.T) {
	n := MaxAllocLen
	n++

	assert.Nil(t, HeapAllocator{}.Alloc(n))

	_, err := NewOwnedBuffer(n, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAllocationFailure))
}

func TestAliasBufferSharesStorage(t *testing.T) {
	backing := []float32{1, 2, 3}
	b := AliasBuffer(backing)

	assert.Equal(t, Aliased, b.Ownership())
	assert.Equal(t, 3, b.Len())

	backing[1] = 42
	assert.Equal(t, float32(42), b.At(1))
}

func TestOwnershipString(t *testing.T) {
	assert.Equal(t, "owned", Owned.String())
	assert.Equal(t, "aliased", Aliased.String())
	assert.Equal(t, "unknown", Ownership(7).String())
}
