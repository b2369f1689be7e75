// Package loader provides layer parameter loading for layercore.
//
// Parameters arrive through one of two paths:
//
//	// Streaming: text (or binary) param file plus a binary weight file.
//	pr := loader.NewTextParamReader(paramFile)
//	mr := loader.NewStreamModelReader(weightFile, nil)
//	err := nn.Load(layer, pr, mr)
//
//	// In-memory: a mapped model blob, weights aliased zero-copy.
//	r, err := loader.Open("bias.blob")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close() // keep open while the layer is in use
//	c, _ := r.Cursor()
//	err = nn.Load(layer, c, c)
package loader

import (
	"io"

	"github.com/born-ml/layercore/internal/serialization"
	"github.com/born-ml/layercore/internal/tensor"
)

// ParamReader yields layer configuration values.
type ParamReader = serialization.ParamReader

// ModelReader yields layer weight blocks.
type ModelReader = serialization.ModelReader

// Cursor reads an in-memory model blob; it is both a ParamReader and a ModelReader.
type Cursor = serialization.Cursor

// MmapReader maps a model blob read-only.
type MmapReader = serialization.MmapReader

// Errors.
var (
	ErrMalformedConfig = serialization.ErrMalformedConfig
	ErrShortRead       = serialization.ErrShortRead
)

// NewTextParamReader reads decimal config tokens.
func NewTextParamReader(r io.Reader) ParamReader {
	return serialization.NewTextParamReader(r)
}

// NewBinaryParamReader reads raw little-endian int32 config values without short-read checks.
func NewBinaryParamReader(r io.Reader) ParamReader {
	return serialization.NewBinaryParamReader(r)
}

// NewStreamModelReader copies weight blocks from r into owned buffers.
func NewStreamModelReader(r io.Reader, alloc tensor.Allocator) ModelReader {
	return serialization.NewStreamModelReader(r, alloc)
}

// NewCursor returns a cursor over data.
func NewCursor(data []byte) *Cursor {
	return serialization.NewCursor(data)
}

// Open memory-maps the model blob at path.
func Open(path string) (*MmapReader, error) {
	return serialization.NewMmapReader(path)
}

// EncodeBlob returns the in-memory encoding of a bias layer's parameters.
func EncodeBlob(weights []float32) []byte {
	return serialization.EncodeBlob(weights)
}
