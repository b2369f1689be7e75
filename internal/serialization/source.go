package serialization

import "github.com/born-ml/layercore/internal/tensor"

// ParamReader yields a layer's scalar configuration values in order.
//
// Implementations: TextParamReader (decimal tokens), BinaryParamReader
// (raw little-endian int32s) and Cursor (in-memory model blob).
type ParamReader interface {
	ReadInt() (int, error)
}

// ModelReader yields a layer's learned weight blocks in order.
//
// Implementations: StreamModelReader (owned copy from an io.Reader) and
// Cursor (zero-copy alias into an in-memory model blob).
type ModelReader interface {
	ReadFloat32s(n int) (tensor.Buffer, error)
}
