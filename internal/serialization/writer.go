package serialization

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
)

// WriteParamText writes a layer config value as a decimal token followed by a newline.
func WriteParamText(w io.Writer, v int) error {
	if _, err := fmt.Fprintf(w, "%d\n", v); err != nil {
		return fmt.Errorf("failed to write param: %w", err)
	}
	return nil
}

// WriteParamBinary writes a layer config value as a little-endian int32.
func WriteParamBinary(w io.Writer, v int) error {
	if err := binary.Write(w, binary.LittleEndian, int32(v)); err != nil { //nolint:gosec // G115: config values are int32 on disk
		return fmt.Errorf("failed to write param: %w", err)
	}
	return nil
}

// WriteWeights writes weights as consecutive little-endian float32 values.
func WriteWeights(w io.Writer, weights []float32) error {
	if err := binary.Write(w, binary.LittleEndian, weights); err != nil {
		return fmt.Errorf("failed to write weights: %w", err)
	}
	return nil
}

// EncodeBlob returns the in-memory model encoding of a bias layer:
// the channel count as a little-endian int32 followed by the weights.
func EncodeBlob(weights []float32) []byte {
	out := make([]byte, 4+4*len(weights))
	binary.LittleEndian.PutUint32(out, uint32(len(weights))) //nolint:gosec // G115: channel counts fit in int32
	for i, v := range weights {
		binary.LittleEndian.PutUint32(out[4+4*i:], math.Float32bits(v))
	}
	return out
}

// WriteBlobFile writes EncodeBlob(weights) to path.
func WriteBlobFile(path string, weights []float32) error {
	//nolint:gosec // G306: model files are not secret
	if err := os.WriteFile(path, EncodeBlob(weights), 0o644); err != nil {
		return fmt.Errorf("failed to write blob: %w", err)
	}
	return nil
}
