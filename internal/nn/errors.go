package nn

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/born-ml/layercore/internal/serialization"
	"github.com/born-ml/layercore/internal/tensor"
)

// Common errors.
var (
	ErrShapeMismatch = errors.New("shape mismatch")
	ErrNotLoaded     = errors.New("layer weights not loaded")
	ErrUnknownLayer  = errors.New("unknown layer type")
)

// Signal values reported by LayerError.Code. Each failure kind has its own
// negative value; success is 0.
const (
	SignalOK                = 0
	SignalMalformedConfig   = -1
	SignalShortRead         = -2
	SignalShapeMismatch     = -3
	SignalNotLoaded         = -4
	SignalUnknownLayer      = -5
	SignalFailure           = -99
	SignalAllocationFailure = -100
)

// LayerError describes a failed layer operation.
type LayerError struct {
	Layer string // Layer type, e.g. "Bias"
	Op    string // Operation, e.g. "load_param", "forward"
	Err   error  // Underlying error
}

// Error implements the error interface.
func (e *LayerError) Error() string {
	return fmt.Sprintf("%s %s failed: %v", e.Layer, e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *LayerError) Unwrap() error {
	return e.Err
}

// Code returns the negative signal value for the failure kind.
func (e *LayerError) Code() int {
	switch {
	case errors.Is(e.Err, serialization.ErrMalformedConfig):
		return SignalMalformedConfig
	case errors.Is(e.Err, serialization.ErrShortRead):
		return SignalShortRead
	case errors.Is(e.Err, tensor.ErrAllocationFailure):
		return SignalAllocationFailure
	case errors.Is(e.Err, ErrShapeMismatch):
		return SignalShapeMismatch
	case errors.Is(e.Err, ErrNotLoaded):
		return SignalNotLoaded
	case errors.Is(e.Err, ErrUnknownLayer):
		return SignalUnknownLayer
	default:
		return SignalFailure
	}
}

// Signal maps err to its signal value: 0 for nil, the LayerError code when
// err wraps one, SignalFailure otherwise.
func Signal(err error) int {
	if err == nil {
		return SignalOK
	}
	var le *LayerError
	if errors.As(err, &le) {
		return le.Code()
	}
	return SignalFailure
}

// fail logs a diagnostic naming the failed operation and returns it as a *LayerError.
func fail(layer, op string, err error) error {
	le := &LayerError{Layer: layer, Op: op, Err: err}
	slog.Error("layer operation failed", "layer", layer, "op", op, "code", le.Code(), "error", err)
	return le
}
