// Package nn implements inference layers for layercore.
//
// Layers load their configuration and weights through the
// serialization.ParamReader and serialization.ModelReader capabilities and
// evaluate over tensor.Mat inputs. Bias is the reference layer; Create builds
// layers by type name.
package nn

import (
	"github.com/born-ml/layercore/internal/parallel"
	"github.com/born-ml/layercore/internal/serialization"
	"github.com/born-ml/layercore/internal/tensor"
)

// Layer is the contract every inference layer satisfies.
//
// A layer is loaded once, LoadParam then LoadModel, and may then run Forward
// or ForwardInplace any number of times, concurrently if desired: loaded
// weights are never modified by a forward pass.
type Layer interface {
	// Type returns the registry name of the layer, e.g. "Bias".
	Type() string

	// OneBlobOnly reports whether the layer takes exactly one input and produces one output.
	OneBlobOnly() bool

	// SupportInplace reports whether ForwardInplace is implemented.
	SupportInplace() bool

	// LoadParam reads the layer's configuration scalars.
	LoadParam(pr serialization.ParamReader) error

	// LoadModel reads the layer's learned weights. LoadParam must run first.
	LoadModel(mr serialization.ModelReader) error

	// Forward computes a new output mat from bottom without modifying it.
	Forward(bottom *tensor.Mat) (*tensor.Mat, error)

	// ForwardInplace applies the layer to blob directly.
	ForwardInplace(blob *tensor.Mat) error
}

// Load runs LoadParam followed by LoadModel.
//
// For the in-memory path pass the same *serialization.Cursor twice; it reads
// the config and then aliases the weights that immediately follow it.
func Load(l Layer, pr serialization.ParamReader, mr serialization.ModelReader) error {
	if err := l.LoadParam(pr); err != nil {
		return err
	}
	return l.LoadModel(mr)
}

// Options configures how a layer allocates outputs and schedules work.
type Options struct {
	Allocator tensor.Allocator
	Parallel  parallel.Config
}

// Option mutates Options.
type Option func(*Options)

// WithAllocator sets the allocator used for forward outputs.
func WithAllocator(a tensor.Allocator) Option {
	return func(o *Options) {
		o.Allocator = a
	}
}

// WithParallel sets the parallel execution config for forward passes.
func WithParallel(cfg parallel.Config) Option {
	return func(o *Options) {
		o.Parallel = cfg
	}
}

func buildOptions(opts []Option) Options {
	o := Options{
		Allocator: tensor.DefaultAllocator,
		Parallel:  parallel.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Allocator == nil {
		o.Allocator = tensor.DefaultAllocator
	}
	return o
}
