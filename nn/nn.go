// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/layercore/internal/nn"
	"github.com/born-ml/layercore/internal/parallel"
	"github.com/born-ml/layercore/internal/serialization"
	"github.com/born-ml/layercore/internal/tensor"
)

// Layer is the contract every inference layer satisfies.
type Layer = nn.Layer

// Option configures a layer at construction.
type Option = nn.Option

// ParallelConfig controls how forward passes split work across goroutines.
type ParallelConfig = parallel.Config

// LayerError describes a failed layer operation.
type LayerError = nn.LayerError

// Errors.
var (
	ErrShapeMismatch = nn.ErrShapeMismatch
	ErrNotLoaded     = nn.ErrNotLoaded
	ErrUnknownLayer  = nn.ErrUnknownLayer
)

// Layers

// Bias adds a per-channel scalar to every element of its input.
type Bias = nn.Bias

// NewBias creates an unloaded Bias layer.
func NewBias(opts ...Option) *Bias {
	return nn.NewBias(opts...)
}

// Registry

// Create returns a new layer of the named type, e.g. "Bias".
func Create(typeName string, opts ...Option) (Layer, error) {
	return nn.Create(typeName, opts...)
}

// Types returns the registered layer type names.
func Types() []string {
	return nn.Types()
}

// Loading

// Load runs l.LoadParam(pr) and then l.LoadModel(mr).
func Load(l Layer, pr serialization.ParamReader, mr serialization.ModelReader) error {
	return nn.Load(l, pr, mr)
}

// Options

// WithAllocator sets the allocator used for forward outputs.
func WithAllocator(a tensor.Allocator) Option {
	return nn.WithAllocator(a)
}

// WithParallel sets the parallel execution config.
func WithParallel(cfg ParallelConfig) Option {
	return nn.WithParallel(cfg)
}

// DefaultParallelConfig returns the config derived from LAYERCORE_* variables.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// Signal returns the negative signal value for err, or 0 for nil.
func Signal(err error) int {
	return nn.Signal(err)
}
