package nn

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/born-ml/layercore/internal/logutil"
	"github.com/born-ml/layercore/internal/parallel"
	"github.com/born-ml/layercore/internal/serialization"
	"github.com/born-ml/layercore/internal/tensor"
)

// BiasType is the registry name of the Bias layer.
const BiasType = "Bias"

// Bias adds a learned scalar to every element of each channel:
//
//	out[q][i] = in[q][i] + weight[q]
//
// The layer's config is the channel count; its model data is one float32
// per channel. Weights loaded from a stream are owned by the layer; weights
// loaded from a Cursor alias the cursor's blob, which must outlive the layer.
type Bias struct {
	channels int
	weights  tensor.Buffer
	loaded   bool

	alloc tensor.Allocator
	par   parallel.Config
}

// NewBias creates an unloaded Bias layer.
func NewBias(opts ...Option) *Bias {
	o := buildOptions(opts)
	return &Bias{
		alloc: o.Allocator,
		par:   o.Parallel,
	}
}

// Type returns "Bias".
func (b *Bias) Type() string { return BiasType }

// OneBlobOnly returns true.
func (b *Bias) OneBlobOnly() bool { return true }

// SupportInplace returns true.
func (b *Bias) SupportInplace() bool { return true }

// Channels returns the configured channel count.
func (b *Bias) Channels() int {
	return b.channels
}

// Weights returns the loaded per-channel bias values.
// The buffer is empty until LoadModel succeeds.
func (b *Bias) Weights() tensor.Buffer {
	return b.weights
}

// Loaded reports whether LoadModel has succeeded.
func (b *Bias) Loaded() bool {
	return b.loaded
}

// LoadParam reads the channel count. Any previously loaded weights are dropped.
//
// With a TextParamReader a missing or unparsable token fails with
// serialization.ErrMalformedConfig. A negative count, or one too large for the
// int32 count field of the binary formats, is rejected the same way for every
// source.
func (b *Bias) LoadParam(pr serialization.ParamReader) error {
	b.weights = tensor.Buffer{}
	b.loaded = false

	n, err := pr.ReadInt()
	if err != nil {
		return fail(BiasType, "load_param", err)
	}
	if n < 0 || n > math.MaxInt32 {
		return fail(BiasType, "load_param", fmt.Errorf("%w: channel count %d out of range", serialization.ErrMalformedConfig, n))
	}
	b.channels = n

	slog.Debug("bias param loaded", "channels", n)
	return nil
}

// LoadModel reads Channels() weights from mr.
//
// On failure the layer is left without usable weights.
func (b *Bias) LoadModel(mr serialization.ModelReader) error {
	weights, err := mr.ReadFloat32s(b.channels)
	if err != nil {
		b.weights = tensor.Buffer{}
		b.loaded = false
		return fail(BiasType, "load_model", err)
	}
	b.weights = weights
	b.loaded = true

	logutil.Trace("bias model loaded", "channels", b.channels, "ownership", weights.Ownership())
	return nil
}

// Forward returns a new mat holding bottom plus the per-channel bias.
// bottom is not modified.
func (b *Bias) Forward(bottom *tensor.Mat) (*tensor.Mat, error) {
	if err := b.check(bottom); err != nil {
		return nil, fail(BiasType, "forward", err)
	}

	top := tensor.NewMat(bottom.W(), bottom.H(), bottom.C(), b.alloc)
	if top.Empty() {
		return nil, fail(BiasType, "forward", fmt.Errorf("output %v: %w", top, tensor.ErrAllocationFailure))
	}

	bias := b.weights.Data()
	parallel.ForChannels(bottom.C(), bottom.PlaneSize(), func(q int) {
		ptr := bottom.Channel(q)
		outptr := top.Channel(q)
		v := bias[q]
		for i := range outptr {
			outptr[i] = ptr[i] + v
		}
	}, b.par)

	return top, nil
}

// ForwardInplace adds the per-channel bias to blob. Applying it twice adds the bias twice.
func (b *Bias) ForwardInplace(blob *tensor.Mat) error {
	if err := b.check(blob); err != nil {
		return fail(BiasType, "forward_inplace", err)
	}

	bias := b.weights.Data()
	parallel.ForChannels(blob.C(), blob.PlaneSize(), func(q int) {
		ptr := blob.Channel(q)
		v := bias[q]
		for i := range ptr {
			ptr[i] += v
		}
	}, b.par)

	return nil
}

func (b *Bias) check(m *tensor.Mat) error {
	if !b.loaded {
		return ErrNotLoaded
	}
	if m.Empty() {
		return fmt.Errorf("%w: input mat has no storage", ErrShapeMismatch)
	}
	if m.C() != b.channels {
		return fmt.Errorf("%w: input has %d channels, layer expects %d", ErrShapeMismatch, m.C(), b.channels)
	}
	return nil
}
