// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides inference layers.
//
// # Overview
//
// Every layer implements Layer: it loads its config with LoadParam, its
// weights with LoadModel, and then evaluates with Forward (new output) or
// ForwardInplace (mutating its input).
//
// # Basic Usage
//
//	layer, err := nn.Create("Bias")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := nn.Load(layer, loader.NewTextParamReader(param), loader.NewStreamModelReader(weights, nil)); err != nil {
//	    log.Fatal(err)
//	}
//	out, err := layer.Forward(input)
//
// # Errors
//
// Failed operations return a *LayerError. Use errors.Is with the sentinel
// errors, or Signal(err) for the negative signal value of the failure kind.
package nn
