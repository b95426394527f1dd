// Copyright 2026 The karpathy-micrograd Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network building blocks on scalar autodiff values.
//
// # Overview
//
// This package contains:
//   - Neuron, Layer, MLP: fully connected building blocks
//   - Activations: Tanh, ReLU, Sigmoid, Linear
//   - Loss functions: MSELoss
//   - Utilities: Module interface, ZeroGrad, NumParameters
//
// # Basic Usage
//
//	rng := rand.New(rand.NewSource(42))
//	model := nn.NewMLP(3, []int{4, 4, 1}, nn.MLPConfig{}, rng)
//
//	pred := model.Forward(autodiff.Scalars([]float64{2, 3, -1}))[0]
//	loss := nn.MSELoss([]*autodiff.Value{pred}, []float64{1})
//
//	nn.ZeroGrad(model)
//	loss.Backward()
//
// Initialization draws from the random source passed to the constructor, so a
// fixed seed always produces the same network.
package nn
