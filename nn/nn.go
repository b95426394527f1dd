// Copyright 2026 The karpathy-micrograd Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/dcunhrya/karpathy-micrograd/internal/autodiff"
	"github.com/dcunhrya/karpathy-micrograd/internal/nn"
)

// Module interface defines the common interface for all neural network modules.
type Module = nn.Module

// Activation selects a neuron's nonlinearity.
type Activation = nn.Activation

// Activations
const (
	Tanh    = nn.Tanh
	ReLU    = nn.ReLU
	Sigmoid = nn.Sigmoid
	Linear  = nn.Linear
)

// ParseActivation parses an activation name.
func ParseActivation(name string) (Activation, error) {
	return nn.ParseActivation(name)
}

// Layers

// Neuron computes act(b + Σ wᵢxᵢ).
type Neuron = nn.Neuron

// NewNeuron creates a neuron with nIn inputs.
func NewNeuron(nIn int, act Activation, rng *rand.Rand) *Neuron {
	return nn.NewNeuron(nIn, act, rng)
}

// Layer is a fully connected layer.
type Layer = nn.Layer

// NewLayer creates a layer of nOut neurons with nIn inputs each.
func NewLayer(nIn, nOut int, act Activation, rng *rand.Rand) *Layer {
	return nn.NewLayer(nIn, nOut, act, rng)
}

// MLP is a multi-layer perceptron.
type MLP = nn.MLP

// MLPConfig configures the activations of an MLP.
type MLPConfig = nn.MLPConfig

// NewMLP creates an MLP.
//
// Example:
//
//	model := nn.NewMLP(3, []int{4, 4, 1}, nn.MLPConfig{}, rand.New(rand.NewSource(42)))
func NewMLP(nIn int, nOuts []int, cfg MLPConfig, rng *rand.Rand) *MLP {
	return nn.NewMLP(nIn, nOuts, cfg, rng)
}

// Loss Functions

// MSELoss computes the sum of squared errors.
func MSELoss(preds []*autodiff.Value, targets []float64) *autodiff.Value {
	return nn.MSELoss(preds, targets)
}

// Utilities

// ZeroGrad resets every parameter gradient of m.
func ZeroGrad(m Module) {
	nn.ZeroGrad(m)
}

// NumParameters returns the number of scalar parameters of m.
func NumParameters(m Module) int {
	return nn.NumParameters(m)
}
