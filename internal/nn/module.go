// Package nn implements neural network modules on top of the scalar autodiff engine.
//
// This package provides building blocks for constructing small networks:
//   - Module interface: Base interface for all NN components
//   - Neuron: Weighted sum of inputs plus bias, followed by an activation
//   - Layer: A row of independent neurons over the same inputs
//   - MLP: Stacked layers (multi-layer perceptron)
//   - MSELoss: Sum of squared errors
//
// Every weight and bias is a leaf *autodiff.Value. A forward pass builds a new
// graph on top of those leaves; after Backward on the loss, each parameter's
// Grad holds its gradient and an optimizer updates it through SetData.
package nn

import (
	"github.com/dcunhrya/karpathy-micrograd/internal/autodiff"
)

// Module is the base interface for all neural network components.
//
// Modules can be composed to build larger architectures:
//
//	rng := rand.New(rand.NewSource(1))
//	model := nn.NewMLP(3, []int{4, 4, 1}, nn.MLPConfig{}, rng)
//	out := model.Forward(autodiff.Scalars([]float64{2, 3, -1}))
type Module interface {
	// Parameters returns all trainable parameters of this module.
	//
	// This includes weights, biases, and any nested module parameters, in a
	// stable order.
	Parameters() []*autodiff.Value
}

// ZeroGrad resets the gradient of every parameter of m.
//
// This should be called before each backward pass: Backward accumulates into
// the existing gradients.
func ZeroGrad(m Module) {
	for _, p := range m.Parameters() {
		p.ZeroGrad()
	}
}

// NumParameters returns the number of scalar parameters of m.
func NumParameters(m Module) int {
	return len(m.Parameters())
}
