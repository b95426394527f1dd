// Package optim implements optimization algorithms for training neural networks.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation
//
// Optimizers hold the parameter leaves of a model and read their accumulated
// gradients directly, so a step is simply:
//
//	optimizer.ZeroGrad()
//	loss := nn.MSELoss(model.Forward(x), targets)
//	loss.Backward()
//	optimizer.Step()
package optim

import (
	"fmt"

	"github.com/dcunhrya/karpathy-micrograd/internal/autodiff"
)

// Optimizer is the base interface for all optimization algorithms.
//
// All optimizers must implement:
//   - Step: Apply gradient updates to parameters
//   - ZeroGrad: Clear gradients before next iteration
//   - GetLR: Get current learning rate (for monitoring/scheduling)
type Optimizer interface {
	// Step applies gradient updates to all parameters, using the gradients
	// accumulated by the last Backward.
	Step()

	// ZeroGrad clears all parameter gradients.
	//
	// This should be called before each backward pass to prevent
	// gradient accumulation from previous iterations.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float64
}

// Config is the base configuration for all optimizers.
type Config struct {
	LR float64 // Learning rate
}

// zeroGrad resets every parameter gradient.
func zeroGrad(params []*autodiff.Value) {
	for _, p := range params {
		p.ZeroGrad()
	}
}

// checkLeaves panics if a parameter is not a leaf: only leaves can be updated.
func checkLeaves(params []*autodiff.Value) {
	for i, p := range params {
		if !p.IsLeaf() {
			panic(fmt.Sprintf("optim: parameter %d (%q) is not a leaf", i, p.Label()))
		}
	}
}
