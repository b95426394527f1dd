package ops

import "math"

// SigmoidOp represents the sigmoid activation: σ(x) = 1 / (1 + exp(-x)).
//
// Backward pass:
//   - d(σ(x))/dx = σ(x) * (1 - σ(x))
//   - grad_input = grad_output * output * (1 - output)
type SigmoidOp struct{}

// NewSigmoidOp creates a new SigmoidOp.
func NewSigmoidOp() SigmoidOp {
	return SigmoidOp{}
}

// Kind returns Sigmoid.
func (SigmoidOp) Kind() Kind { return Sigmoid }

// Arity returns 1.
func (SigmoidOp) Arity() int { return 1 }

// Forward returns 1 / (1 + exp(-x)).
func (SigmoidOp) Forward(inputs []float64) float64 {
	return 1.0 / (1.0 + math.Exp(-inputs[0]))
}

// Backward computes input gradient for sigmoid.
func (SigmoidOp) Backward(outputGrad, output float64, _ []float64) []float64 {
	return []float64{output * (1 - output) * outputGrad}
}
