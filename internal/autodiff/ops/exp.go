package ops

import "math"

// ExpOp represents the exponential operation: y = exp(x).
//
// Backward pass:
//   - d(exp(x))/dx = exp(x) = y
//   - grad_input = grad_output * output
type ExpOp struct{}

// NewExpOp creates a new ExpOp.
func NewExpOp() ExpOp {
	return ExpOp{}
}

// Kind returns Exp.
func (ExpOp) Kind() Kind { return Exp }

// Arity returns 1.
func (ExpOp) Arity() int { return 1 }

// Forward returns exp(x). Large inputs overflow to +Inf.
func (ExpOp) Forward(inputs []float64) float64 {
	return math.Exp(inputs[0])
}

// Backward computes input gradient for exp.
//
// Since d(exp(x))/dx = exp(x), and we already have exp(x) as output:
// grad_input = grad_output * output.
func (ExpOp) Backward(outputGrad, output float64, _ []float64) []float64 {
	return []float64{output * outputGrad}
}
