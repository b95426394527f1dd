package ops

// ReLUOp represents a ReLU (Rectified Linear Unit) activation: output = max(0, x).
//
// Backward pass:
//   - d(ReLU(x))/dx = 1 if x > 0, else 0
//
// The mask is taken from the output, which is positive exactly when the input is.
type ReLUOp struct{}

// NewReLUOp creates a new ReLUOp.
func NewReLUOp() ReLUOp {
	return ReLUOp{}
}

// Kind returns ReLU.
func (ReLUOp) Kind() Kind { return ReLU }

// Arity returns 1.
func (ReLUOp) Arity() int { return 1 }

// Forward returns x if x > 0, else 0.
func (ReLUOp) Forward(inputs []float64) float64 {
	if x := inputs[0]; x > 0 {
		return x
	}
	return 0
}

// Backward computes input gradient for ReLU.
func (ReLUOp) Backward(outputGrad, output float64, _ []float64) []float64 {
	if output > 0 {
		return []float64{outputGrad}
	}
	return []float64{0}
}
