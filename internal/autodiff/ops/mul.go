package ops

// MulOp represents multiplication: output = a * b.
//
// Backward pass:
//   - d(a*b)/da = b, so grad_a = outputGrad * b
//   - d(a*b)/db = a, so grad_b = outputGrad * a
type MulOp struct{}

// NewMulOp creates a new MulOp.
func NewMulOp() MulOp {
	return MulOp{}
}

// Kind returns Mul.
func (MulOp) Kind() Kind { return Mul }

// Arity returns 2.
func (MulOp) Arity() int { return 2 }

// Forward returns a * b.
func (MulOp) Forward(inputs []float64) float64 {
	return inputs[0] * inputs[1]
}

// Backward computes input gradients for multiplication.
func (MulOp) Backward(outputGrad, _ float64, inputs []float64) []float64 {
	a, b := inputs[0], inputs[1]
	return []float64{b * outputGrad, a * outputGrad}
}
