package ops

// AddOp represents addition: output = a + b.
//
// Backward pass:
//   - d(a+b)/da = 1, so grad_a = outputGrad
//   - d(a+b)/db = 1, so grad_b = outputGrad
type AddOp struct{}

// NewAddOp creates a new AddOp.
func NewAddOp() AddOp {
	return AddOp{}
}

// Kind returns Add.
func (AddOp) Kind() Kind { return Add }

// Arity returns 2.
func (AddOp) Arity() int { return 2 }

// Forward returns a + b.
func (AddOp) Forward(inputs []float64) float64 {
	return inputs[0] + inputs[1]
}

// Backward computes input gradients for addition.
func (AddOp) Backward(outputGrad, _ float64, _ []float64) []float64 {
	return []float64{outputGrad, outputGrad}
}
