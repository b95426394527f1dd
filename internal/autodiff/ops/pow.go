package ops

import "math"

// PowOp raises its input to a constant exponent: output = x^k.
//
// The exponent is part of the operation, not an input, so no gradient is
// computed for it.
//
// Backward pass:
//   - d(x^k)/dx = k * x^(k-1)
type PowOp struct {
	exponent float64
}

// NewPowOp creates a new PowOp with the given exponent.
func NewPowOp(exponent float64) PowOp {
	return PowOp{exponent: exponent}
}

// Exponent returns the constant exponent k.
func (op PowOp) Exponent() float64 {
	return op.exponent
}

// Kind returns Pow.
func (PowOp) Kind() Kind { return Pow }

// Arity returns 1.
func (PowOp) Arity() int { return 1 }

// Forward returns x^k.
//
// A negative base with a non-integer exponent yields NaN, and a zero base with
// a negative exponent yields +Inf, following math.Pow.
func (op PowOp) Forward(inputs []float64) float64 {
	return math.Pow(inputs[0], op.exponent)
}

// Backward computes the input gradient for x^k.
func (op PowOp) Backward(outputGrad, _ float64, inputs []float64) []float64 {
	x := inputs[0]
	return []float64{op.exponent * math.Pow(x, op.exponent-1) * outputGrad}
}
