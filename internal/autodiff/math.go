package autodiff

import (
	"github.com/pkg/errors"

	"github.com/dcunhrya/karpathy-micrograd/internal/autodiff/ops"
)

// Add returns v + other.
func (v *Value) Add(other Operand) *Value {
	return apply(ops.NewAddOp(), v, other.AsValue())
}

// Mul returns v * other.
func (v *Value) Mul(other Operand) *Value {
	return apply(ops.NewMulOp(), v, other.AsValue())
}

// Pow returns v raised to a constant exponent.
func (v *Value) Pow(exponent float64) *Value {
	return apply(ops.NewPowOp(exponent), v)
}

// Exp returns e^v.
func (v *Value) Exp() *Value {
	return apply(ops.NewExpOp(), v)
}

// Tanh returns tanh(v).
func (v *Value) Tanh() *Value {
	return apply(ops.NewTanhOp(), v)
}

// ReLU returns max(0, v).
func (v *Value) ReLU() *Value {
	return apply(ops.NewReLUOp(), v)
}

// Sigmoid returns 1 / (1 + e^-v).
func (v *Value) Sigmoid() *Value {
	return apply(ops.NewSigmoidOp(), v)
}

// Neg returns -v, recorded as v * -1.
func (v *Value) Neg() *Value {
	return v.Mul(Scalar(-1))
}

// Sub returns v - other, recorded as v + (-other).
func (v *Value) Sub(other Operand) *Value {
	return v.Add(other.AsValue().Neg())
}

// Div returns v / other, recorded as v * other^-1.
//
// Dividing by a zero-valued operand yields ±Inf or NaN.
func (v *Value) Div(other Operand) *Value {
	return v.Mul(other.AsValue().Pow(-1))
}

// Add returns a + b. Either side may be a Scalar.
func Add(a, b Operand) *Value {
	return a.AsValue().Add(b)
}

// Mul returns a * b. Either side may be a Scalar.
func Mul(a, b Operand) *Value {
	return a.AsValue().Mul(b)
}

// Sub returns a - b. Either side may be a Scalar.
func Sub(a, b Operand) *Value {
	return a.AsValue().Sub(b)
}

// Div returns a / b. Either side may be a Scalar.
func Div(a, b Operand) *Value {
	return a.AsValue().Div(b)
}

// Sum adds the operands left to right. The sum of no operands is a new leaf
// holding 0.
func Sum(operands ...Operand) *Value {
	if len(operands) == 0 {
		return New(0)
	}
	acc := operands[0].AsValue()
	for _, o := range operands[1:] {
		acc = acc.Add(o)
	}
	return acc
}

// Power returns base^exponent for an exponent that is only known to be an
// Operand. Differentiating through a variable exponent is not supported, so
// any exponent other than a Scalar fails with ErrInvalidOperand before a node
// is created.
func Power(base, exponent Operand) (*Value, error) {
	k, ok := exponent.(Scalar)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidOperand, "power: exponent must be a scalar, got %T", exponent)
	}
	return base.AsValue().Pow(float64(k)), nil
}
