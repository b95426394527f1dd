// Copyright 2026 The karpathy-micrograd Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides scalar reverse-mode automatic differentiation.
//
// Operations on a Value build the computation graph as they run; Backward on
// the result walks it once in reverse topological order and accumulates the
// gradient into every Value that contributed.
//
// Example:
//
//	import "github.com/dcunhrya/karpathy-micrograd/autodiff"
//
//	func main() {
//	    a := autodiff.New(2.0)
//	    b := autodiff.New(-3.0)
//	    c := a.Mul(b).Add(a)
//
//	    c.Backward()
//	    fmt.Println(a.Grad(), b.Grad()) // -2 2
//	}
package autodiff

import (
	"github.com/dcunhrya/karpathy-micrograd/internal/autodiff"
	"github.com/dcunhrya/karpathy-micrograd/internal/autodiff/ops"
)

// Value is a node in the computation graph.
type Value = autodiff.Value

// Operand is a *Value or a Scalar.
type Operand = autodiff.Operand

// Scalar is a constant operand promoted to a leaf when used.
type Scalar = autodiff.Scalar

// Tape is the topological linearization of a graph.
type Tape = autodiff.Tape

// Kind identifies the operation that produced a Value.
type Kind = ops.Kind

// Operation kinds.
const (
	OpLeaf    = ops.Leaf
	OpAdd     = ops.Add
	OpMul     = ops.Mul
	OpPow     = ops.Pow
	OpExp     = ops.Exp
	OpTanh    = ops.Tanh
	OpReLU    = ops.ReLU
	OpSigmoid = ops.Sigmoid
)

// Errors.
var (
	ErrInvalidOperand   = autodiff.ErrInvalidOperand
	ErrGradientMismatch = autodiff.ErrGradientMismatch
)

// New creates a leaf Value.
func New(data float64) *Value {
	return autodiff.New(data)
}

// NewLabeled creates a leaf Value with a diagnostic label.
func NewLabeled(data float64, label string) *Value {
	return autodiff.NewLabeled(data, label)
}

// Sum adds the operands left to right.
func Sum(operands ...Operand) *Value {
	return autodiff.Sum(operands...)
}

// Add returns a + b. Either side may be a Scalar.
func Add(a, b Operand) *Value {
	return autodiff.Add(a, b)
}

// Mul returns a * b. Either side may be a Scalar.
func Mul(a, b Operand) *Value {
	return autodiff.Mul(a, b)
}

// Sub returns a - b. Either side may be a Scalar.
func Sub(a, b Operand) *Value {
	return autodiff.Sub(a, b)
}

// Div returns a / b. Either side may be a Scalar.
func Div(a, b Operand) *Value {
	return autodiff.Div(a, b)
}

// Power returns base^exponent, failing with ErrInvalidOperand when the
// exponent is not a Scalar.
func Power(base, exponent Operand) (*Value, error) {
	return autodiff.Power(base, exponent)
}

// Scalars converts numbers into operands.
func Scalars(xs []float64) []Operand {
	return autodiff.Scalars(xs)
}

// Operands converts values into operands.
func Operands(vs []*Value) []Operand {
	return autodiff.Operands(vs)
}

// NewTape builds the tape for root.
func NewTape(root *Value) *Tape {
	return autodiff.NewTape(root)
}

// TopoSort returns every Value reachable from root, operands first.
func TopoSort(root *Value) []*Value {
	return autodiff.TopoSort(root)
}

// ZeroGrad resets the gradient of every Value reachable from root.
func ZeroGrad(root *Value) {
	autodiff.ZeroGrad(root)
}

// Leaves returns the leaves reachable from root.
func Leaves(root *Value) []*Value {
	return autodiff.Leaves(root)
}

// NumericalGradient estimates the gradient of f at x with central differences.
func NumericalGradient(f func([]float64) float64, x []float64) []float64 {
	return autodiff.NumericalGradient(f, x)
}

// CheckGradients compares Backward against finite differences.
func CheckGradients(build func(inputs []*Value) *Value, x []float64, tol float64) error {
	return autodiff.CheckGradients(build, x, tol)
}
