// Package autodiff implements scalar reverse-mode automatic differentiation.
//
// Every arithmetic or activation call on a Value allocates a new Value that
// records the operation and its operands, so the computation graph is built
// while the forward pass runs. Backward then walks that graph once in reverse
// topological order and accumulates the gradient of the root into every Value
// that contributed to it.
//
// Architecture:
//   - Value: one recorded scalar, its gradient, the operation and operands
//   - ops.Operation: per-operation forward value and local-derivative rule
//   - Tape: the topological linearization of the graph below a root
//   - Backward: seeds the root and propagates gradients along the tape
//
// Usage:
//
//	a := autodiff.New(2.0)
//	b := autodiff.New(-3.0)
//	c := a.Mul(b).Add(a) // c = a*b + a
//
//	c.Backward()
//	fmt.Println(a.Grad()) // dc/da = b + 1 = -2
//	fmt.Println(b.Grad()) // dc/db = a = 2
package autodiff

import (
	"fmt"

	"github.com/dcunhrya/karpathy-micrograd/internal/autodiff/ops"
)

// Value is a node in the computation graph.
//
// The data, operation and operands of a Value never change after it is
// created, with one exception: a leaf's data may be replaced through SetData,
// which is how optimizers update parameters. The gradient is the only field
// that changes during a backward pass.
type Value struct {
	data   float64
	grad   float64
	op     ops.Operation // nil for leaves
	inputs []*Value      // operands in call order; empty for leaves
	label  string
}

// New creates a leaf Value holding data.
func New(data float64) *Value {
	return &Value{data: data}
}

// NewLabeled creates a leaf Value with a diagnostic label.
func NewLabeled(data float64, label string) *Value {
	return &Value{data: data, label: label}
}

// apply runs op forward on the inputs and records the result.
func apply(op ops.Operation, inputs ...*Value) *Value {
	if len(inputs) != op.Arity() {
		panic(fmt.Sprintf("autodiff: %s expects %d operands, got %d", op.Kind(), op.Arity(), len(inputs)))
	}
	return &Value{
		data:   op.Forward(inputData(inputs)),
		op:     op,
		inputs: inputs,
	}
}

func inputData(inputs []*Value) []float64 {
	data := make([]float64, len(inputs))
	for i, in := range inputs {
		data[i] = in.data
	}
	return data
}

// Data returns the forward value.
func (v *Value) Data() float64 {
	return v.data
}

// SetData replaces the value of a leaf.
//
// Only leaves may be updated: the data of a computed Value is a function of
// its operands. SetData panics when called on a non-leaf.
func (v *Value) SetData(data float64) {
	if !v.IsLeaf() {
		panic(fmt.Sprintf("autodiff: SetData on computed value (op %s)", v.Op()))
	}
	v.data = data
}

// Grad returns the accumulated gradient.
func (v *Value) Grad() float64 {
	return v.grad
}

// ZeroGrad resets the accumulated gradient to 0.
func (v *Value) ZeroGrad() {
	v.grad = 0
}

// Op returns the kind of operation that produced v, ops.Leaf for leaves.
func (v *Value) Op() ops.Kind {
	if v.op == nil {
		return ops.Leaf
	}
	return v.op.Kind()
}

// Operation returns the operation that produced v, or nil for leaves.
func (v *Value) Operation() ops.Operation {
	return v.op
}

// IsLeaf reports whether v has no operands.
func (v *Value) IsLeaf() bool {
	return len(v.inputs) == 0
}

// Inputs returns a copy of the operands of v in call order.
func (v *Value) Inputs() []*Value {
	out := make([]*Value, len(v.inputs))
	copy(out, v.inputs)
	return out
}

// Label returns the diagnostic label.
func (v *Value) Label() string {
	return v.label
}

// SetLabel sets the diagnostic label and returns v for chaining.
func (v *Value) SetLabel(label string) *Value {
	v.label = label
	return v
}

// String implements fmt.Stringer.
func (v *Value) String() string {
	return fmt.Sprintf("Value(data=%v)", v.data)
}
