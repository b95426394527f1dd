package autodiff

// Backward computes the gradient of v with respect to every Value it depends on.
//
// Algorithm:
//  1. Build the tape (topological order) below v
//  2. Seed v's gradient with 1 (dv/dv)
//  3. Walk the tape in reverse, applying each operation's backward rule once
//  4. Add every contribution into the operand's gradient
//
// Gradients accumulate: calling Backward again without zeroing adds a second
// set of contributions on top of the first. The seed itself is an assignment,
// so v.Grad() is always 1 afterwards.
func (v *Value) Backward() {
	tape := NewTape(v)
	v.grad = 1.0
	tape.Backward()
}

// Backward propagates the gradients already present on the tape, starting
// from the root. It does not seed the root.
func (t *Tape) Backward() {
	for i := len(t.nodes) - 1; i >= 0; i-- {
		t.nodes[i].propagate()
	}
}

// propagate pushes v's gradient into its operands.
func (v *Value) propagate() {
	if v.op == nil {
		return
	}
	grads := v.op.Backward(v.grad, v.data, inputData(v.inputs))
	for j, input := range v.inputs {
		input.grad += grads[j]
	}
}

// ZeroGrad resets the gradient of every Value reachable from root.
func ZeroGrad(root *Value) {
	NewTape(root).ZeroGrad()
}

// Leaves returns the leaves reachable from root in topological order.
func Leaves(root *Value) []*Value {
	return NewTape(root).Leaves()
}
