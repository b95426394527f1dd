package autodiff

// Tape is the topological linearization of the graph reachable from a root.
//
// Every operand appears before every Value computed from it and each Value
// appears exactly once, so walking the tape backwards visits a node only after
// all of its consumers have pushed their gradient contributions into it.
type Tape struct {
	nodes []*Value // operands before results; the root is last
}

// NewTape builds the tape for root.
//
// The traversal is a depth-first post-order over operand edges, visiting
// operands in call order. It keeps an explicit stack instead of recursing so
// that very deep graphs do not grow the goroutine stack. Visited nodes are
// keyed by pointer identity: distinct Values holding equal data are distinct
// nodes.
func NewTape(root *Value) *Tape {
	type frame struct {
		v    *Value
		next int // index of the next operand to visit
	}

	visited := map[*Value]struct{}{root: {}}
	nodes := make([]*Value, 0, 64)
	stack := []frame{{v: root}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < len(top.v.inputs) {
			child := top.v.inputs[top.next]
			top.next++
			if _, seen := visited[child]; !seen {
				visited[child] = struct{}{}
				stack = append(stack, frame{v: child})
			}
			continue
		}
		nodes = append(nodes, top.v)
		stack = stack[:len(stack)-1]
	}

	return &Tape{nodes: nodes}
}

// TopoSort returns every Value reachable from root, operands first.
func TopoSort(root *Value) []*Value {
	return NewTape(root).nodes
}

// Len returns the number of recorded values.
func (t *Tape) Len() int {
	return len(t.nodes)
}

// Nodes returns a copy of the recorded values, operands first.
func (t *Tape) Nodes() []*Value {
	out := make([]*Value, len(t.nodes))
	copy(out, t.nodes)
	return out
}

// Root returns the value the tape was built from.
func (t *Tape) Root() *Value {
	return t.nodes[len(t.nodes)-1]
}

// Leaves returns the leaves on the tape in tape order.
func (t *Tape) Leaves() []*Value {
	var leaves []*Value
	for _, n := range t.nodes {
		if n.IsLeaf() {
			leaves = append(leaves, n)
		}
	}
	return leaves
}

// ZeroGrad resets the gradient of every recorded value.
func (t *Tape) ZeroGrad() {
	for _, n := range t.nodes {
		n.grad = 0
	}
}
