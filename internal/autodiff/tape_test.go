package autodiff_test

import (
	"math/rand"
	"testing"

	"github.com/dcunhrya/karpathy-micrograd/internal/autodiff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertTopological checks every operand precedes its consumers and that each
// node appears once.
func assertTopological(t *testing.T, order []*autodiff.Value) {
	t.Helper()
	pos := make(map[*autodiff.Value]int, len(order))
	for i, n := range order {
		_, dup := pos[n]
		require.False(t, dup, "node %d appears twice", i)
		pos[n] = i
	}
	for i, n := range order {
		for _, in := range n.Inputs() {
			p, ok := pos[in]
			require.True(t, ok, "operand of node %d missing from order", i)
			assert.Less(t, p, i, "operand must precede node %d", i)
		}
	}
}

// TestTopoSort_Chain tests a linear chain.
func TestTopoSort_Chain(t *testing.T) {
	x := autodiff.New(1)
	y := x.Tanh()
	z := y.Exp()

	order := autodiff.TopoSort(z)
	assert.Equal(t, []*autodiff.Value{x, y, z}, order)
}

// TestTopoSort_SharedNode checks a diamond visits the shared node once.
func TestTopoSort_SharedNode(t *testing.T) {
	a := autodiff.New(2)
	b := a.Tanh()
	c := a.Exp()
	d := b.Add(c)

	order := autodiff.TopoSort(d)
	require.Len(t, order, 4)
	assert.Same(t, a, order[0])
	assert.Same(t, d, order[3])
	assertTopological(t, order)
}

// TestTopoSort_OperandOrder matches a recursive post-order visit.
func TestTopoSort_OperandOrder(t *testing.T) {
	a := autodiff.New(1)
	b := autodiff.New(2)
	c := autodiff.New(3)
	ab := a.Mul(b)
	out := ab.Add(c)

	assert.Equal(t, []*autodiff.Value{a, b, ab, c, out}, autodiff.TopoSort(out))
}

// TestTopoSort_EqualData checks identity, not value, keys the visited set.
func TestTopoSort_EqualData(t *testing.T) {
	a := autodiff.New(1)
	b := autodiff.New(1)
	c := a.Add(b)

	assert.Len(t, autodiff.TopoSort(c), 3)

	c.Backward()
	assert.Equal(t, 1.0, a.Grad())
	assert.Equal(t, 1.0, b.Grad())
}

// TestTopoSort_Random checks ordering on random DAGs with heavy sharing.
func TestTopoSort_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 50; trial++ {
		pool := []*autodiff.Value{autodiff.New(rng.Float64()), autodiff.New(rng.Float64())}
		for i := 0; i < 30; i++ {
			a := pool[rng.Intn(len(pool))]
			b := pool[rng.Intn(len(pool))]
			if rng.Intn(2) == 0 {
				pool = append(pool, a.Add(b))
			} else {
				pool = append(pool, a.Mul(b).Tanh())
			}
		}
		assertTopological(t, autodiff.TopoSort(pool[len(pool)-1]))
	}
}

// TestTopoSort_Deep builds a chain far deeper than a recursive walk would
// comfortably handle.
func TestTopoSort_Deep(t *testing.T) {
	const depth = 200000
	x := autodiff.New(1)
	y := x
	for i := 0; i < depth; i++ {
		y = y.Add(autodiff.Scalar(0))
	}

	tape := autodiff.NewTape(y)
	assert.Equal(t, 2*depth+1, tape.Len())
	assert.Same(t, y, tape.Root())

	y.Backward()
	assert.Equal(t, 1.0, x.Grad())
}

// TestTape_Leaves tests leaf extraction and zeroing.
func TestTape_Leaves(t *testing.T) {
	a := autodiff.NewLabeled(1, "a")
	b := autodiff.NewLabeled(2, "b")
	out := a.Mul(b).Add(a)

	leaves := autodiff.Leaves(out)
	assert.Equal(t, []*autodiff.Value{a, b}, leaves)

	tape := autodiff.NewTape(out)
	assert.Len(t, tape.Nodes(), 4)

	out.Backward()
	tape.ZeroGrad()
	for _, n := range tape.Nodes() {
		assert.Equal(t, 0.0, n.Grad())
	}
}

// TestTape_Backward propagates from a manually seeded root.
func TestTape_Backward(t *testing.T) {
	a := autodiff.New(3)
	out := a.Mul(autodiff.Scalar(2))

	tape := autodiff.NewTape(out)
	tape.Backward()
	assert.Equal(t, 0.0, a.Grad(), "unseeded root propagates nothing")
}
