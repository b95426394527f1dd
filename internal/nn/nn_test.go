package nn

import (
	"math"
	"math/rand"
	"testing"

	"github.com/dcunhrya/karpathy-micrograd/internal/autodiff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRNG() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

// TestUniform_Range tests initialization bounds and determinism.
func TestUniform_Range(t *testing.T) {
	vs := Uniform(newRNG(), 100, -1, 1)
	require.Len(t, vs, 100)
	for _, v := range vs {
		assert.True(t, v.IsLeaf())
		assert.GreaterOrEqual(t, v.Data(), -1.0)
		assert.Less(t, v.Data(), 1.0)
	}

	again := Uniform(newRNG(), 100, -1, 1)
	for i := range vs {
		assert.Equal(t, vs[i].Data(), again[i].Data())
	}
}

// TestNeuron_Forward checks act(b + Σ wᵢxᵢ) against a manual computation.
func TestNeuron_Forward(t *testing.T) {
	n := NewNeuron(3, Tanh, newRNG())
	x := []float64{2, 3, -1}

	want := n.Bias().Data()
	for i, w := range n.Weights() {
		want += w.Data() * x[i]
	}
	want = math.Tanh(want)

	out := n.Forward(autodiff.Scalars(x))
	assert.InDelta(t, want, out.Data(), 1e-12)
	assert.Len(t, n.Parameters(), 4)
	assert.Equal(t, Tanh, n.Activation())
}

// TestNeuron_Gradients checks parameter gradients of a linear neuron.
func TestNeuron_Gradients(t *testing.T) {
	n := NewNeuron(2, Linear, newRNG())
	x := []float64{0.5, -2}

	out := n.Forward(autodiff.Scalars(x))
	out.Backward()

	assert.InDelta(t, 0.5, n.Weights()[0].Grad(), 1e-12)
	assert.InDelta(t, -2.0, n.Weights()[1].Grad(), 1e-12)
	assert.InDelta(t, 1.0, n.Bias().Grad(), 1e-12)
}

// TestNeuron_WrongInputs tests the input length guard.
func TestNeuron_WrongInputs(t *testing.T) {
	n := NewNeuron(2, Tanh, newRNG())
	assert.Panics(t, func() { n.Forward(autodiff.Scalars([]float64{1})) })
}

// TestActivation_Apply tests every activation and name round trip.
func TestActivation_Apply(t *testing.T) {
	x := autodiff.New(-0.5)
	assert.InDelta(t, math.Tanh(-0.5), Tanh.Apply(x).Data(), 1e-12)
	assert.Equal(t, 0.0, ReLU.Apply(x).Data())
	assert.InDelta(t, 1/(1+math.Exp(0.5)), Sigmoid.Apply(x).Data(), 1e-12)
	assert.Same(t, x, Linear.Apply(x))

	for _, a := range []Activation{Tanh, ReLU, Sigmoid, Linear} {
		got, err := ParseActivation(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}
	_, err := ParseActivation("gelu")
	assert.Error(t, err)
	assert.Panics(t, func() { Activation(99).Apply(x) })
}

// TestLayer_Shapes tests output and parameter counts.
func TestLayer_Shapes(t *testing.T) {
	l := NewLayer(3, 4, Tanh, newRNG())

	out := l.Forward(autodiff.Scalars([]float64{1, 2, 3}))
	assert.Len(t, out, 4)
	assert.Equal(t, 3, l.InFeatures())
	assert.Equal(t, 4, l.OutFeatures())
	assert.Len(t, l.Neurons(), 4)
	assert.Equal(t, 4*(3+1), NumParameters(l))
}

// TestMLP_Structure tests layer sizes, labels and parameter counts.
func TestMLP_Structure(t *testing.T) {
	m := NewMLP(3, []int{4, 4, 1}, MLPConfig{}, newRNG())

	assert.Equal(t, []int{3, 4, 4, 1}, m.Sizes())
	assert.Len(t, m.Layers(), 3)
	assert.Equal(t, 4*4+4*5+1*5, NumParameters(m))

	params := m.Parameters()
	assert.Equal(t, "l0.n0.w0", params[0].Label())
	assert.Equal(t, "l0.n0.b", params[3].Label())
	assert.Equal(t, "l2.n0.b", params[len(params)-1].Label())

	out := m.Forward(autodiff.Scalars([]float64{2, 3, -1}))
	require.Len(t, out, 1)
	assert.InDelta(t, 0, out[0].Data(), 1, "tanh output is within [-1, 1]")

	assert.Panics(t, func() { NewMLP(3, nil, MLPConfig{}, newRNG()) })
}

// TestMLP_Activations checks hidden and output activations are applied.
func TestMLP_Activations(t *testing.T) {
	m := NewMLP(2, []int{3, 1}, MLPConfig{Hidden: ReLU, Output: Linear}, newRNG())
	assert.Equal(t, ReLU, m.Layers()[0].Neurons()[0].Activation())
	assert.Equal(t, Linear, m.Layers()[1].Neurons()[0].Activation())
}

// TestMLP_Deterministic checks the same seed builds the same network.
func TestMLP_Deterministic(t *testing.T) {
	a := NewMLP(3, []int{4, 1}, MLPConfig{}, newRNG())
	b := NewMLP(3, []int{4, 1}, MLPConfig{}, newRNG())

	pa, pb := a.Parameters(), b.Parameters()
	for i := range pa {
		assert.Equal(t, pa[i].Data(), pb[i].Data())
	}
}

// TestMLP_GradientCheck compares parameter gradients with finite differences.
func TestMLP_GradientCheck(t *testing.T) {
	m := NewMLP(2, []int{3, 1}, MLPConfig{}, newRNG())
	params := m.Parameters()
	x := []float64{0.5, -1.5}
	target := []float64{0.25}

	loss := MSELoss(m.Forward(autodiff.Scalars(x)), target)
	ZeroGrad(m)
	loss.Backward()

	values := make([]float64, len(params))
	for i, p := range params {
		values[i] = p.Data()
	}
	numeric := autodiff.NumericalGradient(func(v []float64) float64 {
		for i, p := range params {
			p.SetData(v[i])
		}
		return MSELoss(m.Forward(autodiff.Scalars(x)), target).Data()
	}, values)
	for i, p := range params {
		p.SetData(values[i])
	}

	for i, p := range params {
		assert.InDelta(t, numeric[i], p.Grad(), 1e-5, "param %s", p.Label())
	}
}

// TestMSELoss tests the loss value and gradient.
func TestMSELoss(t *testing.T) {
	preds := []*autodiff.Value{autodiff.New(1), autodiff.New(-1)}
	loss := MSELoss(preds, []float64{0, 1})

	assert.InDelta(t, 1.0+4.0, loss.Data(), 1e-12)

	loss.Backward()
	assert.InDelta(t, 2.0, preds[0].Grad(), 1e-12)
	assert.InDelta(t, -4.0, preds[1].Grad(), 1e-12)

	assert.Panics(t, func() { MSELoss(preds, []float64{1}) })
}

// TestZeroGrad tests resetting all parameter gradients.
func TestZeroGrad(t *testing.T) {
	m := NewMLP(2, []int{2, 1}, MLPConfig{}, newRNG())
	m.Forward(autodiff.Scalars([]float64{1, 1}))[0].Backward()

	ZeroGrad(m)
	for _, p := range m.Parameters() {
		assert.Equal(t, 0.0, p.Grad())
	}
}
