package nn

import (
	"fmt"
	"math/rand"

	"github.com/dcunhrya/karpathy-micrograd/internal/autodiff"
)

// MLPConfig configures the activations of an MLP.
//
// The zero value uses tanh everywhere.
type MLPConfig struct {
	Hidden Activation // Activation of every layer but the last
	Output Activation // Activation of the last layer
}

// MLP is a multi-layer perceptron.
//
// Example:
//
//	rng := rand.New(rand.NewSource(42))
//	model := nn.NewMLP(3, []int{4, 4, 1}, nn.MLPConfig{}, rng)
//	pred := model.Forward(autodiff.Scalars([]float64{2, 3, -1}))[0]
type MLP struct {
	layers []*Layer
}

// NewMLP creates an MLP with nIn inputs and one layer per entry of nOuts.
//
// Parameters are labeled "l<layer>.n<neuron>.w<input>" and "l<layer>.n<neuron>.b".
func NewMLP(nIn int, nOuts []int, cfg MLPConfig, rng *rand.Rand) *MLP {
	if len(nOuts) == 0 {
		panic("nn: MLP needs at least one layer")
	}
	sizes := append([]int{nIn}, nOuts...)
	layers := make([]*Layer, len(nOuts))
	for i := range layers {
		act := cfg.Hidden
		if i == len(layers)-1 {
			act = cfg.Output
		}
		layers[i] = NewLayer(sizes[i], sizes[i+1], act, rng)
		layers[i].setLabels(fmt.Sprintf("l%d", i))
	}
	return &MLP{layers: layers}
}

// Forward runs x through every layer.
func (m *MLP) Forward(x []autodiff.Operand) []*autodiff.Value {
	var out []*autodiff.Value
	for _, l := range m.layers {
		out = l.Forward(x)
		x = autodiff.Operands(out)
	}
	return out
}

// Layers returns the layers in order.
func (m *MLP) Layers() []*Layer {
	return m.layers
}

// Sizes returns the input size followed by every layer's output size.
func (m *MLP) Sizes() []int {
	sizes := []int{m.layers[0].InFeatures()}
	for _, l := range m.layers {
		sizes = append(sizes, l.OutFeatures())
	}
	return sizes
}

// Parameters returns the parameters of all layers in order.
func (m *MLP) Parameters() []*autodiff.Value {
	var params []*autodiff.Value
	for _, l := range m.layers {
		params = append(params, l.Parameters()...)
	}
	return params
}
