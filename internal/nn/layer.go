package nn

import (
	"fmt"
	"math/rand"

	"github.com/dcunhrya/karpathy-micrograd/internal/autodiff"
)

// Layer is a fully connected layer: nOut neurons over the same nIn inputs.
type Layer struct {
	neurons []*Neuron
	nIn     int
}

// NewLayer creates a layer of nOut neurons with nIn inputs each.
func NewLayer(nIn, nOut int, act Activation, rng *rand.Rand) *Layer {
	neurons := make([]*Neuron, nOut)
	for i := range neurons {
		neurons[i] = NewNeuron(nIn, act, rng)
	}
	return &Layer{neurons: neurons, nIn: nIn}
}

// Forward returns one output per neuron.
func (l *Layer) Forward(x []autodiff.Operand) []*autodiff.Value {
	out := make([]*autodiff.Value, len(l.neurons))
	for i, n := range l.neurons {
		out[i] = n.Forward(x)
	}
	return out
}

// Neurons returns the layer's neurons.
func (l *Layer) Neurons() []*Neuron {
	return l.neurons
}

// InFeatures returns the number of inputs.
func (l *Layer) InFeatures() int {
	return l.nIn
}

// OutFeatures returns the number of outputs.
func (l *Layer) OutFeatures() int {
	return len(l.neurons)
}

// Parameters returns the parameters of all neurons in order.
func (l *Layer) Parameters() []*autodiff.Value {
	params := make([]*autodiff.Value, 0, len(l.neurons)*(l.nIn+1))
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}

func (l *Layer) setLabels(prefix string) {
	for i, n := range l.neurons {
		n.setLabels(fmt.Sprintf("%s.n%d", prefix, i))
	}
}
