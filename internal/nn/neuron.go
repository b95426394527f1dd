package nn

import (
	"fmt"
	"math/rand"

	"github.com/dcunhrya/karpathy-micrograd/internal/autodiff"
)

// Neuron computes act(b + Σ wᵢxᵢ).
//
// Weights and bias are initialized from U(-1, 1).
type Neuron struct {
	weights []*autodiff.Value
	bias    *autodiff.Value
	act     Activation
}

// NewNeuron creates a neuron with nIn inputs.
func NewNeuron(nIn int, act Activation, rng *rand.Rand) *Neuron {
	return &Neuron{
		weights: Uniform(rng, nIn, -1, 1),
		bias:    Uniform(rng, 1, -1, 1)[0],
		act:     act,
	}
}

// Forward computes the neuron output for x.
//
// Panics if len(x) differs from the number of weights.
func (n *Neuron) Forward(x []autodiff.Operand) *autodiff.Value {
	if len(x) != len(n.weights) {
		panic(fmt.Sprintf("nn: neuron expects %d inputs, got %d", len(n.weights), len(x)))
	}
	terms := make([]autodiff.Operand, 0, len(x)+1)
	terms = append(terms, n.bias)
	for i, w := range n.weights {
		terms = append(terms, w.Mul(x[i]))
	}
	return n.act.Apply(autodiff.Sum(terms...))
}

// Weights returns the weight leaves.
func (n *Neuron) Weights() []*autodiff.Value {
	return n.weights
}

// Bias returns the bias leaf.
func (n *Neuron) Bias() *autodiff.Value {
	return n.bias
}

// Activation returns the neuron's activation.
func (n *Neuron) Activation() Activation {
	return n.act
}

// Parameters returns the weights followed by the bias.
func (n *Neuron) Parameters() []*autodiff.Value {
	params := make([]*autodiff.Value, 0, len(n.weights)+1)
	params = append(params, n.weights...)
	return append(params, n.bias)
}

// setLabels names the parameters "<prefix>.w<i>" and "<prefix>.b".
func (n *Neuron) setLabels(prefix string) {
	for i, w := range n.weights {
		w.SetLabel(fmt.Sprintf("%s.w%d", prefix, i))
	}
	n.bias.SetLabel(prefix + ".b")
}
