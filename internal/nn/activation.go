package nn

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/dcunhrya/karpathy-micrograd/internal/autodiff"
)

// Activation selects the nonlinearity applied to a neuron's weighted sum.
type Activation int

// Supported activations. The zero value is Tanh.
const (
	Tanh Activation = iota
	ReLU
	Sigmoid
	Linear
)

// Apply applies the activation to v.
func (a Activation) Apply(v *autodiff.Value) *autodiff.Value {
	switch a {
	case Tanh:
		return v.Tanh()
	case ReLU:
		return v.ReLU()
	case Sigmoid:
		return v.Sigmoid()
	case Linear:
		return v
	default:
		panic(fmt.Sprintf("nn: unknown activation %d", int(a)))
	}
}

// String returns the activation name.
func (a Activation) String() string {
	switch a {
	case Tanh:
		return "tanh"
	case ReLU:
		return "relu"
	case Sigmoid:
		return "sigmoid"
	case Linear:
		return "linear"
	default:
		return fmt.Sprintf("Activation(%d)", int(a))
	}
}

// ParseActivation parses an activation name as returned by String.
func ParseActivation(name string) (Activation, error) {
	for _, a := range []Activation{Tanh, ReLU, Sigmoid, Linear} {
		if a.String() == name {
			return a, nil
		}
	}
	return 0, errors.Errorf("unknown activation %q", name)
}
