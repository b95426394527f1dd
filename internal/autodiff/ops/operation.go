// Package ops defines the operation catalog for scalar automatic differentiation.
//
// Each operation implements the Operation interface, which provides:
//   - Forward: computes the output value from the input values
//   - Backward: computes the contribution to each input's gradient given the
//     output gradient (the local derivative scaled by the output gradient)
//
// Supported operations:
//   - AddOp: addition (d(a+b)/da = 1, d(a+b)/db = 1)
//   - MulOp: multiplication (d(a*b)/da = b, d(a*b)/db = a)
//   - PowOp: power by a constant exponent (d(x^k)/dx = k*x^(k-1))
//   - ExpOp: exponential (d(exp(x))/dx = exp(x))
//   - TanhOp: hyperbolic tangent (d(tanh(x))/dx = 1 - tanh²(x))
//   - ReLUOp: rectified linear unit (d(ReLU(x))/dx = 1 if x > 0, else 0)
//   - SigmoidOp: logistic sigmoid (d(σ(x))/dx = σ(x) * (1 - σ(x)))
//
// Negation, subtraction and division are not operations of their own: they are
// composed from MulOp, AddOp and PowOp by the autodiff package.
package ops

// Kind identifies how a value was produced.
type Kind uint8

// Operation kinds.
const (
	Leaf Kind = iota
	Add
	Mul
	Pow
	Exp
	Tanh
	ReLU
	Sigmoid
)

// String returns the short symbol used when printing a graph.
func (k Kind) String() string {
	switch k {
	case Leaf:
		return ""
	case Add:
		return "+"
	case Mul:
		return "*"
	case Pow:
		return "**"
	case Exp:
		return "exp"
	case Tanh:
		return "tanh"
	case ReLU:
		return "ReLU"
	case Sigmoid:
		return "sigmoid"
	default:
		return "unknown"
	}
}

// Operation represents a differentiable operation in the computation graph.
type Operation interface {
	// Kind returns the tag of this operation.
	Kind() Kind

	// Arity returns the number of inputs the operation consumes.
	Arity() int

	// Forward computes the output value from the input values.
	Forward(inputs []float64) float64

	// Backward computes the gradient contribution for each input given the
	// output gradient. The output value is passed in so rules expressed in
	// terms of the result (exp, tanh, sigmoid) need not recompute it.
	//
	// Example for AddOp:
	//   inputs: [a, b]
	//   outputGrad: dL/d(a+b)
	//   returns: [dL/d(a+b), dL/d(a+b)]
	//
	// Contributions are added to the inputs' gradients by the caller; an
	// operation never writes a gradient itself.
	Backward(outputGrad, output float64, inputs []float64) []float64
}
