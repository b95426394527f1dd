package autodiff

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/diff/fd"
)

// NumericalGradient estimates the gradient of f at x with central finite
// differences.
func NumericalGradient(f func([]float64) float64, x []float64) []float64 {
	return fd.Gradient(nil, f, x, &fd.Settings{Formula: fd.Central})
}

// CheckGradients compares Backward against finite differences.
//
// build must construct the same graph for any inputs; it is called once on
// leaves holding x to obtain the analytic gradient, then repeatedly by the
// finite-difference estimator. The comparison is relative for gradients larger
// than 1 in magnitude and absolute otherwise.
func CheckGradients(build func(inputs []*Value) *Value, x []float64, tol float64) error {
	leaves := make([]*Value, len(x))
	for i, xi := range x {
		leaves[i] = New(xi)
	}
	build(leaves).Backward()

	numeric := NumericalGradient(func(p []float64) float64 {
		in := make([]*Value, len(p))
		for i, pi := range p {
			in[i] = New(pi)
		}
		return build(in).Data()
	}, x)

	for i, leaf := range leaves {
		want := numeric[i]
		if math.IsNaN(leaf.grad) || math.IsNaN(want) {
			return errors.Wrapf(ErrGradientMismatch, "input %d: NaN gradient (analytic %g, numerical %g)", i, leaf.grad, want)
		}
		scale := math.Max(1, math.Abs(want))
		if math.Abs(leaf.grad-want) > tol*scale {
			return errors.Wrapf(ErrGradientMismatch, "input %d: analytic %g, numerical %g", i, leaf.grad, want)
		}
	}
	return nil
}
