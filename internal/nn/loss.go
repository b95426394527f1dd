package nn

import (
	"fmt"

	"github.com/dcunhrya/karpathy-micrograd/internal/autodiff"
)

// MSELoss computes the sum of squared errors Σ (pred - target)².
//
// The sum, not the mean, matches the classic micrograd training loop; scale
// the learning rate accordingly.
//
// Panics if the lengths differ.
func MSELoss(preds []*autodiff.Value, targets []float64) *autodiff.Value {
	if len(preds) != len(targets) {
		panic(fmt.Sprintf("nn: MSELoss got %d predictions and %d targets", len(preds), len(targets)))
	}
	terms := make([]autodiff.Operand, len(preds))
	for i, p := range preds {
		terms[i] = p.Sub(autodiff.Scalar(targets[i])).Pow(2)
	}
	return autodiff.Sum(terms...)
}
