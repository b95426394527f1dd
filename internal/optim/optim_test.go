package optim_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/dcunhrya/karpathy-micrograd/internal/autodiff"
	"github.com/dcunhrya/karpathy-micrograd/internal/nn"
	"github.com/dcunhrya/karpathy-micrograd/internal/optim"
	"github.com/stretchr/testify/assert"
)

// square builds x² and runs backward so x.Grad() = 2x.
func square(x *autodiff.Value) {
	x.ZeroGrad()
	x.Mul(x).Backward()
}

// TestSGD_SimpleUpdate tests SGD without momentum.
func TestSGD_SimpleUpdate(t *testing.T) {
	x := autodiff.New(2.0)
	optimizer := optim.NewSGD([]*autodiff.Value{x}, optim.SGDConfig{LR: 0.1})

	square(x)
	optimizer.Step()

	// Expected: x_new = x_old - lr * grad = 2.0 - 0.1 * 4.0 = 1.6
	assert.InDelta(t, 1.6, x.Data(), 1e-12)
	assert.Equal(t, 0.1, optimizer.GetLR())
}

// TestSGD_Momentum tests SGD velocity accumulation.
func TestSGD_Momentum(t *testing.T) {
	x := autodiff.New(1.0)
	optimizer := optim.NewSGD([]*autodiff.Value{x}, optim.SGDConfig{LR: 0.1, Momentum: 0.9})

	// Step 1: g = 2, v = 2, x = 1 - 0.2 = 0.8
	square(x)
	optimizer.Step()
	assert.InDelta(t, 0.8, x.Data(), 1e-12)

	// Step 2: g = 1.6, v = 0.9*2 + 1.6 = 3.4, x = 0.8 - 0.34 = 0.46
	square(x)
	optimizer.Step()
	assert.InDelta(t, 0.46, x.Data(), 1e-12)
}

// TestSGD_Defaults tests the default learning rate and SetLR.
func TestSGD_Defaults(t *testing.T) {
	optimizer := optim.NewSGD(nil, optim.SGDConfig{})
	assert.Equal(t, 0.01, optimizer.GetLR())

	optimizer.SetLR(0.5)
	assert.Equal(t, 0.5, optimizer.GetLR())
}

// TestSGD_RejectsComputedValues tests the leaf guard.
func TestSGD_RejectsComputedValues(t *testing.T) {
	x := autodiff.New(1)
	y := x.Tanh()
	assert.Panics(t, func() { optim.NewSGD([]*autodiff.Value{y}, optim.SGDConfig{}) })
}

// TestSGD_ZeroGrad tests gradient clearing.
func TestSGD_ZeroGrad(t *testing.T) {
	x := autodiff.New(3)
	optimizer := optim.NewSGD([]*autodiff.Value{x}, optim.SGDConfig{})

	square(x)
	assert.Equal(t, 6.0, x.Grad())

	optimizer.ZeroGrad()
	assert.Equal(t, 0.0, x.Grad())
}

// TestAdam_FirstStep checks the first step moves by lr in the gradient's sign.
func TestAdam_FirstStep(t *testing.T) {
	x := autodiff.New(2.0)
	optimizer := optim.NewAdam([]*autodiff.Value{x}, optim.AdamConfig{LR: 0.1})

	square(x)
	optimizer.Step()

	// m̂ = g, v̂ = g², so the update is lr * g / (|g| + eps) ≈ lr.
	assert.InDelta(t, 1.9, x.Data(), 1e-6)
	assert.Equal(t, 1, optimizer.StepCount())
}

// TestAdam_Defaults tests default hyperparameters.
func TestAdam_Defaults(t *testing.T) {
	optimizer := optim.NewAdam(nil, optim.AdamConfig{})
	assert.Equal(t, 0.001, optimizer.GetLR())

	optimizer.SetLR(0.01)
	assert.Equal(t, 0.01, optimizer.GetLR())
}

// TestAdam_Converges minimizes (x - 3)².
func TestAdam_Converges(t *testing.T) {
	x := autodiff.New(0)
	optimizer := optim.NewAdam([]*autodiff.Value{x}, optim.AdamConfig{LR: 0.1})

	for i := 0; i < 500; i++ {
		optimizer.ZeroGrad()
		x.Sub(autodiff.Scalar(3)).Pow(2).Backward()
		optimizer.Step()
	}
	assert.InDelta(t, 3.0, x.Data(), 5e-2)
}

// TestSGD_TrainsMLP runs the classic four-sample regression and expects the
// loss to drop.
func TestSGD_TrainsMLP(t *testing.T) {
	xs := [][]float64{
		{2.0, 3.0, -1.0},
		{3.0, -1.0, 0.5},
		{0.5, 1.0, 1.0},
		{1.0, 1.0, -1.0},
	}
	ys := []float64{1.0, -1.0, -1.0, 1.0}

	model := nn.NewMLP(3, []int{4, 4, 1}, nn.MLPConfig{}, rand.New(rand.NewSource(42)))
	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.05})

	lossAt := func() *autodiff.Value {
		preds := make([]*autodiff.Value, len(xs))
		for i, x := range xs {
			preds[i] = model.Forward(autodiff.Scalars(x))[0]
		}
		return nn.MSELoss(preds, ys)
	}

	initial := lossAt().Data()
	var final float64
	for step := 0; step < 200; step++ {
		loss := lossAt()
		optimizer.ZeroGrad()
		loss.Backward()
		optimizer.Step()
		final = loss.Data()
	}

	assert.False(t, math.IsNaN(final))
	assert.Less(t, final, initial)
	assert.Less(t, final, 0.5)
}
