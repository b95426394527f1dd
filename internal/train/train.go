// Package train runs gradient-descent training of a model on a small dataset.
package train

import (
	"context"
	"math"
	"time"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/dcunhrya/karpathy-micrograd/internal/autodiff"
	"github.com/dcunhrya/karpathy-micrograd/internal/nn"
	"github.com/dcunhrya/karpathy-micrograd/internal/optim"
)

// ErrNonFinite is returned when the loss or a parameter becomes NaN or
// infinite.
var ErrNonFinite = errors.New("non-finite value")

// Model is a module that maps inputs to outputs.
type Model interface {
	nn.Module
	Forward(x []autodiff.Operand) []*autodiff.Value
}

// OnStepFn is called after every step with the loss of that step. Returning
// an error stops training.
type OnStepFn func(step int, loss float64) error

// Config configures a Trainer.
type Config struct {
	Steps    int // Number of optimization steps (default: 100)
	LogEvery int // Log the loss every LogEvery steps; 0 disables
}

// Result summarizes a training run.
type Result struct {
	Steps    int           // Steps completed
	Loss     float64       // Loss of the last completed step
	Duration time.Duration // Wall time of the run
}

// Trainer fits a model's first output to scalar targets with MSELoss.
type Trainer struct {
	model     Model
	optimizer optim.Optimizer
	cfg       Config
	onStep    []OnStepFn
}

// New creates a Trainer.
func New(model Model, optimizer optim.Optimizer, cfg Config) *Trainer {
	if cfg.Steps <= 0 {
		cfg.Steps = 100
	}
	return &Trainer{model: model, optimizer: optimizer, cfg: cfg}
}

// Steps returns the number of steps Fit runs.
func (t *Trainer) Steps() int {
	return t.cfg.Steps
}

// OnStep registers a hook run after every step.
func (t *Trainer) OnStep(fn OnStepFn) {
	t.onStep = append(t.onStep, fn)
}

// Loss runs the forward pass over every sample and returns the summed squared
// error of the model's first output.
func (t *Trainer) Loss(xs [][]float64, ys []float64) *autodiff.Value {
	preds := make([]*autodiff.Value, len(xs))
	for i, x := range xs {
		preds[i] = t.model.Forward(autodiff.Scalars(x))[0]
	}
	return nn.MSELoss(preds, ys)
}

// Step performs one forward pass, backward pass and parameter update, and
// returns the loss before the update.
//
// A NaN or infinite loss returns an error wrapping ErrNonFinite before any
// gradient is computed. If the update itself overflows a parameter, every
// parameter is restored to its value before the update and the same error is
// returned, so the model always holds finite values afterwards.
func (t *Trainer) Step(xs [][]float64, ys []float64) (float64, error) {
	loss := t.Loss(xs, ys)
	value := loss.Data()
	if !isFinite(value) {
		return value, errors.Wrapf(ErrNonFinite, "loss is %v, training interrupted", value)
	}

	params := t.model.Parameters()
	saved := make([]float64, len(params))
	for i, p := range params {
		saved[i] = p.Data()
	}

	t.optimizer.ZeroGrad()
	loss.Backward()
	t.optimizer.Step()

	for _, p := range params {
		if isFinite(p.Data()) {
			continue
		}
		bad := p.Data()
		for i, q := range params {
			q.SetData(saved[i])
		}
		return value, errors.Wrapf(ErrNonFinite, "parameter %q is %v after update, training interrupted", p.Label(), bad)
	}
	return value, nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Fit trains for the configured number of steps.
//
// Training stops early when ctx is canceled, when a hook fails, or when Step
// reports a non-finite loss or parameter. The returned Result describes the steps that
// did complete.
func (t *Trainer) Fit(ctx context.Context, xs [][]float64, ys []float64) (res Result, err error) {
	if len(xs) != len(ys) {
		return res, errors.Errorf("got %d inputs and %d targets", len(xs), len(ys))
	}
	if len(xs) == 0 {
		return res, errors.New("empty dataset")
	}

	start := time.Now()
	defer func() { res.Duration = time.Since(start) }()

	for step := 0; step < t.cfg.Steps; step++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return res, errors.Wrapf(ctxErr, "training interrupted at step %d", step)
		}

		loss, stepErr := t.Step(xs, ys)
		if stepErr != nil {
			return res, errors.WithMessagef(stepErr, "step %d", step)
		}
		res.Steps = step + 1
		res.Loss = loss

		if t.cfg.LogEvery > 0 && step%t.cfg.LogEvery == 0 {
			klog.V(1).Infof("step %d: loss=%.6f lr=%g", step, loss, t.optimizer.GetLR())
		}
		for _, fn := range t.onStep {
			if hookErr := fn(step, loss); hookErr != nil {
				return res, errors.WithMessagef(hookErr, "OnStep hook at step %d", step)
			}
		}
	}

	klog.V(1).Infof("training finished: %d steps, loss=%.6f", res.Steps, res.Loss)
	return res, nil
}

// Predict returns the model's first output for every sample.
func (t *Trainer) Predict(xs [][]float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = t.model.Forward(autodiff.Scalars(x))[0].Data()
	}
	return out
}
