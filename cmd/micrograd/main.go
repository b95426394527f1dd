// Package main provides the micrograd CLI.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"k8s.io/klog/v2"

	"github.com/dcunhrya/karpathy-micrograd/internal/nn"
	"github.com/dcunhrya/karpathy-micrograd/internal/optim"
	"github.com/dcunhrya/karpathy-micrograd/internal/serialization"
	"github.com/dcunhrya/karpathy-micrograd/internal/train"
)

const version = "v0.1.0"

// The classic four-sample regression problem.
var (
	demoXs = [][]float64{
		{2.0, 3.0, -1.0},
		{3.0, -1.0, 0.5},
		{0.5, 1.0, 1.0},
		{1.0, 1.0, -1.0},
	}
	demoYs = []float64{1.0, -1.0, -1.0, 1.0}
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("micrograd %s\n", version)
			return
		case "train":
			runTrain(os.Args[2:])
			return
		}
	}

	fmt.Println("micrograd - scalar autodiff and a tiny neural network trainer")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  train      Train an MLP on the built-in demo dataset")
}

func runTrain(args []string) {
	fs := flag.NewFlagSet("train", flag.ExitOnError)
	klog.InitFlags(fs)
	steps := fs.Int("steps", 100, "Number of training steps")
	lr := fs.Float64("lr", 0.05, "Learning rate")
	momentum := fs.Float64("momentum", 0, "SGD momentum")
	optimizerName := fs.String("optimizer", "sgd", "Optimizer: sgd or adam")
	seed := fs.Int64("seed", 42, "Random seed for weight initialization")
	layers := fs.String("layers", "4,4,1", "Comma-separated layer sizes")
	activation := fs.String("activation", "tanh", "Activation: tanh, relu, sigmoid or linear")
	logEvery := fs.Int("log_every", 10, "Log the loss every N steps (with -v=1)")
	load := fs.String("load", "", "Load parameters from this file before training")
	save := fs.String("save", "", "Save parameters to this file after training")
	progress := fs.Bool("progress", true, "Show a progress bar")
	must.M(fs.Parse(args))
	must.M(checkPositive("steps", *steps))

	sizes := must.M1(parseLayers(*layers))
	act := must.M1(nn.ParseActivation(*activation))

	//nolint:gosec // Using math/rand for weight initialization (not security-critical)
	rng := rand.New(rand.NewSource(*seed))
	model := nn.NewMLP(len(demoXs[0]), sizes, nn.MLPConfig{Hidden: act, Output: act}, rng)
	klog.Infof("model: MLP %v, %d parameters", model.Sizes(), nn.NumParameters(model))

	if *load != "" {
		header := must.M1(serialization.LoadFile(*load, model))
		klog.Infof("loaded %q (created %s)", *load, header.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	optimizer := must.M1(newOptimizer(*optimizerName, model, *lr, *momentum))
	trainer := train.New(model, optimizer, train.Config{Steps: *steps, LogEvery: *logEvery})

	if *progress {
		bar := progressbar.NewOptions(trainer.Steps(),
			progressbar.OptionSetDescription("training"),
			progressbar.OptionShowIts(),
			progressbar.OptionSetItsString("steps"),
			// Same values as progressbar.ThemeASCII (v3.16+), which the go1.21-compatible v3.15.0 lacks.
			progressbar.OptionSetTheme(progressbar.Theme{Saucer: "=", SaucerHead: ">", SaucerPadding: ".", BarStart: "[", BarEnd: "]"}),
		)
		trainer.OnStep(func(_ int, loss float64) error {
			bar.Describe(fmt.Sprintf("training (loss %.4f)", loss))
			return bar.Add(1)
		})
		defer func() { _ = bar.Finish() }()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := trainer.Fit(ctx, demoXs, demoYs)
	if err != nil {
		klog.Errorf("training failed after %d steps: %+v", res.Steps, err)
	}
	fmt.Printf("\nsteps=%d loss=%.6f time=%s\n", res.Steps, res.Loss, res.Duration)
	for i, pred := range trainer.Predict(demoXs) {
		fmt.Printf("  x=%v target=%+.1f pred=%+.4f\n", demoXs[i], demoYs[i], pred)
	}

	if *save != "" {
		meta := serialization.CheckpointMeta{
			Step:          res.Steps,
			Loss:          res.Loss,
			OptimizerType: *optimizerName,
			LearningRate:  optimizer.GetLR(),
		}
		if must.M1(saveCheckpoint(*save, model, act, meta, err)) {
			klog.Infof("saved parameters to %q", *save)
		} else {
			klog.Warningf("not saving %q: training did not finish", *save)
		}
	}

	if err != nil {
		klog.Flush()
		os.Exit(1)
	}
}

// saveCheckpoint writes model to path unless training failed, and reports
// whether it did.
func saveCheckpoint(path string, model *nn.MLP, act nn.Activation, meta serialization.CheckpointMeta, trainErr error) (bool, error) {
	if trainErr != nil {
		return false, nil
	}
	err := serialization.SaveFile(path, model, serialization.Header{
		ModelType:  "MLP",
		Sizes:      model.Sizes(),
		Metadata:   map[string]string{"activation": act.String()},
		Checkpoint: &meta,
	})
	return err == nil, err
}

func checkPositive(name string, v int) error {
	if v <= 0 {
		return errors.Errorf("-%s must be positive, got %d", name, v)
	}
	return nil
}

// parseLayers parses "4,4,1" into layer sizes.
func parseLayers(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	sizes := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, errors.Wrapf(err, "invalid layer size %q", p)
		}
		if n <= 0 {
			return nil, errors.Errorf("layer size must be positive, got %d", n)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}

func newOptimizer(name string, model nn.Module, lr, momentum float64) (optim.Optimizer, error) {
	switch strings.ToLower(name) {
	case "sgd":
		return optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: lr, Momentum: momentum}), nil
	case "adam":
		return optim.NewAdam(model.Parameters(), optim.AdamConfig{LR: lr}), nil
	default:
		return nil, errors.Errorf("unknown optimizer %q", name)
	}
}
