package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"

	"github.com/pkg/errors"

	"github.com/born-ml/perceptron/internal/config"
	"github.com/born-ml/perceptron/internal/dataset"
	"github.com/born-ml/perceptron/internal/metrics"
	"github.com/born-ml/perceptron/internal/nn"
	"github.com/born-ml/perceptron/internal/serialization"
	"github.com/born-ml/perceptron/internal/train"
)

// maxListed is the largest dataset whose predictions are printed one by one.
const maxListed = 16

func runTrain(ctx context.Context, args []string, out io.Writer, logger *log.Logger) error {
	fs := flag.NewFlagSet("train", flag.ContinueOnError)
	fs.SetOutput(out)
	cfgPath := fs.String("config", "", "Path to YAML config (default: built-in XOR demo)")
	epochs := fs.Int("epochs", 0, "Number of training epochs")
	lr := fs.Float64("lr", 0, "Learning rate")
	seed := fs.Int64("seed", 0, "PRNG seed")
	data := fs.String("dataset", "", "Dataset: xor, and, or, nand, circle or a CSV path")
	modelOut := fs.String("out", "", "Write the trained model to this .mlp file")
	logEvery := fs.Int("log-every", 0, "Log every N epochs")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			return errors.Wrap(err, "failed to load config")
		}
	}

	cfg.ApplyOverrides(config.Overrides{
		Epochs:       *epochs,
		LearningRate: *lr,
		Seed:         *seed,
		Dataset:      *data,
		ModelOut:     *modelOut,
		LogEvery:     *logEvery,
	})

	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid config")
	}

	trainSet, validation, err := cfg.LoadDataset()
	if err != nil {
		return errors.Wrapf(err, "load dataset %s", cfg.Dataset)
	}
	logger.Printf("dataset=%s train=%d validation=%d", cfg.Dataset, len(trainSet), len(validation))

	opts, err := cfg.NetworkOptions()
	if err != nil {
		return err
	}
	net, err := nn.NewNetwork(cfg.Architecture, opts)
	if err != nil {
		return err
	}
	logger.Printf("architecture=%v parameters=%d activation=%s output_activation=%s",
		net.Architecture(), net.NumParameters(), net.HiddenActivation().Name(), net.OutputActivation().Name())

	if len(trainSet) <= maxListed {
		fmt.Fprintln(out, "Before training:")
		if err := printPredictions(out, net, trainSet); err != nil {
			return err
		}
	}

	tc := cfg.TrainConfig()
	tc.Logger = logger
	tc.OnEpoch = func(int, float64) bool {
		return ctx.Err() == nil
	}

	history, err := train.Train(net, trainSet, tc)
	if err != nil {
		return errors.Wrap(err, "training failed")
	}
	if ctx.Err() != nil {
		logger.Printf("interrupted after epoch %d", history.Epochs())
	}

	fmt.Fprintln(out)
	if err := metrics.Chart(out, history.Losses(), 10, 40); err != nil {
		return err
	}

	report, err := train.Evaluate(net, trainSet)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\nTraining: loss=%.6f accuracy=%.2f%%\n", report.Loss, report.Accuracy*100)
	if len(validation) > 0 {
		val, err := train.Evaluate(net, validation)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Validation: loss=%.6f accuracy=%.2f%%\n", val.Loss, val.Accuracy*100)
	}

	if len(trainSet) <= maxListed {
		fmt.Fprintln(out, "\nAfter training:")
		if err := printPredictions(out, net, trainSet); err != nil {
			return err
		}
	}

	if cfg.ModelOut != "" {
		header, err := serialization.SaveFile(cfg.ModelOut, net, serialization.Meta{
			Epochs:   history.Epochs(),
			Loss:     history.Last(),
			Metadata: map[string]string{"dataset": cfg.Dataset},
		})
		if err != nil {
			return err
		}
		logger.Printf("saved model=%s id=%s", cfg.ModelOut, header.ID)
	}

	return nil
}

func printPredictions(out io.Writer, net *nn.Network, data dataset.Dataset) error {
	for _, ex := range data {
		pred, err := net.Predict(ex.Input)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "  %v → %s (expected %v)\n", ex.Input, formatVector(pred), ex.Expected)
	}
	return nil
}

func formatVector(v []float64) string {
	s := "["
	for i, x := range v {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("%.4f", x)
	}
	return s + "]"
}
