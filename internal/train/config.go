package train

import (
	"log"

	"github.com/pkg/errors"

	"github.com/born-ml/perceptron/internal/parallel"
)

// ErrInvalidConfig is returned when a Config cannot drive a training run.
var ErrInvalidConfig = errors.New("invalid training config")

// Config holds the hyperparameters and hooks of a training run.
type Config struct {
	Epochs       int     // Passes over the dataset (> 0)
	LearningRate float64 // Step size (> 0)

	// BatchSize <= 1 updates after every example (the baseline). Larger
	// values accumulate per-example gradients and apply one averaged update
	// per batch.
	BatchSize int

	// Workers is the number of goroutines computing gradients inside a
	// batch. Ignored when BatchSize <= 1.
	Workers int

	Shuffle bool  // Visit examples in a new random order every epoch
	Seed    int64 // Seeds the shuffle

	// TargetLoss stops training once an epoch's mean squared error is at or
	// below it. Zero disables early stopping.
	TargetLoss float64

	LogEvery int         // Log every N epochs (0: only the summary)
	Logger   *log.Logger // Progress sink; nil is silent

	// OnEpoch is called after every epoch with its 1-based index and loss.
	// Returning false stops training.
	OnEpoch func(epoch int, loss float64) bool
}

// Validate checks that the config describes a runnable training session.
func (c Config) Validate() error {
	if c.Epochs <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "epochs must be > 0 (got %d)", c.Epochs)
	}
	if !(c.LearningRate > 0) {
		return errors.Wrapf(ErrInvalidConfig, "learning rate must be > 0 (got %v)", c.LearningRate)
	}
	if c.BatchSize < 0 {
		return errors.Wrapf(ErrInvalidConfig, "batch size must be >= 0 (got %d)", c.BatchSize)
	}
	if c.Workers < 0 {
		return errors.Wrapf(ErrInvalidConfig, "workers must be >= 0 (got %d)", c.Workers)
	}
	if c.TargetLoss < 0 {
		return errors.Wrapf(ErrInvalidConfig, "target loss must be >= 0 (got %v)", c.TargetLoss)
	}
	return nil
}

func (c Config) miniBatch() bool {
	return c.BatchSize > 1
}

func (c Config) parallel() parallel.Config {
	if c.Workers <= 1 {
		return parallel.Sequential()
	}
	return parallel.Config{Workers: c.Workers, MinChunkSize: 1}
}

func (c Config) logf(format string, args ...any) {
	if c.Logger != nil {
		c.Logger.Printf(format, args...)
	}
}
