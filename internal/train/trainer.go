package train

import (
	"math/rand"

	"github.com/pkg/errors"

	"github.com/born-ml/perceptron/internal/dataset"
	"github.com/born-ml/perceptron/internal/metrics"
	"github.com/born-ml/perceptron/internal/nn"
	"github.com/born-ml/perceptron/internal/parallel"
)

// Train fits net to data by backpropagation and returns the mean squared
// error of every completed epoch.
//
// The whole dataset is validated against the network before the first
// epoch; a single malformed example aborts the run with ErrDimensionMismatch.
//
// With the default BatchSize every example runs forward, backward and update
// before the next one is seen. With BatchSize > 1 the per-example gradients
// of a batch are computed against the same weights (optionally on Workers
// goroutines) and applied as one averaged update.
//
// Example:
//
//	history, err := train.Train(net, dataset.XOR(), train.Config{
//	    Epochs:       10000,
//	    LearningRate: 0.5,
//	})
func Train(net *nn.Network, data dataset.Dataset, cfg Config) (*metrics.History, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := data.Validate(net.InputWidth(), net.OutputWidth()); err != nil {
		return nil, errors.Wrap(err, "invalid dataset")
	}

	t := newTrainer(net, cfg)
	history := metrics.NewHistory(cfg.Epochs)

	//nolint:gosec // Shuffle order only needs to be reproducible
	rng := rand.New(rand.NewSource(cfg.Seed))
	order := data

	for epoch := 1; epoch <= cfg.Epochs; epoch++ {
		if cfg.Shuffle {
			order = data.Shuffle(rng)
		}

		loss, err := t.epoch(order)
		if err != nil {
			return history, errors.Wrapf(err, "epoch %d", epoch)
		}
		history.Record(loss)

		if cfg.LogEvery > 0 && epoch%cfg.LogEvery == 0 {
			cfg.logf("epoch=%d loss=%.6f", epoch, loss)
		}
		if cfg.TargetLoss > 0 && loss <= cfg.TargetLoss {
			cfg.logf("converged epoch=%d loss=%.6f target=%g", epoch, loss, cfg.TargetLoss)
			break
		}
		if cfg.OnEpoch != nil && !cfg.OnEpoch(epoch, loss) {
			cfg.logf("stopped epoch=%d loss=%.6f", epoch, loss)
			break
		}
	}

	best, at := history.Best()
	cfg.logf("done epochs=%d loss=%.6f best=%.6f best_epoch=%d", history.Epochs(), history.Last(), best, at+1)

	return history, nil
}

// trainer owns the reusable buffers of one Train call.
type trainer struct {
	net     *nn.Network
	cfg     Config
	par     parallel.Config
	stepper *stepper
	workers []*gradientWorker
}

func newTrainer(net *nn.Network, cfg Config) *trainer {
	t := &trainer{
		net: net,
		cfg: cfg,
		par: cfg.parallel(),
	}
	if cfg.miniBatch() {
		// Chunks never outnumber workers or batch members.
		n := max(min(t.par.Workers, cfg.BatchSize), 1)
		t.workers = make([]*gradientWorker, n)
		for i := range t.workers {
			t.workers[i] = newGradientWorker(net)
		}
	} else {
		t.stepper = newStepper(net)
	}
	return t
}

// epoch makes one pass over data and returns the mean squared error,
// each example measured before its own update.
func (t *trainer) epoch(data dataset.Dataset) (float64, error) {
	var total float64

	if !t.cfg.miniBatch() {
		for i, ex := range data {
			loss, err := t.stepper.step(ex, t.cfg.LearningRate)
			if err != nil {
				return 0, errors.Wrapf(err, "example %d", i)
			}
			total += loss
		}
		return total / float64(len(data)), nil
	}

	for start := 0; start < len(data); start += t.cfg.BatchSize {
		end := min(start+t.cfg.BatchSize, len(data))
		loss, err := t.batch(data[start:end])
		if err != nil {
			return 0, errors.Wrapf(err, "batch starting at example %d", start)
		}
		total += loss
	}
	return total / float64(len(data)), nil
}

// batch accumulates gradients of every example against the current weights,
// then applies their average once. It returns the summed squared error.
func (t *trainer) batch(batch dataset.Dataset) (float64, error) {
	chunks := t.par.Chunks(len(batch))
	errs := make([]error, len(chunks))

	parallel.ForChunks(len(batch), t.par, func(chunk, start, end int) {
		w := t.workers[chunk]
		w.reset()
		for _, ex := range batch[start:end] {
			if err := w.add(ex); err != nil {
				errs[chunk] = err
				return
			}
		}
	})

	for _, err := range errs {
		if err != nil {
			return 0, err
		}
	}

	// Synchronized update: fold every chunk into the first, then apply.
	sum := t.workers[0]
	for _, w := range t.workers[1:len(chunks)] {
		sum.sum.Add(w.sum)
		sum.loss += w.loss
	}
	if err := sum.sum.Apply(t.net, t.cfg.LearningRate/float64(len(batch))); err != nil {
		return 0, err
	}

	return sum.loss, nil
}
