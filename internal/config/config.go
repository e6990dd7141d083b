// Package config loads the YAML run configuration used by the perceptron CLI.
package config

import (
	"io"
	"math/rand"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/born-ml/perceptron/internal/activation"
	"github.com/born-ml/perceptron/internal/dataset"
	"github.com/born-ml/perceptron/internal/nn"
	"github.com/born-ml/perceptron/internal/train"
)

// Config captures the knobs of one training run.
type Config struct {
	Architecture     []int  `yaml:"architecture"`
	Activation       string `yaml:"activation"`
	OutputActivation string `yaml:"output_activation"`

	Epochs       int     `yaml:"epochs"`
	LearningRate float64 `yaml:"learning_rate"`
	BatchSize    int     `yaml:"batch_size"`
	Workers      int     `yaml:"workers"`
	Seed         int64   `yaml:"seed"`
	Shuffle      bool    `yaml:"shuffle"`
	TargetLoss   float64 `yaml:"target_loss"`
	LogEvery     int     `yaml:"log_every"`

	Dataset         string  `yaml:"dataset"`
	Samples         int     `yaml:"samples"`
	ValidationSplit float64 `yaml:"validation_split"`

	ModelOut string `yaml:"model_out"`
}

// Overrides captures CLI supplied values.
type Overrides struct {
	Epochs       int
	LearningRate float64
	Seed         int64
	Dataset      string
	ModelOut     string
	LogEvery     int
}

// Default returns the XOR demo: a [2, 2, 1] sigmoid network trained for
// 10000 epochs at learning rate 0.5.
func Default() *Config {
	return &Config{
		Architecture: []int{2, 2, 1},
		Activation:   activation.Sigmoid{}.Name(),
		Epochs:       10000,
		LearningRate: 0.5,
		Seed:         42,
		LogEvery:     2000,
		Dataset:      "xor",
	}
}

// Load reads and validates a Config from a YAML file.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open config")
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Parse decodes YAML on top of Default. Keys missing from the document keep
// their default; unknown keys are an error.
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	return cfg, nil
}

// ApplyOverrides updates c using any non-zero override.
func (c *Config) ApplyOverrides(o Overrides) {
	if o.Epochs > 0 {
		c.Epochs = o.Epochs
	}
	if o.LearningRate > 0 {
		c.LearningRate = o.LearningRate
	}
	if o.Seed != 0 {
		c.Seed = o.Seed
	}
	if o.Dataset != "" {
		c.Dataset = o.Dataset
	}
	if o.ModelOut != "" {
		c.ModelOut = o.ModelOut
	}
	if o.LogEvery > 0 {
		c.LogEvery = o.LogEvery
	}
}

// Validate verifies the config is runnable.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if err := nn.ValidateArchitecture(c.Architecture); err != nil {
		return err
	}
	if _, err := activation.Lookup(c.Activation); err != nil {
		return errors.Wrap(err, "activation")
	}
	if c.OutputActivation != "" {
		if _, err := activation.Lookup(c.OutputActivation); err != nil {
			return errors.Wrap(err, "output_activation")
		}
	}
	if err := c.TrainConfig().Validate(); err != nil {
		return err
	}
	if c.Dataset == "" {
		return errors.New("dataset must be set")
	}
	if c.Samples < 0 {
		return errors.Errorf("samples must be >= 0 (got %d)", c.Samples)
	}
	if c.ValidationSplit < 0 || c.ValidationSplit >= 1 {
		return errors.Errorf("validation_split must be in [0, 1) (got %v)", c.ValidationSplit)
	}
	if c.LogEvery < 0 {
		return errors.Errorf("log_every must be >= 0 (got %d)", c.LogEvery)
	}
	return nil
}

// NetworkOptions resolves the activation names into nn.Options.
func (c *Config) NetworkOptions() (nn.Options, error) {
	hidden, err := activation.Lookup(c.Activation)
	if err != nil {
		return nn.Options{}, err
	}
	opts := nn.Options{Seed: c.Seed, Activation: hidden}
	if c.OutputActivation != "" {
		if opts.OutputActivation, err = activation.Lookup(c.OutputActivation); err != nil {
			return nn.Options{}, err
		}
	}
	return opts, nil
}

// TrainConfig returns the trainer settings. Logger and OnEpoch are left for
// the caller.
func (c *Config) TrainConfig() train.Config {
	return train.Config{
		Epochs:       c.Epochs,
		LearningRate: c.LearningRate,
		BatchSize:    c.BatchSize,
		Workers:      c.Workers,
		Shuffle:      c.Shuffle,
		Seed:         c.Seed,
		TargetLoss:   c.TargetLoss,
		LogEvery:     c.LogEvery,
	}
}

// LoadDataset builds the configured dataset: a built-in name or a CSV path
// whose rows carry Architecture[0] inputs followed by the expected outputs.
// It returns the training and validation partitions.
func (c *Config) LoadDataset() (trainSet, validation dataset.Dataset, err error) {
	var data dataset.Dataset
	if dataset.IsBuiltin(c.Dataset) {
		//nolint:gosec // Sample generation only needs to be reproducible
		rng := rand.New(rand.NewSource(c.Seed))
		data, err = dataset.Builtin(c.Dataset, c.Samples, rng)
	} else {
		data, err = dataset.LoadCSVFile(c.Dataset, c.Architecture[0])
	}
	if err != nil {
		return nil, nil, err
	}

	if c.ValidationSplit > 0 {
		trainSet, validation = data.Split(c.ValidationSplit)
		return trainSet, validation, nil
	}
	return data, nil, nil
}
