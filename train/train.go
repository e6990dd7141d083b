// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package train

import (
	"math/rand"

	"github.com/born-ml/perceptron/internal/dataset"
	"github.com/born-ml/perceptron/internal/metrics"
	"github.com/born-ml/perceptron/internal/nn"
	"github.com/born-ml/perceptron/internal/train"
)

// Config holds the hyperparameters and hooks of a training run.
type Config = train.Config

// Report summarizes a network's fit on a dataset.
type Report = train.Report

// Gradients holds per-parameter gradients of the half squared error.
type Gradients = train.Gradients

// History records the mean squared error of every epoch.
type History = metrics.History

// ErrInvalidConfig matches every rejected Config.
var ErrInvalidConfig = train.ErrInvalidConfig

// Train fits net to data by backpropagation.
//
// Example:
//
//	history, err := train.Train(net, train.XOR(), train.Config{
//	    Epochs:       10000,
//	    LearningRate: 0.5,
//	})
func Train(net *nn.Network, data Dataset, cfg Config) (*History, error) {
	return train.Train(net, data, cfg)
}

// Step runs one forward pass, backpropagation and update on ex and returns
// its squared error before the update.
func Step(net *nn.Network, ex Example, rate float64) (float64, error) {
	return train.Step(net, ex, rate)
}

// ComputeGradients returns the gradients of one example without modifying
// the network.
func ComputeGradients(net *nn.Network, ex Example) (*Gradients, float64, error) {
	return train.ComputeGradients(net, ex)
}

// Evaluate reports loss and rounded accuracy without updating the network.
func Evaluate(net *nn.Network, data Dataset) (Report, error) {
	return train.Evaluate(net, data)
}

// Accuracy returns the fraction of predictions whose rounded values all
// match the expected values.
func Accuracy(predictions, expected [][]float64) float64 {
	return metrics.Accuracy(predictions, expected)
}

// Datasets

// Example is one (input, expected output) pair.
type Example = dataset.Example

// Dataset is an ordered sequence of examples.
type Dataset = dataset.Dataset

// ErrEmptyDataset is returned when training or evaluation gets no examples.
var ErrEmptyDataset = dataset.ErrEmptyDataset

// AND returns the two-input AND truth table.
func AND() Dataset { return dataset.AND() }

// OR returns the two-input OR truth table.
func OR() Dataset { return dataset.OR() }

// NAND returns the two-input NAND truth table.
func NAND() Dataset { return dataset.NAND() }

// XOR returns the two-input XOR truth table.
func XOR() Dataset { return dataset.XOR() }

// Circle draws n labeled points from the unit square; points inside the
// centered circle of radius 0.35 are labeled 1.
func Circle(n int, rng *rand.Rand) Dataset { return dataset.Circle(n, rng) }

// LoadCSV reads a dataset from a CSV file with a header row; each row holds
// inputWidth inputs followed by the expected outputs.
func LoadCSV(path string, inputWidth int) (Dataset, error) {
	return dataset.LoadCSVFile(path, inputWidth)
}
