// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/perceptron/internal/activation"
	"github.com/born-ml/perceptron/internal/nn"
	"github.com/born-ml/perceptron/internal/serialization"
)

// Network is a fully connected feed-forward network of sigmoid-style neurons.
type Network = nn.Network

// Layer is an ordered group of neurons sharing the same inputs.
type Layer = nn.Layer

// Neuron is a single unit with weights, a bias and forward caches.
type Neuron = nn.Neuron

// Options configures network construction.
type Options = nn.Options

// Trace holds every intermediate value of one cache-free forward pass.
type Trace = nn.Trace

// NewNetwork builds a network from an architecture descriptor such as
// []int{2, 2, 1}: two inputs, one hidden layer of two neurons, one output.
//
// Example:
//
//	net, err := nn.NewNetwork([]int{2, 2, 1}, nn.Options{Seed: 42})
func NewNetwork(architecture []int, opts Options) (*Network, error) {
	return nn.NewNetwork(architecture, opts)
}

// ValidateArchitecture reports whether architecture can build a network.
func ValidateArchitecture(architecture []int) error {
	return nn.ValidateArchitecture(architecture)
}

// SquaredError returns Σ (expected[i] - actual[i])².
func SquaredError(expected, actual []float64) (float64, error) {
	return nn.SquaredError(expected, actual)
}

// Errors

// ErrDimensionMismatch matches every vector length mismatch.
var ErrDimensionMismatch = nn.ErrDimensionMismatch

// ErrInvalidArchitecture matches every rejected architecture descriptor.
var ErrInvalidArchitecture = nn.ErrInvalidArchitecture

// DimensionError describes a vector length mismatch.
type DimensionError = nn.DimensionError

// ArchitectureError describes a rejected architecture descriptor.
type ArchitectureError = nn.ArchitectureError

// Activations

// Activation is a differentiable transfer function.
type Activation = activation.Activation

// Sigmoid is the logistic function 1/(1+e^-x), the default activation.
type Sigmoid = activation.Sigmoid

// Tanh is the hyperbolic tangent.
type Tanh = activation.Tanh

// ReLU is max(0, x).
type ReLU = activation.ReLU

// Linear is the identity, for regression outputs.
type Linear = activation.Linear

// LookupActivation resolves an activation by name (sigmoid, tanh, relu,
// linear). The empty name resolves to Sigmoid.
func LookupActivation(name string) (Activation, error) {
	return activation.Lookup(name)
}

// Persistence

// ModelHeader is the metadata stored with a saved network.
type ModelHeader = serialization.Header

// ModelMeta is the caller supplied part of a ModelHeader.
type ModelMeta = serialization.Meta

// Save writes net to path in .mlp format.
//
// Example:
//
//	_, err := nn.Save("xor.mlp", net, nn.ModelMeta{Epochs: 10000, Loss: history.Last()})
func Save(path string, net *Network, meta ModelMeta) (*ModelHeader, error) {
	return serialization.SaveFile(path, net, meta)
}

// Load reads a network saved with Save.
func Load(path string) (*Network, *ModelHeader, error) {
	return serialization.LoadFile(path)
}
