// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the multilayer perceptron and its building blocks.
//
// # Overview
//
// This package contains:
//   - Network, Layer, Neuron: a fully connected feed-forward network
//   - Activations: Sigmoid (default), Tanh, ReLU, Linear
//   - Loss: SquaredError
//   - Persistence: Save and Load in the .mlp format
//
// # Basic Usage
//
//	import "github.com/born-ml/perceptron/nn"
//
//	func main() {
//	    // Two inputs, one hidden layer of two neurons, one output.
//	    net, err := nn.NewNetwork([]int{2, 2, 1}, nn.Options{Seed: 42})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    // Forward pass
//	    output, err := net.Forward([]float64{0, 1})
//	}
//
// # Initialization
//
// Every weight and bias is drawn uniformly from ±sqrt(6/(fanIn+1)). The same
// Options.Seed always produces the same network.
//
// # Forward Caches
//
// Forward stores each neuron's inputs, weighted sum and output; package
// train reads them during backpropagation. Predict is the same computation
// and is meant for inference. Trace computes every intermediate value
// without touching the caches.
//
// # Errors
//
// Every vector length mismatch matches ErrDimensionMismatch and every
// rejected architecture matches ErrInvalidArchitecture:
//
//	if errors.Is(err, nn.ErrDimensionMismatch) {
//	    // wrong input width
//	}
package nn
