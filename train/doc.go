// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package train fits networks from package nn.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/perceptron/nn"
//	    "github.com/born-ml/perceptron/train"
//	)
//
//	func main() {
//	    net, _ := nn.NewNetwork([]int{2, 2, 1}, nn.Options{Seed: 42})
//
//	    history, err := train.Train(net, train.XOR(), train.Config{
//	        Epochs:       10000,
//	        LearningRate: 0.5,
//	        LogEvery:     2000,
//	        Logger:       log.Default(),
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    report, _ := train.Evaluate(net, train.XOR())
//	    fmt.Printf("loss=%.4f accuracy=%.2f\n", history.Last(), report.Accuracy)
//	}
//
// # Updates
//
// With the default BatchSize every example is followed by its own update.
// Backpropagation first computes the delta of every neuron, output layer
// first, and only then changes weights: w += rate·δ·input, b += rate·δ.
//
// BatchSize > 1 accumulates the gradients of a whole batch against the same
// weights, optionally on several Workers, and applies their average once.
package train
