// Package nn implements a fully connected feed-forward network built from
// explicit neurons.
//
// This package provides:
//   - Neuron: weights, bias, activation and the forward-pass cache
//   - Layer: neurons sharing one input vector
//   - Network: layers chained from an architecture descriptor
//   - Trace: a cache-free forward pass for gradient computation
//   - Xavier initialization and the squared-error loss term
//
// Training lives in package train; this package only evaluates networks and
// exposes the hooks (ApplyDelta, Adjust) the trainer needs.
package nn
