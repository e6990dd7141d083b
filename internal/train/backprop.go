package train

import (
	"github.com/pkg/errors"

	"github.com/born-ml/perceptron/internal/dataset"
	"github.com/born-ml/perceptron/internal/nn"
)

// deltaBuffer holds one delta per neuron, per layer: deltas[l][i] is the
// gradient signal of neuron i in layer l.
//
// The buffer is filled completely by backward before any weight changes, so
// every hidden delta is computed against the downstream weights of the
// forward pass.
type deltaBuffer [][]float64

func newDeltaBuffer(net *nn.Network) deltaBuffer {
	buf := make(deltaBuffer, net.Depth())
	for l, layer := range net.Layers() {
		buf[l] = make([]float64, layer.Width())
	}
	return buf
}

// backward fills deltas from the pre-activation sums of every layer and the
// network output of one forward pass.
//
// Output layer:  δ_i = (expected_i - output_i) · f'(z_i)
// Hidden layer:  δ_i = (Σ_j δ_j[l+1] · w_ji[l+1]) · f'(z_i)
func backward(net *nn.Network, sums [][]float64, output, expected []float64, deltas deltaBuffer) {
	last := net.Depth() - 1

	outLayer := net.Layer(last)
	for i := range deltas[last] {
		derivative := outLayer.Neuron(i).Activation().Derivative(sums[last][i])
		deltas[last][i] = (expected[i] - output[i]) * derivative
	}

	for l := last - 1; l >= 0; l-- {
		layer, next := net.Layer(l), net.Layer(l+1)
		for i := range deltas[l] {
			var propagated float64
			for j, d := range deltas[l+1] {
				propagated += d * next.Neuron(j).Weight(i)
			}
			deltas[l][i] = propagated * layer.Neuron(i).Activation().Derivative(sums[l][i])
		}
	}
}

// stepper runs the per-example forward/backward/update cycle on the neuron
// caches. Its buffers are reused across examples.
type stepper struct {
	net    *nn.Network
	deltas deltaBuffer
	sums   [][]float64
}

func newStepper(net *nn.Network) *stepper {
	return &stepper{
		net:    net,
		deltas: newDeltaBuffer(net),
		sums:   newDeltaBuffer(net),
	}
}

// step trains on one example and returns its squared error, measured before
// the update.
func (s *stepper) step(ex dataset.Example, rate float64) (float64, error) {
	// Phase 0: forward pass populates every neuron's cache.
	output, err := s.net.Forward(ex.Input)
	if err != nil {
		return 0, err
	}
	loss, err := nn.SquaredError(ex.Expected, output)
	if err != nil {
		return 0, err
	}

	// Phase 1: all deltas, right to left, from the cached weighted sums.
	for l, layer := range s.net.Layers() {
		for i := range s.sums[l] {
			s.sums[l][i] = layer.Neuron(i).LastWeightedSum()
		}
	}
	backward(s.net, s.sums, output, ex.Expected, s.deltas)

	// Phase 2: updates, using each neuron's cached inputs.
	for l, layer := range s.net.Layers() {
		for i, delta := range s.deltas[l] {
			if err := layer.Neuron(i).ApplyDelta(rate, delta); err != nil {
				return 0, errors.Wrapf(err, "layer %d neuron %d", l, i)
			}
		}
	}

	return loss, nil
}

// Step performs one forward pass, backpropagation and weight update on a
// single example and returns the example's squared error before the update.
func Step(net *nn.Network, ex dataset.Example, rate float64) (float64, error) {
	if err := (dataset.Dataset{ex}).Validate(net.InputWidth(), net.OutputWidth()); err != nil {
		return 0, err
	}
	return newStepper(net).step(ex, rate)
}
