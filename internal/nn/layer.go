package nn

import (
	"math/rand"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/perceptron/internal/activation"
)

// Layer is an ordered group of neurons that all read the same input vector.
//
// A layer is created with a fixed width and fan-in and never resizes.
type Layer struct {
	neurons     []*Neuron
	fanIn       int
	lastOutputs []float64
}

// NewLayer creates a layer of width neurons, each with fanIn inputs.
func NewLayer(width, fanIn int, act activation.Activation, rng *rand.Rand) *Layer {
	neurons := make([]*Neuron, width)
	for i := range neurons {
		neurons[i] = NewNeuron(fanIn, act, rng)
	}
	return &Layer{
		neurons: neurons,
		fanIn:   fanIn,
	}
}

// Forward feeds inputs to every neuron and returns their outputs in neuron
// order. The returned slice is also cached as LastOutputs.
func (l *Layer) Forward(inputs []float64) ([]float64, error) {
	if err := checkWidth("layer input", l.fanIn, len(inputs)); err != nil {
		return nil, err
	}

	outputs := make([]float64, len(l.neurons))
	for i, neuron := range l.neurons {
		out, err := neuron.Forward(inputs)
		if err != nil {
			return nil, errors.Wrapf(err, "neuron %d", i)
		}
		outputs[i] = out
	}
	l.lastOutputs = outputs

	return outputs, nil
}

// Width returns the number of neurons.
func (l *Layer) Width() int {
	return len(l.neurons)
}

// FanIn returns the input width shared by every neuron.
func (l *Layer) FanIn() int {
	return l.fanIn
}

// Neuron returns the neuron at index i.
//
// Panics if i is out of range.
func (l *Layer) Neuron(i int) *Neuron {
	return l.neurons[i]
}

// Neurons returns the layer's neurons in order. The slice is a copy; the
// neurons are shared.
func (l *Layer) Neurons() []*Neuron {
	return append([]*Neuron(nil), l.neurons...)
}

// LastOutputs returns a copy of the outputs of the last Forward call.
func (l *Layer) LastOutputs() []float64 {
	return append([]float64(nil), l.lastOutputs...)
}

// WeightMatrix returns the weights as a Width()×FanIn() matrix, one row per
// neuron.
func (l *Layer) WeightMatrix() *mat.Dense {
	m := mat.NewDense(len(l.neurons), l.fanIn, nil)
	for i, neuron := range l.neurons {
		m.SetRow(i, neuron.weights)
	}
	return m
}

// Biases returns the neuron biases in order.
func (l *Layer) Biases() []float64 {
	biases := make([]float64, len(l.neurons))
	for i, neuron := range l.neurons {
		biases[i] = neuron.bias
	}
	return biases
}

func (l *Layer) clone() *Layer {
	neurons := make([]*Neuron, len(l.neurons))
	for i, neuron := range l.neurons {
		neurons[i] = neuron.clone()
	}
	return &Layer{
		neurons:     neurons,
		fanIn:       l.fanIn,
		lastOutputs: l.LastOutputs(),
	}
}
