package nn

import (
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/perceptron/internal/activation"
)

// Neuron is a single unit: a weighted sum of its inputs plus a bias, passed
// through an activation function.
//
// Forward caches the inputs, the weighted sum and the output of the most
// recent call. Backpropagation reads those caches, so a Neuron must not be
// evaluated on another example between the forward pass and the update.
type Neuron struct {
	weights []float64
	bias    float64
	act     activation.Activation

	lastInputs      []float64
	lastWeightedSum float64
	lastOutput      float64
}

// NewNeuron creates a neuron with nInputs weights. Weights and bias are drawn
// uniformly from ±XavierBound(nInputs).
func NewNeuron(nInputs int, act activation.Activation, rng *rand.Rand) *Neuron {
	if act == nil {
		act = activation.Sigmoid{}
	}
	params := make([]float64, nInputs+1)
	Xavier(rng, nInputs, params)

	return &Neuron{
		weights: params[:nInputs:nInputs],
		bias:    params[nInputs],
		act:     act,
	}
}

// Forward computes act(Σ inputs[i]·weights[i] + bias) and caches the inputs,
// the weighted sum and the output.
func (n *Neuron) Forward(inputs []float64) (float64, error) {
	if err := checkWidth("neuron input", len(n.weights), len(inputs)); err != nil {
		return 0, err
	}

	n.lastInputs = append(n.lastInputs[:0], inputs...)
	n.lastWeightedSum = floats.Dot(inputs, n.weights) + n.bias
	n.lastOutput = n.act.Activate(n.lastWeightedSum)

	return n.lastOutput, nil
}

// evaluate computes the weighted sum and output without touching the caches.
func (n *Neuron) evaluate(inputs []float64) (z, out float64) {
	z = floats.Dot(inputs, n.weights) + n.bias
	return z, n.act.Activate(z)
}

// ApplyDelta moves the neuron along its gradient signal using the cached
// inputs of the last Forward call:
//
//	weights[k] += rate * delta * lastInputs[k]
//	bias       += rate * delta
//
// It fails if Forward has not populated the input cache yet.
func (n *Neuron) ApplyDelta(rate, delta float64) error {
	if err := checkWidth("neuron cached inputs", len(n.weights), len(n.lastInputs)); err != nil {
		return err
	}
	step := rate * delta
	floats.AddScaled(n.weights, step, n.lastInputs)
	n.bias += step
	return nil
}

// Adjust adds scale·weightDir to the weights and scale·biasDir to the bias.
// weightDir must have one entry per weight.
func (n *Neuron) Adjust(scale float64, weightDir []float64, biasDir float64) error {
	if err := checkWidth("neuron adjustment", len(n.weights), len(weightDir)); err != nil {
		return err
	}
	floats.AddScaled(n.weights, scale, weightDir)
	n.bias += scale * biasDir
	return nil
}

// NumInputs returns the neuron's fan-in.
func (n *Neuron) NumInputs() int {
	return len(n.weights)
}

// Weights returns a copy of the weight vector.
func (n *Neuron) Weights() []float64 {
	return append([]float64(nil), n.weights...)
}

// Weight returns the weight applied to input k.
func (n *Neuron) Weight(k int) float64 {
	return n.weights[k]
}

// Bias returns the bias.
func (n *Neuron) Bias() float64 {
	return n.bias
}

// SetWeights replaces the weights and bias. The weight count is fixed at
// construction.
func (n *Neuron) SetWeights(weights []float64, bias float64) error {
	if err := checkWidth("neuron weights", len(n.weights), len(weights)); err != nil {
		return err
	}
	copy(n.weights, weights)
	n.bias = bias
	return nil
}

// Activation returns the neuron's activation function.
func (n *Neuron) Activation() activation.Activation {
	return n.act
}

// LastInputs returns a copy of the inputs seen by the last Forward call.
func (n *Neuron) LastInputs() []float64 {
	return append([]float64(nil), n.lastInputs...)
}

// LastWeightedSum returns the pre-activation value of the last Forward call.
func (n *Neuron) LastWeightedSum() float64 {
	return n.lastWeightedSum
}

// LastOutput returns the activated output of the last Forward call.
func (n *Neuron) LastOutput() float64 {
	return n.lastOutput
}

func (n *Neuron) clone() *Neuron {
	return &Neuron{
		weights:         n.Weights(),
		bias:            n.bias,
		act:             n.act,
		lastInputs:      n.LastInputs(),
		lastWeightedSum: n.lastWeightedSum,
		lastOutput:      n.lastOutput,
	}
}
