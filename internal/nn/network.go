package nn

import (
	"fmt"
	"math/rand"

	"github.com/pkg/errors"

	"github.com/born-ml/perceptron/internal/activation"
)

// Options configures network construction. The zero value builds a
// sigmoid network seeded with 0.
type Options struct {
	// Seed seeds weight initialization. Equal seeds give identical networks.
	Seed int64

	// Rand overrides Seed when set.
	Rand *rand.Rand

	// Activation is used by every hidden layer (default: Sigmoid).
	Activation activation.Activation

	// OutputActivation is used by the last layer (default: Activation).
	OutputActivation activation.Activation
}

// Network is a fully connected feed-forward network (multi-layer perceptron).
//
// The architecture descriptor lists layer widths from input to output:
// [2, 3, 1] is 2 inputs, one hidden layer of 3 neurons and 1 output neuron.
// The input "layer" has no neurons; it only declares the input width.
//
// Example:
//
//	net, err := nn.NewNetwork([]int{2, 2, 1}, nn.Options{Seed: 42})
//	if err != nil {
//	    return err
//	}
//	out, err := net.Predict([]float64{1, 0})
type Network struct {
	architecture []int
	layers       []*Layer
}

// NewNetwork builds a network from an architecture descriptor.
//
// It fails with ErrInvalidArchitecture when the descriptor has fewer than two
// widths or any width is not positive.
func NewNetwork(architecture []int, opts Options) (*Network, error) {
	if err := ValidateArchitecture(architecture); err != nil {
		return nil, err
	}

	hidden := opts.Activation
	if hidden == nil {
		hidden = activation.Sigmoid{}
	}
	output := opts.OutputActivation
	if output == nil {
		output = hidden
	}

	rng := newRand(opts)
	layers := make([]*Layer, len(architecture)-1)
	for i := range layers {
		act := hidden
		if i == len(layers)-1 {
			act = output
		}
		layers[i] = NewLayer(architecture[i+1], architecture[i], act, rng)
	}

	return &Network{
		architecture: append([]int(nil), architecture...),
		layers:       layers,
	}, nil
}

// ValidateArchitecture checks an architecture descriptor without building it.
func ValidateArchitecture(architecture []int) error {
	if len(architecture) < 2 {
		return &ArchitectureError{
			Architecture: architecture,
			Reason:       "need at least an input and an output width",
		}
	}
	for i, width := range architecture {
		if width <= 0 {
			return &ArchitectureError{
				Architecture: architecture,
				Reason:       fmt.Sprintf("width at position %d is %d, must be positive", i, width),
			}
		}
	}
	return nil
}

// Forward propagates inputs through every layer and returns the output of the
// last one. As a side effect every neuron caches its inputs, weighted sum and
// output for backpropagation.
func (n *Network) Forward(inputs []float64) ([]float64, error) {
	if err := checkWidth("network input", n.InputWidth(), len(inputs)); err != nil {
		return nil, err
	}

	current := inputs
	for i, layer := range n.layers {
		out, err := layer.Forward(current)
		if err != nil {
			return nil, errors.Wrapf(err, "layer %d", i)
		}
		current = out
	}

	return current, nil
}

// Predict runs inference. It is Forward under a name that documents
// read-only use.
func (n *Network) Predict(inputs []float64) ([]float64, error) {
	return n.Forward(inputs)
}

// Trace records the intermediate values of one forward pass.
// Index l refers to layer l (the first hidden layer is 0).
type Trace struct {
	Inputs  [][]float64 // Vector fed to layer l
	Sums    [][]float64 // Weighted sum of each neuron in layer l
	Outputs [][]float64 // Activated output of each neuron in layer l
}

// Output returns the network output recorded by the trace.
func (t *Trace) Output() []float64 {
	return t.Outputs[len(t.Outputs)-1]
}

// Trace runs a forward pass without touching the neuron caches.
//
// Weights are only read, so concurrent Trace calls on one network are safe as
// long as nothing updates the network at the same time.
func (n *Network) Trace(inputs []float64) (*Trace, error) {
	if err := checkWidth("network input", n.InputWidth(), len(inputs)); err != nil {
		return nil, err
	}

	depth := len(n.layers)
	t := &Trace{
		Inputs:  make([][]float64, depth),
		Sums:    make([][]float64, depth),
		Outputs: make([][]float64, depth),
	}

	current := inputs
	for l, layer := range n.layers {
		sums := make([]float64, layer.Width())
		outs := make([]float64, layer.Width())
		for i, neuron := range layer.neurons {
			sums[i], outs[i] = neuron.evaluate(current)
		}
		t.Inputs[l] = current
		t.Sums[l] = sums
		t.Outputs[l] = outs
		current = outs
	}

	return t, nil
}

// Architecture returns a copy of the architecture descriptor.
func (n *Network) Architecture() []int {
	return append([]int(nil), n.architecture...)
}

// InputWidth returns the declared input width.
func (n *Network) InputWidth() int {
	return n.architecture[0]
}

// OutputWidth returns the width of the last layer.
func (n *Network) OutputWidth() int {
	return n.architecture[len(n.architecture)-1]
}

// Depth returns the number of neuron layers (hidden layers plus output).
func (n *Network) Depth() int {
	return len(n.layers)
}

// Layer returns layer i, where 0 is the first hidden layer.
//
// Panics if i is out of range.
func (n *Network) Layer(i int) *Layer {
	return n.layers[i]
}

// Layers returns the layers from input side to output side.
func (n *Network) Layers() []*Layer {
	return append([]*Layer(nil), n.layers...)
}

// NumParameters returns the total count of weights and biases.
func (n *Network) NumParameters() int {
	total := 0
	for _, layer := range n.layers {
		total += layer.Width() * (layer.FanIn() + 1)
	}
	return total
}

// HiddenActivation returns the activation of the hidden layers. For a
// network without hidden layers it returns the output activation.
func (n *Network) HiddenActivation() activation.Activation {
	return n.layers[0].neurons[0].act
}

// OutputActivation returns the activation of the last layer.
func (n *Network) OutputActivation() activation.Activation {
	return n.layers[len(n.layers)-1].neurons[0].act
}

// Clone returns a deep copy that shares no mutable state with n.
func (n *Network) Clone() *Network {
	layers := make([]*Layer, len(n.layers))
	for i, layer := range n.layers {
		layers[i] = layer.clone()
	}
	return &Network{
		architecture: n.Architecture(),
		layers:       layers,
	}
}
