package train

import (
	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/perceptron/internal/dataset"
	"github.com/born-ml/perceptron/internal/nn"
)

// Gradients holds ∂L/∂w and ∂L/∂b for every parameter of a network, where
// L = ½·Σ (expected - output)² is the loss of one example (or the sum over
// several examples once accumulated).
//
// Descending the gradient (w -= rate·∂L/∂w) is the same update as the
// per-example rule w += rate·δ·input.
type Gradients struct {
	Weights [][][]float64 // [layer][neuron][input]
	Biases  [][]float64   // [layer][neuron]
}

// NewGradients returns zeroed gradients shaped like net.
func NewGradients(net *nn.Network) *Gradients {
	g := &Gradients{
		Weights: make([][][]float64, net.Depth()),
		Biases:  make([][]float64, net.Depth()),
	}
	for l, layer := range net.Layers() {
		g.Weights[l] = make([][]float64, layer.Width())
		for i := range g.Weights[l] {
			g.Weights[l][i] = make([]float64, layer.FanIn())
		}
		g.Biases[l] = make([]float64, layer.Width())
	}
	return g
}

// Zero resets every entry to 0.
func (g *Gradients) Zero() {
	for l := range g.Weights {
		for i := range g.Weights[l] {
			clear(g.Weights[l][i])
		}
		clear(g.Biases[l])
	}
}

// Add accumulates other into g. Both must have the same shape.
func (g *Gradients) Add(other *Gradients) {
	for l := range g.Weights {
		for i := range g.Weights[l] {
			floats.Add(g.Weights[l][i], other.Weights[l][i])
		}
		floats.Add(g.Biases[l], other.Biases[l])
	}
}

// Scale multiplies every entry by f.
func (g *Gradients) Scale(f float64) {
	for l := range g.Weights {
		for i := range g.Weights[l] {
			floats.Scale(f, g.Weights[l][i])
		}
		floats.Scale(f, g.Biases[l])
	}
}

// accumulate adds the gradients of one traced example with the given deltas.
func (g *Gradients) accumulate(tr *nn.Trace, deltas deltaBuffer) {
	for l := range deltas {
		inputs := tr.Inputs[l]
		for i, delta := range deltas[l] {
			floats.AddScaled(g.Weights[l][i], -delta, inputs)
			g.Biases[l][i] -= delta
		}
	}
}

// Apply descends the gradients on net: w -= rate·∂L/∂w, b -= rate·∂L/∂b.
func (g *Gradients) Apply(net *nn.Network, rate float64) error {
	for l, layer := range net.Layers() {
		for i, neuron := range layer.Neurons() {
			if err := neuron.Adjust(-rate, g.Weights[l][i], g.Biases[l][i]); err != nil {
				return err
			}
		}
	}
	return nil
}

// gradientWorker computes per-example gradients from traces, leaving the
// network's forward caches and weights untouched.
type gradientWorker struct {
	net    *nn.Network
	deltas deltaBuffer
	sum    *Gradients
	loss   float64
}

func newGradientWorker(net *nn.Network) *gradientWorker {
	return &gradientWorker{
		net:    net,
		deltas: newDeltaBuffer(net),
		sum:    NewGradients(net),
	}
}

func (w *gradientWorker) reset() {
	w.sum.Zero()
	w.loss = 0
}

// add traces ex, backpropagates and accumulates its gradients and loss.
func (w *gradientWorker) add(ex dataset.Example) error {
	tr, err := w.net.Trace(ex.Input)
	if err != nil {
		return err
	}
	output := tr.Output()
	loss, err := nn.SquaredError(ex.Expected, output)
	if err != nil {
		return err
	}

	backward(w.net, tr.Sums, output, ex.Expected, w.deltas)
	w.sum.accumulate(tr, w.deltas)
	w.loss += loss
	return nil
}

// ComputeGradients returns the gradients of one example's loss and its
// squared error without modifying the network.
func ComputeGradients(net *nn.Network, ex dataset.Example) (*Gradients, float64, error) {
	if err := (dataset.Dataset{ex}).Validate(net.InputWidth(), net.OutputWidth()); err != nil {
		return nil, 0, err
	}
	w := newGradientWorker(net)
	if err := w.add(ex); err != nil {
		return nil, 0, err
	}
	return w.sum, w.loss, nil
}
