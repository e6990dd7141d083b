package train

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"

	"github.com/born-ml/perceptron/internal/activation"
	"github.com/born-ml/perceptron/internal/dataset"
	"github.com/born-ml/perceptron/internal/nn"
)

// halfLoss is ½·SE of net on ex, the loss Gradients differentiates.
func halfLoss(t *testing.T, net *nn.Network, ex dataset.Example) float64 {
	t.Helper()
	out, err := net.Predict(ex.Input)
	require.NoError(t, err)
	se, err := nn.SquaredError(ex.Expected, out)
	require.NoError(t, err)
	return se / 2
}

// perturbed returns a copy of net where parameter k of neuron (l, i) is set
// to v. k == fan-in addresses the bias.
func perturbed(t *testing.T, net *nn.Network, l, i, k int, v float64) *nn.Network {
	t.Helper()
	c := net.Clone()
	neuron := c.Layer(l).Neuron(i)
	w, b := neuron.Weights(), neuron.Bias()
	if k == len(w) {
		b = v
	} else {
		w[k] = v
	}
	require.NoError(t, neuron.SetWeights(w, b))
	return c
}

func TestComputeGradients_FiniteDifference(t *testing.T) {
	cases := []struct {
		name string
		arch []int
		opts nn.Options
		ex   dataset.Example
	}{
		{"sigmoid", []int{2, 3, 1}, nn.Options{Seed: 3}, dataset.Example{Input: []float64{0.3, 0.9}, Expected: []float64{1}}},
		{"deep", []int{3, 4, 3, 2}, nn.Options{Seed: 5}, dataset.Example{Input: []float64{1, 0, 0.5}, Expected: []float64{0, 1}}},
		{"tanh", []int{2, 2, 1}, nn.Options{Seed: 9, Activation: activation.Tanh{}, OutputActivation: activation.Linear{}}, dataset.Example{Input: []float64{-0.4, 0.7}, Expected: []float64{0.25}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			net, err := nn.NewNetwork(tc.arch, tc.opts)
			require.NoError(t, err)

			g, se, err := ComputeGradients(net, tc.ex)
			require.NoError(t, err)
			assert.InDelta(t, 2*halfLoss(t, net, tc.ex), se, 1e-12)

			settings := &fd.Settings{Formula: fd.Central, Step: 1e-6}
			for l, layer := range net.Layers() {
				for i, neuron := range layer.Neurons() {
					params := append(neuron.Weights(), neuron.Bias())
					for k, p := range params {
						numeric := fd.Derivative(func(v float64) float64 {
							return halfLoss(t, perturbed(t, net, l, i, k, v), tc.ex)
						}, p, settings)

						var analytic float64
						if k == layer.FanIn() {
							analytic = g.Biases[l][i]
						} else {
							analytic = g.Weights[l][i][k]
						}
						assert.InDelta(t, numeric, analytic, 1e-6, "layer %d neuron %d param %d", l, i, k)
					}
				}
			}
		})
	}
}

func TestComputeGradients_LeavesNetworkUntouched(t *testing.T) {
	net, err := nn.NewNetwork([]int{2, 2, 1}, nn.Options{Seed: 1})
	require.NoError(t, err)
	before := net.Clone()

	_, _, err = ComputeGradients(net, dataset.XOR()[1])
	require.NoError(t, err)

	for l, layer := range net.Layers() {
		for i, neuron := range layer.Neurons() {
			assert.Equal(t, before.Layer(l).Neuron(i).Weights(), neuron.Weights())
			assert.Equal(t, before.Layer(l).Neuron(i).Bias(), neuron.Bias())
		}
	}
}

func TestStep_MatchesGradientDescent(t *testing.T) {
	net, err := nn.NewNetwork([]int{2, 3, 2}, nn.Options{Seed: 11})
	require.NoError(t, err)
	ex := dataset.Example{Input: []float64{1, 0.5}, Expected: []float64{0, 1}}
	const rate = 0.7

	g, wantLoss, err := ComputeGradients(net, ex)
	require.NoError(t, err)

	stepped := net.Clone()
	loss, err := Step(stepped, ex, rate)
	require.NoError(t, err)
	assert.InDelta(t, wantLoss, loss, 1e-12)

	for l, layer := range net.Layers() {
		for i, neuron := range layer.Neurons() {
			after := stepped.Layer(l).Neuron(i)
			for k, w := range neuron.Weights() {
				assert.InDelta(t, w-rate*g.Weights[l][i][k], after.Weight(k), 1e-12, "layer %d neuron %d weight %d", l, i, k)
			}
			assert.InDelta(t, neuron.Bias()-rate*g.Biases[l][i], after.Bias(), 1e-12, "layer %d neuron %d bias", l, i)
		}
	}
}

// Hand-computed single step on a 1-1-1 chain. The hidden delta must use the
// output weight from before the update.
func TestStep_UsesPreUpdateWeights(t *testing.T) {
	net, err := nn.NewNetwork([]int{1, 1, 1}, nn.Options{Seed: 1})
	require.NoError(t, err)
	require.NoError(t, net.Layer(0).Neuron(0).SetWeights([]float64{0.5}, 0.1))
	require.NoError(t, net.Layer(1).Neuron(0).SetWeights([]float64{-2.0}, 0.3))

	sig := activation.Sigmoid{}
	const x, y, rate = 1.0, 1.0, 1.0
	z1 := 0.5*x + 0.1
	h := sig.Activate(z1)
	z2 := -2.0*h + 0.3
	o := sig.Activate(z2)
	dOut := (y - o) * sig.Derivative(z2)
	dHidden := dOut * -2.0 * sig.Derivative(z1)

	_, err = Step(net, dataset.Example{Input: []float64{x}, Expected: []float64{y}}, rate)
	require.NoError(t, err)

	assert.InDelta(t, -2.0+rate*dOut*h, net.Layer(1).Neuron(0).Weight(0), 1e-12)
	assert.InDelta(t, 0.3+rate*dOut, net.Layer(1).Neuron(0).Bias(), 1e-12)
	assert.InDelta(t, 0.5+rate*dHidden*x, net.Layer(0).Neuron(0).Weight(0), 1e-12)
	assert.InDelta(t, 0.1+rate*dHidden, net.Layer(0).Neuron(0).Bias(), 1e-12)
}

func TestStep_MovesOutputTowardTarget(t *testing.T) {
	net, err := nn.NewNetwork([]int{2, 2, 1}, nn.Options{Seed: 4})
	require.NoError(t, err)
	ex := dataset.Example{Input: []float64{1, 1}, Expected: []float64{1}}

	before, err := net.Predict(ex.Input)
	require.NoError(t, err)
	require.Less(t, before[0], 1.0)

	// Most activated hidden neuron after the forward pass.
	hidden := net.Layer(0).LastOutputs()
	top := 0
	for i, h := range hidden {
		if h > hidden[top] {
			top = i
		}
	}
	w0 := net.Layer(1).Neuron(0).Weight(top)

	_, err = Step(net, ex, 0.5)
	require.NoError(t, err)

	after, err := net.Predict(ex.Input)
	require.NoError(t, err)
	assert.Greater(t, after[0], before[0])

	// Sigmoid outputs are positive, so the connecting weight grows when the
	// output is too low.
	assert.Greater(t, net.Layer(1).Neuron(0).Weight(top), w0)
}

func TestStep_DimensionMismatch(t *testing.T) {
	net, err := nn.NewNetwork([]int{2, 2, 1}, nn.Options{Seed: 1})
	require.NoError(t, err)
	before := net.Clone()

	_, err = Step(net, dataset.Example{Input: []float64{1}, Expected: []float64{1}}, 0.5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, nn.ErrDimensionMismatch))

	_, err = Step(net, dataset.Example{Input: []float64{1, 0}, Expected: []float64{1, 0}}, 0.5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, nn.ErrDimensionMismatch))

	// Nothing was updated.
	assert.Equal(t, before.Layer(0).Neuron(0).Weights(), net.Layer(0).Neuron(0).Weights())
}

func TestGradients_AddScaleZero(t *testing.T) {
	net, err := nn.NewNetwork([]int{2, 2, 1}, nn.Options{Seed: 1})
	require.NoError(t, err)

	a, _, err := ComputeGradients(net, dataset.XOR()[0])
	require.NoError(t, err)
	b, _, err := ComputeGradients(net, dataset.XOR()[0])
	require.NoError(t, err)

	sum := NewGradients(net)
	sum.Add(a)
	sum.Add(b)
	sum.Scale(0.5)
	assert.InDeltaSlice(t, a.Weights[0][1], sum.Weights[0][1], 1e-15)
	assert.InDelta(t, a.Biases[1][0], sum.Biases[1][0], 1e-15)

	sum.Zero()
	for l := range sum.Weights {
		for i := range sum.Weights[l] {
			for _, v := range sum.Weights[l][i] {
				assert.Zero(t, v)
			}
		}
		for _, v := range sum.Biases[l] {
			assert.Zero(t, v)
		}
	}
}
