package nn

import (
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/perceptron/internal/activation"
)

func newTestNeuron(t *testing.T, weights []float64, bias float64) *Neuron {
	t.Helper()
	n := NewNeuron(len(weights), activation.Sigmoid{}, rand.New(rand.NewSource(1)))
	require.NoError(t, n.SetWeights(weights, bias))
	return n
}

func TestNeuron_Forward(t *testing.T) {
	n := newTestNeuron(t, []float64{0.5, -1}, 0.25)

	out, err := n.Forward([]float64{2, 1})
	require.NoError(t, err)

	// 2*0.5 + 1*(-1) + 0.25 = 0.25
	assert.InDelta(t, 0.25, n.LastWeightedSum(), 1e-15)
	assert.InDelta(t, activation.Sigmoid{}.Activate(0.25), out, 1e-15)
	assert.Equal(t, out, n.LastOutput())
	assert.Equal(t, []float64{2, 1}, n.LastInputs())
}

func TestNeuron_ForwardOverwritesCache(t *testing.T) {
	n := newTestNeuron(t, []float64{1, 1}, 0)

	_, err := n.Forward([]float64{1, 2})
	require.NoError(t, err)
	_, err = n.Forward([]float64{-1, 0})
	require.NoError(t, err)

	assert.Equal(t, []float64{-1, 0}, n.LastInputs())
	assert.InDelta(t, -1.0, n.LastWeightedSum(), 1e-15)
}

// The cache is a copy; mutating the caller's slice must not change it.
func TestNeuron_ForwardCopiesInputs(t *testing.T) {
	n := newTestNeuron(t, []float64{1, 1}, 0)
	in := []float64{3, 4}
	_, err := n.Forward(in)
	require.NoError(t, err)

	in[0] = 100
	assert.Equal(t, []float64{3, 4}, n.LastInputs())
}

func TestNeuron_ForwardDimensionMismatch(t *testing.T) {
	n := newTestNeuron(t, []float64{1, 1, 1}, 0)

	_, err := n.Forward([]float64{1, 2})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDimensionMismatch))
	assert.Contains(t, err.Error(), "expected 3 values, got 2")
	assert.Empty(t, n.LastInputs(), "failed call must not populate the cache")
}

func TestNeuron_ApplyDelta(t *testing.T) {
	n := newTestNeuron(t, []float64{0.1, 0.2}, 0.3)

	require.Error(t, n.ApplyDelta(0.5, 1), "no forward pass yet")

	_, err := n.Forward([]float64{1, -2})
	require.NoError(t, err)
	require.NoError(t, n.ApplyDelta(0.5, 0.4))

	// step = 0.2
	assert.InDeltaSlice(t, []float64{0.1 + 0.2*1, 0.2 + 0.2*-2}, n.Weights(), 1e-15)
	assert.InDelta(t, 0.5, n.Bias(), 1e-15)
}

func TestNeuron_Adjust(t *testing.T) {
	n := newTestNeuron(t, []float64{1, 2}, 3)

	require.NoError(t, n.Adjust(-0.5, []float64{2, 4}, 2))
	assert.Equal(t, []float64{0, 0}, n.Weights())
	assert.Equal(t, 2.0, n.Bias())

	err := n.Adjust(1, []float64{1}, 0)
	assert.True(t, errors.Is(err, ErrDimensionMismatch))
}

func TestNeuron_SetWeights(t *testing.T) {
	n := newTestNeuron(t, []float64{1, 2}, 3)

	err := n.SetWeights([]float64{1, 2, 3}, 0)
	assert.True(t, errors.Is(err, ErrDimensionMismatch))
	assert.Equal(t, []float64{1, 2}, n.Weights())

	w := n.Weights()
	w[0] = 42
	assert.Equal(t, 1.0, n.Weight(0), "Weights returns a copy")
	assert.Equal(t, 2, n.NumInputs())
}

func TestXavierBound(t *testing.T) {
	assert.InDelta(t, 1.7320508075688772, XavierBound(1), 1e-15)
	assert.InDelta(t, 1.0, XavierBound(5), 1e-15)
}
