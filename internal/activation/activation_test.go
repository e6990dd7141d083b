package activation

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSigmoidBounds(t *testing.T) {
	s := Sigmoid{}

	assert.Equal(t, 0.5, s.Activate(0))

	for _, x := range []float64{-30, -10, -1, -0.001, 0.001, 1, 10, 30} {
		v := s.Activate(x)
		assert.Greater(t, v, 0.0, "sigmoid(%v)", x)
		assert.Less(t, v, 1.0, "sigmoid(%v)", x)
	}
}

func TestSigmoidMonotonic(t *testing.T) {
	s := Sigmoid{}
	prev := s.Activate(-20)
	for x := -19.9; x <= 20; x += 0.1 {
		v := s.Activate(x)
		require.GreaterOrEqual(t, v, prev, "sigmoid decreased at %v", x)
		prev = v
	}
	assert.Greater(t, s.Activate(1), s.Activate(-1))
}

// Very negative weighted sums are clamped instead of overflowing.
func TestSigmoidOverflowGuard(t *testing.T) {
	s := Sigmoid{}
	for _, x := range []float64{-501, -1e4, -1e308, math.Inf(-1)} {
		v := s.Activate(x)
		assert.Equal(t, 0.0, v, "sigmoid(%v)", x)
		assert.False(t, math.IsNaN(s.Derivative(x)))
		assert.Equal(t, 0.0, s.Derivative(x))
	}
	assert.Equal(t, 1.0, s.Activate(1e308))
	assert.Equal(t, 1.0, s.Activate(math.Inf(1)))
}

func TestSigmoidDerivative(t *testing.T) {
	s := Sigmoid{}
	assert.InDelta(t, 0.25, s.Derivative(0), 1e-12)

	// Central difference on the pre-activation value.
	const h = 1e-6
	for _, x := range []float64{-3, -0.5, 0.2, 2.5} {
		numeric := (s.Activate(x+h) - s.Activate(x-h)) / (2 * h)
		assert.InDelta(t, numeric, s.Derivative(x), 1e-8, "x=%v", x)
	}
}

func TestTanh(t *testing.T) {
	a := Tanh{}
	assert.Equal(t, 0.0, a.Activate(0))
	assert.Equal(t, 1.0, a.Derivative(0))
	assert.InDelta(t, math.Tanh(0.7), a.Activate(0.7), 1e-15)

	const h = 1e-6
	x := 0.3
	numeric := (a.Activate(x+h) - a.Activate(x-h)) / (2 * h)
	assert.InDelta(t, numeric, a.Derivative(x), 1e-8)
}

func TestReLU(t *testing.T) {
	a := ReLU{}
	tests := []struct {
		x, want, deriv float64
	}{
		{-2, 0, 0},
		{0, 0, 0},
		{0.5, 0.5, 1},
		{3, 3, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, a.Activate(tt.x), "relu(%v)", tt.x)
		assert.Equal(t, tt.deriv, a.Derivative(tt.x), "relu'(%v)", tt.x)
	}
}

func TestLinear(t *testing.T) {
	a := Linear{}
	assert.Equal(t, -4.2, a.Activate(-4.2))
	assert.Equal(t, 1.0, a.Derivative(123))
}

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		act, err := Lookup(name)
		require.NoError(t, err)
		assert.Equal(t, name, act.Name())
	}

	act, err := Lookup("")
	require.NoError(t, err)
	assert.Equal(t, "sigmoid", act.Name())

	act, err = Lookup(" TanH ")
	require.NoError(t, err)
	assert.Equal(t, "tanh", act.Name())

	_, err = Lookup("softsign")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownActivation))
	assert.Contains(t, err.Error(), "softsign")
}
