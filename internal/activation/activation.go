// Package activation implements the scalar activation functions used by
// neurons, together with their derivatives.
//
// Every Activation evaluates its derivative on the pre-activation value
// (the neuron's weighted sum), never on the activated output.
package activation

import (
	"math"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// ErrUnknownActivation is returned by Lookup for names that are not registered.
var ErrUnknownActivation = errors.New("unknown activation")

// sigmoidFloor is the weighted sum below which Sigmoid returns exactly 0.
// math.Exp(500) is still finite, so nothing beyond this point can overflow.
const sigmoidFloor = -500.0

// Activation is a pluggable nonlinearity applied to a neuron's weighted sum.
type Activation interface {
	// Name returns the registry name, persisted in model files.
	Name() string

	// Activate computes f(x).
	Activate(x float64) float64

	// Derivative computes f'(x) where x is the pre-activation value.
	Derivative(x float64) float64
}

// Sigmoid is the logistic function σ(x) = 1 / (1 + exp(-x)).
//
// Outputs lie in (0, 1) for moderate inputs. For x below -500 the result is
// clamped to exactly 0 instead of evaluating exp on a huge argument.
type Sigmoid struct{}

// Name implements Activation.
func (Sigmoid) Name() string { return "sigmoid" }

// Activate implements Activation.
func (Sigmoid) Activate(x float64) float64 {
	if x < sigmoidFloor {
		return 0
	}
	return 1 / (1 + math.Exp(-x))
}

// Derivative returns σ(x)·(1-σ(x)).
func (s Sigmoid) Derivative(x float64) float64 {
	v := s.Activate(x)
	return v * (1 - v)
}

// Tanh is the hyperbolic tangent, with outputs in (-1, 1).
type Tanh struct{}

// Name implements Activation.
func (Tanh) Name() string { return "tanh" }

// Activate implements Activation.
func (Tanh) Activate(x float64) float64 { return math.Tanh(x) }

// Derivative returns 1 - tanh²(x).
func (Tanh) Derivative(x float64) float64 {
	v := math.Tanh(x)
	return 1 - v*v
}

// ReLU is the rectified linear unit max(0, x).
type ReLU struct{}

// Name implements Activation.
func (ReLU) Name() string { return "relu" }

// Activate implements Activation.
func (ReLU) Activate(x float64) float64 {
	if x > 0 {
		return x
	}
	return 0
}

// Derivative is 1 for x > 0 and 0 otherwise (including x == 0).
func (ReLU) Derivative(x float64) float64 {
	if x > 0 {
		return 1
	}
	return 0
}

// Linear is the identity, used for unbounded regression outputs.
type Linear struct{}

// Name implements Activation.
func (Linear) Name() string { return "linear" }

// Activate implements Activation.
func (Linear) Activate(x float64) float64 { return x }

// Derivative implements Activation.
func (Linear) Derivative(float64) float64 { return 1 }

var registry = map[string]Activation{
	Sigmoid{}.Name(): Sigmoid{},
	Tanh{}.Name():    Tanh{},
	ReLU{}.Name():    ReLU{},
	Linear{}.Name():  Linear{},
}

// Lookup returns the activation registered under name (case-insensitive).
// An empty name resolves to Sigmoid.
func Lookup(name string) (Activation, error) {
	if name == "" {
		return Sigmoid{}, nil
	}
	act, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownActivation, "%q (known: %s)", name, strings.Join(Names(), ", "))
	}
	return act, nil
}

// Names returns the registered activation names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
