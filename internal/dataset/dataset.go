// Package dataset holds labeled training examples and the built-in datasets
// used by the examples and the CLI.
package dataset

import (
	"math"
	"math/rand"
	"strings"

	"github.com/pkg/errors"

	"github.com/born-ml/perceptron/internal/nn"
)

// ErrEmptyDataset is returned when training or evaluation gets no examples.
var ErrEmptyDataset = errors.New("dataset is empty")

// ErrUnknownDataset is returned by Builtin for unregistered names.
var ErrUnknownDataset = errors.New("unknown dataset")

// Example is one (input, expected output) pair.
type Example struct {
	Input    []float64
	Expected []float64
}

// Dataset is an ordered sequence of examples.
type Dataset []Example

// Validate checks every example against the network's input and output
// widths. The first offending example is reported by index; nothing is
// padded or truncated.
func (d Dataset) Validate(inputWidth, outputWidth int) error {
	if len(d) == 0 {
		return ErrEmptyDataset
	}
	for i, ex := range d {
		if len(ex.Input) != inputWidth {
			return errors.Wrapf(&nn.DimensionError{Where: "example input", Expected: inputWidth, Got: len(ex.Input)}, "example %d", i)
		}
		if len(ex.Expected) != outputWidth {
			return errors.Wrapf(&nn.DimensionError{Where: "example expected output", Expected: outputWidth, Got: len(ex.Expected)}, "example %d", i)
		}
	}
	return nil
}

// Inputs returns the input vectors in order.
func (d Dataset) Inputs() [][]float64 {
	inputs := make([][]float64, len(d))
	for i, ex := range d {
		inputs[i] = ex.Input
	}
	return inputs
}

// Expected returns the expected output vectors in order.
func (d Dataset) Expected() [][]float64 {
	expected := make([][]float64, len(d))
	for i, ex := range d {
		expected[i] = ex.Expected
	}
	return expected
}

// Shuffle returns a permuted copy of d. The examples themselves are shared.
func (d Dataset) Shuffle(rng *rand.Rand) Dataset {
	out := make(Dataset, len(d))
	copy(out, d)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// Split partitions d into training and validation sets. valFraction of the
// examples (rounded down) go to validation, taken from the end.
func (d Dataset) Split(valFraction float64) (train, val Dataset) {
	if valFraction <= 0 {
		return d, nil
	}
	if valFraction >= 1 {
		return nil, d
	}
	numVal := int(math.Floor(float64(len(d)) * valFraction))
	cut := len(d) - numVal
	return d[:cut], d[cut:]
}

// truthTable builds a two-input logic gate dataset in the canonical order
// (0,0), (0,1), (1,0), (1,1).
func truthTable(gate func(a, b bool) bool) Dataset {
	d := make(Dataset, 0, 4)
	for _, a := range []bool{false, true} {
		for _, b := range []bool{false, true} {
			d = append(d, Example{
				Input:    []float64{bit(a), bit(b)},
				Expected: []float64{bit(gate(a, b))},
			})
		}
	}
	return d
}

func bit(v bool) float64 {
	if v {
		return 1
	}
	return 0
}

// AND returns the AND truth table.
func AND() Dataset { return truthTable(func(a, b bool) bool { return a && b }) }

// OR returns the OR truth table.
func OR() Dataset { return truthTable(func(a, b bool) bool { return a || b }) }

// NAND returns the NAND truth table.
func NAND() Dataset { return truthTable(func(a, b bool) bool { return !(a && b) }) }

// XOR returns the XOR truth table. It is not linearly separable, so a
// network without a hidden layer cannot fit it.
func XOR() Dataset { return truthTable(func(a, b bool) bool { return a != b }) }

// Circle radius and center used by the Circle dataset.
const (
	CircleRadius  = 0.35
	CircleCenterX = 0.5
	CircleCenterY = 0.5
)

// Circle draws n points uniformly from the unit square. A point is labeled 1
// when it lies strictly inside the circle of radius CircleRadius centered on
// (CircleCenterX, CircleCenterY), 0 otherwise.
func Circle(n int, rng *rand.Rand) Dataset {
	d := make(Dataset, n)
	for i := range d {
		x, y := rng.Float64(), rng.Float64()
		d[i] = Example{
			Input:    []float64{x, y},
			Expected: []float64{bit(InCircle(x, y))},
		}
	}
	return d
}

// InCircle reports whether (x, y) lies inside the Circle dataset's circle.
func InCircle(x, y float64) bool {
	return math.Hypot(x-CircleCenterX, y-CircleCenterY) < CircleRadius
}

var gates = map[string]func() Dataset{
	"and":  AND,
	"or":   OR,
	"nand": NAND,
	"xor":  XOR,
}

// DefaultCircleSamples is the number of points Builtin draws for "circle".
const DefaultCircleSamples = 200

// Builtin returns a built-in dataset by name: one of the logic gates
// (and, or, nand, xor) or "circle". samples only applies to circle; zero
// selects DefaultCircleSamples.
func Builtin(name string, samples int, rng *rand.Rand) (Dataset, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "circle" {
		if samples <= 0 {
			samples = DefaultCircleSamples
		}
		return Circle(samples, rng), nil
	}
	if gate, ok := gates[key]; ok {
		return gate(), nil
	}
	return nil, errors.Wrapf(ErrUnknownDataset, "%q", name)
}

// IsBuiltin reports whether name refers to a built-in dataset.
func IsBuiltin(name string) bool {
	key := strings.ToLower(strings.TrimSpace(name))
	_, ok := gates[key]
	return ok || key == "circle"
}
