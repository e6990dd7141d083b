package train

import (
	"github.com/born-ml/perceptron/internal/dataset"
	"github.com/born-ml/perceptron/internal/metrics"
	"github.com/born-ml/perceptron/internal/nn"
)

// Report summarizes a network's fit on a dataset.
type Report struct {
	Loss        float64     // Mean over examples of the summed squared error
	Accuracy    float64     // Fraction of examples whose rounded output matches exactly
	Predictions [][]float64 // Network output per example, in dataset order
}

// Evaluate runs inference on every example without updating the network.
func Evaluate(net *nn.Network, data dataset.Dataset) (Report, error) {
	if err := data.Validate(net.InputWidth(), net.OutputWidth()); err != nil {
		return Report{}, err
	}

	predictions := make([][]float64, len(data))
	var total float64
	for i, ex := range data {
		out, err := net.Predict(ex.Input)
		if err != nil {
			return Report{}, err
		}
		loss, err := nn.SquaredError(ex.Expected, out)
		if err != nil {
			return Report{}, err
		}
		predictions[i] = out
		total += loss
	}

	return Report{
		Loss:        total / float64(len(data)),
		Accuracy:    metrics.Accuracy(predictions, data.Expected()),
		Predictions: predictions,
	}, nil
}
