package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/perceptron/internal/metrics"
	"github.com/born-ml/perceptron/internal/serialization"
)

func runPredict(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("predict", flag.ContinueOnError)
	fs.SetOutput(out)
	modelPath := fs.String("model", "", "Path to a .mlp model")
	input := fs.String("input", "", "Comma-separated input vector, e.g. 0,1")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *modelPath == "" || *input == "" {
		return errors.New("predict requires -model and -input")
	}

	inputs, err := parseVector(*input)
	if err != nil {
		return err
	}

	net, _, err := serialization.LoadFile(*modelPath)
	if err != nil {
		return err
	}

	output, err := net.Predict(inputs)
	if err != nil {
		return err
	}

	rounded := make([]float64, len(output))
	for i, v := range output {
		rounded[i] = metrics.Round(v)
	}
	_, err = fmt.Fprintf(out, "%v → %s (rounded %v)\n", inputs, formatVector(output), rounded)
	return err
}

func runInspect(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	fs.SetOutput(out)
	modelPath := fs.String("model", "", "Path to a .mlp model")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *modelPath == "" {
		return errors.New("inspect requires -model")
	}

	net, header, err := serialization.LoadFile(*modelPath)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "id:                %s\n", header.ID)
	fmt.Fprintf(out, "created:           %s\n", header.CreatedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(out, "architecture:      %v\n", header.Architecture)
	fmt.Fprintf(out, "activation:        %s\n", header.Activation)
	fmt.Fprintf(out, "output_activation: %s\n", header.OutputActivation)
	fmt.Fprintf(out, "parameters:        %d\n", net.NumParameters())
	fmt.Fprintf(out, "epochs:            %d\n", header.Epochs)
	fmt.Fprintf(out, "loss:              %.6f\n", header.Loss)
	for k, v := range header.Metadata {
		fmt.Fprintf(out, "meta.%s: %s\n", k, v)
	}

	for l, layer := range net.Layers() {
		fmt.Fprintf(out, "\nlayer %d (%d → %d)\nweights:\n", l, layer.FanIn(), layer.Width())
		fmt.Fprintf(out, "%.4f\n", mat.Formatted(layer.WeightMatrix(), mat.Prefix(""), mat.Squeeze()))
		fmt.Fprintf(out, "biases: %s\n", formatVector(layer.Biases()))
	}

	return nil
}

func parseVector(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	v := make([]float64, len(fields))
	for i, f := range fields {
		x, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "input value %d", i+1)
		}
		v[i] = x
	}
	return v, nil
}
