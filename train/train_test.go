// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package train_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/perceptron/nn"
	"github.com/born-ml/perceptron/train"
)

func TestPublicAPI_TrainSaveLoad(t *testing.T) {
	net, err := nn.NewNetwork([]int{2, 2, 1}, nn.Options{Seed: 42})
	require.NoError(t, err)

	history, err := train.Train(net, train.AND(), train.Config{Epochs: 3000, LearningRate: 0.5})
	require.NoError(t, err)

	report, err := train.Evaluate(net, train.AND())
	require.NoError(t, err)
	assert.Equal(t, 1.0, report.Accuracy)

	path := filepath.Join(t.TempDir(), "and.mlp")
	_, err = nn.Save(path, net, nn.ModelMeta{Epochs: history.Epochs(), Loss: history.Last()})
	require.NoError(t, err)

	loaded, header, err := nn.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3000, header.Epochs)

	reloaded, err := train.Evaluate(loaded, train.AND())
	require.NoError(t, err)
	assert.Equal(t, report.Predictions, reloaded.Predictions)
}

func TestPublicAPI_Errors(t *testing.T) {
	_, err := nn.NewNetwork([]int{2}, nn.Options{})
	assert.True(t, errors.Is(err, nn.ErrInvalidArchitecture))

	net, err := nn.NewNetwork([]int{2, 1}, nn.Options{Activation: nn.Tanh{}})
	require.NoError(t, err)

	_, err = net.Forward([]float64{1, 2, 3})
	assert.True(t, errors.Is(err, nn.ErrDimensionMismatch))

	_, err = train.Train(net, train.XOR(), train.Config{})
	assert.True(t, errors.Is(err, train.ErrInvalidConfig))

	_, err = train.Train(net, nil, train.Config{Epochs: 1, LearningRate: 1})
	assert.True(t, errors.Is(err, train.ErrEmptyDataset))
}
