// Package train fits networks from package nn with backpropagation and
// gradient descent on the squared error.
//
// Each update runs in two phases. First the deltas of every layer are
// computed right to left into a delta buffer; only then are weights and
// biases changed. Hidden deltas therefore always use the downstream weights
// that produced the forward pass.
//
// Example usage:
//
//	net, _ := nn.NewNetwork([]int{2, 2, 1}, nn.Options{Seed: 42})
//	history, err := train.Train(net, dataset.XOR(), train.Config{
//	    Epochs:       10000,
//	    LearningRate: 0.5,
//	    LogEvery:     2000,
//	    Logger:       log.Default(),
//	})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(history.Last())
package train
