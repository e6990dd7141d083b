package nn

// SquaredError returns Σ (expected[i] - actual[i])².
//
// This is the per-example term of the training loss; averaging it over a
// dataset gives the epoch's mean squared error.
func SquaredError(expected, actual []float64) (float64, error) {
	if err := checkWidth("expected output", len(actual), len(expected)); err != nil {
		return 0, err
	}

	var sum float64
	for i, want := range expected {
		diff := want - actual[i]
		sum += diff * diff
	}
	return sum, nil
}
