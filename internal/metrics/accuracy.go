package metrics

import "math"

// Round maps an output to its nearest integer label (0.5 rounds up).
func Round(v float64) float64 {
	return math.Floor(v + 0.5)
}

// Matches reports whether every rounded prediction equals the expected value.
func Matches(prediction, expected []float64) bool {
	if len(prediction) != len(expected) {
		return false
	}
	for i, want := range expected {
		if Round(prediction[i]) != want {
			return false
		}
	}
	return true
}

// Accuracy returns the fraction of examples whose rounded prediction
// matches the expected vector. Length mismatches count as misses.
// It returns 0 for empty input.
func Accuracy(predictions, expected [][]float64) float64 {
	if len(expected) == 0 {
		return 0
	}
	hits := 0
	for i, want := range expected {
		if i < len(predictions) && Matches(predictions[i], want) {
			hits++
		}
	}
	return float64(hits) / float64(len(expected))
}
