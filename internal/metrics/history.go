// Package metrics tracks training progress: per-epoch loss history,
// classification accuracy and a plain-text loss chart.
package metrics

import "math"

// History records the mean squared error of every completed epoch.
type History struct {
	losses []float64
}

// NewHistory returns a history with room for epochs entries.
func NewHistory(epochs int) *History {
	return &History{losses: make([]float64, 0, max(epochs, 0))}
}

// Record appends the loss of the epoch that just finished.
func (h *History) Record(loss float64) {
	h.losses = append(h.losses, loss)
}

// Losses returns a copy of the recorded losses, oldest first.
func (h *History) Losses() []float64 {
	return append([]float64(nil), h.losses...)
}

// Epochs returns the number of recorded epochs.
func (h *History) Epochs() int {
	return len(h.losses)
}

// Last returns the most recent loss, or NaN if nothing was recorded.
func (h *History) Last() float64 {
	if len(h.losses) == 0 {
		return math.NaN()
	}
	return h.losses[len(h.losses)-1]
}

// First returns the loss of the first epoch, or NaN if nothing was recorded.
func (h *History) First() float64 {
	if len(h.losses) == 0 {
		return math.NaN()
	}
	return h.losses[0]
}

// Best returns the lowest loss and the (zero-based) epoch it occurred in.
// It returns (NaN, -1) for an empty history.
func (h *History) Best() (float64, int) {
	best, at := math.NaN(), -1
	for i, loss := range h.losses {
		if at < 0 || loss < best {
			best, at = loss, i
		}
	}
	return best, at
}

// Converged reports whether the last loss is at or below threshold.
func (h *History) Converged(threshold float64) bool {
	return len(h.losses) > 0 && h.Last() <= threshold
}
