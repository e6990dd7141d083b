package serialization

import (
	"fmt"

	"github.com/born-ml/perceptron/internal/activation"
	"github.com/born-ml/perceptron/internal/nn"
)

// Validation limits for resource protection.
const (
	MaxHeaderSize = 1 << 20 // 1MB - maximum JSON header size
	MaxParameters = 1 << 26 // Maximum parameter count (512MB of float64)
)

// ValidateHeader checks that h describes a network this package can rebuild.
func ValidateHeader(h *Header) error {
	if err := nn.ValidateArchitecture(h.Architecture); err != nil {
		return &ValidationError{Field: "architecture", Details: err.Error()}
	}

	// Overflow-safe parameter bound before anything is allocated.
	var count int
	for i := 1; i < len(h.Architecture); i++ {
		fanIn, width := h.Architecture[i-1], h.Architecture[i]
		if fanIn >= MaxParameters || width > (MaxParameters-count)/(fanIn+1) {
			return &ValidationError{
				Field:   "architecture",
				Details: fmt.Sprintf("more than %d parameters", MaxParameters),
			}
		}
		count += width * (fanIn + 1)
	}

	if _, err := activation.Lookup(h.Activation); err != nil {
		return &ValidationError{Field: "activation", Details: err.Error()}
	}
	if _, err := activation.Lookup(h.OutputActivation); err != nil {
		return &ValidationError{Field: "output_activation", Details: err.Error()}
	}
	if h.Epochs < 0 {
		return &ValidationError{Field: "epochs", Details: fmt.Sprintf("negative value %d", h.Epochs)}
	}

	return nil
}
