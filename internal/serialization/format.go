package serialization

import (
	"time"

	"github.com/google/uuid"
)

// Format constants.
const (
	MagicBytes      = "MLPN"
	FormatVersion   = 1
	FixedHeaderSize = 4 + 4 + 8 // magic + version + header size
	ParameterSize   = 8         // float64
	ChecksumSize    = 32        // SHA-256
)

// Header represents the JSON header in a .mlp file.
type Header struct {
	ID               uuid.UUID         `json:"id"`                // Unique per saved file
	CreatedAt        time.Time         `json:"created_at"`        // When the file was written (UTC)
	Architecture     []int             `json:"architecture"`      // Layer widths, input first
	Activation       string            `json:"activation"`        // Hidden layer activation name
	OutputActivation string            `json:"output_activation"` // Output layer activation name
	Epochs           int               `json:"epochs"`            // Completed training epochs
	Loss             float64           `json:"loss"`              // Mean squared error of the last epoch
	Metadata         map[string]string `json:"metadata"`          // Free-form annotations
}

// Meta is the caller supplied part of a Header.
type Meta struct {
	Epochs   int
	Loss     float64
	Metadata map[string]string
}

// NumParameters returns the number of float64 values the parameter section
// holds for h.Architecture.
func (h *Header) NumParameters() int {
	var n int
	for i := 1; i < len(h.Architecture); i++ {
		n += h.Architecture[i] * (h.Architecture[i-1] + 1)
	}
	return n
}
