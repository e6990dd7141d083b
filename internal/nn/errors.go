package nn

import (
	"fmt"

	"github.com/pkg/errors"
)

// Common errors.
var (
	ErrDimensionMismatch   = errors.New("dimension mismatch")
	ErrInvalidArchitecture = errors.New("invalid architecture")
)

// DimensionError describes a vector whose length disagrees with the
// architecture at some boundary. It matches ErrDimensionMismatch.
type DimensionError struct {
	Where    string // Boundary that rejected the vector (e.g., "layer 1 input")
	Expected int    // Declared width
	Got      int    // Length actually supplied
}

// Error implements the error interface.
func (e *DimensionError) Error() string {
	return fmt.Sprintf("%v: %s: expected %d values, got %d", ErrDimensionMismatch, e.Where, e.Expected, e.Got)
}

// Is reports whether target is ErrDimensionMismatch.
func (e *DimensionError) Is(target error) bool {
	return target == ErrDimensionMismatch
}

// ArchitectureError describes a rejected architecture descriptor.
// It matches ErrInvalidArchitecture.
type ArchitectureError struct {
	Architecture []int
	Reason       string
}

// Error implements the error interface.
func (e *ArchitectureError) Error() string {
	return fmt.Sprintf("%v %v: %s", ErrInvalidArchitecture, e.Architecture, e.Reason)
}

// Is reports whether target is ErrInvalidArchitecture.
func (e *ArchitectureError) Is(target error) bool {
	return target == ErrInvalidArchitecture
}

func checkWidth(where string, expected, got int) error {
	if expected != got {
		return &DimensionError{Where: where, Expected: expected, Got: got}
	}
	return nil
}
