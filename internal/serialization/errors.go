package serialization

import (
	"fmt"

	"github.com/pkg/errors"
)

// Common errors.
var (
	ErrChecksumMismatch   = errors.New("checksum mismatch: file may be corrupted")
	ErrHeaderTooLarge     = errors.New("header exceeds maximum size")
	ErrInvalidMagic       = errors.New("invalid magic bytes")
	ErrUnsupportedVersion = errors.New("unsupported format version")
	ErrInvalidHeader      = errors.New("invalid model header")
)

// ValidationError provides detailed information about header validation
// failures. It matches ErrInvalidHeader.
type ValidationError struct {
	Field   string // Header field at fault (e.g., "architecture", "activation")
	Details string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid model header: %s: %s", e.Field, e.Details)
}

// Is reports whether target is ErrInvalidHeader.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidHeader
}
