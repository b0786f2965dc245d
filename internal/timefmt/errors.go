package timefmt

import (
	"errors"
	"fmt"
)

// ErrNegativeDuration is returned by Render when called with a negative
// duration. Decomposition is only defined on non-negative values, so this is
// a caller bug rather than a recoverable condition.
var ErrNegativeDuration = errors.New("duration must not be negative")

// FormatErrorCode classifies template parse failures.
type FormatErrorCode int

const (
	// ErrUnterminatedDirective means a '%' was not followed by '%' or a
	// valid field pattern
	ErrUnterminatedDirective FormatErrorCode = iota
	// ErrInvalidWidth means a directive's digit run is zero or exceeds the
	// supported ceiling
	ErrInvalidWidth
	// ErrDuplicateField means the same field letter appears twice
	ErrDuplicateField
)

// String returns a short description of the code.
func (c FormatErrorCode) String() string {
	switch c {
	case ErrUnterminatedDirective:
		return "unterminated directive"
	case ErrInvalidWidth:
		return "invalid field width"
	case ErrDuplicateField:
		return "duplicate field"
	default:
		return "unknown error"
	}
}

// FormatError describes a malformed format template. Pos is the byte offset
// of the '%' that starts the offending directive.
type FormatError struct {
	Code FormatErrorCode
	Pos  int
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("format template: %s at offset %d", e.Code, e.Pos)
}
