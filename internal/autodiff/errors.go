package autodiff

import "github.com/pkg/errors"

// Common errors.
var (
	// ErrInvalidOperand is returned when an operation receives an operand it
	// cannot differentiate through, such as a Value used as an exponent.
	ErrInvalidOperand = errors.New("invalid operand")

	// ErrGradientMismatch is returned by CheckGradients when the analytic and
	// numerical gradients disagree.
	ErrGradientMismatch = errors.New("gradient mismatch")
)
