package tradebook

import "errors"

var (
	// ErrValidation is wrapped by every error caused by invalid input: empty text
	// fields, non-positive prices, unknown categories.
	ErrValidation = errors.New("validation error")

	// ErrDivisionByZero is returned by percent computations when the reference
	// amount is zero.
	ErrDivisionByZero = errors.New("division by zero")
)
