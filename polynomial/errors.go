package polynomial

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned for a negative exponent, a negative
	// derivative order or a negative degree.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDivisionByZero is returned when dividing by a scalar or a polynomial
	// whose coefficients are all within Epsilon of zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrTypeMismatch is returned when an Operand is neither a Polynomial
	// nor a real scalar.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrUnsupportedOperation is returned by Roots for degrees above two.
	ErrUnsupportedOperation = errors.New("unsupported operation")
)

// errorf wraps err as "cannot <op>: <detail>: <err>".
func errorf(op string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("cannot %s: %s: %w", op, fmt.Sprintf(format, args...), err)
}
