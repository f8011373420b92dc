package calculator

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidNumber is matched by every operand that fails to parse.
	ErrInvalidNumber = errors.New("invalid number")

	// ErrUnknownOperation is matched by operation names outside the closed set.
	ErrUnknownOperation = errors.New("unknown operation")

	// ErrDivisionByZero is returned by Divide when the divisor is zero.
	ErrDivisionByZero = errors.New("Cannot divide by zero")
)

// InvalidNumberError reports the operand text that could not be parsed.
type InvalidNumberError struct {
	Text string
}

func (e *InvalidNumberError) Error() string {
	return fmt.Sprintf("'%s' is not a valid number", e.Text)
}

func (e *InvalidNumberError) Unwrap() error { return ErrInvalidNumber }

// UnknownOperationError reports an operation name that is not one of
// add, subtract, multiply, divide.
type UnknownOperationError struct {
	Name string
}

func (e *UnknownOperationError) Error() string {
	return fmt.Sprintf("invalid operation %q (choose from %s)", e.Name, operationList())
}

func (e *UnknownOperationError) Unwrap() error { return ErrUnknownOperation }

// OverflowError is returned when an integer result cannot be represented as
// a float64. It is not an argument error.
type OverflowError struct {
	Msg string
}

func (e *OverflowError) Error() string { return e.Msg }

// IsInvalidArgument reports whether err was caused by malformed input rather
// than by the computation itself.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidNumber) || errors.Is(err, ErrUnknownOperation)
}

// ErrorKind classifies err for metrics and logs.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case IsInvalidArgument(err):
		return "invalid_argument"
	case errors.Is(err, ErrDivisionByZero):
		return "division_by_zero"
	default:
		return "unexpected"
	}
}
