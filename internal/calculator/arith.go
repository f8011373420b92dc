package calculator

import (
	"math"
	"math/big"
)

// Add returns a + b.
func Add(a, b Number) (Number, error) {
	return binary(a, b,
		func(x, y *big.Int) *big.Int { return new(big.Int).Add(x, y) },
		func(x, y float64) float64 { return x + y },
	)
}

// Subtract returns a - b.
func Subtract(a, b Number) (Number, error) {
	return binary(a, b,
		func(x, y *big.Int) *big.Int { return new(big.Int).Sub(x, y) },
		func(x, y float64) float64 { return x - y },
	)
}

// Multiply returns a * b.
func Multiply(a, b Number) (Number, error) {
	return binary(a, b,
		func(x, y *big.Int) *big.Int { return new(big.Int).Mul(x, y) },
		func(x, y float64) float64 { return x * y },
	)
}

// Divide returns a / b as a float. The zero check happens before anything
// else, whatever the operand kinds.
func Divide(a, b Number) (Number, error) {
	if b.IsZero() {
		return Number{}, ErrDivisionByZero
	}

	if a.IsInt() && b.IsInt() {
		// big.Rat gives the correctly rounded quotient even when the
		// operands themselves do not fit in a float64.
		f, _ := new(big.Rat).SetFrac(a.Int(), b.Int()).Float64()
		if math.IsInf(f, 0) {
			return Number{}, &OverflowError{Msg: "integer division result too large for a float"}
		}
		return Float(f), nil
	}

	x, y, err := floats(a, b)
	if err != nil {
		return Number{}, err
	}
	return Float(x / y), nil
}

// binary keeps Int op Int exact and promotes everything else to float.
func binary(a, b Number, intOp func(x, y *big.Int) *big.Int, floatOp func(x, y float64) float64) (Number, error) {
	if a.IsInt() && b.IsInt() {
		return Number{kind: KindInt, i: intOp(a.Int(), b.Int())}, nil
	}

	x, y, err := floats(a, b)
	if err != nil {
		return Number{}, err
	}
	return Float(floatOp(x, y)), nil
}

func floats(a, b Number) (float64, float64, error) {
	x, err := a.Float64()
	if err != nil {
		return 0, 0, err
	}
	y, err := b.Float64()
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}
