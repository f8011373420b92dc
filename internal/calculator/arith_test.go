package calculator

import (
	"errors"
	"math"
	"math/big"
	"strings"
	"testing"

	"pgregory.net/rapid"
)

func sameNumber(a, b Number) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	if a.IsInt() {
		return a.Int().Cmp(b.Int()) == 0
	}
	return a.f == b.f
}

func negate(n Number) Number {
	if n.IsInt() {
		return BigInt(new(big.Int).Neg(n.Int()))
	}
	return Float(-n.f)
}

func numberGen() *rapid.Generator[Number] {
	return rapid.OneOf(
		rapid.Map(rapid.Int64(), Int),
		rapid.Map(rapid.Float64Range(-1e6, 1e6), Float),
	)
}

func mustApply(t *rapid.T, fn func(a, b Number) (Number, error), a, b Number) Number {
	n, err := fn(a, b)
	if err != nil {
		t.Fatalf("unexpected error for (%v, %v): %v", a, b, err)
	}
	return n
}

func TestArithmeticExamples(t *testing.T) {
	tests := []struct {
		name string
		fn   func(a, b Number) (Number, error)
		a, b Number
		want string
	}{
		{name: "add ints", fn: Add, a: Int(2), b: Int(3), want: "5"},
		{name: "add cancels", fn: Add, a: Int(-1), b: Int(1), want: "0"},
		{name: "add floats", fn: Add, a: Float(2.5), b: Float(3.5), want: "6.0"},
		{name: "subtract ints", fn: Subtract, a: Int(5), b: Int(3), want: "2"},
		{name: "subtract negative", fn: Subtract, a: Int(0), b: Int(5), want: "-5"},
		{name: "subtract floats", fn: Subtract, a: Float(5.5), b: Float(2.5), want: "3.0"},
		{name: "multiply ints", fn: Multiply, a: Int(2), b: Int(3), want: "6"},
		{name: "multiply negative", fn: Multiply, a: Int(-2), b: Int(3), want: "-6"},
		{name: "multiply mixed", fn: Multiply, a: Float(2.5), b: Int(4), want: "10.0"},
		{name: "multiply beyond int64", fn: Multiply, a: Int(math.MaxInt64), b: Int(math.MaxInt64), want: "85070591730234615847396907784232501249"},
		{name: "divide exact", fn: Divide, a: Int(6), b: Int(2), want: "3.0"},
		{name: "divide fraction", fn: Divide, a: Int(5), b: Int(2), want: "2.5"},
		{name: "divide negative", fn: Divide, a: Int(-4), b: Int(2), want: "-2.0"},
		{name: "divide zero numerator", fn: Divide, a: Int(0), b: Int(5), want: "0.0"},
		{name: "divide thirds", fn: Divide, a: Int(1), b: Int(3), want: "0.3333333333333333"},
		{name: "float overflow", fn: Multiply, a: Float(1e308), b: Int(10), want: "inf"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.fn(tc.a, tc.b)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.String() != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestDivideByZero(t *testing.T) {
	for _, zero := range []Number{Int(0), Float(0), Float(math.Copysign(0, -1))} {
		_, err := Divide(Int(5), zero)
		if !errors.Is(err, ErrDivisionByZero) {
			t.Fatalf("Divide(5, %v): expected ErrDivisionByZero, got %v", zero, err)
		}
		if err.Error() != "Cannot divide by zero" {
			t.Fatalf("unexpected message %q", err.Error())
		}
	}
}

func TestHugeIntegerOverflowIsUnexpected(t *testing.T) {
	huge, err := ParseNumber("1" + strings.Repeat("0", 400))
	if err != nil {
		t.Fatalf("parsing huge integer: %v", err)
	}

	// Mixing with a float forces a float conversion of the huge integer.
	_, err = Add(huge, Float(1))
	var overflow *OverflowError
	if !errors.As(err, &overflow) {
		t.Fatalf("expected *OverflowError from Add, got %v", err)
	}
	if ErrorKind(err) != "unexpected" {
		t.Fatalf("expected unexpected error kind, got %q", ErrorKind(err))
	}

	_, err = Divide(huge, Int(1))
	if !errors.As(err, &overflow) {
		t.Fatalf("expected *OverflowError from Divide, got %v", err)
	}

	// Integer division of two huge integers still fits.
	got, err := Divide(huge, huge)
	if err != nil || got.String() != "1.0" {
		t.Fatalf("expected 1.0, got %v (err %v)", got, err)
	}
}

func TestAddIsCommutative(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		a := numberGen().Draw(rt, "a")
		b := numberGen().Draw(rt, "b")

		if !sameNumber(mustApply(rt, Add, a, b), mustApply(rt, Add, b, a)) {
			rt.Fatalf("Add(%v, %v) != Add(%v, %v)", a, b, b, a)
		}
	})
}

func TestMultiplyIsCommutative(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		a := numberGen().Draw(rt, "a")
		b := numberGen().Draw(rt, "b")

		if !sameNumber(mustApply(rt, Multiply, a, b), mustApply(rt, Multiply, b, a)) {
			rt.Fatalf("Multiply(%v, %v) != Multiply(%v, %v)", a, b, b, a)
		}
	})
}

func TestSubtractIsAntisymmetric(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		a := numberGen().Draw(rt, "a")
		b := numberGen().Draw(rt, "b")

		if !sameNumber(mustApply(rt, Subtract, a, b), negate(mustApply(rt, Subtract, b, a))) {
			rt.Fatalf("Subtract(%v, %v) != -Subtract(%v, %v)", a, b, b, a)
		}
	})
}

func TestIntegerOperationsStayIntegers(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		a := Int(rapid.Int64().Draw(rt, "a"))
		b := Int(rapid.Int64().Draw(rt, "b"))

		for _, fn := range []func(a, b Number) (Number, error){Add, Subtract, Multiply} {
			if got := mustApply(rt, fn, a, b); !got.IsInt() {
				rt.Fatalf("expected integer result for (%v, %v), got %v", a, b, got)
			}
		}
	})
}

func TestDivideByZeroAlwaysFails(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		a := numberGen().Draw(rt, "a")
		zero := rapid.SampledFrom([]Number{Int(0), Float(0), Float(math.Copysign(0, -1))}).Draw(rt, "zero")

		if _, err := Divide(a, zero); !errors.Is(err, ErrDivisionByZero) {
			rt.Fatalf("Divide(%v, %v): expected ErrDivisionByZero, got %v", a, zero, err)
		}
	})
}

func TestDivideInvertsMultiply(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		a := rapid.Float64Range(-1e6, 1e6).Draw(rt, "a")
		b := rapid.Float64Range(-1e6, 1e6).Filter(func(v float64) bool { return math.Abs(v) >= 1e-6 }).Draw(rt, "b")

		q := mustApply(rt, Divide, Float(a), Float(b))
		if !q.IsFinite() || q.IsInt() {
			rt.Fatalf("Divide(%v, %v) = %v, expected a finite float", a, b, q)
		}

		back := q.f * b
		if diff := math.Abs(back - a); diff > 1e-9*math.Max(1, math.Abs(a)) {
			rt.Fatalf("Divide(%v, %v) * %v = %v, want ≈ %v", a, b, b, back, a)
		}
	})
}
