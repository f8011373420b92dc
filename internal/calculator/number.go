package calculator

import (
	"errors"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Kind is the representation chosen for a Number.
type Kind int

const (
	KindInt Kind = iota
	KindFloat
)

func (k Kind) String() string {
	if k == KindFloat {
		return "float"
	}
	return "int"
}

// Number is an operand or a result. Integers are unbounded; floats are
// IEEE-754 doubles.
type Number struct {
	kind Kind
	i    *big.Int
	f    float64
}

// Int returns an integer Number.
func Int(v int64) Number {
	return Number{kind: KindInt, i: big.NewInt(v)}
}

// BigInt returns an integer Number holding a copy of v.
func BigInt(v *big.Int) Number {
	return Number{kind: KindInt, i: new(big.Int).Set(v)}
}

// Float returns a floating-point Number.
func Float(v float64) Number {
	return Number{kind: KindFloat, f: v}
}

var (
	intPattern   = regexp.MustCompile(`^[+-]?\d(_?\d)*$`)
	floatPattern = regexp.MustCompile(`^[+-]?(\d(_?\d)*)?\.(\d(_?\d)*)?([eE][+-]?\d(_?\d)*)?$`)
)

// ParseNumber converts text to a Number. Text containing a '.' is parsed as
// a float, anything else as an integer.
func ParseNumber(text string) (Number, error) {
	s := asciiDigits(strings.TrimSpace(text))
	invalid := &InvalidNumberError{Text: text}

	if strings.Contains(text, ".") {
		if !floatPattern.MatchString(s) || !strings.ContainsAny(mantissa(s), "0123456789") {
			return Number{}, invalid
		}
		f, err := strconv.ParseFloat(strings.ReplaceAll(s, "_", ""), 64)
		if err != nil {
			// Out-of-range literals round to ±Inf or 0.
			var numErr *strconv.NumError
			if !errors.As(err, &numErr) || !errors.Is(numErr.Err, strconv.ErrRange) {
				return Number{}, invalid
			}
		}
		return Float(f), nil
	}

	if !intPattern.MatchString(s) {
		return Number{}, invalid
	}
	i, ok := new(big.Int).SetString(strings.ReplaceAll(s, "_", ""), 10)
	if !ok {
		return Number{}, invalid
	}
	return Number{kind: KindInt, i: i}, nil
}

// asciiDigits rewrites every Unicode decimal digit (category Nd) as its
// ASCII equivalent, so "١٢" reads as "12".
func asciiDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r < utf8.RuneSelf || !unicode.Is(unicode.Nd, r) {
			return r
		}
		// Nd digits come in runs of ten starting at zero.
		zero := r
		for unicode.Is(unicode.Nd, zero-1) {
			zero--
		}
		return '0' + (r-zero)%10
	}, s)
}

func mantissa(s string) string {
	if idx := strings.IndexAny(s, "eE"); idx >= 0 {
		return s[:idx]
	}
	return s
}

// Kind reports the representation of n.
func (n Number) Kind() Kind { return n.kind }

// IsInt reports whether n is integer-typed.
func (n Number) IsInt() bool { return n.kind == KindInt }

// IsZero reports whether n equals zero, regardless of representation.
func (n Number) IsZero() bool {
	if n.kind == KindInt {
		return n.i == nil || n.i.Sign() == 0
	}
	return n.f == 0
}

// Int returns the integer value of n. It is only meaningful for KindInt.
func (n Number) Int() *big.Int {
	if n.i == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(n.i)
}

// Float64 converts n to a float64. Integers too large for a double fail
// with an *OverflowError.
func (n Number) Float64() (float64, error) {
	if n.kind == KindFloat {
		return n.f, nil
	}
	f, _ := new(big.Float).SetInt(n.Int()).Float64()
	if math.IsInf(f, 0) {
		return 0, &OverflowError{Msg: "int too large to convert to float"}
	}
	return f, nil
}

// IsFinite reports whether n can be written as a plain decimal literal.
func (n Number) IsFinite() bool {
	if n.kind == KindInt {
		return true
	}
	return !math.IsInf(n.f, 0) && !math.IsNaN(n.f)
}

// String renders n the way the calculator prints it: integers without a
// decimal point, floats in shortest round-trip form with at least one
// fractional digit.
func (n Number) String() string {
	if n.kind == KindInt {
		return n.Int().String()
	}
	return formatFloat(n.f)
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	sci := strconv.FormatFloat(f, 'e', -1, 64)
	exp, _ := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if f != 0 && (exp < -4 || exp >= 16) {
		return sci
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
