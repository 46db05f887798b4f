// Package geom implements the exact 2D geometry used by Dalmatian media:
// vectors, vector lists and rectangles whose coordinates are arbitrary
// precision rationals.
//
// Values are immutable: every operation allocates its result and never
// modifies its operands, so vectors may be freely shared between paths.
// Floating point only appears when a value is formatted for a rendering
// surface, and in the quantized trigonometry of trig.go.
package geom

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// ErrInvalidNumber is returned when a text field is not a rational number.
var ErrInvalidNumber = errors.New("invalid rational number")

var zero = new(big.Rat)

// R returns the rational num/den. It panics if den is zero.
func R(num, den int64) *big.Rat {
	return big.NewRat(num, den)
}

// Int returns the rational n/1.
func Int(n int64) *big.Rat {
	return new(big.Rat).SetInt64(n)
}

// ParseRat parses `n/d`, integer or decimal text.
func ParseRat(s string) (*big.Rat, error) {
	s = strings.TrimSpace(s)
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	return r, nil
}

// MustParseRat is like ParseRat but panics on invalid input.
// It is intended for constants and tests.
func MustParseRat(s string) *big.Rat {
	r, err := ParseRat(s)
	if err != nil {
		panic(err)
	}
	return r
}

// FormatRat returns the DLMT text of r: an integer when the
// denominator is one, `n/d` otherwise.
func FormatRat(r *big.Rat) string {
	return val(r).RatString()
}

// FormatFloat returns r rounded to three decimals.
func FormatFloat(r *big.Rat) string {
	return fmt.Sprintf("%.3f", toFloat(r))
}

func val(r *big.Rat) *big.Rat {
	if r == nil {
		return zero
	}
	return r
}

func toFloat(r *big.Rat) float64 {
	f, _ := val(r).Float64()
	return f
}

func add(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(val(a), val(b)) }

func sub(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(val(a), val(b)) }

func mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(val(a), val(b)) }

func neg(a *big.Rat) *big.Rat { return new(big.Rat).Neg(val(a)) }

// Mul returns a*b.
func Mul(a, b *big.Rat) *big.Rat { return mul(a, b) }

// Inv returns 1/a. It panics if a is zero.
func Inv(a *big.Rat) *big.Rat { return new(big.Rat).Inv(val(a)) }

func cmp(a, b *big.Rat) int { return val(a).Cmp(val(b)) }
