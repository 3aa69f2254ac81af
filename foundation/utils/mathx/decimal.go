// File: decimal.go
// Title: Decimal Arithmetic Implementation
// Description: Implements precise decimal arithmetic on top of big.Rat to
//              avoid floating-point precision issues when handling parsed
//              numeric fields like alcohol percentages and review scores.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation with core decimal operations

package mathx

import (
	"fmt"
	"math/big"
	"strings"
)

// Decimal represents a decimal number with arbitrary precision
type Decimal struct {
	value *big.Rat
}

// NewDecimal creates a new Decimal from a string representation.
// Supports formats like "123.45", "-67.89", "100".
func NewDecimal(s string) (Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Decimal{}, fmt.Errorf("invalid decimal format: empty string")
	}
	rat := new(big.Rat)
	if _, ok := rat.SetString(s); !ok {
		return Decimal{}, fmt.Errorf("invalid decimal format: %s", s)
	}
	return Decimal{value: rat}, nil
}

// MustNewDecimal creates a new Decimal from a string, panicking on error.
// Use this when you're certain the input is valid (e.g., constants).
func MustNewDecimal(s string) Decimal {
	d, err := NewDecimal(s)
	if err != nil {
		panic(err)
	}
	return d
}

// NewDecimalFromInt creates a new Decimal from an integer
func NewDecimalFromInt(i int64) Decimal {
	return Decimal{value: new(big.Rat).SetInt64(i)}
}

// Zero returns a decimal representing zero
func Zero() Decimal {
	return Decimal{value: new(big.Rat)}
}

// rat returns the underlying value, treating the zero Decimal as 0
func (d Decimal) rat() *big.Rat {
	if d.value == nil {
		return new(big.Rat)
	}
	return d.value
}

// Add returns the sum of d and other
func (d Decimal) Add(other Decimal) Decimal {
	return Decimal{value: new(big.Rat).Add(d.rat(), other.rat())}
}

// Subtract returns the difference of d and other
func (d Decimal) Subtract(other Decimal) Decimal {
	return Decimal{value: new(big.Rat).Sub(d.rat(), other.rat())}
}

// Multiply returns the product of d and other
func (d Decimal) Multiply(other Decimal) Decimal {
	return Decimal{value: new(big.Rat).Mul(d.rat(), other.rat())}
}

// Divide returns the quotient of d and other
func (d Decimal) Divide(other Decimal) (Decimal, error) {
	if other.IsZero() {
		return Decimal{}, fmt.Errorf("division by zero")
	}
	return Decimal{value: new(big.Rat).Quo(d.rat(), other.rat())}, nil
}

// Abs returns the absolute value of d
func (d Decimal) Abs() Decimal {
	return Decimal{value: new(big.Rat).Abs(d.rat())}
}

// Neg returns the negation of d
func (d Decimal) Neg() Decimal {
	return Decimal{value: new(big.Rat).Neg(d.rat())}
}

// IsZero returns true if d equals zero
func (d Decimal) IsZero() bool {
	return d.rat().Sign() == 0
}

// Sign returns the sign of d: -1 if negative, 0 if zero, +1 if positive
func (d Decimal) Sign() int {
	return d.rat().Sign()
}

// Compare compares d with other.
// Returns -1 if d < other, 0 if d == other, +1 if d > other.
func (d Decimal) Compare(other Decimal) int {
	return d.rat().Cmp(other.rat())
}

// Equal returns true if d equals other
func (d Decimal) Equal(other Decimal) bool {
	return d.Compare(other) == 0
}

// GreaterThan returns true if d > other
func (d Decimal) GreaterThan(other Decimal) bool {
	return d.Compare(other) > 0
}

// LessThan returns true if d < other
func (d Decimal) LessThan(other Decimal) bool {
	return d.Compare(other) < 0
}

// Round rounds the decimal to the specified number of decimal places using
// commercial rounding (0.5 rounds away from zero)
func (d Decimal) Round(places int) Decimal {
	if places < 0 {
		places = 0
	}
	// FloatString applies half-away-from-zero rounding at the cut
	return MustNewDecimal(d.rat().FloatString(places))
}

// Truncate truncates the decimal toward zero to the given decimal places
func (d Decimal) Truncate(places int) Decimal {
	if places < 0 {
		places = 0
	}
	pow := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(places)), nil)
	scaled := new(big.Rat).Mul(d.rat(), new(big.Rat).SetInt(pow))
	trunc := new(big.Int).Quo(scaled.Num(), scaled.Denom())
	return Decimal{value: new(big.Rat).SetFrac(trunc, pow)}
}

// StringFixed returns the decimal with exactly the given number of fraction
// digits, rounding if necessary ("12" with places 2 becomes "12.00")
func (d Decimal) StringFixed(places int) string {
	if places < 0 {
		places = 0
	}
	return d.rat().FloatString(places)
}

// String returns the shortest exact decimal representation. Values without
// a finite decimal expansion are rendered with 8 fraction digits.
func (d Decimal) String() string {
	v := d.rat()
	if v.IsInt() {
		return v.Num().String()
	}

	if places, ok := d.finitePlaces(); ok {
		return v.FloatString(places)
	}

	s := v.FloatString(8)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// finitePlaces reports how many fraction digits an exact decimal expansion
// needs. The expansion is finite exactly when the denominator has no prime
// factors other than 2 and 5.
func (d Decimal) finitePlaces() (int, bool) {
	den := new(big.Int).Set(d.rat().Denom())
	two := big.NewInt(2)
	five := big.NewInt(5)
	one := big.NewInt(1)
	rem := new(big.Int)

	twos, fives := 0, 0
	for {
		q, r := new(big.Int).QuoRem(den, two, rem)
		if r.Sign() != 0 {
			break
		}
		den = q
		twos++
	}
	for {
		q, r := new(big.Int).QuoRem(den, five, rem)
		if r.Sign() != 0 {
			break
		}
		den = q
		fives++
	}

	if den.Cmp(one) != 0 {
		return 0, false
	}
	if fives > twos {
		return fives, true
	}
	return twos, true
}

// Float64 returns the nearest float64 representation
func (d Decimal) Float64() float64 {
	f, _ := d.rat().Float64()
	return f
}
