// Package quantity represents ingredient amounts as exact rationals so that
// serving-size conversions never accumulate rounding error. Amounts are only
// rendered to decimal or fraction strings at the presentation boundary.
package quantity

import (
	"Recipe-Book-Backend/domain"
	"errors"
	"math/big"
	"strings"
)

var ErrInvalidAmount = errors.New("invalid amount")

var ten = big.NewInt(10)

type Amount struct {
	rat *big.Rat
}

// Parse accepts decimal strings ("1.5", "500") as stored in the database
// and fraction strings ("3/4").
func Parse(s string) (Amount, error) {
	r, ok := new(big.Rat).SetString(strings.TrimSpace(s))
	if !ok {
		return Amount{}, ErrInvalidAmount
	}
	return Amount{rat: r}, nil
}

func FromInt(n int64) Amount {
	return Amount{rat: new(big.Rat).SetInt64(n)}
}

func FromFraction(num, denom int64) Amount {
	return Amount{rat: big.NewRat(num, denom)}
}

func (a Amount) IsZero() bool {
	return a.rat == nil || a.rat.Sign() == 0
}

func (a Amount) Positive() bool {
	return a.rat != nil && a.rat.Sign() > 0
}

func (a Amount) Equal(b Amount) bool {
	if a.rat == nil || b.rat == nil {
		return a.rat == b.rat
	}
	return a.rat.Cmp(b.rat) == 0
}

// Decimal renders the amount as a fixed-point decimal with three fractional
// digits, the storage representation of ingredient amounts.
func (a Amount) Decimal() string {
	if a.rat == nil {
		return "0.000"
	}
	return a.rat.FloatString(3)
}

// String picks the most natural rendering a cook would write, in order:
// a whole number, a neat proper fraction (denominator at most 10), or a
// decimal rounded to three places with trailing zeros stripped.
func (a Amount) String() string {
	if a.rat == nil {
		return "0"
	}
	// big.Rat keeps the fraction in lowest terms.
	if a.rat.IsInt() {
		return a.rat.Num().String()
	}
	if a.rat.Num().CmpAbs(a.rat.Denom()) < 0 && a.rat.Denom().Cmp(ten) <= 0 {
		return a.rat.RatString()
	}
	s := strings.TrimRight(a.rat.FloatString(3), "0")
	return strings.TrimSuffix(s, ".")
}

// Scale converts an amount stored relative to originalServings into the
// equivalent amount for targetServings: amount * target / original.
func Scale(amount Amount, originalServings, targetServings Amount) (Amount, error) {
	if amount.rat == nil {
		return Amount{}, ErrInvalidAmount
	}
	if !originalServings.Positive() || !targetServings.Positive() {
		return Amount{}, domain.ErrInvalidServings
	}
	scaled := new(big.Rat).Mul(amount.rat, targetServings.rat)
	scaled.Quo(scaled, originalServings.rat)
	return Amount{rat: scaled}, nil
}
