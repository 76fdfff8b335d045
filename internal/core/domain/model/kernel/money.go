package kernel

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"dispatch/internal/pkg/errs"
)

// Money is an exact currency amount in cents.
type Money int64

// basisPoints is the denominator of a Rate.
const basisPoints = 10_000

// MaxMoneyAmount bounds the currency units MoneyFromFloat accepts in either
// direction, so the amount in cents fits an int64.
const MaxMoneyAmount = math.MaxInt64 / 100

// MoneyFromFloat rounds a decimal amount to the nearest cent.
//
// Example:
//
//	m, _ := kernel.MoneyFromFloat(1.5) // 150 cents
func MoneyFromFloat(amount float64) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, errs.NewValueIsInvalidError("amount")
	}
	// float64(math.MaxInt64) is 2^63, one past the largest int64.
	cents := math.Round(amount * 100)
	if cents >= math.MaxInt64 || cents <= math.MinInt64 {
		return 0, errs.NewValueIsOutOfRangeError("amount", amount, -MaxMoneyAmount, MaxMoneyAmount)
	}
	return Money(cents), nil
}

// ParseMoney parses a decimal amount such as "50", "12.5" or "$12.50".
func ParseMoney(s string) (Money, error) {
	f, err := strconv.ParseFloat(strings.TrimPrefix(strings.TrimSpace(s), "$"), 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return MoneyFromFloat(f)
}

// Cents returns the amount in cents.
func (m Money) Cents() int64 {
	return int64(m)
}

// Float64 returns the amount in currency units.
func (m Money) Float64() float64 {
	return float64(m) / 100
}

// Times multiplies the amount by a whole number, e.g. a per-block rate by a distance.
func (m Money) Times(n int) Money {
	return m * Money(n)
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m < 0
}

// String formats the amount with two decimals, e.g. "15.00".
func (m Money) String() string {
	sign := ""
	v := uint64(m)
	if m < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// Rate is a fraction expressed in basis points, 1000 bp = 10%.
type Rate int64

// RateFromFloat converts a fraction in [0, 1] to basis points.
func RateFromFloat(fraction float64) (Rate, error) {
	if math.IsNaN(fraction) || fraction < 0 || fraction > 1 {
		return 0, errs.NewValueIsOutOfRangeError("rate", fraction, 0, 1)
	}
	return Rate(math.Round(fraction * basisPoints)), nil
}

// Of returns the share of m covered by the rate, rounded half away from zero to a cent.
func (r Rate) Of(m Money) Money {
	scaled := int64(m) * int64(r)
	half := int64(basisPoints / 2)
	if scaled < 0 {
		return Money((scaled - half) / basisPoints)
	}
	return Money((scaled + half) / basisPoints)
}

// Float64 returns the rate as a fraction.
func (r Rate) Float64() float64 {
	return float64(r) / basisPoints
}

func (r Rate) String() string {
	return strconv.FormatFloat(r.Float64(), 'f', -1, 64)
}
