package number

import (
	"errors"

	"github.com/asaskevich/govalidator"
	"github.com/shopspring/decimal"
)

var (
	// MaxUint128 largest amount accepted by on-chain modules
	MaxUint128 = Decimal("340282366920938463463374607431768211455")

	// ErrNotUint not a non-negative integer
	ErrNotUint = errors.New("not a non-negative integer")
	// ErrNegative result below zero
	ErrNegative = errors.New("negative result")
	// ErrOverflow result above MaxUint128
	ErrOverflow = errors.New("result exceeds uint128")
)

// Decimal parse v and ignore the error
func Decimal(v string) decimal.Decimal {
	d, _ := decimal.NewFromString(v)
	return d
}

// ParseUint parse a base-10 unsigned integer string such as "12345"
//
// signs, fractions and exponents are rejected
func ParseUint(v string) (decimal.Decimal, error) {
	if v == "" || !govalidator.IsNumeric(v) {
		return decimal.Zero, ErrNotUint
	}

	return decimal.NewFromString(v)
}

// IsUint report whether d is a non-negative integer
func IsUint(d decimal.Decimal) bool {
	return !d.IsNegative() && d.Equal(d.Truncate(0))
}

// Format amount in the wire form, integers never carry a fraction or exponent
func Format(d decimal.Decimal) string {
	return d.String()
}

// CheckedAdd a + b, failing above MaxUint128
func CheckedAdd(a, b decimal.Decimal) (decimal.Decimal, error) {
	sum := a.Add(b)
	if sum.GreaterThan(MaxUint128) {
		return decimal.Zero, ErrOverflow
	}

	return sum, nil
}

// CheckedSub a - b, failing below zero
func CheckedSub(a, b decimal.Decimal) (decimal.Decimal, error) {
	if a.LessThan(b) {
		return decimal.Zero, ErrNegative
	}

	return a.Sub(b), nil
}
