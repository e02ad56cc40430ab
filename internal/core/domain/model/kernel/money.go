package kernel

import (
	"fmt"

	"github.com/shopspring/decimal"

	"pindrop/internal/pkg/errs"
)

// Money is a value object for monetary amounts (dish prices, fees, discounts,
// order totals). It is backed by a fixed-point decimal so that pricing
// arithmetic never accumulates binary floating-point error.
//
// The zero value represents a zero amount and is valid: restaurant fees and
// discounts may legitimately be zero. Negative amounts cannot be constructed.
//
// Example usage:
//
//	price, _ := kernel.NewMoneyFromFloat(100)
//	subtotal := price.MulInt(2)               // 200
//	discount := subtotal.Percent(10)          // 20
//	total, _ := subtotal.Sub(discount)        // 180
//	fmt.Println(total.Round2().String())      // "180"
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates a Money from a decimal amount.
// Returns an error if the amount is negative.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money",
			fmt.Errorf("%s is negative", amount.String()))
	}
	return Money{amount: amount}, nil
}

// NewMoneyFromFloat creates a Money from a float64 amount.
// Intended for configuration values and tests; persisted amounts should go
// through NewMoney with exact decimals.
func NewMoneyFromFloat(amount float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(amount))
}

// ZeroMoney returns the zero amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// Amount returns the underlying decimal value.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns the difference of two amounts.
// Returns an error if the result would be negative.
func (m Money) Sub(other Money) (Money, error) {
	result := m.amount.Sub(other.amount)
	if result.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money",
			fmt.Errorf("%s minus %s is negative", m.amount.String(), other.amount.String()))
	}
	return Money{amount: result}, nil
}

// MulInt returns the amount multiplied by an integer quantity.
func (m Money) MulInt(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

// Percent returns the given percentage of the amount.
func (m Money) Percent(percentage float64) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromFloat(percentage)).Div(decimal.NewFromInt(100))}
}

// Round2 returns the amount rounded to 2 decimal places.
func (m Money) Round2() Money {
	return Money{amount: m.amount.Round(2)}
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual compares two amounts for numeric equality.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// LessThan reports whether the amount is strictly smaller than the other.
func (m Money) LessThan(other Money) bool {
	return m.amount.LessThan(other.amount)
}

// Float64 returns the amount as a float64 for serialization at the HTTP edge.
func (m Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

// String returns the decimal string representation of the amount.
func (m Money) String() string {
	return m.amount.String()
}
