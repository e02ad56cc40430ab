package services

import (
	"pindrop/internal/core/domain/model/kernel"
	"pindrop/internal/core/domain/model/order"
)

// QuoteCalculator is a domain service that assembles the checkout price
// breakdown from its parts.
//
// Business rules:
//   - Subtotal is the sum of line totals using checkout-time unit prices
//   - Discount is rounded to two decimal places before it is applied, so the
//     stored breakdown adds up exactly
//   - Total = subtotal + restaurant fee - discount, rounded to two decimal
//     places, and never negative
type QuoteCalculator struct{}

// NewQuoteCalculator creates a new QuoteCalculator instance.
func NewQuoteCalculator() QuoteCalculator {
	return QuoteCalculator{}
}

// Subtotal sums the line totals of the priced order lines.
func (q QuoteCalculator) Subtotal(lines []*order.Line) kernel.Money {
	subtotal := kernel.ZeroMoney()
	for _, line := range lines {
		subtotal = subtotal.Add(line.Total())
	}
	return subtotal
}

// Assemble builds the final charge breakdown from subtotal, discount and fee.
// Fails if the discount exceeds subtotal plus fee, which a correctly bounded
// offer can never produce.
func (q QuoteCalculator) Assemble(subtotal, discount, fee kernel.Money) (order.Charges, error) {
	discount = discount.Round2()

	total, err := subtotal.Add(fee).Sub(discount)
	if err != nil {
		return order.Charges{}, err
	}

	return order.Charges{
		Subtotal: subtotal,
		Discount: discount,
		Fee:      fee,
		Total:    total.Round2(),
	}, nil
}
