// Package services provides domain services that orchestrate business
// operations across multiple domain entities. It implements workflows that
// don't naturally belong to a single aggregate root.
//
// The package includes:
//   - PartnerMatcher: selects and claims a delivery partner for an order
//   - QuoteCalculator: assembles the checkout price breakdown
//   - DeliveryEstimator: computes the delivery time estimate shown at checkout
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design
// principles.
package services
