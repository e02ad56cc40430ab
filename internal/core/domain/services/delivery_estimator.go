package services

import (
	"math/rand/v2"

	"pindrop/internal/pkg/errs"
)

const (
	estimateBaseMinutes    = 25
	estimatePerItemMinutes = 2
	estimateFloorMinutes   = 15
	estimateJitterMinutes  = 5
)

// DeliveryEstimator is a domain service that computes the delivery estimate
// shown to the customer at checkout.
//
// The estimate is a base time plus a per-item preparation cost plus a small
// random jitter, floored so the platform never promises an implausibly fast
// delivery:
//
//	minutes = max(15, 25 + 2*items + jitter),  jitter in [-5, 5]
//
// The jitter source is injectable so tests stay deterministic.
type DeliveryEstimator struct {
	jitter func() int
}

// NewDeliveryEstimator creates an estimator with a uniform random jitter.
func NewDeliveryEstimator() DeliveryEstimator {
	return DeliveryEstimator{
		jitter: func() int {
			return rand.IntN(2*estimateJitterMinutes+1) - estimateJitterMinutes
		},
	}
}

// NewDeliveryEstimatorWithJitter creates an estimator with a custom jitter
// source, typically a fixed value in tests.
func NewDeliveryEstimatorWithJitter(jitter func() int) (DeliveryEstimator, error) {
	if jitter == nil {
		return DeliveryEstimator{}, errs.NewValueIsRequiredError("jitter")
	}
	return DeliveryEstimator{jitter: jitter}, nil
}

// EstimateMinutes computes the delivery estimate for an order with the given
// total number of items across all lines.
func (e DeliveryEstimator) EstimateMinutes(totalItems int) int {
	minutes := estimateBaseMinutes + estimatePerItemMinutes*totalItems + e.jitter()
	if minutes < estimateFloorMinutes {
		return estimateFloorMinutes
	}
	return minutes
}
