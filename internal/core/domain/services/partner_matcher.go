package services

import (
	"errors"

	"pindrop/internal/core/domain/model/order"
	"pindrop/internal/core/domain/model/partner"
)

// ErrNoPartnerAvailable is returned when no delivery partner in the
// restaurant's area is free to carry the order. The order stays in Preparing
// and the owner retries the handoff later.
var ErrNoPartnerAvailable = errors.New("no delivery partner available in this area")

// PartnerMatcher is a domain service responsible for finding and claiming a
// delivery partner when an order goes out for delivery.
//
// Business rules:
//   - Candidates are expected to already be scoped to the restaurant's area
//   - The first available candidate wins; there is no load balancing
//   - Claiming the partner and linking them to the order happen together,
//     inside the caller's transaction
type PartnerMatcher struct{}

// NewPartnerMatcher creates a new PartnerMatcher instance.
func NewPartnerMatcher() PartnerMatcher {
	return PartnerMatcher{}
}

// Match selects the first available partner from the candidates, claims them
// and links them to the order.
//
// Returns ErrNoPartnerAvailable if no candidate is free. On any failure the
// order and all candidates are left unmodified.
func (m PartnerMatcher) Match(o *order.Order, candidates []*partner.DeliveryPartner) (*partner.DeliveryPartner, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	for _, p := range candidates {
		if err := p.Validate(); err != nil {
			return nil, err
		}

		if !p.IsAvailable() {
			continue
		}

		if err := o.AssignPartner(p.ID()); err != nil {
			return nil, err
		}

		if err := p.Claim(); err != nil {
			return nil, err
		}

		return p, nil
	}

	return nil, ErrNoPartnerAvailable
}
