// Package partner contains the DeliveryPartner aggregate.
//
// A delivery partner covers one area and carries at most one in-flight order
// at a time: the available flag is the contended resource of delivery
// assignment. Claiming a partner flips the flag to false inside the same
// transaction that links the partner to the order; completing or cancelling
// the delivery releases them.
package partner

import (
	"errors"
	"fmt"

	"pindrop/internal/core/domain/model/kernel"
	"pindrop/internal/pkg/guard"
)

var (
	// ErrPartnerIsNotConstructed is returned when a DeliveryPartner instance was
	// not created through one of the factory methods.
	ErrPartnerIsNotConstructed = errors.New(
		"DeliveryPartner must be created via NewDeliveryPartner or RestoreDeliveryPartner constructor")

	// ErrPartnerAlreadyClaimed is returned when claiming a partner who is
	// already carrying an order.
	ErrPartnerAlreadyClaimed = errors.New("delivery partner is already claimed by another order")
)

// DeliveryPartner represents a delivery partner in the system.
//
// Invariants:
//   - Linked to exactly one user account
//   - Serves exactly one area code
//   - At most one in-flight order may hold the partner at a time; the
//     available flag is the only mutable field
type DeliveryPartner struct {
	id        kernel.ID
	userID    kernel.ID
	areaCode  kernel.AreaCode
	available bool

	guard guard.ConstructorGuard
}

// NewDeliveryPartner creates a new partner profile for a user account.
// New partners start available.
func NewDeliveryPartner(userID kernel.ID, areaCode kernel.AreaCode) (*DeliveryPartner, error) {
	p := &DeliveryPartner{
		available: true,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setUserID(userID),
		p.setAreaCode(areaCode),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreDeliveryPartner reconstructs a partner aggregate from persistent storage,
// including its current availability.
func RestoreDeliveryPartner(
	id kernel.ID,
	userID kernel.ID,
	areaCode kernel.AreaCode,
	available bool,
) (*DeliveryPartner, error) {
	p := &DeliveryPartner{
		available: available,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setUserID(userID),
		p.setAreaCode(areaCode),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the partner was created through a constructor.
func (p *DeliveryPartner) Validate() error {
	if p == nil {
		return ErrPartnerIsNotConstructed
	}
	return p.guard.Validate(ErrPartnerIsNotConstructed)
}

// IsEqual compares two partners by their unique identifiers.
func (p *DeliveryPartner) IsEqual(other *DeliveryPartner) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the partner's unique identifier.
func (p *DeliveryPartner) ID() kernel.ID {
	return p.id
}

// UserID returns the identifier of the partner's user account.
func (p *DeliveryPartner) UserID() kernel.ID {
	return p.userID
}

// AreaCode returns the area the partner covers.
func (p *DeliveryPartner) AreaCode() kernel.AreaCode {
	return p.areaCode
}

// IsAvailable reports whether the partner can take a new delivery.
func (p *DeliveryPartner) IsAvailable() bool {
	return p.available
}

// AssignID sets the store-generated identifier after the first insert.
// Fails if the partner already has an identifier.
func (p *DeliveryPartner) AssignID(id kernel.ID) error {
	if !p.id.IsZero() {
		return fmt.Errorf("delivery partner already has id %s", p.id)
	}
	return p.setID(id)
}

// Claim marks the partner as carrying an order.
// Returns ErrPartnerAlreadyClaimed if the partner is not available.
func (p *DeliveryPartner) Claim() error {
	if !p.available {
		return ErrPartnerAlreadyClaimed
	}
	p.available = false
	return nil
}

// Release marks the partner as available again after the delivery completes
// or the order is cancelled. Idempotent.
func (p *DeliveryPartner) Release() {
	p.available = true
}

// ToggleAvailability flips the partner's availability and returns the new value.
// Used by partners going on or off shift.
func (p *DeliveryPartner) ToggleAvailability() bool {
	p.available = !p.available
	return p.available
}

func (p *DeliveryPartner) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *DeliveryPartner) setUserID(userID kernel.ID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	p.userID = userID
	return nil
}

func (p *DeliveryPartner) setAreaCode(areaCode kernel.AreaCode) error {
	if err := areaCode.Validate(); err != nil {
		return err
	}
	p.areaCode = areaCode
	return nil
}
