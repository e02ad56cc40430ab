package order

import (
	"errors"

	"pindrop/internal/core/domain/model/kernel"
)

// ErrActorNotAllowed is returned when a status change is legal in the
// lifecycle graph but the acting party has no right to perform it, either
// because of their role or because the order belongs to someone else's
// restaurant or delivery.
var ErrActorNotAllowed = errors.New("actor is not allowed to perform this status change")

// Actor is a capability token for order status changes. An Actor encodes
// who is acting and, where relevant, on whose behalf (which restaurant,
// which partner), so the aggregate itself can enforce the role gates:
//
//	Owner    Placed -> Accepted | Rejected, Accepted -> Preparing,
//	         Preparing -> Out for Delivery (own restaurant only)
//	Care     any non-terminal -> Cancelled
//	Partner  Out for Delivery -> Delivered (assigned partner only)
//
// Implementations live in this package; handlers construct the right Actor
// from the authenticated principal and pass it to Order.Transition.
type Actor interface {
	// String names the actor role for logging and error reporting.
	String() string

	// authorize reports whether this actor may move the given order to the
	// target status. Returns ErrActorNotAllowed otherwise.
	authorize(o *Order, to Status) error
}

// OwnerActor acts on behalf of one restaurant. It may advance orders of that
// restaurant through the kitchen-side statuses.
type OwnerActor struct {
	restaurantID kernel.ID
}

// NewOwnerActor creates an actor for the owner of the given restaurant.
func NewOwnerActor(restaurantID kernel.ID) (OwnerActor, error) {
	if err := restaurantID.Validate(); err != nil {
		return OwnerActor{}, err
	}
	return OwnerActor{restaurantID: restaurantID}, nil
}

func (a OwnerActor) String() string {
	return "restaurant owner"
}

func (a OwnerActor) authorize(o *Order, to Status) error {
	if !a.restaurantID.IsEqual(o.restaurantID) {
		return ErrActorNotAllowed
	}

	allowed := map[Status]Status{
		StatusAccepted:       StatusPlaced,
		StatusRejected:       StatusPlaced,
		StatusPreparing:      StatusAccepted,
		StatusOutForDelivery: StatusPreparing,
	}

	if from, ok := allowed[to]; !ok || from != o.status {
		return ErrActorNotAllowed
	}
	return nil
}

// CareActor acts on behalf of the customer-care team. It may cancel any
// order that has not reached a terminal status.
type CareActor struct{}

// NewCareActor creates a customer-care actor.
func NewCareActor() CareActor {
	return CareActor{}
}

func (a CareActor) String() string {
	return "customer care"
}

func (a CareActor) authorize(_ *Order, to Status) error {
	if to != StatusCancelled {
		return ErrActorNotAllowed
	}
	return nil
}

// DeliveryActor acts on behalf of one delivery partner. It may mark an order
// delivered only if that partner is the one assigned to it.
type DeliveryActor struct {
	partnerID kernel.ID
}

// NewDeliveryActor creates an actor for the given delivery partner.
func NewDeliveryActor(partnerID kernel.ID) (DeliveryActor, error) {
	if err := partnerID.Validate(); err != nil {
		return DeliveryActor{}, err
	}
	return DeliveryActor{partnerID: partnerID}, nil
}

func (a DeliveryActor) String() string {
	return "delivery partner"
}

func (a DeliveryActor) authorize(o *Order, to Status) error {
	if to != StatusDelivered {
		return ErrActorNotAllowed
	}
	if o.partnerID == nil || !o.partnerID.IsEqual(a.partnerID) {
		return ErrActorNotAllowed
	}
	return nil
}
