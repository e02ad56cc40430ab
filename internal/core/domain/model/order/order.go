package order

import (
	"errors"
	"fmt"
	"time"

	"pindrop/internal/core/domain/model/kernel"
	"pindrop/internal/pkg/errs"
	"pindrop/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through one of the factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrOrderHasNoLines is returned when constructing an order without lines.
	ErrOrderHasNoLines = errors.New("order must contain at least one line")

	// ErrPartnerNotAssigned is returned when moving an order to Out for
	// Delivery before a delivery partner has been assigned.
	ErrPartnerNotAssigned = errors.New("order has no delivery partner assigned")

	// ErrPartnerAlreadyAssigned is returned when assigning a partner to an
	// order that already has one.
	ErrPartnerAlreadyAssigned = errors.New("order already has a delivery partner assigned")
)

// InvalidTransitionError is returned when the requested status change has no
// edge in the lifecycle graph, including any attempt to leave a terminal
// status. Carries both endpoints for error reporting.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot change order status from %s to %s", e.From, e.To)
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given edge.
func NewInvalidTransitionError(from, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

// Charges is the price breakdown snapshotted on an order at checkout.
// Total = round(Subtotal + Fee - Discount) to two decimal places; the
// checkout handler computes it and the aggregate stores it verbatim.
type Charges struct {
	Subtotal kernel.Money
	Discount kernel.Money
	Fee      kernel.Money
	Total    kernel.Money
}

// Order is the aggregate root for a placed order.
//
// Invariants:
//   - At least one line; all financial fields are immutable after creation
//   - Status changes follow the lifecycle graph and are gated by Actor
//   - A partner is assigned exactly once, while the order is Preparing;
//     Out for Delivery and Delivered always carry a partner reference
//
// The partner reference is never cleared: delivered and cancelled orders keep
// it for history. Releasing the partner for new work is the partner
// aggregate's concern.
type Order struct {
	id           kernel.ID
	customerID   kernel.ID
	restaurantID kernel.ID
	lines        []*Line
	charges      Charges
	offerID      *kernel.ID
	paymentMode  PaymentMode
	status       Status
	partnerID    *kernel.ID
	etaMinutes   int
	placedAt     time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates a new order in Placed status from a checkout result.
//
// Parameters:
//   - customerID, restaurantID: who ordered and from where
//   - lines: priced lines with checkout-time snapshots, at least one
//   - charges: the computed price breakdown
//   - offerID: the applied offer, nil when none was used
//   - paymentMode: how the customer pays
//   - etaMinutes: the delivery estimate computed at checkout
//   - placedAt: checkout timestamp
func NewOrder(
	customerID kernel.ID,
	restaurantID kernel.ID,
	lines []*Line,
	charges Charges,
	offerID *kernel.ID,
	paymentMode PaymentMode,
	etaMinutes int,
	placedAt time.Time,
) (*Order, error) {
	o := &Order{
		status: StatusPlaced,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setCustomerID(customerID),
		o.setRestaurantID(restaurantID),
		o.setLines(lines),
		o.setOfferID(offerID),
		o.setPaymentMode(paymentMode),
		o.setETAMinutes(etaMinutes),
	); err != nil {
		return nil, err
	}

	o.charges = charges
	o.placedAt = placedAt
	return o, nil
}

// RestoreOrder reconstructs an order aggregate from persistent storage,
// including its current status and partner assignment. The status/partner
// combination is validated for consistency.
func RestoreOrder(
	id kernel.ID,
	customerID kernel.ID,
	restaurantID kernel.ID,
	lines []*Line,
	charges Charges,
	offerID *kernel.ID,
	paymentMode PaymentMode,
	status Status,
	partnerID *kernel.ID,
	etaMinutes int,
	placedAt time.Time,
) (*Order, error) {
	o, err := NewOrder(customerID, restaurantID, lines, charges, offerID, paymentMode, etaMinutes, placedAt)
	if err != nil {
		return nil, err
	}

	if err := errors.Join(
		o.setID(id),
		status.Validate(),
		status.ValidateCanHavePartner(partnerID != nil),
	); err != nil {
		return nil, err
	}

	if partnerID != nil {
		if err := partnerID.Validate(); err != nil {
			return nil, err
		}
		o.partnerID = partnerID
	}

	o.status = status
	return o, nil
}

// Validate ensures the order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order identifier. Zero until the order is first persisted.
func (o *Order) ID() kernel.ID {
	return o.id
}

// CustomerID returns the identifier of the ordering customer.
func (o *Order) CustomerID() kernel.ID {
	return o.customerID
}

// RestaurantID returns the identifier of the restaurant fulfilling the order.
func (o *Order) RestaurantID() kernel.ID {
	return o.restaurantID
}

// Lines returns the priced order lines.
// The returned slice is a copy to prevent external modification.
func (o *Order) Lines() []*Line {
	out := make([]*Line, len(o.lines))
	copy(out, o.lines)
	return out
}

// Charges returns the price breakdown snapshotted at checkout.
func (o *Order) Charges() Charges {
	return o.charges
}

// OfferID returns the applied offer's identifier, or nil when the order was
// placed without an offer.
func (o *Order) OfferID() *kernel.ID {
	return o.offerID
}

// PaymentMode returns how the customer pays for the order.
func (o *Order) PaymentMode() PaymentMode {
	return o.paymentMode
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Partner returns the assigned delivery partner's identifier.
// Returns nil if no partner has been assigned yet.
func (o *Order) Partner() *kernel.ID {
	return o.partnerID
}

// ETAMinutes returns the delivery estimate computed at checkout.
func (o *Order) ETAMinutes() int {
	return o.etaMinutes
}

// PlacedAt returns the checkout timestamp.
func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// TotalQuantity returns the total number of units across all lines.
func (o *Order) TotalQuantity() int {
	total := 0
	for _, line := range o.lines {
		total += line.Quantity()
	}
	return total
}

// AssignID sets the store-generated identifier after the first insert.
// Fails if the order already has an identifier.
func (o *Order) AssignID(id kernel.ID) error {
	if !o.id.IsZero() {
		return fmt.Errorf("order already has id %s", o.id)
	}
	return o.setID(id)
}

// AssignPartner links a claimed delivery partner to the order. Must happen
// while the order is still Preparing, immediately before the transition to
// Out for Delivery, and at most once.
func (o *Order) AssignPartner(partnerID kernel.ID) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := partnerID.Validate(); err != nil {
		return err
	}

	if o.partnerID != nil {
		return ErrPartnerAlreadyAssigned
	}
	if o.status != StatusPreparing {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to assign a delivery partner", o.status))
	}

	o.partnerID = &partnerID
	return nil
}

// Transition moves the order to the target status on behalf of an actor.
//
// The change is applied only if all of the following hold:
//   - The lifecycle graph has an edge from the current status to the target;
//     otherwise an InvalidTransitionError is returned. Terminal statuses have
//     no outgoing edges, so any change from them fails this check
//   - The actor is authorized for this edge on this order; otherwise
//     ErrActorNotAllowed is returned
//   - Entering Out for Delivery requires an assigned partner; otherwise
//     ErrPartnerNotAssigned is returned
func (o *Order) Transition(to Status, by Actor) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := to.Validate(); err != nil {
		return err
	}

	if !o.status.CanTransitionTo(to) {
		return NewInvalidTransitionError(o.status, to)
	}

	if err := by.authorize(o, to); err != nil {
		return err
	}

	if to == StatusOutForDelivery && o.partnerID == nil {
		return ErrPartnerNotAssigned
	}

	o.status = to
	return nil
}

func (o *Order) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.ID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setRestaurantID(restaurantID kernel.ID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	o.restaurantID = restaurantID
	return nil
}

func (o *Order) setLines(lines []*Line) error {
	if len(lines) == 0 {
		return ErrOrderHasNoLines
	}
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}
	o.lines = lines
	return nil
}

func (o *Order) setOfferID(offerID *kernel.ID) error {
	if offerID == nil {
		return nil
	}
	if err := offerID.Validate(); err != nil {
		return err
	}
	o.offerID = offerID
	return nil
}

func (o *Order) setPaymentMode(paymentMode PaymentMode) error {
	if err := paymentMode.Validate(); err != nil {
		return err
	}
	o.paymentMode = paymentMode
	return nil
}

func (o *Order) setETAMinutes(etaMinutes int) error {
	if etaMinutes < 1 {
		return errs.NewValueIsInvalidErrorWithCause("eta minutes",
			fmt.Errorf("%d is not greater than 0", etaMinutes))
	}
	o.etaMinutes = etaMinutes
	return nil
}
