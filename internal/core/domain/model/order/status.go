package order

import (
	"fmt"

	"pindrop/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Placed ──> Accepted ──> Preparing ──> Out for Delivery ──> Delivered
//	   │
//	   └──> Rejected
//
//	(any non-terminal) ──> Cancelled
//
// Delivered, Cancelled and Rejected are terminal: no transition ever leaves
// them. Which actor may perform which transition is enforced separately by
// the Actor implementations; Status only answers whether an edge exists.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPlaced is the initial status assigned at checkout.
	// The restaurant owner decides whether to accept or reject.
	StatusPlaced

	// StatusAccepted indicates the restaurant has committed to the order.
	StatusAccepted

	// StatusPreparing indicates the kitchen is working on the order.
	StatusPreparing

	// StatusOutForDelivery indicates a delivery partner is carrying the order.
	// Entering this status requires an assigned partner.
	StatusOutForDelivery

	// StatusDelivered is the successful terminal state.
	StatusDelivered

	// StatusCancelled is the terminal state reached via customer-care
	// intervention at any non-terminal point of the lifecycle.
	StatusCancelled

	// StatusRejected is the terminal state when the restaurant declines a
	// freshly placed order.
	StatusRejected
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:        "Unknown",
		StatusPlaced:         "Placed",
		StatusAccepted:       "Accepted",
		StatusPreparing:      "Preparing",
		StatusOutForDelivery: "Out for Delivery",
		StatusDelivered:      "Delivered",
		StatusCancelled:      "Cancelled",
		StatusRejected:       "Rejected",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPlaced:         "Placed",
		StatusAccepted:       "Accepted",
		StatusPreparing:      "Preparing",
		StatusOutForDelivery: "Out for Delivery",
		StatusDelivered:      "Delivered",
		StatusCancelled:      "Cancelled",
		StatusRejected:       "Rejected",
	}
}

// getTransitionGraph returns the full set of legal status edges, independent
// of which actor may traverse them. Terminal statuses have no outgoing edges.
func getTransitionGraph() map[Status][]Status {
	return map[Status][]Status{
		StatusPlaced:         {StatusAccepted, StatusRejected, StatusCancelled},
		StatusAccepted:       {StatusPreparing, StatusCancelled},
		StatusPreparing:      {StatusOutForDelivery, StatusCancelled},
		StatusOutForDelivery: {StatusDelivered, StatusCancelled},
	}
}

// StatusFromString parses a Status from its display string, e.g. "Out for Delivery".
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
// StatusUnknown (0) and any other unlisted values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled || s == StatusRejected
}

// CanTransitionTo reports whether an edge from s to the target status exists
// in the lifecycle graph. It does not consider actor permissions.
func (s Status) CanTransitionTo(to Status) bool {
	for _, next := range getTransitionGraph()[s] {
		if next == to {
			return true
		}
	}
	return false
}

// ValidateCanHavePartner validates the consistency between order status and
// partner assignment.
//
// Business rules:
//   - Orders before Out for Delivery must not have a partner assigned
//   - Out for Delivery and Delivered orders must have a partner assigned
//   - Cancelled and Rejected orders may or may not, depending on how far the
//     order got before intervention
func (s Status) ValidateCanHavePartner(partner bool) error {
	if partner && (s == StatusPlaced || s == StatusAccepted || s == StatusPreparing) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have a delivery partner", s.String()),
		)
	}

	if !partner && (s == StatusOutForDelivery || s == StatusDelivered) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have no delivery partner", s.String()),
		)
	}

	return nil
}
