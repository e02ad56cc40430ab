// Package complaint contains the Complaint aggregate: a customer-raised
// issue worked by the customer-care team through a small status workflow.
package complaint

import (
	"errors"
	"fmt"
	"time"

	"pindrop/internal/core/domain/model/kernel"
	"pindrop/internal/pkg/errs"
	"pindrop/internal/pkg/guard"
)

// ErrComplaintIsNotConstructed is returned when a Complaint instance was not
// created through one of the factory methods.
var ErrComplaintIsNotConstructed = errors.New(
	"Complaint must be created via NewComplaint or RestoreComplaint constructor")

// Status represents the care-side workflow state of a complaint.
//
// State transitions:
//
//	Open ──> In Progress ──> Resolved ──> Closed
//	  │           │
//	  └───────────┴──> Closed
//
// Closed is terminal. Open and In Progress may be closed directly when the
// complaint turns out to need no resolution.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusOpen is the initial status when a complaint is raised.
	StatusOpen

	// StatusInProgress indicates the care team is working the complaint.
	StatusInProgress

	// StatusResolved indicates a resolution has been communicated.
	StatusResolved

	// StatusClosed is the terminal status.
	StatusClosed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusOpen:       "Open",
		StatusInProgress: "In Progress",
		StatusResolved:   "Resolved",
		StatusClosed:     "Closed",
	}
}

func getTransitionGraph() map[Status][]Status {
	return map[Status][]Status{
		StatusOpen:       {StatusInProgress, StatusResolved, StatusClosed},
		StatusInProgress: {StatusResolved, StatusClosed},
		StatusResolved:   {StatusClosed},
	}
}

// StatusFromString parses a Status from its display string, e.g. "In Progress".
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("complaint status",
		fmt.Errorf("%q is not a valid complaint status", s))
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("complaint status",
			fmt.Errorf("%d is not a valid complaint status", s))
	}
	return nil
}

// String returns the string representation of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// InvalidStatusChangeError is returned when a complaint status update does
// not follow the workflow graph.
type InvalidStatusChangeError struct {
	From Status
	To   Status
}

func (e *InvalidStatusChangeError) Error() string {
	return fmt.Sprintf("cannot change complaint status from %s to %s", e.From, e.To)
}

// Complaint is the aggregate root for a customer complaint.
// The optional order reference links the complaint to the order it concerns.
type Complaint struct {
	id          kernel.ID
	customerID  kernel.ID
	orderID     *kernel.ID
	description string
	status      Status
	raisedAt    time.Time

	guard guard.ConstructorGuard
}

// NewComplaint creates a new complaint in Open status.
func NewComplaint(customerID kernel.ID, orderID *kernel.ID, description string, raisedAt time.Time) (*Complaint, error) {
	c := &Complaint{
		status: StatusOpen,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setCustomerID(customerID),
		c.setOrderID(orderID),
		c.setDescription(description),
	); err != nil {
		return nil, err
	}

	c.raisedAt = raisedAt
	return c, nil
}

// RestoreComplaint reconstructs a complaint aggregate from persistent storage.
func RestoreComplaint(
	id kernel.ID,
	customerID kernel.ID,
	orderID *kernel.ID,
	description string,
	status Status,
	raisedAt time.Time,
) (*Complaint, error) {
	c, err := NewComplaint(customerID, orderID, description, raisedAt)
	if err != nil {
		return nil, err
	}

	if err := errors.Join(
		c.setID(id),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	c.status = status
	return c, nil
}

// Validate ensures the complaint was created through a constructor.
func (c *Complaint) Validate() error {
	if c == nil {
		return ErrComplaintIsNotConstructed
	}
	return c.guard.Validate(ErrComplaintIsNotConstructed)
}

// ID returns the complaint identifier.
func (c *Complaint) ID() kernel.ID {
	return c.id
}

// CustomerID returns the identifier of the customer who raised the complaint.
func (c *Complaint) CustomerID() kernel.ID {
	return c.customerID
}

// OrderID returns the referenced order's identifier, or nil when the
// complaint is not about a specific order.
func (c *Complaint) OrderID() *kernel.ID {
	return c.orderID
}

// Description returns the customer's description of the issue.
func (c *Complaint) Description() string {
	return c.description
}

// Status returns the current workflow status.
func (c *Complaint) Status() Status {
	return c.status
}

// RaisedAt returns when the complaint was raised.
func (c *Complaint) RaisedAt() time.Time {
	return c.raisedAt
}

// AssignID sets the store-generated identifier after the first insert.
// Fails if the complaint already has an identifier.
func (c *Complaint) AssignID(id kernel.ID) error {
	if !c.id.IsZero() {
		return fmt.Errorf("complaint already has id %s", c.id)
	}
	return c.setID(id)
}

// UpdateStatus moves the complaint along the workflow graph.
// Returns an InvalidStatusChangeError if no such edge exists, including any
// attempt to change a closed complaint.
func (c *Complaint) UpdateStatus(to Status) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := to.Validate(); err != nil {
		return err
	}

	for _, next := range getTransitionGraph()[c.status] {
		if next == to {
			c.status = to
			return nil
		}
	}

	return &InvalidStatusChangeError{From: c.status, To: to}
}

func (c *Complaint) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Complaint) setCustomerID(customerID kernel.ID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *Complaint) setOrderID(orderID *kernel.ID) error {
	if orderID == nil {
		return nil
	}
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *Complaint) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("complaint description")
	}
	c.description = description
	return nil
}
