package kernel

import (
	"pindrop/internal/pkg/errs"
)

// AreaCode is the locality identifier used to scope restaurant visibility and
// delivery-partner matching to a customer's region. Customers only see
// restaurants in their area, and orders are only handed to partners covering
// the restaurant's area.
//
// The zero value (empty string) is invalid.
type AreaCode struct {
	code string
}

// NewAreaCode creates an AreaCode from its string form.
// Returns an error if the code is empty.
func NewAreaCode(code string) (AreaCode, error) {
	if code == "" {
		return AreaCode{}, errs.NewValueIsRequiredError("area code")
	}
	return AreaCode{code: code}, nil
}

// Validate checks that the AreaCode is non-empty.
func (a AreaCode) Validate() error {
	if a.code == "" {
		return errs.NewValueIsRequiredError("area code")
	}
	return nil
}

// IsEqual compares two area codes.
func (a AreaCode) IsEqual(other AreaCode) bool {
	return a.code == other.code
}

// String returns the raw area code.
func (a AreaCode) String() string {
	return a.code
}
