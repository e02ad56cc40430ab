package kernel

import (
	"fmt"
	"strconv"

	"pindrop/internal/pkg/errs"
)

// ID is a value object wrapping the surrogate integer identifier assigned by
// the persistent store. The zero value is invalid: repositories assign IDs on
// insert and reconstruct them via NewID when loading.
//
// ID is immutable and safe for concurrent use.
//
// Example usage:
//
//	id, err := kernel.NewID(42)
//	if err != nil {
//	    // handle invalid identifier
//	}
//	fmt.Println(id.String()) // "42"
type ID struct {
	value int64
}

// NewID creates an ID from a raw integer value.
// The value must be positive; store-assigned identifiers start at 1.
func NewID(value int64) (ID, error) {
	if value <= 0 {
		return ID{}, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not greater than 0", value))
	}
	return ID{value: value}, nil
}

// IDFromString parses an ID from its decimal string representation.
// Used when reconstructing identifiers from route parameters or external systems.
func IDFromString(s string) (ID, error) {
	raw, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return ID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return NewID(raw)
}

// Validate checks that the ID holds a positive value.
// The zero value fails validation, catching identifiers that were never assigned.
func (i ID) Validate() error {
	if i.value <= 0 {
		return errs.NewValueIsRequiredError("id")
	}
	return nil
}

// IsZero reports whether the ID has not been assigned yet.
func (i ID) IsZero() bool {
	return i.value == 0
}

// IsEqual compares two IDs by value.
func (i ID) IsEqual(other ID) bool {
	return i.value == other.value
}

// Value returns the raw integer value for persistence.
func (i ID) Value() int64 {
	return i.value
}

// String returns the decimal string representation of the ID.
func (i ID) String() string {
	return strconv.FormatInt(i.value, 10)
}
