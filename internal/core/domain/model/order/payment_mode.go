package order

import (
	"fmt"

	"pindrop/internal/pkg/errs"
)

// PaymentMode is how the customer pays for an order. Recorded at checkout and
// immutable afterwards. No payment processing happens here; the mode is a
// label for the fulfilment flow.
type PaymentMode int

const (
	// PaymentModeUnknown represents an invalid or undefined payment mode.
	PaymentModeUnknown PaymentMode = iota

	// PaymentModeCashOnDelivery marks payment collected by the partner on delivery.
	PaymentModeCashOnDelivery

	// PaymentModeOnline marks payment settled through an online channel.
	PaymentModeOnline
)

func getPaymentModeStrings() map[PaymentMode]string {
	return map[PaymentMode]string{
		PaymentModeCashOnDelivery: "COD",
		PaymentModeOnline:         "Online",
	}
}

// PaymentModeFromString parses a PaymentMode from its string representation.
func PaymentModeFromString(s string) (PaymentMode, error) {
	for mode, str := range getPaymentModeStrings() {
		if str == s {
			return mode, nil
		}
	}
	return PaymentModeUnknown, errs.NewValueIsInvalidErrorWithCause("payment mode",
		fmt.Errorf("%q is not a valid payment mode", s))
}

// Validate checks if the PaymentMode value is valid.
func (m PaymentMode) Validate() error {
	if _, ok := getPaymentModeStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("payment mode",
			fmt.Errorf("%d is not a valid payment mode", m))
	}
	return nil
}

// String returns the string representation of the payment mode.
func (m PaymentMode) String() string {
	if str, ok := getPaymentModeStrings()[m]; ok {
		return str
	}
	return "Unknown"
}
