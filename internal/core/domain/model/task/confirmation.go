package task

import (
	"fmt"

	"courier/internal/pkg/errs"
)

// ConfirmationType selects the mechanism a customer must use to prove receipt
// of a delivery. It is fixed at task creation and never changes afterwards.
type ConfirmationType int

const (
	// ConfirmationUnknown represents an invalid or undefined confirmation type.
	ConfirmationUnknown ConfirmationType = iota

	// ConfirmationOTP requires the customer to present a one-time password.
	// The OTP is generated when the task goes out for delivery.
	ConfirmationOTP

	// ConfirmationQRCode requires the courier to scan the customer's QR code.
	// The QR content is generated when the task goes out for delivery.
	ConfirmationQRCode

	// ConfirmationSignature requires the customer's signature, which is
	// supplied by the order service at task creation.
	ConfirmationSignature
)

func getConfirmationTypeStrings() map[ConfirmationType]string {
	//nolint:exhaustive // ConfirmationUnknown is intentionally excluded as it's invalid
	return map[ConfirmationType]string{
		ConfirmationOTP:       "OTP",
		ConfirmationQRCode:    "QR_CODE",
		ConfirmationSignature: "SIGNATURE",
	}
}

// ConfirmationTypeFromString parses a confirmation type from its
// persisted/event representation. Returns an error for unknown variants.
func ConfirmationTypeFromString(s string) (ConfirmationType, error) {
	for confirmationType, str := range getConfirmationTypeStrings() {
		if str == s {
			return confirmationType, nil
		}
	}
	return ConfirmationUnknown, errs.NewValueIsInvalidErrorWithCause(
		"confirmationType", fmt.Errorf("%q is not a valid confirmation type", s))
}

// Validate checks if the ConfirmationType is one of the three known mechanisms.
func (c ConfirmationType) Validate() error {
	if _, ok := getConfirmationTypeStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"confirmationType", fmt.Errorf("%d is not a valid confirmation type", c))
	}
	return nil
}

// String returns the persisted name of the confirmation type.
func (c ConfirmationType) String() string {
	if str, ok := getConfirmationTypeStrings()[c]; ok {
		return str
	}
	return "UNKNOWN"
}
