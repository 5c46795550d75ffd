package services

import (
	"errors"

	"courier/internal/core/domain/model/task"
)

// ErrInvalidConfirmationType is returned when no strategy exists for the
// requested confirmation type.
var ErrInvalidConfirmationType = errors.New("Invalid confirmation type")

// Confirmation outcome messages returned to the caller. A rejected proof is a
// business outcome, not an error, so the messages travel in the result.
const (
	OutcomeOtpConfirmed       = "OTP confirmed"
	OutcomeWrongOtp           = "Wrong OTP"
	OutcomeQrConfirmed        = "QR code confirmed"
	OutcomeInvalidQr          = "Invalid QR code"
	OutcomeSignatureConfirmed = "Signature confirmed"
	OutcomeInvalidSignature   = "Invalid signature"
)

// ConfirmationResult describes the outcome of a confirmation attempt.
// Confirmed is true only when the proof matched and the task transitioned
// to delivered.
type ConfirmationResult struct {
	Confirmed bool
	Message   string
}

// ConfirmationStrategy is a domain service that validates a delivery proof
// against a task and, on success, transitions the task to delivered.
//
// Strategies are stateless and selected by the task's confirmation type via
// ForConfirmationType. A mismatched proof leaves the task untouched and
// reports the rejection in the result; an error is returned only when the
// task cannot legally be confirmed at all (wrong status, not constructed).
type ConfirmationStrategy interface {
	// Confirm checks the supplied proof against the aggregate's stored
	// credential and delivers the task when it matches.
	Confirm(aggregate *task.DeliveryTask, proof string) (ConfirmationResult, error)
}

// ForConfirmationType selects the strategy matching the given confirmation type.
// Returns ErrInvalidConfirmationType for types without a strategy.
func ForConfirmationType(confirmationType task.ConfirmationType) (ConfirmationStrategy, error) {
	switch confirmationType {
	case task.ConfirmationOTP:
		return OtpConfirmationStrategy{}, nil
	case task.ConfirmationQRCode:
		return QrCodeConfirmationStrategy{}, nil
	case task.ConfirmationSignature:
		return SignatureConfirmationStrategy{}, nil
	default:
		return nil, ErrInvalidConfirmationType
	}
}

// OtpConfirmationStrategy confirms delivery with the one-time password that
// was generated when the task went out for delivery.
type OtpConfirmationStrategy struct{}

// Confirm compares the proof against the task's OTP.
func (OtpConfirmationStrategy) Confirm(aggregate *task.DeliveryTask, proof string) (ConfirmationResult, error) {
	if err := aggregate.Validate(); err != nil {
		return ConfirmationResult{}, err
	}

	if proof == "" || proof != aggregate.Otp() {
		return ConfirmationResult{Confirmed: false, Message: OutcomeWrongOtp}, nil
	}

	if err := aggregate.Deliver(); err != nil {
		return ConfirmationResult{}, err
	}
	return ConfirmationResult{Confirmed: true, Message: OutcomeOtpConfirmed}, nil
}

// QrCodeConfirmationStrategy confirms delivery with the QR code content
// issued for the task.
type QrCodeConfirmationStrategy struct{}

// Confirm compares the proof against the task's QR code content.
func (QrCodeConfirmationStrategy) Confirm(aggregate *task.DeliveryTask, proof string) (ConfirmationResult, error) {
	if err := aggregate.Validate(); err != nil {
		return ConfirmationResult{}, err
	}

	if proof == "" || proof != aggregate.QrCode() {
		return ConfirmationResult{Confirmed: false, Message: OutcomeInvalidQr}, nil
	}

	if err := aggregate.Deliver(); err != nil {
		return ConfirmationResult{}, err
	}
	return ConfirmationResult{Confirmed: true, Message: OutcomeQrConfirmed}, nil
}

// SignatureConfirmationStrategy confirms delivery with the recipient signature
// captured when the task was created.
type SignatureConfirmationStrategy struct{}

// Confirm compares the proof against the task's stored signature.
func (SignatureConfirmationStrategy) Confirm(aggregate *task.DeliveryTask, proof string) (ConfirmationResult, error) {
	if err := aggregate.Validate(); err != nil {
		return ConfirmationResult{}, err
	}

	if proof == "" || proof != aggregate.Signature() {
		return ConfirmationResult{Confirmed: false, Message: OutcomeInvalidSignature}, nil
	}

	if err := aggregate.Deliver(); err != nil {
		return ConfirmationResult{}, err
	}
	return ConfirmationResult{Confirmed: true, Message: OutcomeSignatureConfirmed}, nil
}
