package task

import (
	"errors"
	"fmt"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

const (
	// MinCourierRating is the lowest rating a customer can give a courier.
	MinCourierRating float64 = 0
	// MaxCourierRating is the highest rating a customer can give a courier.
	MaxCourierRating float64 = 5

	qrCodePrefix = "qr-code "
)

var (
	// ErrTaskIsNotConstructed is returned when a DeliveryTask instance was not created
	// through the NewDeliveryTask or RestoreDeliveryTask factory functions.
	ErrTaskIsNotConstructed = errors.New(
		"DeliveryTask must be created via NewDeliveryTask or RestoreDeliveryTask")

	// ErrOrderIDIsRequired is returned when a task is created without an order reference.
	ErrOrderIDIsRequired = errs.NewValueIsRequiredError("orderId")
	// ErrCourierIDIsRequired is returned when a task is created without a courier reference.
	ErrCourierIDIsRequired = errs.NewValueIsRequiredError("courierId")
	// ErrSignatureIsRequired is returned when a signature-confirmed task is created
	// without the customer signature the order service was supposed to supply.
	ErrSignatureIsRequired = errs.NewValueIsRequiredError("signature")
	// ErrCancellationReasonIsRequired is returned when cancelling without a reason.
	ErrCancellationReasonIsRequired = errs.NewValueIsRequiredError("cancellationReason")

	// ErrTaskNotDelivered is returned when a rating is submitted before the task
	// reaches Delivered. This is an illegal-state condition: the caller is expected
	// to have already confirmed delivery.
	ErrTaskNotDelivered = errors.New("task must be delivered to submit a rating")
	// ErrRatingAlreadySubmitted is returned when a rating is submitted twice.
	ErrRatingAlreadySubmitted = errors.New("courier rating has already been submitted")
)

// DeliveryTask is the aggregate root of the delivery-fulfillment domain.
// It represents one courier's obligation to deliver one order and owns the
// lifecycle from assignment through delivery or cancellation.
//
// Invariants:
//   - Status transitions are one-directional; Delivered and Cancelled are terminal
//   - Order reference, courier reference, amount, destination, and confirmation
//     type are fixed at creation
//   - Exactly the credential matching the confirmation type is populated: the
//     signature at creation, the OTP or QR content when the task is dispatched
//   - The courier rating is written at most once and only after delivery
//
// The struct uses private fields to ensure encapsulation; all mutation goes
// through the transition methods below, which refresh the updatedAt timestamp.
type DeliveryTask struct {
	// id uniquely identifies the task; assigned at creation, immutable.
	id kernel.UUID
	// orderID and courierID reference externally owned entities. They are opaque
	// to this service and never validated beyond presence (the event/API caller
	// is the trust boundary).
	orderID   string
	courierID string
	// totalAmount is the monetary value of the order, for display to the courier.
	totalAmount float64
	// status is the current state in the fulfillment lifecycle.
	status Status
	// orderLocation is the fixed delivery destination.
	orderLocation kernel.GeoPoint
	// courierLocation is the courier's last reported position; starts at the depot.
	courierLocation kernel.GeoPoint
	// confirmationType selects which confirmation credential applies.
	confirmationType ConfirmationType
	// Confirmation credentials. Exactly one is populated, per confirmationType.
	otp       string
	qrCode    string
	signature string
	// cancellationReason is set only when the task is cancelled.
	cancellationReason string
	// courierRating and ratingTimestamp are set once, after delivery.
	courierRating   *float64
	ratingTimestamp *time.Time

	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewDeliveryTask creates a delivery task in the Assigned state.
//
// The courier position starts at the depot; for signature-confirmed tasks the
// customer signature must be supplied here, since it cannot be generated later.
// For OTP and QR tasks the credential is generated by MarkOutForDelivery.
//
// Returns a validation error (all failures joined) if any argument is invalid.
func NewDeliveryTask(
	id kernel.UUID,
	orderID string,
	courierID string,
	totalAmount float64,
	orderLocation kernel.GeoPoint,
	confirmationType ConfirmationType,
	signature string,
) (*DeliveryTask, error) {
	now := time.Now().UTC()
	t := &DeliveryTask{
		status:          StatusAssigned,
		courierLocation: kernel.DepotPoint(),
		createdAt:       now,
		updatedAt:       now,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setOrderID(orderID),
		t.setCourierID(courierID),
		t.setTotalAmount(totalAmount),
		t.setOrderLocation(orderLocation),
		t.setConfirmation(confirmationType, signature),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreDeliveryTaskParams carries the full persisted state of a task.
// Used only by repository implementations to rebuild the aggregate.
type RestoreDeliveryTaskParams struct {
	ID                 kernel.UUID
	OrderID            string
	CourierID          string
	TotalAmount        float64
	Status             Status
	OrderLocation      kernel.GeoPoint
	CourierLocation    kernel.GeoPoint
	ConfirmationType   ConfirmationType
	Otp                string
	QrCode             string
	Signature          string
	CancellationReason string
	CourierRating      *float64
	RatingTimestamp    *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// RestoreDeliveryTask reconstructs a task aggregate from persistent storage.
// Unlike NewDeliveryTask it accepts any valid status and pre-populated
// credentials, but still rejects structurally invalid state.
func RestoreDeliveryTask(params RestoreDeliveryTaskParams) (*DeliveryTask, error) {
	if err := errors.Join(
		params.ID.Validate(),
		params.Status.Validate(),
		params.ConfirmationType.Validate(),
		params.OrderLocation.Validate(),
		params.CourierLocation.Validate(),
	); err != nil {
		return nil, err
	}
	if params.OrderID == "" {
		return nil, ErrOrderIDIsRequired
	}
	if params.CourierID == "" {
		return nil, ErrCourierIDIsRequired
	}

	return &DeliveryTask{
		id:                 params.ID,
		orderID:            params.OrderID,
		courierID:          params.CourierID,
		totalAmount:        params.TotalAmount,
		status:             params.Status,
		orderLocation:      params.OrderLocation,
		courierLocation:    params.CourierLocation,
		confirmationType:   params.ConfirmationType,
		otp:                params.Otp,
		qrCode:             params.QrCode,
		signature:          params.Signature,
		cancellationReason: params.CancellationReason,
		courierRating:      params.CourierRating,
		ratingTimestamp:    params.RatingTimestamp,
		createdAt:          params.CreatedAt,
		updatedAt:          params.UpdatedAt,
		guard:              guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the DeliveryTask was properly constructed through a factory
// function. Repository implementations call this before persisting.
func (t *DeliveryTask) Validate() error {
	if t == nil {
		return ErrTaskIsNotConstructed
	}
	return t.guard.Validate(ErrTaskIsNotConstructed)
}

// IsEqual compares two tasks by their unique identifiers.
func (t *DeliveryTask) IsEqual(other *DeliveryTask) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ID returns the task's unique identifier.
func (t *DeliveryTask) ID() kernel.UUID { return t.id }

// OrderID returns the externally owned order reference.
func (t *DeliveryTask) OrderID() string { return t.orderID }

// CourierID returns the externally owned courier reference.
func (t *DeliveryTask) CourierID() string { return t.courierID }

// TotalAmount returns the monetary value of the order.
func (t *DeliveryTask) TotalAmount() float64 { return t.totalAmount }

// Status returns the current lifecycle status.
func (t *DeliveryTask) Status() Status { return t.status }

// OrderLocation returns the fixed delivery destination.
func (t *DeliveryTask) OrderLocation() kernel.GeoPoint { return t.orderLocation }

// CourierLocation returns the courier's last reported position.
func (t *DeliveryTask) CourierLocation() kernel.GeoPoint { return t.courierLocation }

// ConfirmationType returns the confirmation mechanism fixed at creation.
func (t *DeliveryTask) ConfirmationType() ConfirmationType { return t.confirmationType }

// Otp returns the one-time password, or "" if not (yet) generated.
func (t *DeliveryTask) Otp() string { return t.otp }

// QrCode returns the QR content, or "" if not (yet) generated.
func (t *DeliveryTask) QrCode() string { return t.qrCode }

// Signature returns the customer signature, or "" for non-signature tasks.
func (t *DeliveryTask) Signature() string { return t.signature }

// CancellationReason returns the reason recorded at cancellation, or "".
func (t *DeliveryTask) CancellationReason() string { return t.cancellationReason }

// CourierRating returns the submitted rating, or nil if none was submitted.
func (t *DeliveryTask) CourierRating() *float64 { return t.courierRating }

// RatingTimestamp returns when the rating was submitted, or nil.
func (t *DeliveryTask) RatingTimestamp() *time.Time { return t.ratingTimestamp }

// CreatedAt returns the creation timestamp.
func (t *DeliveryTask) CreatedAt() time.Time { return t.createdAt }

// UpdatedAt returns the timestamp of the last mutation.
func (t *DeliveryTask) UpdatedAt() time.Time { return t.updatedAt }

// MarkOutForDelivery transitions the task from Assigned to OutForDelivery and
// generates the confirmation credential matching the confirmation type:
//
//   - OTP: the trailing otpLength characters of the task id (the whole id if
//     it is shorter than otpLength)
//   - QR_CODE: a deterministic content string embedding the task id
//   - SIGNATURE: nothing; the signature was supplied at creation
//
// The caller must persist the task before publishing the dispatch event so a
// consumer reacting to the event finds the credential already queryable.
func (t *DeliveryTask) MarkOutForDelivery(otpLength int) error {
	if otpLength <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"otpLength", fmt.Errorf("%d is not greater than 0", otpLength))
	}

	newStatus, err := t.status.Dispatch()
	if err != nil {
		return err
	}

	switch t.confirmationType {
	case ConfirmationOTP:
		id := t.id.String()
		if len(id) > otpLength {
			id = id[len(id)-otpLength:]
		}
		t.otp = id
	case ConfirmationQRCode:
		t.qrCode = qrCodePrefix + t.id.String()
	case ConfirmationSignature:
		// credential supplied at creation
	case ConfirmationUnknown:
		return t.confirmationType.Validate()
	}

	t.status = newStatus
	t.touch()
	return nil
}

// Deliver transitions the task from OutForDelivery to Delivered.
// Called by a confirmation strategy after the customer's proof matched.
func (t *DeliveryTask) Deliver() error {
	newStatus, err := t.status.Deliver()
	if err != nil {
		return err
	}

	t.status = newStatus
	t.touch()
	return nil
}

// Cancel transitions the task to Cancelled and records the reason.
// The reason is required; cancelling an already terminal task is rejected.
func (t *DeliveryTask) Cancel(reason string) error {
	if reason == "" {
		return ErrCancellationReasonIsRequired
	}

	newStatus, err := t.status.Cancel()
	if err != nil {
		return err
	}

	t.status = newStatus
	t.cancellationReason = reason
	t.touch()
	return nil
}

// SubmitRating records the customer's rating of the courier.
//
// Preconditions: the task is Delivered and no rating was submitted before.
// A violation is an illegal-state error, not a validation outcome: the caller
// is expected to have confirmed delivery first.
func (t *DeliveryTask) SubmitRating(rating float64) error {
	if t.status != StatusDelivered {
		return ErrTaskNotDelivered
	}
	if t.courierRating != nil {
		return ErrRatingAlreadySubmitted
	}
	if rating < MinCourierRating || rating > MaxCourierRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, MinCourierRating, MaxCourierRating)
	}

	now := time.Now().UTC()
	t.courierRating = &rating
	t.ratingTimestamp = &now
	t.touch()
	return nil
}

// UpdateCourierLocation records the courier's last reported position.
// Only non-terminal tasks accept location updates.
func (t *DeliveryTask) UpdateCourierLocation(position kernel.GeoPoint) error {
	if err := position.Validate(); err != nil {
		return err
	}
	if t.status.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%s is not a valid status to update location", t.status))
	}

	t.courierLocation = position
	t.touch()
	return nil
}

func (t *DeliveryTask) touch() {
	t.updatedAt = time.Now().UTC()
}

func (t *DeliveryTask) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *DeliveryTask) setOrderID(orderID string) error {
	if orderID == "" {
		return ErrOrderIDIsRequired
	}
	t.orderID = orderID
	return nil
}

func (t *DeliveryTask) setCourierID(courierID string) error {
	if courierID == "" {
		return ErrCourierIDIsRequired
	}
	t.courierID = courierID
	return nil
}

func (t *DeliveryTask) setTotalAmount(totalAmount float64) error {
	if totalAmount < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"totalAmount", fmt.Errorf("%f is negative", totalAmount))
	}
	t.totalAmount = totalAmount
	return nil
}

func (t *DeliveryTask) setOrderLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	t.orderLocation = location
	return nil
}

func (t *DeliveryTask) setConfirmation(confirmationType ConfirmationType, signature string) error {
	if err := confirmationType.Validate(); err != nil {
		return err
	}
	if confirmationType == ConfirmationSignature && signature == "" {
		return ErrSignatureIsRequired
	}

	t.confirmationType = confirmationType
	if confirmationType == ConfirmationSignature {
		t.signature = signature
	}
	return nil
}
