// Package queries contains read-only operations against the read side of the
// CQRS split. Handlers bypass the aggregates and read projections with raw
// SQL for optimal read performance.
package queries

import (
	"errors"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/guard"
)

var ErrGetDeliveryTaskQueryIsNotConstructed = errors.New(
	"GetDeliveryTaskQuery must be created via NewGetDeliveryTaskQuery constructor",
)

// GetDeliveryTaskQuery retrieves a single delivery task by its identifier.
type GetDeliveryTaskQuery struct {
	taskID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDeliveryTaskQuery creates a query for one task.
func NewGetDeliveryTaskQuery(taskID kernel.UUID) (GetDeliveryTaskQuery, error) {
	if err := taskID.Validate(); err != nil {
		return GetDeliveryTaskQuery{}, err
	}

	return GetDeliveryTaskQuery{
		taskID: taskID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryTaskQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryTaskQueryIsNotConstructed)
}

// TaskID returns the identifier of the requested task.
func (q GetDeliveryTaskQuery) TaskID() kernel.UUID {
	return q.taskID
}

// DeliveryTaskResponse is the read model for a delivery task. Credentials are
// included because the read side serves courier-facing views; outer surfaces
// decide what to expose.
type DeliveryTaskResponse struct {
	ID                 kernel.UUID
	OrderID            string
	CourierID          string
	TotalAmount        float64
	Status             string
	OrderLatitude      float64
	OrderLongitude     float64
	CourierLatitude    float64
	CourierLongitude   float64
	ConfirmationType   string
	Otp                string
	QrCode             string
	Signature          string
	CancellationReason string
	CourierRating      *float64
	RatingTimestamp    *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
