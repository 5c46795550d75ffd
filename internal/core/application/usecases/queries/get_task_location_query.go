package queries

import (
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

var ErrGetTaskLocationQueryIsNotConstructed = errors.New(
	"GetTaskLocationQuery must be created via NewGetTaskLocationQuery constructor",
)

// GetTaskLocationQuery retrieves the courier position for an order. The order
// service looks positions up by its own order id, not by task id.
type GetTaskLocationQuery struct {
	orderID string

	guard guard.ConstructorGuard
}

// NewGetTaskLocationQuery creates a location query for an order.
func NewGetTaskLocationQuery(orderID string) (GetTaskLocationQuery, error) {
	if orderID == "" {
		return GetTaskLocationQuery{}, errs.NewValueIsRequiredError("orderId")
	}

	return GetTaskLocationQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTaskLocationQuery) Validate() error {
	return q.guard.Validate(ErrGetTaskLocationQueryIsNotConstructed)
}

// OrderID returns the order whose courier position is requested.
func (q GetTaskLocationQuery) OrderID() string {
	return q.orderID
}

// TaskLocationResponse is the read model for a courier position report.
type TaskLocationResponse struct {
	TaskID          kernel.UUID
	OrderID         string
	CourierID       string
	Status          string
	CourierLocation kernel.GeoPoint
}
