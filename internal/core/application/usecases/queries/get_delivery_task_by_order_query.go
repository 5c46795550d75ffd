package queries

import (
	"errors"

	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

var ErrGetDeliveryTaskByOrderQueryIsNotConstructed = errors.New(
	"GetDeliveryTaskByOrderQuery must be created via NewGetDeliveryTaskByOrderQuery constructor",
)

// GetDeliveryTaskByOrderQuery retrieves the delivery task created for an
// order. Tasks are deduplicated on order id, so at most one matches.
type GetDeliveryTaskByOrderQuery struct {
	orderID string

	guard guard.ConstructorGuard
}

// NewGetDeliveryTaskByOrderQuery creates a query for an order's task.
func NewGetDeliveryTaskByOrderQuery(orderID string) (GetDeliveryTaskByOrderQuery, error) {
	if orderID == "" {
		return GetDeliveryTaskByOrderQuery{}, errs.NewValueIsRequiredError("orderId")
	}

	return GetDeliveryTaskByOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryTaskByOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryTaskByOrderQueryIsNotConstructed)
}

// OrderID returns the order whose task is requested.
func (q GetDeliveryTaskByOrderQuery) OrderID() string {
	return q.orderID
}
