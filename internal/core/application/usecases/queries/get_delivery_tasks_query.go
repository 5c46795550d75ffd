package queries

import (
	"errors"

	"courier/internal/core/domain/model/task"
	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

var ErrGetDeliveryTasksQueryIsNotConstructed = errors.New(
	"GetDeliveryTasksQuery must be created via NewGetDeliveryTasksQuery constructor",
)

// GetDeliveryTasksQuery retrieves delivery tasks, optionally narrowed by
// courier and status. Empty filters match everything.
type GetDeliveryTasksQuery struct {
	courierID string
	status    task.Status
	hasStatus bool

	guard guard.ConstructorGuard
}

// NewGetDeliveryTasksQuery creates an unfiltered task listing query.
func NewGetDeliveryTasksQuery() GetDeliveryTasksQuery {
	return GetDeliveryTasksQuery{guard: guard.NewConstructorGuard()}
}

// NewGetDeliveryTasksByCourierQuery creates a query for one courier's tasks.
func NewGetDeliveryTasksByCourierQuery(courierID string) (GetDeliveryTasksQuery, error) {
	if courierID == "" {
		return GetDeliveryTasksQuery{}, errs.NewValueIsRequiredError("courierId")
	}

	query := NewGetDeliveryTasksQuery()
	query.courierID = courierID
	return query, nil
}

// WithStatus narrows the query to tasks in the given status.
func (q GetDeliveryTasksQuery) WithStatus(status task.Status) (GetDeliveryTasksQuery, error) {
	if err := status.Validate(); err != nil {
		return GetDeliveryTasksQuery{}, err
	}

	q.status = status
	q.hasStatus = true
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryTasksQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryTasksQueryIsNotConstructed)
}

// CourierID returns the courier filter, empty when unfiltered.
func (q GetDeliveryTasksQuery) CourierID() string {
	return q.courierID
}

// Status returns the status filter and whether one was set.
func (q GetDeliveryTasksQuery) Status() (task.Status, bool) {
	return q.status, q.hasStatus
}
