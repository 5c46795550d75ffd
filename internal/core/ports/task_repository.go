// Package ports defines the persistence and messaging contracts of the core.
// These interfaces establish the boundary between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/task"
)

// TaskRepository defines the persistence contract for delivery-task aggregates.
//
// Get and GetByOrderID return an ObjectNotFoundError (errs.ErrObjectNotFound)
// when no matching task exists; absence is never signalled with a nil aggregate.
type TaskRepository interface {
	// Add persists a new task aggregate to storage.
	Add(ctx context.Context, aggregate *task.DeliveryTask) error

	// Update persists changes to an existing task aggregate.
	Update(ctx context.Context, aggregate *task.DeliveryTask) error

	// Get retrieves a task aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*task.DeliveryTask, error)

	// GetByOrderID retrieves the task created for the given order.
	// Tasks are deduplicated on order id, so at most one exists per order.
	GetByOrderID(ctx context.Context, orderID string) (*task.DeliveryTask, error)

	// GetAllByCourierID retrieves every task assigned to the given courier.
	GetAllByCourierID(ctx context.Context, courierID string) ([]*task.DeliveryTask, error)

	// GetAllByStatus retrieves every task currently in the given status.
	GetAllByStatus(ctx context.Context, status task.Status) ([]*task.DeliveryTask, error)

	// Delete removes a task from storage. Administrative operation only;
	// deletion is not part of the delivery saga.
	Delete(ctx context.Context, id kernel.UUID) error
}
