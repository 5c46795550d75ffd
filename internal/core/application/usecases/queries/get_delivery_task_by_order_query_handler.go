package queries

import (
	"context"

	"courier/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetDeliveryTaskByOrderQueryHandler retrieves a task read model by order id.
type GetDeliveryTaskByOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryTaskByOrderQueryHandler creates a handler for by-order queries.
func NewGetDeliveryTaskByOrderQueryHandler(db *gorm.DB) GetDeliveryTaskByOrderQueryHandler {
	return GetDeliveryTaskByOrderQueryHandler{db: db}
}

// Handle executes the query. Returns an object-not-found error when no task
// exists for the given order.
func (h GetDeliveryTaskByOrderQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryTaskByOrderQuery,
) (DeliveryTaskResponse, error) {
	if err := query.Validate(); err != nil {
		return DeliveryTaskResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		`SELECT `+deliveryTaskColumns+` FROM delivery_tasks WHERE order_id = ?`,
		query.OrderID(),
	).Rows()
	if err != nil {
		return DeliveryTaskResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return DeliveryTaskResponse{}, err
		}
		return DeliveryTaskResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}

	response, err := scanDeliveryTask(rows)
	if err != nil {
		return DeliveryTaskResponse{}, err
	}

	return response, rows.Err()
}
