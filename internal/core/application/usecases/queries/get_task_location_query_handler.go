package queries

import (
	"context"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetTaskLocationQueryHandler retrieves the courier position for an order.
// An order without a task yields an object-not-found error; callers never see
// a made-up depot coordinate for unknown orders.
type GetTaskLocationQueryHandler struct {
	db *gorm.DB
}

// NewGetTaskLocationQueryHandler creates a handler for location queries.
func NewGetTaskLocationQueryHandler(db *gorm.DB) GetTaskLocationQueryHandler {
	return GetTaskLocationQueryHandler{db: db}
}

// Handle executes the location query.
func (h GetTaskLocationQueryHandler) Handle(
	ctx context.Context,
	query GetTaskLocationQuery,
) (TaskLocationResponse, error) {
	if err := query.Validate(); err != nil {
		return TaskLocationResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			courier_id,
			status,
			courier_latitude,
			courier_longitude
		FROM delivery_tasks
		WHERE order_id = ?
	`, query.OrderID()).Rows()
	if err != nil {
		return TaskLocationResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return TaskLocationResponse{}, err
		}
		return TaskLocationResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}

	var response TaskLocationResponse
	var id uuid.UUID
	var latitude, longitude float64

	if err = rows.Scan(
		&id,
		&response.OrderID,
		&response.CourierID,
		&response.Status,
		&latitude,
		&longitude,
	); err != nil {
		return TaskLocationResponse{}, err
	}

	taskID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return TaskLocationResponse{}, err
	}
	response.TaskID = taskID

	location, err := kernel.NewGeoPoint(latitude, longitude)
	if err != nil {
		return TaskLocationResponse{}, err
	}
	response.CourierLocation = location

	return response, rows.Err()
}
