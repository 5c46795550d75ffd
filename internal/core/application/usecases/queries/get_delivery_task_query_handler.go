package queries

import (
	"context"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const deliveryTaskColumns = `
	id,
	order_id,
	courier_id,
	total_amount,
	status,
	order_latitude,
	order_longitude,
	courier_latitude,
	courier_longitude,
	confirmation_type,
	otp,
	qr_code,
	signature,
	cancellation_reason,
	courier_rating,
	rating_timestamp,
	created_at,
	updated_at
`

// GetDeliveryTaskQueryHandler retrieves a single task read model.
type GetDeliveryTaskQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryTaskQueryHandler creates a handler for single-task queries.
func NewGetDeliveryTaskQueryHandler(db *gorm.DB) GetDeliveryTaskQueryHandler {
	return GetDeliveryTaskQueryHandler{db: db}
}

// Handle executes the query. Returns an object-not-found error when no task
// with the given id exists.
func (h GetDeliveryTaskQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryTaskQuery,
) (DeliveryTaskResponse, error) {
	if err := query.Validate(); err != nil {
		return DeliveryTaskResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		`SELECT `+deliveryTaskColumns+` FROM delivery_tasks WHERE id = ?`,
		query.TaskID().Bytes(),
	).Rows()
	if err != nil {
		return DeliveryTaskResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return DeliveryTaskResponse{}, err
		}
		return DeliveryTaskResponse{}, errs.NewObjectNotFoundError("taskId", query.TaskID())
	}

	response, err := scanDeliveryTask(rows)
	if err != nil {
		return DeliveryTaskResponse{}, err
	}

	return response, rows.Err()
}

// rowScanner is satisfied by *sql.Rows and keeps scanDeliveryTask shared
// between the single-task and list handlers.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanDeliveryTask(rows rowScanner) (DeliveryTaskResponse, error) {
	var response DeliveryTaskResponse
	var id uuid.UUID

	if err := rows.Scan(
		&id,
		&response.OrderID,
		&response.CourierID,
		&response.TotalAmount,
		&response.Status,
		&response.OrderLatitude,
		&response.OrderLongitude,
		&response.CourierLatitude,
		&response.CourierLongitude,
		&response.ConfirmationType,
		&response.Otp,
		&response.QrCode,
		&response.Signature,
		&response.CancellationReason,
		&response.CourierRating,
		&response.RatingTimestamp,
		&response.CreatedAt,
		&response.UpdatedAt,
	); err != nil {
		return DeliveryTaskResponse{}, err
	}

	taskID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return DeliveryTaskResponse{}, err
	}
	response.ID = taskID

	return response, nil
}
