package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetDeliveryTasksQueryHandler retrieves task read models from the database.
type GetDeliveryTasksQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryTasksQueryHandler creates a handler for task listing queries.
func NewGetDeliveryTasksQueryHandler(db *gorm.DB) GetDeliveryTasksQueryHandler {
	return GetDeliveryTasksQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by creation time so active
// work appears in the order it arrived.
func (h GetDeliveryTasksQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryTasksQuery,
) ([]DeliveryTaskResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `SELECT ` + deliveryTaskColumns + ` FROM delivery_tasks WHERE 1=1`
	args := make([]any, 0, 2)

	if query.CourierID() != "" {
		sql += ` AND courier_id = ?`
		args = append(args, query.CourierID())
	}
	if status, ok := query.Status(); ok {
		sql += ` AND status = ?`
		args = append(args, status.String())
	}
	sql += ` ORDER BY created_at`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]DeliveryTaskResponse, 0)
	for rows.Next() {
		response, scanErr := scanDeliveryTask(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		tasks = append(tasks, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}
