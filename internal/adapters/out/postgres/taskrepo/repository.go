package taskrepo

import (
	"context"
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/task"
	"courier/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTaskRepository implements TaskRepository using GORM.
type GormTaskRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTaskRepository creates a new GORM task repository.
func NewGormTaskRepository(db *gorm.DB, tracker aggregateTracker) *GormTaskRepository {
	return &GormTaskRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new task to the database.
func (r *GormTaskRepository) Add(ctx context.Context, aggregate *task.DeliveryTask) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing task to the database. All columns are written so
// fields that moved back to their zero value are not silently skipped.
func (r *GormTaskRepository) Update(ctx context.Context, aggregate *task.DeliveryTask) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&DeliveryTaskDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a task by ID.
func (r *GormTaskRepository) Get(ctx context.Context, id kernel.UUID) (*task.DeliveryTask, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryTaskDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("task", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrderID retrieves the task opened for the given order.
func (r *GormTaskRepository) GetByOrderID(ctx context.Context, orderID string) (*task.DeliveryTask, error) {
	if orderID == "" {
		return nil, errs.NewValueIsRequiredError("orderId")
	}

	var dto DeliveryTaskDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", orderID)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByCourierID retrieves every task assigned to the given courier.
func (r *GormTaskRepository) GetAllByCourierID(
	ctx context.Context,
	courierID string,
) ([]*task.DeliveryTask, error) {
	if courierID == "" {
		return nil, errs.NewValueIsRequiredError("courierId")
	}

	var dtos []DeliveryTaskDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "courier_id = ?", courierID).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllByStatus retrieves every task in the given status.
func (r *GormTaskRepository) GetAllByStatus(
	ctx context.Context,
	status task.Status,
) ([]*task.DeliveryTask, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	var dtos []DeliveryTaskDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "status = ?", status.String()).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// Delete removes a task from the database.
func (r *GormTaskRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&DeliveryTaskDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("task", id.String())
	}

	return nil
}

func toDomainSlice(dtos []DeliveryTaskDTO) ([]*task.DeliveryTask, error) {
	tasks := make([]*task.DeliveryTask, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, aggregate)
	}

	return tasks, nil
}
