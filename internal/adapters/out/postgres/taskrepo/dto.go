// Package taskrepo provides data transfer objects and mapping functions for
// delivery-task persistence. It implements the repository pattern for the
// task aggregate, handling the conversion between domain entities and
// database representations.
package taskrepo

import (
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/task"

	"github.com/google/uuid"
)

// DeliveryTaskDTO represents the database structure for persisting task
// aggregates. Status and confirmation type are stored as their wire strings
// so the read side can filter without decoding.
type DeliveryTaskDTO struct {
	ID                 uuid.UUID   `gorm:"type:uuid;primaryKey"`
	OrderID            string      `gorm:"uniqueIndex"`
	CourierID          string      `gorm:"index"`
	TotalAmount        float64
	Status             string      `gorm:"index"`
	OrderLocation      GeoPointDTO `gorm:"embedded;embeddedPrefix:order_"`
	CourierLocation    GeoPointDTO `gorm:"embedded;embeddedPrefix:courier_"`
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

// TableName specifies the database table name for task entities.
func (DeliveryTaskDTO) TableName() string {
	return "delivery_tasks"
}

// GeoPointDTO represents embedded geographic coordinates.
type GeoPointDTO struct {
	Latitude  float64
	Longitude float64
}

// fromDomain converts a task domain aggregate to its database representation.
func fromDomain(aggregate *task.DeliveryTask) DeliveryTaskDTO {
	return DeliveryTaskDTO{
		ID:          aggregate.ID().Bytes(),
		OrderID:     aggregate.OrderID(),
		CourierID:   aggregate.CourierID(),
		TotalAmount: aggregate.TotalAmount(),
		Status:      aggregate.Status().String(),
		OrderLocation: GeoPointDTO{
			Latitude:  aggregate.OrderLocation().Latitude(),
			Longitude: aggregate.OrderLocation().Longitude(),
		},
		CourierLocation: GeoPointDTO{
			Latitude:  aggregate.CourierLocation().Latitude(),
			Longitude: aggregate.CourierLocation().Longitude(),
		},
		ConfirmationType:   aggregate.ConfirmationType().String(),
		Otp:                aggregate.Otp(),
		QrCode:             aggregate.QrCode(),
		Signature:          aggregate.Signature(),
		CancellationReason: aggregate.CancellationReason(),
		CourierRating:      aggregate.CourierRating(),
		RatingTimestamp:    aggregate.RatingTimestamp(),
		CreatedAt:          aggregate.CreatedAt(),
		UpdatedAt:          aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a task domain aggregate using
// RestoreDeliveryTask.
func toDomain(dto DeliveryTaskDTO) (*task.DeliveryTask, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := task.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	confirmationType, err := task.ConfirmationTypeFromString(dto.ConfirmationType)
	if err != nil {
		return nil, err
	}

	orderLocation, err := kernel.NewGeoPoint(dto.OrderLocation.Latitude, dto.OrderLocation.Longitude)
	if err != nil {
		return nil, err
	}

	courierLocation, err := kernel.NewGeoPoint(dto.CourierLocation.Latitude, dto.CourierLocation.Longitude)
	if err != nil {
		return nil, err
	}

	return task.RestoreDeliveryTask(task.RestoreDeliveryTaskParams{
		ID:                 id,
		OrderID:            dto.OrderID,
		CourierID:          dto.CourierID,
		TotalAmount:        dto.TotalAmount,
		Status:             status,
		OrderLocation:      orderLocation,
		CourierLocation:    courierLocation,
		ConfirmationType:   confirmationType,
		Otp:                dto.Otp,
		QrCode:             dto.QrCode,
		Signature:          dto.Signature,
		CancellationReason: dto.CancellationReason,
		CourierRating:      dto.CourierRating,
		RatingTimestamp:    dto.RatingTimestamp,
		CreatedAt:          dto.CreatedAt,
		UpdatedAt:          dto.UpdatedAt,
	})
}
