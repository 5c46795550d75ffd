package commands

import (
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/guard"
)

var ErrUpdateCourierLocationCommandIsNotConstructed = errors.New(
	"UpdateCourierLocationCommand must be created via NewUpdateCourierLocationCommand constructor",
)

// UpdateCourierLocationCommand represents a courier position report for an
// active delivery run.
type UpdateCourierLocationCommand struct { //nolint:recvcheck //using for validation
	taskID   kernel.UUID
	position kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewUpdateCourierLocationCommand creates a command to record a courier position.
func NewUpdateCourierLocationCommand(
	taskID kernel.UUID,
	position kernel.GeoPoint,
) (UpdateCourierLocationCommand, error) {
	if err := taskID.Validate(); err != nil {
		return UpdateCourierLocationCommand{}, err
	}
	if err := position.Validate(); err != nil {
		return UpdateCourierLocationCommand{}, err
	}

	return UpdateCourierLocationCommand{
		taskID:   taskID,
		position: position,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCourierLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCourierLocationCommandIsNotConstructed)
}

// TaskID returns the identifier of the tracked task.
func (c UpdateCourierLocationCommand) TaskID() kernel.UUID {
	return c.taskID
}

// Position returns the reported courier position.
func (c UpdateCourierLocationCommand) Position() kernel.GeoPoint {
	return c.position
}
