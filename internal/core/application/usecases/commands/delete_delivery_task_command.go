package commands

import (
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/guard"
)

var ErrDeleteDeliveryTaskCommandIsNotConstructed = errors.New(
	"DeleteDeliveryTaskCommand must be created via NewDeleteDeliveryTaskCommand constructor",
)

// DeleteDeliveryTaskCommand removes a task record. Administrative cleanup
// only; cancellation is the lifecycle operation for aborting live runs.
type DeleteDeliveryTaskCommand struct { //nolint:recvcheck //using for validation
	taskID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteDeliveryTaskCommand creates a command to delete a task record.
func NewDeleteDeliveryTaskCommand(taskID kernel.UUID) (DeleteDeliveryTaskCommand, error) {
	if err := taskID.Validate(); err != nil {
		return DeleteDeliveryTaskCommand{}, err
	}

	return DeleteDeliveryTaskCommand{
		taskID: taskID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteDeliveryTaskCommand) Validate() error {
	return c.guard.Validate(ErrDeleteDeliveryTaskCommandIsNotConstructed)
}

// TaskID returns the identifier of the task to delete.
func (c DeleteDeliveryTaskCommand) TaskID() kernel.UUID {
	return c.taskID
}
