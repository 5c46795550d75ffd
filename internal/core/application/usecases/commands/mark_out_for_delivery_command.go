package commands

import (
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/guard"
)

var ErrMarkOutForDeliveryCommandIsNotConstructed = errors.New(
	"MarkOutForDeliveryCommand must be created via NewMarkOutForDeliveryCommand constructor",
)

// MarkOutForDeliveryCommand represents a courier picking an order up and
// starting the delivery run.
type MarkOutForDeliveryCommand struct { //nolint:recvcheck //using for validation
	taskID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkOutForDeliveryCommand creates a command to dispatch a task.
func NewMarkOutForDeliveryCommand(taskID kernel.UUID) (MarkOutForDeliveryCommand, error) {
	if err := taskID.Validate(); err != nil {
		return MarkOutForDeliveryCommand{}, err
	}

	return MarkOutForDeliveryCommand{
		taskID: taskID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkOutForDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrMarkOutForDeliveryCommandIsNotConstructed)
}

// TaskID returns the identifier of the task to dispatch.
func (c MarkOutForDeliveryCommand) TaskID() kernel.UUID {
	return c.taskID
}
