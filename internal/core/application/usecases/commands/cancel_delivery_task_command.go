package commands

import (
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

var ErrCancelDeliveryTaskCommandIsNotConstructed = errors.New(
	"CancelDeliveryTaskCommand must be created via NewCancelDeliveryTaskCommand constructor",
)

// CancelDeliveryTaskCommand represents a request to abort a delivery run.
// The reason is mandatory and travels with the event announcing the outcome.
type CancelDeliveryTaskCommand struct { //nolint:recvcheck //using for validation
	taskID kernel.UUID
	reason string

	guard guard.ConstructorGuard
}

// NewCancelDeliveryTaskCommand creates a command to cancel a task.
func NewCancelDeliveryTaskCommand(taskID kernel.UUID, reason string) (CancelDeliveryTaskCommand, error) {
	if err := taskID.Validate(); err != nil {
		return CancelDeliveryTaskCommand{}, err
	}
	if reason == "" {
		return CancelDeliveryTaskCommand{}, errs.NewValueIsRequiredError("reason")
	}

	return CancelDeliveryTaskCommand{
		taskID: taskID,
		reason: reason,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelDeliveryTaskCommand) Validate() error {
	return c.guard.Validate(ErrCancelDeliveryTaskCommandIsNotConstructed)
}

// TaskID returns the identifier of the task to cancel.
func (c CancelDeliveryTaskCommand) TaskID() kernel.UUID {
	return c.taskID
}

// Reason returns the cancellation reason.
func (c CancelDeliveryTaskCommand) Reason() string {
	return c.reason
}
