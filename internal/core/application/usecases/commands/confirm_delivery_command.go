package commands

import (
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/guard"
)

var ErrConfirmDeliveryCommandIsNotConstructed = errors.New(
	"ConfirmDeliveryCommand must be created via NewConfirmDeliveryCommand constructor",
)

// ConfirmDeliveryCommand represents a recipient presenting their delivery
// proof. The proof is matched against the credential the task's confirmation
// type expects; an empty proof is accepted here and rejected by the strategy.
type ConfirmDeliveryCommand struct { //nolint:recvcheck //using for validation
	taskID kernel.UUID
	proof  string

	guard guard.ConstructorGuard
}

// NewConfirmDeliveryCommand creates a command to confirm a delivery.
func NewConfirmDeliveryCommand(taskID kernel.UUID, proof string) (ConfirmDeliveryCommand, error) {
	if err := taskID.Validate(); err != nil {
		return ConfirmDeliveryCommand{}, err
	}

	return ConfirmDeliveryCommand{
		taskID: taskID,
		proof:  proof,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrConfirmDeliveryCommandIsNotConstructed)
}

// TaskID returns the identifier of the task being confirmed.
func (c ConfirmDeliveryCommand) TaskID() kernel.UUID {
	return c.taskID
}

// Proof returns the raw proof presented by the recipient.
func (c ConfirmDeliveryCommand) Proof() string {
	return c.proof
}
