package commands

import (
	"errors"

	"courier/internal/core/domain/model/courier"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/guard"
)

var ErrUpdateCourierCommandIsNotConstructed = errors.New(
	"UpdateCourierCommand must be created via NewUpdateCourierCommand constructor",
)

// UpdateCourierCommand represents a roster update for an existing courier.
// All fields are replaced; partial updates are resolved by the caller.
type UpdateCourierCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	name      string
	mobileNo  string
	status    courier.Status

	guard guard.ConstructorGuard
}

// NewUpdateCourierCommand creates a command to update a courier's roster entry.
func NewUpdateCourierCommand(
	courierID kernel.UUID,
	name string,
	mobileNo string,
	status courier.Status,
) (UpdateCourierCommand, error) {
	if err := courierID.Validate(); err != nil {
		return UpdateCourierCommand{}, err
	}
	if name == "" {
		return UpdateCourierCommand{}, courier.ErrNameIsRequired
	}
	if err := status.Validate(); err != nil {
		return UpdateCourierCommand{}, err
	}

	return UpdateCourierCommand{
		courierID: courierID,
		name:      name,
		mobileNo:  mobileNo,
		status:    status,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCourierCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCourierCommandIsNotConstructed)
}

// CourierID returns the identifier of the courier to update.
func (c UpdateCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Name returns the new display name.
func (c UpdateCourierCommand) Name() string {
	return c.name
}

// MobileNo returns the new contact number.
func (c UpdateCourierCommand) MobileNo() string {
	return c.mobileNo
}

// Status returns the new roster status.
func (c UpdateCourierCommand) Status() courier.Status {
	return c.status
}
