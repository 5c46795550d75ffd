package commands

import (
	"errors"

	"courier/internal/core/domain/model/courier"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/guard"
)

var ErrRegisterCourierCommandIsNotConstructed = errors.New(
	"RegisterCourierCommand must be created via NewRegisterCourierCommand constructor",
)

// RegisterCourierCommand represents a courier registration announced by the
// user service. Unlike CreateCourierCommand the courier id is supplied by the
// caller so the roster entry shares the id the user service issued.
type RegisterCourierCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	name      string
	mobileNo  string

	guard guard.ConstructorGuard
}

// NewRegisterCourierCommand creates a command to register a courier under an
// externally issued id.
func NewRegisterCourierCommand(courierID kernel.UUID, name string, mobileNo string) (RegisterCourierCommand, error) {
	if err := courierID.Validate(); err != nil {
		return RegisterCourierCommand{}, err
	}
	if name == "" {
		return RegisterCourierCommand{}, courier.ErrNameIsRequired
	}

	return RegisterCourierCommand{
		courierID: courierID,
		name:      name,
		mobileNo:  mobileNo,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterCourierCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCourierCommandIsNotConstructed)
}

// CourierID returns the id the user service issued for the courier.
func (c RegisterCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Name returns the courier's display name.
func (c RegisterCourierCommand) Name() string {
	return c.name
}

// MobileNo returns the courier's contact number.
func (c RegisterCourierCommand) MobileNo() string {
	return c.mobileNo
}
