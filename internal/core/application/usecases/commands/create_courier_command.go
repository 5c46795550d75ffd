package commands

import (
	"errors"

	"courier/internal/core/domain/model/courier"
	"courier/internal/pkg/guard"
)

var ErrCreateCourierCommandIsNotConstructed = errors.New(
	"CreateCourierCommand must be created via NewCreateCourierCommand constructor",
)

// CreateCourierCommand represents a request to register a courier on the roster.
type CreateCourierCommand struct { //nolint:recvcheck //using for validation
	name     string
	mobileNo string

	guard guard.ConstructorGuard
}

// NewCreateCourierCommand creates a command to register a new courier.
func NewCreateCourierCommand(name string, mobileNo string) (CreateCourierCommand, error) {
	if name == "" {
		return CreateCourierCommand{}, courier.ErrNameIsRequired
	}

	return CreateCourierCommand{
		name:     name,
		mobileNo: mobileNo,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCourierCommand) Validate() error {
	return c.guard.Validate(ErrCreateCourierCommandIsNotConstructed)
}

// Name returns the courier's display name.
func (c CreateCourierCommand) Name() string {
	return c.name
}

// MobileNo returns the courier's contact number.
func (c CreateCourierCommand) MobileNo() string {
	return c.mobileNo
}
