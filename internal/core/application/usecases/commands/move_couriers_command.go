package commands

import (
	"errors"

	"courier/internal/pkg/guard"
)

// MoveCouriersCommand triggers a movement step for every courier that is out
// for delivery, advancing each position towards its order destination.
//
// Example:
//
//	cmd := NewMoveCouriersCommand()
//	handler := NewMoveCouriersCommandHandler(uowFactory, 0.1)
//
//	// Run periodically to simulate courier movement
//	ticker := time.NewTicker(5 * time.Second)
//	for range ticker.C {
//	    if err := handler.Handle(ctx, cmd); err != nil {
//	        log.Printf("Movement update failed: %v", err)
//	    }
//	}
type MoveCouriersCommand struct {
	guard guard.ConstructorGuard
}

var (
	ErrMoveCouriersCommandIsNotConstructed = errors.New(
		"MoveCouriersCommand must be created via NewMoveCouriersCommand constructor",
	)
)

// NewMoveCouriersCommand creates a command to trigger courier movement updates.
// This is a parameterless command that processes all active deliveries.
func NewMoveCouriersCommand() MoveCouriersCommand {
	command := MoveCouriersCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
// Returns ErrMoveCouriersCommandIsNotConstructed if validation fails.
func (c *MoveCouriersCommand) Validate() error {
	return c.guard.Validate(ErrMoveCouriersCommandIsNotConstructed)
}
