package commands

import (
	"context"
	"errors"

	"courier/internal/core/domain/model/courier"
	"courier/internal/pkg/errs"
)

// RegisterCourierCommandHandler puts couriers announced by the user service
// on the roster under the id the user service issued. Registration events are
// delivered at least once, so an id that is already on the roster is treated
// as done.
type RegisterCourierCommandHandler struct {
	uowFactory CourierUoWFactory
}

// NewRegisterCourierCommandHandler creates a handler for announced courier
// registrations.
func NewRegisterCourierCommandHandler(uowFactory CourierUoWFactory) RegisterCourierCommandHandler {
	return RegisterCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
func (h *RegisterCourierCommandHandler) Handle(ctx context.Context, cmd RegisterCourierCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	existing, err := uow.CourierRepository().Get(ctx, cmd.CourierID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	if existing != nil {
		// Duplicate registration, nothing to do.
		return uow.Commit(ctx)
	}

	aggregate, err := courier.NewCourier(cmd.CourierID(), cmd.Name(), cmd.MobileNo())
	if err != nil {
		return err
	}

	if err = uow.CourierRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
