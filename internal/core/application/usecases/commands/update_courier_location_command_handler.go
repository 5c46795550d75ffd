package commands

import (
	"context"
)

// UpdateCourierLocationCommandHandler records a courier position on an active
// task. Position reports against a terminal task are rejected by the aggregate.
type UpdateCourierLocationCommandHandler struct {
	uowFactory TaskUoWFactory
}

// NewUpdateCourierLocationCommandHandler creates a handler for position reports.
func NewUpdateCourierLocationCommandHandler(uowFactory TaskUoWFactory) UpdateCourierLocationCommandHandler {
	return UpdateCourierLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the position report command.
func (h *UpdateCourierLocationCommandHandler) Handle(ctx context.Context, cmd UpdateCourierLocationCommand) error {
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

	taskRepo := uow.TaskRepository()

	aggregate, err := taskRepo.Get(ctx, cmd.TaskID())
	if err != nil {
		return err
	}

	if err = aggregate.UpdateCourierLocation(cmd.Position()); err != nil {
		return err
	}

	if err = taskRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
