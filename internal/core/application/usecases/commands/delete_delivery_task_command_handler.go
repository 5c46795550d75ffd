package commands

import (
	"context"
)

// DeleteDeliveryTaskCommandHandler removes a task record from storage.
type DeleteDeliveryTaskCommandHandler struct {
	uowFactory TaskUoWFactory
}

// NewDeleteDeliveryTaskCommandHandler creates a handler for task deletion.
func NewDeleteDeliveryTaskCommandHandler(uowFactory TaskUoWFactory) DeleteDeliveryTaskCommandHandler {
	return DeleteDeliveryTaskCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion command. Deleting an unknown task fails with
// an object-not-found error.
func (h *DeleteDeliveryTaskCommandHandler) Handle(ctx context.Context, cmd DeleteDeliveryTaskCommand) error {
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

	if _, err := taskRepo.Get(ctx, cmd.TaskID()); err != nil {
		return err
	}

	if err := taskRepo.Delete(ctx, cmd.TaskID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
