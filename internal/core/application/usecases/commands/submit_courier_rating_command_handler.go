package commands

import (
	"context"
)

// SubmitCourierRatingCommandHandler records a courier rating on a delivered
// task. The aggregate enforces that the task is delivered and not yet rated.
type SubmitCourierRatingCommandHandler struct {
	uowFactory TaskUoWFactory
}

// NewSubmitCourierRatingCommandHandler creates a handler for rating submission.
func NewSubmitCourierRatingCommandHandler(uowFactory TaskUoWFactory) SubmitCourierRatingCommandHandler {
	return SubmitCourierRatingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rating command.
func (h *SubmitCourierRatingCommandHandler) Handle(ctx context.Context, cmd SubmitCourierRatingCommand) error {
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

	if err = aggregate.SubmitRating(cmd.Rating()); err != nil {
		return err
	}

	if err = taskRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
