package commands

import (
	"context"

	"courier/internal/core/domain/model/task"
	"courier/internal/pkg/errs"
)

// MoveCouriersCommandHandler advances every courier that is out for delivery
// one step towards its order destination. Used by the movement simulation job
// to produce plausible position updates without real courier hardware.
type MoveCouriersCommandHandler struct {
	uowFactory   TaskUoWFactory
	stepFraction float64
}

// NewMoveCouriersCommandHandler creates a handler for courier movement.
// stepFraction is the share of the remaining distance covered per step and
// must be in (0, 1].
func NewMoveCouriersCommandHandler(
	uowFactory TaskUoWFactory,
	stepFraction float64,
) (MoveCouriersCommandHandler, error) {
	if stepFraction <= 0 || stepFraction > 1 {
		return MoveCouriersCommandHandler{}, errs.NewValueIsOutOfRangeError(
			"stepFraction", stepFraction, 0, 1)
	}

	return MoveCouriersCommandHandler{
		uowFactory:   uowFactory,
		stepFraction: stepFraction,
	}, nil
}

// Handle processes the movement command. All position updates of one step
// share a single transaction.
func (h *MoveCouriersCommandHandler) Handle(ctx context.Context, cmd MoveCouriersCommand) error {
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

	tasks, err := taskRepo.GetAllByStatus(ctx, task.StatusOutForDelivery)
	if err != nil {
		return err
	}

	for _, aggregate := range tasks {
		next := aggregate.CourierLocation().StepToward(aggregate.OrderLocation(), h.stepFraction)
		if err = aggregate.UpdateCourierLocation(next); err != nil {
			return err
		}

		if err = taskRepo.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
