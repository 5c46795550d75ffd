package commands

import (
	"context"
	"log/slog"

	"courier/internal/core/application/events"
	"courier/internal/core/application/tracking"
	"courier/internal/core/domain/model/task"
	"courier/internal/core/ports"
)

// CancelDeliveryTaskCommandHandler aborts a delivery run. The event announcing
// the outcome depends on how far the run got: a task cancelled before dispatch
// produces order.cancelled, one cancelled mid-run produces order.delivery_failed.
type CancelDeliveryTaskCommandHandler struct {
	uowFactory TaskUoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewCancelDeliveryTaskCommandHandler creates a handler for cancellation.
func NewCancelDeliveryTaskCommandHandler(
	uowFactory TaskUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) CancelDeliveryTaskCommandHandler {
	return CancelDeliveryTaskCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With("component", "commands.CancelDeliveryTask"),
	}
}

// Handle processes the cancellation command. The status before cancellation
// picks the outbound event type; the cancelled state is committed first.
func (h *CancelDeliveryTaskCommandHandler) Handle(ctx context.Context, cmd CancelDeliveryTaskCommand) error {
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

	statusBefore := aggregate.Status()
	if err = aggregate.Cancel(cmd.Reason()); err != nil {
		return err
	}

	if err = taskRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	var event any
	if statusBefore == task.StatusOutForDelivery {
		event = events.NewOrderDeliveryFailed(aggregate.OrderID(), aggregate.CourierID(), cmd.Reason())
	} else {
		event = events.NewOrderCancelled(aggregate.OrderID(), aggregate.CourierID(), cmd.Reason())
	}

	if err = tracking.Stop(ctx, h.publisher, event); err != nil {
		h.logger.ErrorContext(ctx, "failed to publish cancellation event",
			"task_id", aggregate.ID().String(),
			"order_id", aggregate.OrderID(),
			"error", err)
	}

	return nil
}
