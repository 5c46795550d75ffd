package commands

import (
	"context"
	"fmt"
	"log/slog"

	"courier/internal/core/application/events"
	"courier/internal/core/application/tracking"
	"courier/internal/core/domain/model/task"
	"courier/internal/core/domain/services"
	"courier/internal/core/ports"
	"courier/internal/pkg/errs"
)

// OutcomeAlreadyConfirmed is returned when a delivered task is confirmed again.
// Re-confirmation is informative, not an error, so retries stay harmless.
const OutcomeAlreadyConfirmed = "Delivery already confirmed"

// ConfirmDeliveryCommandHandler validates a delivery proof and closes the run.
// The proof check is delegated to the strategy matching the task's
// confirmation type. On a successful match the delivered state is committed
// first and the order.delivered event follows.
type ConfirmDeliveryCommandHandler struct {
	uowFactory TaskUoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewConfirmDeliveryCommandHandler creates a handler for delivery confirmation.
func NewConfirmDeliveryCommandHandler(
	uowFactory TaskUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) ConfirmDeliveryCommandHandler {
	return ConfirmDeliveryCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With("component", "commands.ConfirmDelivery"),
	}
}

// Handle processes the confirmation command and reports the outcome.
// A rejected proof leaves the task out for delivery and is not an error.
// Confirming a cancelled or not-yet-dispatched task is an error.
func (h *ConfirmDeliveryCommandHandler) Handle(
	ctx context.Context,
	cmd ConfirmDeliveryCommand,
) (services.ConfirmationResult, error) {
	if err := cmd.Validate(); err != nil {
		return services.ConfirmationResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return services.ConfirmationResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	taskRepo := uow.TaskRepository()

	aggregate, err := taskRepo.Get(ctx, cmd.TaskID())
	if err != nil {
		return services.ConfirmationResult{}, err
	}

	if aggregate.Status() == task.StatusDelivered {
		return services.ConfirmationResult{Confirmed: true, Message: OutcomeAlreadyConfirmed}, nil
	}
	if aggregate.Status() != task.StatusOutForDelivery {
		return services.ConfirmationResult{}, errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%s is not a valid status to confirm delivery", aggregate.Status()))
	}

	strategy, err := services.ForConfirmationType(aggregate.ConfirmationType())
	if err != nil {
		return services.ConfirmationResult{}, err
	}

	result, err := strategy.Confirm(aggregate, cmd.Proof())
	if err != nil {
		return services.ConfirmationResult{}, err
	}
	if !result.Confirmed {
		return result, nil
	}

	if err = taskRepo.Update(ctx, aggregate); err != nil {
		return services.ConfirmationResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return services.ConfirmationResult{}, err
	}

	event := events.NewOrderDelivered(
		aggregate.OrderID(), aggregate.CourierID(), aggregate.CourierRating())
	if err = tracking.Stop(ctx, h.publisher, event); err != nil {
		h.logger.ErrorContext(ctx, "failed to publish delivered event",
			"task_id", aggregate.ID().String(),
			"order_id", aggregate.OrderID(),
			"error", err)
	}

	return result, nil
}
