package commands

import (
	"context"
	"log/slog"

	"courier/internal/core/application/tracking"
	"courier/internal/core/ports"
)

// MarkOutForDeliveryCommandHandler transitions a task out for delivery.
// The transition generates the delivery credential (one-time password or QR
// code content) and announces the run to the order service. The credential is
// committed before the announcement goes out, so a crash between the two
// leaves a resumable task rather than a phantom event.
type MarkOutForDeliveryCommandHandler struct {
	uowFactory TaskUoWFactory
	publisher  ports.EventPublisher
	otpLength  int
	logger     *slog.Logger
}

// NewMarkOutForDeliveryCommandHandler creates a handler for dispatch operations.
// otpLength controls how many trailing characters of the task id form the OTP.
func NewMarkOutForDeliveryCommandHandler(
	uowFactory TaskUoWFactory,
	publisher ports.EventPublisher,
	otpLength int,
	logger *slog.Logger,
) MarkOutForDeliveryCommandHandler {
	return MarkOutForDeliveryCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		otpLength:  otpLength,
		logger:     logger.With("component", "commands.MarkOutForDelivery"),
	}
}

// Handle processes the dispatch command. A publish failure after commit is
// logged and swallowed; the state change stands and the event is re-emittable.
func (h *MarkOutForDeliveryCommandHandler) Handle(ctx context.Context, cmd MarkOutForDeliveryCommand) error {
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

	if err = aggregate.MarkOutForDelivery(h.otpLength); err != nil {
		return err
	}

	if err = taskRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = tracking.Start(ctx, h.publisher, aggregate.OrderID(), aggregate.CourierID()); err != nil {
		h.logger.ErrorContext(ctx, "failed to publish out_for_delivery event",
			"task_id", aggregate.ID().String(),
			"order_id", aggregate.OrderID(),
			"error", err)
	}

	return nil
}
