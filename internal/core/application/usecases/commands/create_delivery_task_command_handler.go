package commands

import (
	"context"
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/task"
	"courier/internal/pkg/errs"
)

// CreateDeliveryTaskCommandHandler opens delivery tasks for courier assignments.
// Creation is idempotent on the order identifier: a redelivered assignment for
// an order that already has a task is acknowledged without creating a duplicate.
type CreateDeliveryTaskCommandHandler struct {
	uowFactory TaskUoWFactory
}

// NewCreateDeliveryTaskCommandHandler creates a handler for task creation.
func NewCreateDeliveryTaskCommandHandler(uowFactory TaskUoWFactory) CreateDeliveryTaskCommandHandler {
	return CreateDeliveryTaskCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the task creation command and returns the id of the
// order's task. For a duplicate assignment that is the existing task's id,
// not the one carried by the command, so callers always get an id they can
// look up. The duplicate check and the insert share one transaction so
// concurrent redeliveries cannot both create.
func (h *CreateDeliveryTaskCommandHandler) Handle(
	ctx context.Context,
	cmd CreateDeliveryTaskCommand,
) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	taskRepo := uow.TaskRepository()

	existing, err := taskRepo.GetByOrderID(ctx, cmd.OrderID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return kernel.UUID{}, err
	}
	if existing != nil {
		// Duplicate assignment, nothing to do.
		return existing.ID(), uow.Commit(ctx)
	}

	aggregate, err := task.NewDeliveryTask(
		cmd.TaskID(),
		cmd.OrderID(),
		cmd.CourierID(),
		cmd.TotalAmount(),
		cmd.OrderLocation(),
		cmd.ConfirmationType(),
		cmd.Signature(),
	)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = taskRepo.Add(ctx, aggregate); err != nil {
		return kernel.UUID{}, err
	}

	return aggregate.ID(), uow.Commit(ctx)
}
