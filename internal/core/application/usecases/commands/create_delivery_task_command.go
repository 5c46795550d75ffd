package commands

import (
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/task"
	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

var (
	ErrCreateDeliveryTaskCommandIsNotConstructed = errors.New(
		"CreateDeliveryTaskCommand must be created via NewCreateDeliveryTaskCommand constructor",
	)
)

// CreateDeliveryTaskCommand represents a request to open a delivery task for
// an order that was assigned to a courier. Order and courier identifiers are
// issued by the order service and treated as opaque strings.
//
// Example:
//
//	cmd, err := NewCreateDeliveryTaskCommand(
//	    kernel.NewUUID(), "order-81", "courier-5", 42.50, location,
//	    task.ConfirmationOTP, "")
//	if err != nil {
//	    return fmt.Errorf("invalid assignment data: %w", err)
//	}
//
//	handler := NewCreateDeliveryTaskCommandHandler(uowFactory)
//	taskID, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create delivery task: %w", err)
//	}
type CreateDeliveryTaskCommand struct { //nolint:recvcheck //using for validation
	taskID           kernel.UUID
	orderID          string
	courierID        string
	totalAmount      float64
	orderLocation    kernel.GeoPoint
	confirmationType task.ConfirmationType
	signature        string

	guard guard.ConstructorGuard
}

// NewCreateDeliveryTaskCommand creates a command to open a delivery task.
// Validates identifiers, amount, destination and confirmation type.
func NewCreateDeliveryTaskCommand(
	taskID kernel.UUID,
	orderID string,
	courierID string,
	totalAmount float64,
	orderLocation kernel.GeoPoint,
	confirmationType task.ConfirmationType,
	signature string,
) (CreateDeliveryTaskCommand, error) {
	taskCommand := CreateDeliveryTaskCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		taskCommand.setTaskID(taskID),
		taskCommand.setOrderID(orderID),
		taskCommand.setCourierID(courierID),
		taskCommand.setTotalAmount(totalAmount),
		taskCommand.setOrderLocation(orderLocation),
		taskCommand.setConfirmationType(confirmationType),
	); err != nil {
		return CreateDeliveryTaskCommand{}, err
	}

	if err := taskCommand.setSignature(signature); err != nil {
		return CreateDeliveryTaskCommand{}, err
	}

	return taskCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDeliveryTaskCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryTaskCommandIsNotConstructed)
}

// TaskID returns the identifier assigned to the new task.
func (c CreateDeliveryTaskCommand) TaskID() kernel.UUID {
	return c.taskID
}

// OrderID returns the order service's order identifier.
func (c CreateDeliveryTaskCommand) OrderID() string {
	return c.orderID
}

// CourierID returns the assigned courier's identifier.
func (c CreateDeliveryTaskCommand) CourierID() string {
	return c.courierID
}

// TotalAmount returns the order total carried for display purposes.
func (c CreateDeliveryTaskCommand) TotalAmount() float64 {
	return c.totalAmount
}

// OrderLocation returns the delivery destination.
func (c CreateDeliveryTaskCommand) OrderLocation() kernel.GeoPoint {
	return c.orderLocation
}

// ConfirmationType returns the proof type the recipient will present.
func (c CreateDeliveryTaskCommand) ConfirmationType() task.ConfirmationType {
	return c.confirmationType
}

// Signature returns the expected signature for signature-confirmed tasks.
func (c CreateDeliveryTaskCommand) Signature() string {
	return c.signature
}

func (c *CreateDeliveryTaskCommand) setTaskID(taskID kernel.UUID) error {
	if err := taskID.Validate(); err != nil {
		return err
	}

	c.taskID = taskID
	return nil
}

func (c *CreateDeliveryTaskCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderId")
	}

	c.orderID = orderID
	return nil
}

func (c *CreateDeliveryTaskCommand) setCourierID(courierID string) error {
	if courierID == "" {
		return errs.NewValueIsRequiredError("courierId")
	}

	c.courierID = courierID
	return nil
}

func (c *CreateDeliveryTaskCommand) setTotalAmount(totalAmount float64) error {
	if totalAmount < 0 {
		return errs.NewValueIsInvalidError("totalAmount")
	}

	c.totalAmount = totalAmount
	return nil
}

func (c *CreateDeliveryTaskCommand) setOrderLocation(orderLocation kernel.GeoPoint) error {
	if err := orderLocation.Validate(); err != nil {
		return err
	}

	c.orderLocation = orderLocation
	return nil
}

func (c *CreateDeliveryTaskCommand) setConfirmationType(confirmationType task.ConfirmationType) error {
	if err := confirmationType.Validate(); err != nil {
		return err
	}

	c.confirmationType = confirmationType
	return nil
}

// Called after setConfirmationType since the requirement depends on it.
func (c *CreateDeliveryTaskCommand) setSignature(signature string) error {
	if c.confirmationType == task.ConfirmationSignature && signature == "" {
		return errs.NewValueIsRequiredError("signature")
	}

	c.signature = signature
	return nil
}
