// Package consumer subscribes to the order service's integration events and
// turns them into commands against the core. It is the messaging counterpart
// of the HTTP adapter.
package consumer

import (
	"context"
	"encoding/json"
	"log/slog"

	"courier/internal/core/application/events"
	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/task"

	"github.com/nats-io/nats.go"
)

const assignmentQueueGroup = "courier-fulfillment"

// assignmentHandler is the slice of the create-task handler the consumer needs.
type assignmentHandler interface {
	Handle(ctx context.Context, cmd commands.CreateDeliveryTaskCommand) (kernel.UUID, error)
}

// AssignmentConsumer consumes order.assigned_to_courier events and opens a
// delivery task per assignment. Acknowledgement is manual: transient failures
// are NAKed for redelivery, malformed events are terminated so they do not
// poison the queue. The create command is idempotent on the order id, so
// redeliveries are harmless.
type AssignmentConsumer struct {
	js      nats.JetStreamContext
	handler assignmentHandler
	logger  *slog.Logger
	sub     *nats.Subscription
}

// NewAssignmentConsumer creates a consumer for courier assignment events.
func NewAssignmentConsumer(
	js nats.JetStreamContext,
	handler assignmentHandler,
	logger *slog.Logger,
) *AssignmentConsumer {
	return &AssignmentConsumer{
		js:      js,
		handler: handler,
		logger:  logger.With("component", "consumer.Assignment"),
	}
}

// Start subscribes to the assignment subject. Instances share a queue group
// so each event is processed once across the deployment.
func (c *AssignmentConsumer) Start(ctx context.Context) error {
	sub, err := c.js.QueueSubscribe(
		events.SubjectOrderAssignedToCourier,
		assignmentQueueGroup,
		func(msg *nats.Msg) {
			c.handleMessage(ctx, msg)
		},
		nats.ManualAck(),
		nats.AckExplicit(),
		nats.Durable(assignmentQueueGroup),
	)
	if err != nil {
		return err
	}

	c.sub = sub
	c.logger.InfoContext(ctx, "subscribed to courier assignments",
		"subject", events.SubjectOrderAssignedToCourier)
	return nil
}

// Stop drains the subscription, letting in-flight handlers finish.
func (c *AssignmentConsumer) Stop() error {
	if c.sub == nil {
		return nil
	}
	return c.sub.Drain()
}

func (c *AssignmentConsumer) handleMessage(ctx context.Context, msg *nats.Msg) {
	cmd, err := decodeAssignment(msg.Data)
	if err != nil {
		// Malformed or semantically invalid events never become valid,
		// terminate instead of redelivering.
		c.logger.WarnContext(ctx, "terminating malformed assignment event", "error", err)
		_ = msg.Term()
		return
	}

	if _, err = c.handler.Handle(ctx, cmd); err != nil {
		c.logger.ErrorContext(ctx, "failed to create delivery task, requesting redelivery",
			"order_id", cmd.OrderID(), "error", err)
		_ = msg.Nak()
		return
	}

	_ = msg.Ack()
}

// decodeAssignment parses an assignment event into a create-task command.
func decodeAssignment(data []byte) (commands.CreateDeliveryTaskCommand, error) {
	var event events.OrderAssignedToCourier
	if err := json.Unmarshal(data, &event); err != nil {
		return commands.CreateDeliveryTaskCommand{}, err
	}

	confirmationType, err := task.ConfirmationTypeFromString(event.ConfirmationType)
	if err != nil {
		return commands.CreateDeliveryTaskCommand{}, err
	}

	orderLocation, err := kernel.NewGeoPoint(event.OrderLatitude, event.OrderLongitude)
	if err != nil {
		return commands.CreateDeliveryTaskCommand{}, err
	}

	return commands.NewCreateDeliveryTaskCommand(
		kernel.NewUUID(),
		event.OrderID,
		event.CourierID,
		event.TotalAmount,
		orderLocation,
		confirmationType,
		event.Signature,
	)
}
