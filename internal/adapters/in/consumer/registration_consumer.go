package consumer

import (
	"context"
	"encoding/json"
	"log/slog"

	"courier/internal/core/application/events"
	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/domain/model/kernel"

	"github.com/nats-io/nats.go"
)

const registrationQueueGroup = "courier-roster"

// registrationHandler is the slice of the register-courier handler the
// consumer needs.
type registrationHandler interface {
	Handle(ctx context.Context, cmd commands.RegisterCourierCommand) error
}

// RegistrationConsumer consumes courier.registered events from the user
// service and puts the courier on the roster under the announced id. The
// register command skips ids that are already on the roster, so redeliveries
// are harmless.
type RegistrationConsumer struct {
	js      nats.JetStreamContext
	handler registrationHandler
	logger  *slog.Logger
	sub     *nats.Subscription
}

// NewRegistrationConsumer creates a consumer for courier registration events.
func NewRegistrationConsumer(
	js nats.JetStreamContext,
	handler registrationHandler,
	logger *slog.Logger,
) *RegistrationConsumer {
	return &RegistrationConsumer{
		js:      js,
		handler: handler,
		logger:  logger.With("component", "consumer.Registration"),
	}
}

// Start subscribes to the registration subject. Instances share a queue group
// so each event is processed once across the deployment.
func (c *RegistrationConsumer) Start(ctx context.Context) error {
	sub, err := c.js.QueueSubscribe(
		events.SubjectCourierRegistered,
		registrationQueueGroup,
		func(msg *nats.Msg) {
			c.handleMessage(ctx, msg)
		},
		nats.ManualAck(),
		nats.AckExplicit(),
		nats.Durable(registrationQueueGroup),
	)
	if err != nil {
		return err
	}

	c.sub = sub
	c.logger.InfoContext(ctx, "subscribed to courier registrations",
		"subject", events.SubjectCourierRegistered)
	return nil
}

// Stop drains the subscription, letting in-flight handlers finish.
func (c *RegistrationConsumer) Stop() error {
	if c.sub == nil {
		return nil
	}
	return c.sub.Drain()
}

func (c *RegistrationConsumer) handleMessage(ctx context.Context, msg *nats.Msg) {
	cmd, err := decodeRegistration(msg.Data)
	if err != nil {
		// Malformed or semantically invalid events never become valid,
		// terminate instead of redelivering.
		c.logger.WarnContext(ctx, "terminating malformed registration event", "error", err)
		_ = msg.Term()
		return
	}

	if err = c.handler.Handle(ctx, cmd); err != nil {
		c.logger.ErrorContext(ctx, "failed to register courier, requesting redelivery",
			"courier_id", cmd.CourierID().String(), "error", err)
		_ = msg.Nak()
		return
	}

	_ = msg.Ack()
}

// decodeRegistration parses a registration event into a register command.
func decodeRegistration(data []byte) (commands.RegisterCourierCommand, error) {
	var event events.CourierRegistered
	if err := json.Unmarshal(data, &event); err != nil {
		return commands.RegisterCourierCommand{}, err
	}

	courierID, err := kernel.UUIDFromString(event.CourierID)
	if err != nil {
		return commands.RegisterCourierCommand{}, err
	}

	return commands.NewRegisterCourierCommand(courierID, event.Name, event.MobileNo)
}
