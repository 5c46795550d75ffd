// Package tracking wires delivery lifecycle transitions to the events that
// announce them to the order service. Starting tracking marks the order as
// out for delivery; stopping tracking reports how the delivery run ended.
package tracking

import (
	"context"
	"fmt"

	"courier/internal/core/application/events"
	"courier/internal/core/ports"
	"courier/internal/pkg/errs"
)

// Start announces that the courier is on their way with the order.
// Called after the task transition has been committed.
func Start(ctx context.Context, publisher ports.EventPublisher, orderID, courierID string) error {
	event := events.NewOrderOutForDelivery(orderID, courierID)
	return publisher.Publish(ctx, events.SubjectOrderOutForDelivery, event)
}

// Stop announces the terminal outcome of a delivery run. The event value
// determines the subject; only terminal event types are accepted.
func Stop(ctx context.Context, publisher ports.EventPublisher, event any) error {
	switch terminal := event.(type) {
	case events.OrderDelivered:
		return publisher.Publish(ctx, events.SubjectOrderDelivered, terminal)
	case events.OrderCancelled:
		return publisher.Publish(ctx, events.SubjectOrderCancelled, terminal)
	case events.OrderDeliveryFailed:
		return publisher.Publish(ctx, events.SubjectOrderDeliveryFailed, terminal)
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"event", fmt.Errorf("%T is not a terminal delivery event", event))
	}
}
