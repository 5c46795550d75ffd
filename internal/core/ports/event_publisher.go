package ports

import (
	"context"
)

// EventPublisher defines the outbound messaging contract of the core.
// Events are published to a subject after the state change they describe has
// been committed; delivery is at-least-once and a publish failure must not
// roll the state change back.
type EventPublisher interface {
	// Publish serializes the event and publishes it to the given subject.
	Publish(ctx context.Context, subject string, event any) error
}
