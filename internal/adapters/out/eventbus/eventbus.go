// Package eventbus publishes integration events to NATS JetStream and owns
// the stream bootstrap for the subjects this service exchanges with the
// order and user services.
package eventbus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
)

const (
	ordersStream   = "ORDERS"
	couriersStream = "COURIERS"
)

// EnsureStream creates (or validates) the ORDERS stream carrying every
// order.* subject and the COURIERS stream carrying every courier.* subject.
// Safe to call from multiple instances at startup.
func EnsureStream(js nats.JetStreamContext) error {
	if err := ensureStream(js, ordersStream, "order.>"); err != nil {
		return err
	}
	return ensureStream(js, couriersStream, "courier.>")
}

func ensureStream(js nats.JetStreamContext, name, subjects string) error {
	if _, err := js.StreamInfo(name); err != nil {
		if errors.Is(err, nats.ErrStreamNotFound) {
			if _, addErr := js.AddStream(&nats.StreamConfig{
				Name:      name,
				Subjects:  []string{subjects},
				Retention: nats.LimitsPolicy,
				Storage:   nats.FileStorage,
				Replicas:  1,
			}); addErr != nil {
				return addErr
			}
		} else {
			return err
		}
	}

	return nil
}

// Client bundles a NATS connection with its JetStream context.
type Client struct {
	Conn *nats.Conn
	JS   nats.JetStreamContext
}

// Connect dials the NATS server and bootstraps the streams.
func Connect(url string) (*Client, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, err
	}
	js, err := conn.JetStream()
	if err != nil {
		_ = conn.Drain()
		conn.Close()
		return nil, err
	}
	if err := EnsureStream(js); err != nil {
		_ = conn.Drain()
		conn.Close()
		return nil, err
	}
	return &Client{Conn: conn, JS: js}, nil
}

// ConnectWithRetry keeps dialing until the server answers or the timeout
// elapses. Used at startup when the broker may still be coming up.
func ConnectWithRetry(url string, timeout time.Duration) (*Client, error) {
	deadline := time.Now().Add(timeout)
	var lastErr error
	for time.Now().Before(deadline) {
		client, err := Connect(url)
		if err == nil {
			return client, nil
		}
		lastErr = err
		time.Sleep(500 * time.Millisecond)
	}
	return nil, fmt.Errorf("connect jetstream timeout after %s: %w", timeout, lastErr)
}

// Close drains and closes the underlying connection.
func (c *Client) Close() {
	if c == nil || c.Conn == nil {
		return
	}
	_ = c.Conn.Drain()
	c.Conn.Close()
}

// jetStreamPublisher is the slice of nats.JetStreamContext the publisher needs.
type jetStreamPublisher interface {
	Publish(subj string, data []byte, opts ...nats.PubOpt) (*nats.PubAck, error)
}

// JetStreamPublisher implements ports.EventPublisher on top of JetStream.
// Events are serialized as JSON; the stream gives at-least-once delivery.
type JetStreamPublisher struct {
	js jetStreamPublisher
}

// NewJetStreamPublisher creates a publisher over the given JetStream context.
func NewJetStreamPublisher(js jetStreamPublisher) *JetStreamPublisher {
	return &JetStreamPublisher{js: js}
}

// Publish serializes the event and publishes it to the subject.
func (p *JetStreamPublisher) Publish(ctx context.Context, subject string, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	_, err = p.js.Publish(subject, payload, nats.Context(ctx))
	return err
}
