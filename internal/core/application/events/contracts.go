// Package events defines the integration event contracts exchanged with the
// order service over the message bus. Outbound events are published after the
// state change they describe has been committed; consumers must tolerate
// duplicates because delivery is at-least-once.
package events

import (
	"time"

	"github.com/nats-io/nuid"
)

// Subjects of the ORDERS stream. The order service owns the inbound
// assignment subject; this service owns the rest.
const (
	SubjectOrderAssignedToCourier = "order.assigned_to_courier"
	SubjectOrderOutForDelivery    = "order.out_for_delivery"
	SubjectOrderDelivered         = "order.delivered"
	SubjectOrderCancelled         = "order.cancelled"
	SubjectOrderDeliveryFailed    = "order.delivery_failed"
)

// Subjects of the COURIERS stream, owned by the user service.
const (
	SubjectCourierRegistered = "courier.registered"
)

// OrderAssignedToCourier is the inbound event consumed when the order service
// assigns an order to a courier. It carries everything needed to open a
// delivery task.
type OrderAssignedToCourier struct {
	EventID          string    `json:"event_id"`
	OrderID          string    `json:"order_id"`
	CourierID        string    `json:"courier_id"`
	TotalAmount      float64   `json:"total_amount"`
	OrderLatitude    float64   `json:"order_latitude"`
	OrderLongitude   float64   `json:"order_longitude"`
	ConfirmationType string    `json:"confirmation_type"`
	Signature        string    `json:"signature,omitempty"`
	OccurredAt       time.Time `json:"occurred_at"`
}

// CourierRegistered is the inbound event consumed when the user service
// registers a courier account. The courier id is issued by the user service
// and reused here so both services refer to the same courier.
type CourierRegistered struct {
	EventID    string    `json:"event_id"`
	CourierID  string    `json:"courier_id"`
	Name       string    `json:"name"`
	MobileNo   string    `json:"mobile_no"`
	OccurredAt time.Time `json:"occurred_at"`
}

// OrderOutForDelivery is published when a courier picks the order up and
// starts the delivery run.
type OrderOutForDelivery struct {
	EventID    string    `json:"event_id"`
	OrderID    string    `json:"order_id"`
	CourierID  string    `json:"courier_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewOrderOutForDelivery builds an OrderOutForDelivery event with a fresh
// event id and timestamp.
func NewOrderOutForDelivery(orderID, courierID string) OrderOutForDelivery {
	return OrderOutForDelivery{
		EventID:    nuid.Next(),
		OrderID:    orderID,
		CourierID:  courierID,
		OccurredAt: time.Now().UTC(),
	}
}

// OrderDelivered is published when the recipient confirms the delivery.
// CourierRating is set only when a rating was submitted for the task.
type OrderDelivered struct {
	EventID       string    `json:"event_id"`
	OrderID       string    `json:"order_id"`
	CourierID     string    `json:"courier_id"`
	CourierRating *float64  `json:"courier_rating,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// NewOrderDelivered builds an OrderDelivered event with a fresh event id
// and timestamp.
func NewOrderDelivered(orderID, courierID string, courierRating *float64) OrderDelivered {
	return OrderDelivered{
		EventID:       nuid.Next(),
		OrderID:       orderID,
		CourierID:     courierID,
		CourierRating: courierRating,
		OccurredAt:    time.Now().UTC(),
	}
}

// OrderCancelled is published when a task is cancelled before the courier
// went out for delivery.
type OrderCancelled struct {
	EventID    string    `json:"event_id"`
	OrderID    string    `json:"order_id"`
	CourierID  string    `json:"courier_id"`
	Reason     string    `json:"reason"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewOrderCancelled builds an OrderCancelled event with a fresh event id
// and timestamp.
func NewOrderCancelled(orderID, courierID, reason string) OrderCancelled {
	return OrderCancelled{
		EventID:    nuid.Next(),
		OrderID:    orderID,
		CourierID:  courierID,
		Reason:     reason,
		OccurredAt: time.Now().UTC(),
	}
}

// OrderDeliveryFailed is published when a task is cancelled after the courier
// already went out for delivery.
type OrderDeliveryFailed struct {
	EventID    string    `json:"event_id"`
	OrderID    string    `json:"order_id"`
	CourierID  string    `json:"courier_id"`
	Reason     string    `json:"reason"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewOrderDeliveryFailed builds an OrderDeliveryFailed event with a fresh
// event id and timestamp.
func NewOrderDeliveryFailed(orderID, courierID, reason string) OrderDeliveryFailed {
	return OrderDeliveryFailed{
		EventID:    nuid.Next(),
		OrderID:    orderID,
		CourierID:  courierID,
		Reason:     reason,
		OccurredAt: time.Now().UTC(),
	}
}
