package tracking_test

import (
	"context"
	"testing"

	"courier/internal/core/application/events"
	"courier/internal/core/application/tracking"
	"courier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockEventPublisher struct {
	mock.Mock
}

func (m *mockEventPublisher) Publish(ctx context.Context, subject string, event any) error {
	args := m.Called(ctx, subject, event)
	return args.Error(0)
}

func TestStart(t *testing.T) {
	t.Run("should publish out_for_delivery event", func(t *testing.T) {
		publisher := &mockEventPublisher{}
		publisher.On("Publish", mock.Anything, events.SubjectOrderOutForDelivery,
			mock.MatchedBy(func(event any) bool {
				e, ok := event.(events.OrderOutForDelivery)
				return ok && e.OrderID == "order-1" && e.CourierID == "courier-1" && e.EventID != ""
			})).Return(nil)

		err := tracking.Start(context.Background(), publisher, "order-1", "courier-1")

		require.NoError(t, err)
		publisher.AssertExpectations(t)
	})
}

func TestStop(t *testing.T) {
	t.Run("should publish delivered event to its subject", func(t *testing.T) {
		publisher := &mockEventPublisher{}
		event := events.NewOrderDelivered("order-1", "courier-1", nil)
		publisher.On("Publish", mock.Anything, events.SubjectOrderDelivered, event).Return(nil)

		err := tracking.Stop(context.Background(), publisher, event)

		require.NoError(t, err)
		publisher.AssertExpectations(t)
	})

	t.Run("should publish cancelled event to its subject", func(t *testing.T) {
		publisher := &mockEventPublisher{}
		event := events.NewOrderCancelled("order-1", "courier-1", "customer request")
		publisher.On("Publish", mock.Anything, events.SubjectOrderCancelled, event).Return(nil)

		err := tracking.Stop(context.Background(), publisher, event)

		require.NoError(t, err)
		publisher.AssertExpectations(t)
	})

	t.Run("should publish delivery_failed event to its subject", func(t *testing.T) {
		publisher := &mockEventPublisher{}
		event := events.NewOrderDeliveryFailed("order-1", "courier-1", "recipient unreachable")
		publisher.On("Publish", mock.Anything, events.SubjectOrderDeliveryFailed, event).Return(nil)

		err := tracking.Stop(context.Background(), publisher, event)

		require.NoError(t, err)
		publisher.AssertExpectations(t)
	})

	t.Run("should reject non-terminal event", func(t *testing.T) {
		publisher := &mockEventPublisher{}

		err := tracking.Stop(context.Background(), publisher, events.NewOrderOutForDelivery("order-1", "courier-1"))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
	})
}
