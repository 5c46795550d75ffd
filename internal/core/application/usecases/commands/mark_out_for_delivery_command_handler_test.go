package commands_test

import (
	"io"
	"log/slog"
	"testing"

	"courier/internal/core/application/events"
	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/domain/model/task"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMarkOutForDeliveryCommandHandler_Handle(t *testing.T) {
	t.Run("should dispatch task and publish out_for_delivery", func(t *testing.T) {
		aggregate := assignedTask(t)
		factory := new(MockTaskUoWFactory)
		uow := new(MockTaskUoW)
		repo := new(MockTaskRepository)
		publisher := new(MockEventPublisher)
		taskUoWExpectations(factory, uow, repo)
		uow.On("Commit", mock.Anything).Return(nil)

		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil)
		repo.On("Update", mock.Anything, aggregate).Return(nil)
		publisher.On("Publish", mock.Anything, events.SubjectOrderOutForDelivery,
			mock.MatchedBy(func(event any) bool {
				e, ok := event.(events.OrderOutForDelivery)
				return ok && e.OrderID == aggregate.OrderID() && e.CourierID == aggregate.CourierID()
			})).Return(nil)

		handler := commands.NewMarkOutForDeliveryCommandHandler(factory, publisher, 4, discardLogger())
		cmd, err := commands.NewMarkOutForDeliveryCommand(aggregate.ID())
		require.NoError(t, err)

		require.NoError(t, handler.Handle(t.Context(), cmd))
		assert.Equal(t, task.StatusOutForDelivery, aggregate.Status())
		assert.Len(t, aggregate.Otp(), 4)
		publisher.AssertExpectations(t)
	})

	t.Run("should succeed even when publish fails", func(t *testing.T) {
		aggregate := assignedTask(t)
		factory := new(MockTaskUoWFactory)
		uow := new(MockTaskUoW)
		repo := new(MockTaskRepository)
		publisher := new(MockEventPublisher)
		taskUoWExpectations(factory, uow, repo)
		uow.On("Commit", mock.Anything).Return(nil)

		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil)
		repo.On("Update", mock.Anything, aggregate).Return(nil)
		publisher.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(assert.AnError)

		handler := commands.NewMarkOutForDeliveryCommandHandler(factory, publisher, 4, discardLogger())
		cmd, err := commands.NewMarkOutForDeliveryCommand(aggregate.ID())
		require.NoError(t, err)

		require.NoError(t, handler.Handle(t.Context(), cmd))
		assert.Equal(t, task.StatusOutForDelivery, aggregate.Status())
	})

	t.Run("should not publish when transition fails", func(t *testing.T) {
		aggregate := dispatchedTask(t)
		factory := new(MockTaskUoWFactory)
		uow := new(MockTaskUoW)
		repo := new(MockTaskRepository)
		publisher := new(MockEventPublisher)
		taskUoWExpectations(factory, uow, repo)

		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil)

		handler := commands.NewMarkOutForDeliveryCommandHandler(factory, publisher, 4, discardLogger())
		cmd, err := commands.NewMarkOutForDeliveryCommand(aggregate.ID())
		require.NoError(t, err)

		require.Error(t, handler.Handle(t.Context(), cmd))
		publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})
}
