package commands_test

import (
	"testing"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/domain/model/task"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewMoveCouriersCommandHandler(t *testing.T) {
	t.Run("should reject step fraction outside (0, 1]", func(t *testing.T) {
		for _, fraction := range []float64{0, -0.1, 1.5} {
			_, err := commands.NewMoveCouriersCommandHandler(new(MockTaskUoWFactory), fraction)
			require.Error(t, err)
		}
	})
}

func TestMoveCouriersCommandHandler_Handle(t *testing.T) {
	t.Run("should advance couriers towards their destinations", func(t *testing.T) {
		first := dispatchedTask(t)
		second := dispatchedTask(t)
		factory := new(MockTaskUoWFactory)
		uow := new(MockTaskUoW)
		repo := new(MockTaskRepository)
		taskUoWExpectations(factory, uow, repo)
		uow.On("Commit", mock.Anything).Return(nil)

		repo.On("GetAllByStatus", mock.Anything, task.StatusOutForDelivery).
			Return([]*task.DeliveryTask{first, second}, nil)
		repo.On("Update", mock.Anything, mock.Anything).Return(nil)

		handler, err := commands.NewMoveCouriersCommandHandler(factory, 0.5)
		require.NoError(t, err)

		require.NoError(t, handler.Handle(t.Context(), commands.NewMoveCouriersCommand()))

		// Couriers start at the depot, so half a step covers half the distance.
		assert.InDelta(t, first.OrderLocation().Latitude()/2, first.CourierLocation().Latitude(), 0.0001)
		assert.InDelta(t, first.OrderLocation().Longitude()/2, first.CourierLocation().Longitude(), 0.0001)
		repo.AssertNumberOfCalls(t, "Update", 2)
	})

	t.Run("should do nothing when no task is out for delivery", func(t *testing.T) {
		factory := new(MockTaskUoWFactory)
		uow := new(MockTaskUoW)
		repo := new(MockTaskRepository)
		taskUoWExpectations(factory, uow, repo)
		uow.On("Commit", mock.Anything).Return(nil)

		repo.On("GetAllByStatus", mock.Anything, task.StatusOutForDelivery).
			Return([]*task.DeliveryTask{}, nil)

		handler, err := commands.NewMoveCouriersCommandHandler(factory, 0.5)
		require.NoError(t, err)

		require.NoError(t, handler.Handle(t.Context(), commands.NewMoveCouriersCommand()))
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}
