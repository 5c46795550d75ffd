package commands_test

import (
	"testing"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/domain/model/task"
	"courier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewSubmitCourierRatingCommand(t *testing.T) {
	t.Run("should reject rating above maximum", func(t *testing.T) {
		_, err := commands.NewSubmitCourierRatingCommand(assignedTask(t).ID(), 5.5)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject negative rating", func(t *testing.T) {
		_, err := commands.NewSubmitCourierRatingCommand(assignedTask(t).ID(), -0.5)
		require.Error(t, err)
	})

	t.Run("should accept boundary ratings", func(t *testing.T) {
		for _, rating := range []float64{0, 5} {
			_, err := commands.NewSubmitCourierRatingCommand(assignedTask(t).ID(), rating)
			require.NoError(t, err)
		}
	})
}

func TestSubmitCourierRatingCommandHandler_Handle(t *testing.T) {
	t.Run("should record rating on delivered task", func(t *testing.T) {
		aggregate := dispatchedTask(t)
		require.NoError(t, aggregate.Deliver())
		factory := new(MockTaskUoWFactory)
		uow := new(MockTaskUoW)
		repo := new(MockTaskRepository)
		taskUoWExpectations(factory, uow, repo)
		uow.On("Commit", mock.Anything).Return(nil)

		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil)
		repo.On("Update", mock.Anything, aggregate).Return(nil)

		cmd, err := commands.NewSubmitCourierRatingCommand(aggregate.ID(), 4.5)
		require.NoError(t, err)

		handler := commands.NewSubmitCourierRatingCommandHandler(factory)
		require.NoError(t, handler.Handle(t.Context(), cmd))

		require.NotNil(t, aggregate.CourierRating())
		assert.InDelta(t, 4.5, *aggregate.CourierRating(), 0.0001)
		assert.NotNil(t, aggregate.RatingTimestamp())
	})

	t.Run("should fail for task that was not delivered", func(t *testing.T) {
		aggregate := dispatchedTask(t)
		factory := new(MockTaskUoWFactory)
		uow := new(MockTaskUoW)
		repo := new(MockTaskRepository)
		taskUoWExpectations(factory, uow, repo)

		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil)

		cmd, err := commands.NewSubmitCourierRatingCommand(aggregate.ID(), 4.5)
		require.NoError(t, err)

		handler := commands.NewSubmitCourierRatingCommandHandler(factory)
		err = handler.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, task.ErrTaskNotDelivered)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("should fail on second rating", func(t *testing.T) {
		aggregate := dispatchedTask(t)
		require.NoError(t, aggregate.Deliver())
		require.NoError(t, aggregate.SubmitRating(5))
		factory := new(MockTaskUoWFactory)
		uow := new(MockTaskUoW)
		repo := new(MockTaskRepository)
		taskUoWExpectations(factory, uow, repo)

		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil)

		cmd, err := commands.NewSubmitCourierRatingCommand(aggregate.ID(), 3)
		require.NoError(t, err)

		handler := commands.NewSubmitCourierRatingCommandHandler(factory)
		err = handler.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, task.ErrRatingAlreadySubmitted)
	})
}
