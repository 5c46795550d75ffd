package commands_test

import (
	"testing"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/domain/model/courier"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func courierUoWExpectations(
	factory *MockCourierUoWFactory, uow *MockCourierUoW, repo *MockCourierRepository,
) {
	factory.On("Create").Return(uow)
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)
	uow.On("CourierRepository").Return(repo)
}

func TestCreateCourierCommandHandler_Handle(t *testing.T) {
	t.Run("should register courier in available status", func(t *testing.T) {
		factory := new(MockCourierUoWFactory)
		uow := new(MockCourierUoW)
		repo := new(MockCourierRepository)
		courierUoWExpectations(factory, uow, repo)
		uow.On("Commit", mock.Anything).Return(nil)

		repo.On("Add", mock.Anything, mock.MatchedBy(func(aggregate *courier.Courier) bool {
			return aggregate.Name() == "John Doe" && aggregate.Status() == courier.StatusAvailable
		})).Return(nil)

		cmd, err := commands.NewCreateCourierCommand("John Doe", "+1-202-555-0100")
		require.NoError(t, err)

		handler := commands.NewCreateCourierCommandHandler(factory)
		id, err := handler.Handle(t.Context(), cmd)

		require.NoError(t, err)
		require.NoError(t, id.Validate())
		repo.AssertExpectations(t)
	})

	t.Run("should require name", func(t *testing.T) {
		_, err := commands.NewCreateCourierCommand("", "+1-202-555-0100")
		require.ErrorIs(t, err, courier.ErrNameIsRequired)
	})
}

func TestRegisterCourierCommandHandler_Handle(t *testing.T) {
	courierID := kernel.NewUUID()

	newCommand := func(t *testing.T) commands.RegisterCourierCommand {
		cmd, err := commands.NewRegisterCourierCommand(courierID, "Jane Roe", "+1-202-555-0101")
		require.NoError(t, err)
		return cmd
	}

	t.Run("should register courier under the announced id", func(t *testing.T) {
		factory := new(MockCourierUoWFactory)
		uow := new(MockCourierUoW)
		repo := new(MockCourierRepository)
		courierUoWExpectations(factory, uow, repo)
		uow.On("Commit", mock.Anything).Return(nil)

		repo.On("Get", mock.Anything, courierID).
			Return(nil, errs.NewObjectNotFoundError("courierId", courierID))
		repo.On("Add", mock.Anything, mock.MatchedBy(func(aggregate *courier.Courier) bool {
			return aggregate.ID().IsEqual(courierID) &&
				aggregate.Name() == "Jane Roe" &&
				aggregate.Status() == courier.StatusAvailable
		})).Return(nil)

		handler := commands.NewRegisterCourierCommandHandler(factory)
		err := handler.Handle(t.Context(), newCommand(t))

		require.NoError(t, err)
		repo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("should skip registration when courier is already on the roster", func(t *testing.T) {
		existing, err := courier.NewCourier(courierID, "Jane Roe", "+1-202-555-0101")
		require.NoError(t, err)

		factory := new(MockCourierUoWFactory)
		uow := new(MockCourierUoW)
		repo := new(MockCourierRepository)
		courierUoWExpectations(factory, uow, repo)
		uow.On("Commit", mock.Anything).Return(nil)

		repo.On("Get", mock.Anything, courierID).Return(existing, nil)

		handler := commands.NewRegisterCourierCommandHandler(factory)
		err = handler.Handle(t.Context(), newCommand(t))

		require.NoError(t, err)
		repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})

	t.Run("should propagate lookup failure", func(t *testing.T) {
		factory := new(MockCourierUoWFactory)
		uow := new(MockCourierUoW)
		repo := new(MockCourierRepository)
		courierUoWExpectations(factory, uow, repo)

		lookupErr := assert.AnError
		repo.On("Get", mock.Anything, courierID).Return(nil, lookupErr)

		handler := commands.NewRegisterCourierCommandHandler(factory)
		err := handler.Handle(t.Context(), newCommand(t))

		require.ErrorIs(t, err, lookupErr)
		repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})

	t.Run("should require courier id", func(t *testing.T) {
		_, err := commands.NewRegisterCourierCommand(kernel.UUID{}, "Jane Roe", "+1-202-555-0101")
		require.Error(t, err)
	})

	t.Run("should require name", func(t *testing.T) {
		_, err := commands.NewRegisterCourierCommand(kernel.NewUUID(), "", "+1-202-555-0101")
		require.ErrorIs(t, err, courier.ErrNameIsRequired)
	})

	t.Run("should reject not constructed command", func(t *testing.T) {
		factory := new(MockCourierUoWFactory)
		handler := commands.NewRegisterCourierCommandHandler(factory)

		err := handler.Handle(t.Context(), commands.RegisterCourierCommand{})

		require.ErrorIs(t, err, commands.ErrRegisterCourierCommandIsNotConstructed)
		factory.AssertNotCalled(t, "Create")
	})
}

func TestUpdateCourierCommandHandler_Handle(t *testing.T) {
	t.Run("should apply roster update", func(t *testing.T) {
		aggregate, err := courier.NewCourier(kernel.NewUUID(), "John Doe", "+1-202-555-0100")
		require.NoError(t, err)

		factory := new(MockCourierUoWFactory)
		uow := new(MockCourierUoW)
		repo := new(MockCourierRepository)
		courierUoWExpectations(factory, uow, repo)
		uow.On("Commit", mock.Anything).Return(nil)

		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil)
		repo.On("Update", mock.Anything, aggregate).Return(nil)

		cmd, err := commands.NewUpdateCourierCommand(
			aggregate.ID(), "Jane Doe", "+1-202-555-0199", courier.StatusDelivering)
		require.NoError(t, err)

		handler := commands.NewUpdateCourierCommandHandler(factory)
		require.NoError(t, handler.Handle(t.Context(), cmd))

		assert.Equal(t, "Jane Doe", aggregate.Name())
		assert.Equal(t, "+1-202-555-0199", aggregate.MobileNo())
		assert.Equal(t, courier.StatusDelivering, aggregate.Status())
	})

	t.Run("should propagate missing courier", func(t *testing.T) {
		factory := new(MockCourierUoWFactory)
		uow := new(MockCourierUoW)
		repo := new(MockCourierRepository)
		courierUoWExpectations(factory, uow, repo)

		id := kernel.NewUUID()
		repo.On("Get", mock.Anything, id).Return(nil, errs.NewObjectNotFoundError("courierId", id))

		cmd, err := commands.NewUpdateCourierCommand(id, "Jane Doe", "", courier.StatusAvailable)
		require.NoError(t, err)

		handler := commands.NewUpdateCourierCommandHandler(factory)
		err = handler.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestDeleteCourierCommandHandler_Handle(t *testing.T) {
	t.Run("should delete existing courier", func(t *testing.T) {
		aggregate, err := courier.NewCourier(kernel.NewUUID(), "John Doe", "")
		require.NoError(t, err)

		factory := new(MockCourierUoWFactory)
		uow := new(MockCourierUoW)
		repo := new(MockCourierRepository)
		courierUoWExpectations(factory, uow, repo)
		uow.On("Commit", mock.Anything).Return(nil)

		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil)
		repo.On("Delete", mock.Anything, aggregate.ID()).Return(nil)

		cmd, err := commands.NewDeleteCourierCommand(aggregate.ID())
		require.NoError(t, err)

		handler := commands.NewDeleteCourierCommandHandler(factory)
		require.NoError(t, handler.Handle(t.Context(), cmd))
		repo.AssertExpectations(t)
	})

	t.Run("should fail for unknown courier", func(t *testing.T) {
		factory := new(MockCourierUoWFactory)
		uow := new(MockCourierUoW)
		repo := new(MockCourierRepository)
		courierUoWExpectations(factory, uow, repo)

		id := kernel.NewUUID()
		repo.On("Get", mock.Anything, id).Return(nil, errs.NewObjectNotFoundError("courierId", id))

		cmd, err := commands.NewDeleteCourierCommand(id)
		require.NoError(t, err)

		handler := commands.NewDeleteCourierCommandHandler(factory)
		err = handler.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
