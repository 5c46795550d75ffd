package cmd

import (
	"log/slog"

	"courier/internal/adapters/out/postgres"
	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/application/usecases/queries"
	"courier/internal/core/ports"

	"gorm.io/gorm"
)

// CompositionRoot wires the adapters into the application's handlers.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  publisher,
		logger:     logger,
	}
}

func (c *CompositionRoot) taskUoWFactory() commands.TaskUoWFactory {
	return FuncTaskUoWFactory(func() commands.TaskUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) courierUoWFactory() commands.CourierUoWFactory {
	return FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateDeliveryTaskCommandHandler() commands.CreateDeliveryTaskCommandHandler {
	return commands.NewCreateDeliveryTaskCommandHandler(c.taskUoWFactory())
}

func (c *CompositionRoot) CreateMarkOutForDeliveryCommandHandler() commands.MarkOutForDeliveryCommandHandler {
	return commands.NewMarkOutForDeliveryCommandHandler(
		c.taskUoWFactory(), c.publisher, c.config.OtpLength, c.logger)
}

func (c *CompositionRoot) CreateConfirmDeliveryCommandHandler() commands.ConfirmDeliveryCommandHandler {
	return commands.NewConfirmDeliveryCommandHandler(c.taskUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateCancelDeliveryTaskCommandHandler() commands.CancelDeliveryTaskCommandHandler {
	return commands.NewCancelDeliveryTaskCommandHandler(c.taskUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateSubmitCourierRatingCommandHandler() commands.SubmitCourierRatingCommandHandler {
	return commands.NewSubmitCourierRatingCommandHandler(c.taskUoWFactory())
}

func (c *CompositionRoot) CreateUpdateCourierLocationCommandHandler() commands.UpdateCourierLocationCommandHandler {
	return commands.NewUpdateCourierLocationCommandHandler(c.taskUoWFactory())
}

func (c *CompositionRoot) CreateDeleteDeliveryTaskCommandHandler() commands.DeleteDeliveryTaskCommandHandler {
	return commands.NewDeleteDeliveryTaskCommandHandler(c.taskUoWFactory())
}

func (c *CompositionRoot) CreateMoveCouriersCommandHandler() (commands.MoveCouriersCommandHandler, error) {
	return commands.NewMoveCouriersCommandHandler(c.taskUoWFactory(), c.config.MovementStepFraction)
}

func (c *CompositionRoot) CreateCreateCourierCommandHandler() commands.CreateCourierCommandHandler {
	return commands.NewCreateCourierCommandHandler(c.courierUoWFactory())
}

func (c *CompositionRoot) CreateRegisterCourierCommandHandler() commands.RegisterCourierCommandHandler {
	return commands.NewRegisterCourierCommandHandler(c.courierUoWFactory())
}

func (c *CompositionRoot) CreateUpdateCourierCommandHandler() commands.UpdateCourierCommandHandler {
	return commands.NewUpdateCourierCommandHandler(c.courierUoWFactory())
}

func (c *CompositionRoot) CreateDeleteCourierCommandHandler() commands.DeleteCourierCommandHandler {
	return commands.NewDeleteCourierCommandHandler(c.courierUoWFactory())
}

func (c *CompositionRoot) CreateGetDeliveryTaskQueryHandler() queries.GetDeliveryTaskQueryHandler {
	return queries.NewGetDeliveryTaskQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveryTasksQueryHandler() queries.GetDeliveryTasksQueryHandler {
	return queries.NewGetDeliveryTasksQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveryTaskByOrderQueryHandler() queries.GetDeliveryTaskByOrderQueryHandler {
	return queries.NewGetDeliveryTaskByOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTaskLocationQueryHandler() queries.GetTaskLocationQueryHandler {
	return queries.NewGetTaskLocationQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllCouriersQueryHandler() queries.GetAllCouriersQueryHandler {
	return queries.NewGetAllCouriersQueryHandler(c.gormDB)
}

type FuncTaskUoWFactory func() commands.TaskUoW

func (f FuncTaskUoWFactory) Create() commands.TaskUoW {
	return f()
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}
