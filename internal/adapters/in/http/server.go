// Package http exposes the delivery-task lifecycle and the courier roster
// over REST. It coordinates between HTTP handlers and application use cases.
package http

import (
	"errors"
	"net/http"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/application/usecases/queries"
	"courier/internal/core/domain/model/courier"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/task"
	"courier/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Handlers collects the command and query handlers the server dispatches to.
type Handlers struct {
	CreateTask      commands.CreateDeliveryTaskCommandHandler
	MarkOut         commands.MarkOutForDeliveryCommandHandler
	Confirm         commands.ConfirmDeliveryCommandHandler
	Cancel          commands.CancelDeliveryTaskCommandHandler
	SubmitRating    commands.SubmitCourierRatingCommandHandler
	UpdateLocation  commands.UpdateCourierLocationCommandHandler
	DeleteTask      commands.DeleteDeliveryTaskCommandHandler
	CreateCourier   commands.CreateCourierCommandHandler
	UpdateCourier   commands.UpdateCourierCommandHandler
	DeleteCourier   commands.DeleteCourierCommandHandler
	GetTask         queries.GetDeliveryTaskQueryHandler
	GetTasks        queries.GetDeliveryTasksQueryHandler
	GetTaskByOrder  queries.GetDeliveryTaskByOrderQueryHandler
	GetTaskLocation queries.GetTaskLocationQueryHandler
	GetAllCouriers  queries.GetAllCouriersQueryHandler
}

// Server handles HTTP requests against the delivery core.
type Server struct {
	handlers Handlers
}

// NewServer creates an HTTP server over the given handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes mounts the REST surface under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/delivery-tasks", s.CreateDeliveryTask)
	api.GET("/delivery-tasks", s.GetDeliveryTasks)
	api.GET("/delivery-tasks/:id", s.GetDeliveryTask)
	api.POST("/delivery-tasks/:id/out-for-delivery", s.MarkOutForDelivery)
	api.POST("/delivery-tasks/:id/confirm", s.ConfirmDelivery)
	api.POST("/delivery-tasks/:id/cancel", s.CancelDeliveryTask)
	api.POST("/delivery-tasks/:id/rating", s.SubmitRating)
	api.POST("/delivery-tasks/:id/location", s.UpdateCourierLocation)
	api.DELETE("/delivery-tasks/:id", s.DeleteDeliveryTask)

	api.GET("/orders/:orderId/delivery-task", s.GetDeliveryTaskByOrder)
	api.GET("/orders/:orderId/location", s.GetTaskLocation)

	api.GET("/couriers", s.GetCouriers)
	api.POST("/couriers", s.CreateCourier)
	api.PUT("/couriers/:id", s.UpdateCourier)
	api.DELETE("/couriers/:id", s.DeleteCourier)
}

// CreateDeliveryTask handles POST /api/v1/delivery-tasks.
func (s *Server) CreateDeliveryTask(ctx echo.Context) error {
	var req CreateDeliveryTaskRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	confirmationType, err := task.ConfirmationTypeFromString(req.ConfirmationType)
	if err != nil {
		return badRequest(ctx, "Invalid confirmation type: "+req.ConfirmationType)
	}

	orderLocation, err := kernel.NewGeoPoint(req.OrderLatitude, req.OrderLongitude)
	if err != nil {
		return badRequest(ctx, "Invalid order location")
	}

	cmd, err := commands.NewCreateDeliveryTaskCommand(
		kernel.NewUUID(), req.OrderID, req.CourierID, req.TotalAmount, orderLocation, confirmationType,
		req.Signature)
	if err != nil {
		return badRequest(ctx, "Invalid task data: "+err.Error())
	}

	// The handler dedupes on the order id, so the returned id may belong to a
	// previously created task rather than the one this request minted.
	taskID, err := s.handlers.CreateTask.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateDeliveryTaskResponse{ID: taskID.String()})
}

// GetDeliveryTasks handles GET /api/v1/delivery-tasks with optional
// courier_id and status filters.
func (s *Server) GetDeliveryTasks(ctx echo.Context) error {
	query := queries.NewGetDeliveryTasksQuery()

	if courierID := ctx.QueryParam("courier_id"); courierID != "" {
		var err error
		if query, err = queries.NewGetDeliveryTasksByCourierQuery(courierID); err != nil {
			return badRequest(ctx, "Invalid courier filter")
		}
	}
	if rawStatus := ctx.QueryParam("status"); rawStatus != "" {
		status, err := task.StatusFromString(rawStatus)
		if err != nil {
			return badRequest(ctx, "Invalid status filter: "+rawStatus)
		}
		if query, err = query.WithStatus(status); err != nil {
			return badRequest(ctx, "Invalid status filter: "+rawStatus)
		}
	}

	tasks, err := s.handlers.GetTasks.Handle(ctx.Request().Context(), query)
	if err != nil {
		return problem(ctx, err)
	}

	response := make([]DeliveryTaskResponse, len(tasks))
	for i, item := range tasks {
		response[i] = toTaskResponse(item)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDeliveryTask handles GET /api/v1/delivery-tasks/:id.
func (s *Server) GetDeliveryTask(ctx echo.Context) error {
	taskID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid task id")
	}

	query, err := queries.NewGetDeliveryTaskQuery(taskID)
	if err != nil {
		return badRequest(ctx, "Invalid task id")
	}

	item, err := s.handlers.GetTask.Handle(ctx.Request().Context(), query)
	if err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toTaskResponse(item))
}

// MarkOutForDelivery handles POST /api/v1/delivery-tasks/:id/out-for-delivery.
func (s *Server) MarkOutForDelivery(ctx echo.Context) error {
	taskID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid task id")
	}

	cmd, err := commands.NewMarkOutForDeliveryCommand(taskID)
	if err != nil {
		return badRequest(ctx, "Invalid task id")
	}

	if err = s.handlers.MarkOut.Handle(ctx.Request().Context(), cmd); err != nil {
		return problem(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmDelivery handles POST /api/v1/delivery-tasks/:id/confirm.
// A rejected proof is a 200 with confirmed=false, not an error.
func (s *Server) ConfirmDelivery(ctx echo.Context) error {
	taskID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid task id")
	}

	var req ConfirmDeliveryRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewConfirmDeliveryCommand(taskID, req.Proof)
	if err != nil {
		return badRequest(ctx, "Invalid confirmation data: "+err.Error())
	}

	result, err := s.handlers.Confirm.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ConfirmDeliveryResponse{
		Confirmed: result.Confirmed,
		Message:   result.Message,
	})
}

// CancelDeliveryTask handles POST /api/v1/delivery-tasks/:id/cancel.
func (s *Server) CancelDeliveryTask(ctx echo.Context) error {
	taskID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid task id")
	}

	var req CancelDeliveryTaskRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCancelDeliveryTaskCommand(taskID, req.Reason)
	if err != nil {
		return badRequest(ctx, "Invalid cancellation data: "+err.Error())
	}

	if err = s.handlers.Cancel.Handle(ctx.Request().Context(), cmd); err != nil {
		return problem(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SubmitRating handles POST /api/v1/delivery-tasks/:id/rating.
func (s *Server) SubmitRating(ctx echo.Context) error {
	taskID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid task id")
	}

	var req SubmitRatingRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSubmitCourierRatingCommand(taskID, req.Rating)
	if err != nil {
		return badRequest(ctx, "Invalid rating: "+err.Error())
	}

	if err = s.handlers.SubmitRating.Handle(ctx.Request().Context(), cmd); err != nil {
		return problem(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateCourierLocation handles POST /api/v1/delivery-tasks/:id/location.
func (s *Server) UpdateCourierLocation(ctx echo.Context) error {
	taskID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid task id")
	}

	var req UpdateLocationRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	position, err := kernel.NewGeoPoint(req.Latitude, req.Longitude)
	if err != nil {
		return badRequest(ctx, "Invalid coordinates")
	}

	cmd, err := commands.NewUpdateCourierLocationCommand(taskID, position)
	if err != nil {
		return badRequest(ctx, "Invalid location data: "+err.Error())
	}

	if err = s.handlers.UpdateLocation.Handle(ctx.Request().Context(), cmd); err != nil {
		return problem(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteDeliveryTask handles DELETE /api/v1/delivery-tasks/:id.
func (s *Server) DeleteDeliveryTask(ctx echo.Context) error {
	taskID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid task id")
	}

	cmd, err := commands.NewDeleteDeliveryTaskCommand(taskID)
	if err != nil {
		return badRequest(ctx, "Invalid task id")
	}

	if err = s.handlers.DeleteTask.Handle(ctx.Request().Context(), cmd); err != nil {
		return problem(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetDeliveryTaskByOrder handles GET /api/v1/orders/:orderId/delivery-task.
func (s *Server) GetDeliveryTaskByOrder(ctx echo.Context) error {
	query, err := queries.NewGetDeliveryTaskByOrderQuery(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	item, err := s.handlers.GetTaskByOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toTaskResponse(item))
}

// GetTaskLocation handles GET /api/v1/orders/:orderId/location.
func (s *Server) GetTaskLocation(ctx echo.Context) error {
	query, err := queries.NewGetTaskLocationQuery(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	location, err := s.handlers.GetTaskLocation.Handle(ctx.Request().Context(), query)
	if err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusOK, TaskLocationResponse{
		TaskID:    location.TaskID.String(),
		OrderID:   location.OrderID,
		CourierID: location.CourierID,
		Status:    location.Status,
		Latitude:  location.CourierLocation.Latitude(),
		Longitude: location.CourierLocation.Longitude(),
	})
}

// GetCouriers handles GET /api/v1/couriers.
func (s *Server) GetCouriers(ctx echo.Context) error {
	couriers, err := s.handlers.GetAllCouriers.Handle(ctx.Request().Context(), queries.NewGetAllCouriersQuery())
	if err != nil {
		return problem(ctx, err)
	}

	response := make([]CourierResponse, len(couriers))
	for i, item := range couriers {
		response[i] = CourierResponse{
			ID:       item.ID.String(),
			Name:     item.Name,
			MobileNo: item.MobileNo,
			Status:   item.Status,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateCourier handles POST /api/v1/couriers.
func (s *Server) CreateCourier(ctx echo.Context) error {
	var req CourierRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateCourierCommand(req.Name, req.MobileNo)
	if err != nil {
		return badRequest(ctx, "Invalid courier data: "+err.Error())
	}

	id, err := s.handlers.CreateCourier.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CourierResponse{
		ID:       id.String(),
		Name:     req.Name,
		MobileNo: req.MobileNo,
		Status:   courier.StatusAvailable.String(),
	})
}

// UpdateCourier handles PUT /api/v1/couriers/:id.
func (s *Server) UpdateCourier(ctx echo.Context) error {
	courierID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid courier id")
	}

	var req CourierRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status := courier.StatusAvailable
	if req.Status != "" {
		if status, err = courier.StatusFromString(req.Status); err != nil {
			return badRequest(ctx, "Invalid courier status: "+req.Status)
		}
	}

	cmd, err := commands.NewUpdateCourierCommand(courierID, req.Name, req.MobileNo, status)
	if err != nil {
		return badRequest(ctx, "Invalid courier data: "+err.Error())
	}

	if err = s.handlers.UpdateCourier.Handle(ctx.Request().Context(), cmd); err != nil {
		return problem(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteCourier handles DELETE /api/v1/couriers/:id.
func (s *Server) DeleteCourier(ctx echo.Context) error {
	courierID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid courier id")
	}

	cmd, err := commands.NewDeleteCourierCommand(courierID)
	if err != nil {
		return badRequest(ctx, "Invalid courier id")
	}

	if err = s.handlers.DeleteCourier.Handle(ctx.Request().Context(), cmd); err != nil {
		return problem(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func toTaskResponse(item queries.DeliveryTaskResponse) DeliveryTaskResponse {
	return DeliveryTaskResponse{
		ID:                 item.ID.String(),
		OrderID:            item.OrderID,
		CourierID:          item.CourierID,
		TotalAmount:        item.TotalAmount,
		Status:             item.Status,
		OrderLatitude:      item.OrderLatitude,
		OrderLongitude:     item.OrderLongitude,
		CourierLatitude:    item.CourierLatitude,
		CourierLongitude:   item.CourierLongitude,
		ConfirmationType:   item.ConfirmationType,
		CancellationReason: item.CancellationReason,
		CourierRating:      item.CourierRating,
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ProblemResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// problem maps core errors to HTTP statuses. Unknown errors stay opaque 500s.
func problem(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, task.ErrTaskNotDelivered),
		errors.Is(err, task.ErrRatingAlreadySubmitted):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, ProblemResponse{
		Code:    status,
		Message: err.Error(),
	})
}
