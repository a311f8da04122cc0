package http

import (
	"errors"
	"net/http"
	"strconv"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/model/parcel"

	"github.com/labstack/echo/v4"
)

// Server exposes the tracking operations over HTTP.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerParcelHandler     commands.RegisterParcelCommandHandler
	updateParcelWeightHandler commands.UpdateParcelWeightCommandHandler
	loadParcelHandler         commands.LoadParcelCommandHandler
	dispatchParcelHandler     commands.DispatchParcelCommandHandler
	completeDeliveryHandler   commands.CompleteDeliveryCommandHandler
	undoHandler               commands.UndoCommandHandler

	// Query handlers
	getActiveParcelsHandler queries.GetActiveParcelsQueryHandler
	getSummaryReportHandler queries.GetSummaryReportQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	registerParcelHandler commands.RegisterParcelCommandHandler,
	updateParcelWeightHandler commands.UpdateParcelWeightCommandHandler,
	loadParcelHandler commands.LoadParcelCommandHandler,
	dispatchParcelHandler commands.DispatchParcelCommandHandler,
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler,
	undoHandler commands.UndoCommandHandler,
	getActiveParcelsHandler queries.GetActiveParcelsQueryHandler,
	getSummaryReportHandler queries.GetSummaryReportQueryHandler,
) *Server {
	return &Server{
		registerParcelHandler:     registerParcelHandler,
		updateParcelWeightHandler: updateParcelWeightHandler,
		loadParcelHandler:         loadParcelHandler,
		dispatchParcelHandler:     dispatchParcelHandler,
		completeDeliveryHandler:   completeDeliveryHandler,
		undoHandler:               undoHandler,
		getActiveParcelsHandler:   getActiveParcelsHandler,
		getSummaryReportHandler:   getSummaryReportHandler,
	}
}

// RegisterRoutes binds every tracking endpoint to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/parcels", s.RegisterParcel)
	api.GET("/parcels", s.GetParcels)
	api.PATCH("/parcels/:id/weight", s.UpdateParcelWeight)
	api.POST("/parcels/:id/load", s.LoadParcel)
	api.POST("/dispatch", s.DispatchParcel)
	api.POST("/parcels/:id/delivery", s.CompleteDelivery)
	api.POST("/undo", s.UndoLastOperation)
	api.GET("/reports/summary", s.GetSummaryReport)
}

// RegisterParcel handles POST /api/v1/parcels - registers a new parcel.
func (s *Server) RegisterParcel(ctx echo.Context) error {
	var newParcel NewParcel
	if err := ctx.Bind(&newParcel); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	parcelID, err := parcel.NewID(newParcel.ID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid parcel data: " + err.Error(),
		})
	}

	priority, err := parcel.NewPriority(newParcel.Priority)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid parcel data: " + err.Error(),
		})
	}

	cmd, err := commands.NewRegisterParcelCommand(
		parcelID,
		newParcel.Sender,
		newParcel.Recipient,
		newParcel.Address,
		newParcel.Weight,
		priority,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid parcel data: " + err.Error(),
		})
	}

	if handleErr := s.registerParcelHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, commands.ErrParcelAlreadyRegistered) {
			return ctx.JSON(http.StatusConflict, Error{
				Code:    http.StatusConflict,
				Message: "Parcel id is already registered",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to register parcel",
		})
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetParcels handles GET /api/v1/parcels - retrieves active parcels in registration order.
func (s *Server) GetParcels(ctx echo.Context) error {
	query := queries.NewGetActiveParcelsQuery()

	parcels, err := s.getActiveParcelsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve parcels",
		})
	}

	response := make([]Parcel, len(parcels))
	for i, activeParcel := range parcels {
		response[i] = Parcel{
			ID:        activeParcel.ID.Int(),
			Sender:    activeParcel.Sender,
			Recipient: activeParcel.Recipient,
			Address:   activeParcel.Address,
			Weight:    activeParcel.Weight,
			Priority:  activeParcel.Priority.Level(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateParcelWeight handles PATCH /api/v1/parcels/:id/weight - changes a parcel's weight.
func (s *Server) UpdateParcelWeight(ctx echo.Context) error {
	parcelID, err := parcelIDFromPath(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid parcel id",
		})
	}

	var change WeightChange
	if err = ctx.Bind(&change); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewUpdateParcelWeightCommand(parcelID, change.Weight)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid weight data: " + err.Error(),
		})
	}

	if handleErr := s.updateParcelWeightHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, commands.ErrParcelNotFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Parcel not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to update parcel weight",
		})
	}

	return ctx.NoContent(http.StatusOK)
}

// LoadParcel handles POST /api/v1/parcels/:id/load - stages a parcel for dispatch.
func (s *Server) LoadParcel(ctx echo.Context) error {
	parcelID, err := parcelIDFromPath(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid parcel id",
		})
	}

	cmd, err := commands.NewLoadParcelCommand(parcelID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid parcel id: " + err.Error(),
		})
	}

	if handleErr := s.loadParcelHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, commands.ErrParcelNotFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Parcel not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to load parcel",
		})
	}

	return ctx.NoContent(http.StatusOK)
}

// DispatchParcel handles POST /api/v1/dispatch - dispatches the most urgent staged parcel.
func (s *Server) DispatchParcel(ctx echo.Context) error {
	cmd := commands.NewDispatchParcelCommand()

	dispatched, err := s.dispatchParcelHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, commands.ErrDispatchQueueIsEmpty) {
			return ctx.JSON(http.StatusConflict, Error{
				Code:    http.StatusConflict,
				Message: "Dispatch queue is empty",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to dispatch parcel",
		})
	}

	return ctx.JSON(http.StatusOK, parcelFromDomain(dispatched))
}

// CompleteDelivery handles POST /api/v1/parcels/:id/delivery - records a completed delivery.
func (s *Server) CompleteDelivery(ctx echo.Context) error {
	parcelID, err := parcelIDFromPath(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid parcel id",
		})
	}

	cmd, err := commands.NewCompleteDeliveryCommand(parcelID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid parcel id: " + err.Error(),
		})
	}

	receipt, err := s.completeDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, commands.ErrParcelNotFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Parcel not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to complete delivery",
		})
	}

	return ctx.JSON(http.StatusOK, receiptFromDomain(receipt))
}

// UndoLastOperation handles POST /api/v1/undo - reverses the most recent tracked mutation.
func (s *Server) UndoLastOperation(ctx echo.Context) error {
	cmd := commands.NewUndoCommand()

	entry, err := s.undoHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, commands.ErrNothingToUndo) {
			return ctx.JSON(http.StatusConflict, Error{
				Code:    http.StatusConflict,
				Message: "Nothing to undo",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to undo",
		})
	}

	return ctx.JSON(http.StatusOK, undoneFromDomain(entry))
}

// GetSummaryReport handles GET /api/v1/reports/summary - builds the summary report.
func (s *Server) GetSummaryReport(ctx echo.Context) error {
	query := queries.NewGetSummaryReportQuery()

	report, err := s.getSummaryReportHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to build report",
		})
	}

	return ctx.JSON(http.StatusOK, reportFromReadModel(report))
}

// parcelIDFromPath extracts and validates the :id path parameter.
func parcelIDFromPath(ctx echo.Context) (parcel.ID, error) {
	raw, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return 0, err
	}
	return parcel.NewID(raw)
}
