package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"
)

// Server implements the HTTP handlers for the tracking API.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createShipmentHandler commands.CreateShipmentCommandHandler
	updateShipmentHandler commands.UpdateShipmentCommandHandler
	deleteShipmentHandler commands.DeleteShipmentCommandHandler
	createCustomerHandler commands.CreateCustomerCommandHandler

	// Query handlers
	getShipmentHandler   queries.GetShipmentQueryHandler
	listShipmentsHandler queries.ListShipmentsQueryHandler
	trackShipmentHandler queries.TrackShipmentQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createShipmentHandler commands.CreateShipmentCommandHandler,
	updateShipmentHandler commands.UpdateShipmentCommandHandler,
	deleteShipmentHandler commands.DeleteShipmentCommandHandler,
	createCustomerHandler commands.CreateCustomerCommandHandler,
	getShipmentHandler queries.GetShipmentQueryHandler,
	listShipmentsHandler queries.ListShipmentsQueryHandler,
	trackShipmentHandler queries.TrackShipmentQueryHandler,
) *Server {
	return &Server{
		createShipmentHandler: createShipmentHandler,
		updateShipmentHandler: updateShipmentHandler,
		deleteShipmentHandler: deleteShipmentHandler,
		createCustomerHandler: createCustomerHandler,
		getShipmentHandler:    getShipmentHandler,
		listShipmentsHandler:  listShipmentsHandler,
		trackShipmentHandler:  trackShipmentHandler,
	}
}

// RegisterRoutes wires the API routes onto e. The auth middleware guards the
// tenant-scoped routes; the public tracking route stays outside it.
func (s *Server) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	api := e.Group("/api/v1")
	api.GET("/track/:trackingNumber", s.TrackShipment)

	protected := api.Group("", auth)
	protected.POST("/shipments", s.CreateShipment)
	protected.GET("/shipments", s.ListShipments)
	protected.GET("/shipments/:id", s.GetShipment)
	protected.PATCH("/shipments/:id", s.UpdateShipment)
	protected.DELETE("/shipments/:id", s.DeleteShipment)
	protected.POST("/customers", s.CreateCustomer)
}

// CreateShipment handles POST /api/v1/shipments - registers a new shipment.
func (s *Server) CreateShipment(ctx echo.Context) error {
	tenantID, ok := tenantFromContext(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	var req CreateShipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id: "+req.CustomerID)
	}

	details, err := detailsFromRequest(req)
	if err != nil {
		return badRequest(ctx, "Invalid shipment data: "+err.Error())
	}

	cmd, err := commands.NewCreateShipmentCommand(
		kernel.NewUUID(), tenantID, customerID,
		req.Origin, req.Destination, details,
	)
	if err != nil {
		return badRequest(ctx, "Invalid shipment data: "+err.Error())
	}

	created, err := s.createShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return s.respondWithShipment(ctx, http.StatusCreated, tenantID, created.ID())
}

// GetShipment handles GET /api/v1/shipments/:id - internal shipment view.
func (s *Server) GetShipment(ctx echo.Context) error {
	tenantID, ok := tenantFromContext(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid shipment id: "+ctx.Param("id"))
	}

	return s.respondWithShipment(ctx, http.StatusOK, tenantID, shipmentID)
}

// ListShipments handles GET /api/v1/shipments - tenant dashboard list,
// newest first.
func (s *Server) ListShipments(ctx echo.Context) error {
	tenantID, ok := tenantFromContext(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	query, err := queries.NewListShipmentsQuery(tenantID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	shipments, err := s.listShipmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]ShipmentListItemResponse, len(shipments))
	for i, item := range shipments {
		response[i] = listItemFromQuery(item)
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateShipment handles PATCH /api/v1/shipments/:id - applies a partial
// update and returns the refreshed internal view.
func (s *Server) UpdateShipment(ctx echo.Context) error {
	tenantID, ok := tenantFromContext(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid shipment id: "+ctx.Param("id"))
	}

	var req UpdateShipmentRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	upd, err := updateFromRequest(req)
	if err != nil {
		return badRequest(ctx, "Invalid update data: "+err.Error())
	}

	cmd, err := commands.NewUpdateShipmentCommand(tenantID, shipmentID, upd)
	if err != nil {
		return badRequest(ctx, "Invalid update data: "+err.Error())
	}

	if _, err = s.updateShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return s.respondWithShipment(ctx, http.StatusOK, tenantID, shipmentID)
}

// DeleteShipment handles DELETE /api/v1/shipments/:id - hard delete.
func (s *Server) DeleteShipment(ctx echo.Context) error {
	tenantID, ok := tenantFromContext(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid shipment id: "+ctx.Param("id"))
	}

	cmd, err := commands.NewDeleteShipmentCommand(tenantID, shipmentID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.deleteShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateCustomer handles POST /api/v1/customers - registers a new customer.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	tenantID, ok := tenantFromContext(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	var req CreateCustomerRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateCustomerCommand(
		kernel.NewUUID(), tenantID,
		req.Name, req.Email, req.Phone, req.Address,
	)
	if err != nil {
		return badRequest(ctx, "Invalid customer data: "+err.Error())
	}

	created, err := s.createCustomerHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, customerResponseFromAggregate(created))
}

// TrackShipment handles GET /api/v1/track/:trackingNumber - the public view.
// The optional tenantId query parameter scopes embed-widget lookups.
func (s *Server) TrackShipment(ctx echo.Context) error {
	query, err := queries.NewTrackShipmentQuery(
		ctx.Param("trackingNumber"), ctx.QueryParam("tenantId"),
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	response, err := s.trackShipmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// respondWithShipment loads the full internal view and writes it with the
// given status code. Commands return the bare aggregate; the view adds the
// customer contact block and display metadata.
func (s *Server) respondWithShipment(
	ctx echo.Context, code int, tenantID, shipmentID kernel.UUID,
) error {
	query, err := queries.NewGetShipmentQuery(tenantID, shipmentID)
	if err != nil {
		return domainError(ctx, err)
	}

	view, err := s.getShipmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(code, shipmentResponseFromQuery(*view))
}

func unauthenticated(ctx echo.Context) error {
	return ctx.JSON(http.StatusUnauthorized, Error{
		Code:    http.StatusUnauthorized,
		Message: "Authentication required",
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// domainError maps application errors onto HTTP status codes.
func domainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrVersionIsInvalid):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
