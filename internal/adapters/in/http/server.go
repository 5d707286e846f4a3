// Package http provides the inbound HTTP adapter. Handlers translate requests
// into commands and queries, and map domain errors to HTTP status codes:
// unknown statuses and rejected transitions are client errors (400), missing
// objects are 404, everything else is a server fault.
package http

import (
	"errors"
	"net/http"
	"time"

	"ordertrack/internal/core/application/usecases/commands"
	"ordertrack/internal/core/application/usecases/queries"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	createRetailerHandler    commands.CreateRetailerCommandHandler

	// Query handlers
	getOrderHistoryHandler queries.GetOrderHistoryQueryHandler
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler
	getAllRetailersHandler queries.GetAllRetailersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	createRetailerHandler commands.CreateRetailerCommandHandler,
	getOrderHistoryHandler queries.GetOrderHistoryQueryHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getAllRetailersHandler queries.GetAllRetailersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		createRetailerHandler:    createRetailerHandler,
		getOrderHistoryHandler:   getOrderHistoryHandler,
		getActiveOrdersHandler:   getActiveOrdersHandler,
		getAllRetailersHandler:   getAllRetailersHandler,
	}
}

// ErrorResponse is the uniform error body for all endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the body for POST /api/v1/orders.
// ID is optional; one is generated when omitted.
type CreateOrderRequest struct {
	ID         string `json:"id,omitempty"`
	RetailerID string `json:"retailer_id"`
	Units      int    `json:"units"`
}

// CreateOrderResponse returns the identifier of the created order.
type CreateOrderResponse struct {
	ID string `json:"id"`
}

// ChangeStatusRequest is the body for POST /api/v1/orders/:orderId/status.
type ChangeStatusRequest struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Details string `json:"details,omitempty"`
}

// TrackingEntryResponse represents one ledger entry on the wire.
type TrackingEntryResponse struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"order_id,omitempty"`
	Status    string    `json:"status"`
	Message   string    `json:"message,omitempty"`
	Details   string    `json:"details,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ActiveOrderResponse represents an in-flight order on the wire.
type ActiveOrderResponse struct {
	ID         string `json:"id"`
	RetailerID string `json:"retailer_id"`
	Units      int    `json:"units"`
	Status     string `json:"status"`
	TripID     string `json:"trip_id,omitempty"`
	TripStatus string `json:"trip_status,omitempty"`
}

// CreateRetailerRequest is the body for POST /api/v1/retailers.
type CreateRetailerRequest struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// RetailerResponse represents a registered retailer on the wire.
type RetailerResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CreateOrder handles POST /api/v1/orders - registers a newly uploaded order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID := kernel.NewUUID()
	if req.ID != "" {
		parsed, err := kernel.UUIDFromString(req.ID)
		if err != nil {
			return badRequest(ctx, "Invalid order ID: "+err.Error())
		}
		orderID = parsed
	}

	retailerID, err := kernel.UUIDFromString(req.RetailerID)
	if err != nil {
		return badRequest(ctx, "Invalid retailer ID: "+err.Error())
	}

	cmd, err := commands.NewCreateOrderCommand(orderID, retailerID, req.Units)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, errs.ErrObjectNotFound) {
			return notFound(ctx, "Retailer not found")
		}
		return internalError(ctx, "Failed to create order")
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: orderID.String()})
}

// ChangeOrderStatus handles POST /api/v1/orders/:orderId/status.
// Accepted transitions return the new ledger entry; rejected ones return 400
// with a message naming both the current and the proposed status.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	var req ChangeStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := order.ParseStatus(req.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, status, req.Message, req.Details)
	if err != nil {
		return badRequest(ctx, "Invalid status change: "+err.Error())
	}

	entry, err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		var illegal *order.IllegalTransitionError
		switch {
		case errors.As(err, &illegal):
			return badRequest(ctx, illegal.Error())
		case errors.Is(err, errs.ErrObjectNotFound):
			return notFound(ctx, "Order not found")
		default:
			return internalError(ctx, "Failed to change order status")
		}
	}

	return ctx.JSON(http.StatusOK, TrackingEntryResponse{
		ID:        entry.ID().String(),
		OrderID:   entry.OrderID().String(),
		Status:    entry.Status().String(),
		Message:   entry.Message(),
		Details:   entry.Details(),
		CreatedAt: entry.CreatedAt(),
	})
}

// GetOrderHistory handles GET /api/v1/orders/:orderId/history.
// Returns the order's ledger entries, most recent first.
func (s *Server) GetOrderHistory(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	query, err := queries.NewGetOrderHistoryQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	entries, err := s.getOrderHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return notFound(ctx, "Order not found")
		}
		return internalError(ctx, "Failed to retrieve order history")
	}

	response := make([]TrackingEntryResponse, len(entries))
	for i, entry := range entries {
		response[i] = TrackingEntryResponse{
			ID:        entry.ID.String(),
			Status:    entry.Status.String(),
			Message:   entry.Message,
			Details:   entry.Details,
			CreatedAt: entry.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetActiveOrders handles GET /api/v1/orders/active - retrieves all non-terminal orders.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	query := queries.NewGetActiveOrdersQuery()

	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve orders")
	}

	response := make([]ActiveOrderResponse, len(orders))
	for i, activeOrder := range orders {
		response[i] = ActiveOrderResponse{
			ID:         activeOrder.ID.String(),
			RetailerID: activeOrder.RetailerID.String(),
			Units:      activeOrder.Units,
			Status:     activeOrder.Status.String(),
			TripID:     activeOrder.TripID,
			TripStatus: string(activeOrder.TripStatus),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateRetailer handles POST /api/v1/retailers - registers a new retailer.
func (s *Server) CreateRetailer(ctx echo.Context) error {
	var req CreateRetailerRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	retailerID := kernel.NewUUID()
	if req.ID != "" {
		parsed, err := kernel.UUIDFromString(req.ID)
		if err != nil {
			return badRequest(ctx, "Invalid retailer ID: "+err.Error())
		}
		retailerID = parsed
	}

	cmd, err := commands.NewCreateRetailerCommand(retailerID, req.Name, req.Email)
	if err != nil {
		return badRequest(ctx, "Invalid retailer data: "+err.Error())
	}

	if handleErr := s.createRetailerHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, errs.ErrValueIsInvalid) || errors.Is(handleErr, errs.ErrValueIsRequired) {
			return badRequest(ctx, "Invalid retailer data: "+handleErr.Error())
		}
		return internalError(ctx, "Failed to create retailer")
	}

	return ctx.JSON(http.StatusCreated, RetailerResponse{
		ID:    retailerID.String(),
		Name:  req.Name,
		Email: req.Email,
	})
}

// GetRetailers handles GET /api/v1/retailers - retrieves all registered retailers.
func (s *Server) GetRetailers(ctx echo.Context) error {
	query := queries.NewGetAllRetailersQuery()

	retailers, err := s.getAllRetailersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve retailers")
	}

	response := make([]RetailerResponse, len(retailers))
	for i, r := range retailers {
		response[i] = RetailerResponse{
			ID:    r.ID.String(),
			Name:  r.Name,
			Email: r.Email,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// Health handles GET /health - liveness check.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func notFound(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusNotFound, ErrorResponse{
		Code:    http.StatusNotFound,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}
