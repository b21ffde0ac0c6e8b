// Package http is the REST adapter. It binds requests into commands and
// queries, maps domain errors onto status codes, and keeps all JSON shapes in
// one place. The acting staff member is identified by the X-Staff-Id header;
// authentication itself lives in front of this service.
package http

import (
	"errors"
	"net/http"

	"tableside/internal/core/application/usecases/commands"
	"tableside/internal/core/application/usecases/queries"
	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/order"
	"tableside/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// StaffIDHeader carries the acting staff member's identifier.
const StaffIDHeader = "X-Staff-Id"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler   commands.PlaceOrderCommandHandler
	advanceOrderHandler commands.AdvanceOrderCommandHandler

	// Query handlers
	getOpenOrdersHandler queries.GetOpenOrdersQueryHandler
	getTablesHandler     queries.GetTablesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	advanceOrderHandler commands.AdvanceOrderCommandHandler,
	getOpenOrdersHandler queries.GetOpenOrdersQueryHandler,
	getTablesHandler queries.GetTablesQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:    placeOrderHandler,
		advanceOrderHandler:  advanceOrderHandler,
		getOpenOrdersHandler: getOpenOrdersHandler,
		getTablesHandler:     getTablesHandler,
	}
}

// ErrorResponse is the JSON error body for every failure.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// PlaceOrderRequest is the body of POST /api/v1/orders.
type PlaceOrderRequest struct {
	TableNumber  int              `json:"tableNumber"`
	CashReceived float64          `json:"cashReceived"`
	Items        []PlaceOrderItem `json:"items"`
}

// PlaceOrderItem is one requested order line.
type PlaceOrderItem struct {
	MenuItemID string `json:"menuItemId"`
	Quantity   int    `json:"quantity"`
	Notes      string `json:"notes"`
}

// AdvanceOrderRequest is the body of POST /api/v1/orders/:id/status.
type AdvanceOrderRequest struct {
	Status string `json:"status"`
}

// PlaceOrder handles POST /api/v1/orders. The acting waiter comes from the
// X-Staff-Id header; the order enters the lifecycle in "paid" status.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	waiterID, err := staffID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid or missing "+StaffIDHeader+" header")
	}

	var req PlaceOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	items := make([]commands.ItemSpec, 0, len(req.Items))
	for _, item := range req.Items {
		menuItemID, idErr := kernel.UUIDFromString(item.MenuItemID)
		if idErr != nil {
			return badRequest(ctx, "Invalid menu item id: "+item.MenuItemID)
		}
		items = append(items, commands.ItemSpec{
			MenuItemID: menuItemID,
			Quantity:   item.Quantity,
			Notes:      item.Notes,
		})
	}

	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), req.TableNumber, waiterID, req.CashReceived, items)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	placed, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderResponse(placed))
}

// AdvanceOrder handles POST /api/v1/orders/:id/status. The target must be
// the immediate successor of the order's current status.
func (s *Server) AdvanceOrder(ctx echo.Context) error {
	actorID, err := staffID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid or missing "+StaffIDHeader+" header")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req AdvanceOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+req.Status)
	}

	cmd, err := commands.NewAdvanceOrderCommand(orderID, actorID, target)
	if err != nil {
		return badRequest(ctx, "Invalid advance data: "+err.Error())
	}

	advanced, err := s.advanceOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponse(advanced))
}

// GetOpenOrders handles GET /api/v1/orders/open.
func (s *Server) GetOpenOrders(ctx echo.Context) error {
	query := queries.NewGetOpenOrdersQuery()

	orders, err := s.getOpenOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve open orders",
		})
	}

	response := make([]OpenOrderResponse, len(orders))
	for i, o := range orders {
		items := make([]OrderItemResponse, len(o.Items))
		for j, item := range o.Items {
			items[j] = OrderItemResponse{
				MenuItemID: item.MenuItemID.String(),
				Quantity:   item.Quantity,
				Notes:      item.Notes,
			}
		}

		response[i] = OpenOrderResponse{
			ID:           o.ID.String(),
			TableNumber:  o.TableNumber,
			Status:       o.Status,
			WaiterID:     o.WaiterID.String(),
			CashReceived: o.CashReceived,
			CreatedAt:    o.CreatedAt,
			Items:        items,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetTables handles GET /api/v1/tables.
func (s *Server) GetTables(ctx echo.Context) error {
	query := queries.NewGetTablesQuery()

	tables, err := s.getTablesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve tables",
		})
	}

	response := make([]TableResponse, len(tables))
	for i, t := range tables {
		response[i] = TableResponse{
			Number: t.Number,
			Name:   t.Name,
			Status: t.Status,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func staffID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Request().Header.Get(StaffIDHeader))
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// domainError maps command failures onto status codes: rejected transitions
// conflict with current state, unknown ids are not found, validation failures
// are the caller's fault, everything else is ours.
func domainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrInvalidTransition):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, order.ErrNoItems):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal error",
		})
	}
}
