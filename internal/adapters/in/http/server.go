package http

import (
	"net/http"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// Server handles the POS and web-widget REST surface. It translates
// request bodies into commands and queries and maps domain errors onto
// HTTP statuses.
type Server struct {
	// Command handlers
	submitDineInHandler   commands.SubmitDineInCommandHandler
	submitTakeawayHandler commands.SubmitTakeawayCommandHandler
	submitDeliveryHandler commands.SubmitDeliveryCommandHandler
	updateOrderHandler    commands.UpdateOrderCommandHandler
	cancelOrderHandler    commands.CancelOrderCommandHandler
	clearTableHandler     commands.ClearTableCommandHandler

	// Query handlers
	listOpenTicketsHandler queries.ListOpenTicketsQueryHandler
	listTablesHandler      queries.ListTablesQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	submitDineInHandler commands.SubmitDineInCommandHandler,
	submitTakeawayHandler commands.SubmitTakeawayCommandHandler,
	submitDeliveryHandler commands.SubmitDeliveryCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	clearTableHandler commands.ClearTableCommandHandler,
	listOpenTicketsHandler queries.ListOpenTicketsQueryHandler,
	listTablesHandler queries.ListTablesQueryHandler,
) *Server {
	return &Server{
		submitDineInHandler:    submitDineInHandler,
		submitTakeawayHandler:  submitTakeawayHandler,
		submitDeliveryHandler:  submitDeliveryHandler,
		updateOrderHandler:     updateOrderHandler,
		cancelOrderHandler:     cancelOrderHandler,
		clearTableHandler:      clearTableHandler,
		listOpenTicketsHandler: listOpenTicketsHandler,
		listTablesHandler:      listTablesHandler,
	}
}

// RegisterRoutes attaches every order and floor route under the tenant prefix.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/v1/tenants/:tenantId")

	g.POST("/orders/dine-in", s.SubmitDineIn)
	g.POST("/orders/takeaway", s.SubmitTakeaway)
	g.POST("/orders/delivery", s.SubmitDelivery)
	g.POST("/orders/web", s.SubmitWebOrder)
	g.PATCH("/orders/:orderId", s.UpdateOrder)
	g.POST("/orders/:orderId/cancel", s.CancelOrder)
	g.POST("/tables/:tableId/clear", s.ClearTable)
	g.GET("/tickets/open", s.ListOpenTickets)
	g.GET("/tables", s.ListTables)
}

// SubmitDineIn handles POST /api/v1/tenants/:tenantId/orders/dine-in.
func (s *Server) SubmitDineIn(ctx echo.Context) error {
	tenantID, err := tenantID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid tenant ID")
	}

	var req SubmitDineInRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	tableID, err := kernel.UUIDFromString(req.TableID)
	if err != nil {
		return badRequest(ctx, "invalid table ID")
	}

	channel, status, items, money, err := orderFields(req.Channel, req.Status, req.Items, req.Money)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewSubmitDineInCommand(kernel.NewUUID(), tenantID, tableID,
		channel, status, items, money)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := s.submitDineInHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, SubmitOrderResponse{OrderID: orderID.String()})
}

// SubmitTakeaway handles POST /api/v1/tenants/:tenantId/orders/takeaway.
// The response carries the token drawn for the business day.
func (s *Server) SubmitTakeaway(ctx echo.Context) error {
	tenantID, err := tenantID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid tenant ID")
	}

	var req SubmitTakeawayRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	channel, status, items, money, err := orderFields(req.Channel, req.Status, req.Items, req.Money)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewSubmitTakeawayCommand(orderID, tenantID, channel, status, items, money)
	if err != nil {
		return writeError(ctx, err)
	}

	token, err := s.submitTakeawayHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, SubmitTakeawayResponse{
		OrderID: orderID.String(),
		Token:   token,
	})
}

// SubmitDelivery handles POST /api/v1/tenants/:tenantId/orders/delivery.
func (s *Server) SubmitDelivery(ctx echo.Context) error {
	tenantID, err := tenantID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid tenant ID")
	}

	var req SubmitDeliveryRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	channel, status, items, money, err := orderFields(req.Channel, req.Status, req.Items, req.Money)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewSubmitDeliveryCommand(orderID, tenantID, channel, status,
		items, money, customerParam(req.Customer))
	if err != nil {
		return writeError(ctx, err)
	}

	return s.submitDelivery(ctx, orderID, cmd)
}

// SubmitWebOrder handles POST /api/v1/tenants/:tenantId/orders/web.
// Orders from the public widget are deliveries pinned to the web channel.
func (s *Server) SubmitWebOrder(ctx echo.Context) error {
	tenantID, err := tenantID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid tenant ID")
	}

	var req SubmitWebOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	items, err := itemParams(req.Items)
	if err != nil {
		return writeError(ctx, err)
	}

	money, err := moneyParam(req.Money)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewSubmitWebOrderCommand(orderID, tenantID, status,
		items, money, customerParam(req.Customer))
	if err != nil {
		return writeError(ctx, err)
	}

	return s.submitDelivery(ctx, orderID, cmd)
}

func (s *Server) submitDelivery(ctx echo.Context, orderID kernel.UUID,
	cmd commands.SubmitDeliveryCommand) error {
	customerID, err := s.submitDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, SubmitDeliveryResponse{
		OrderID:    orderID.String(),
		CustomerID: customerID.String(),
	})
}

// UpdateOrder handles PATCH /api/v1/tenants/:tenantId/orders/:orderId.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	tenantID, err := tenantID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid tenant ID")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "invalid order ID")
	}

	var req UpdateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	var items []commands.ItemParam
	if req.Items != nil {
		if items, err = itemParams(req.Items); err != nil {
			return writeError(ctx, err)
		}
	}

	var money *commands.MoneyParam
	if req.Money != nil {
		parsed, moneyErr := moneyParam(*req.Money)
		if moneyErr != nil {
			return writeError(ctx, moneyErr)
		}
		money = &parsed
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, tenantID, req.Status, items, money)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.updateOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/tenants/:tenantId/orders/:orderId/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	tenantID, err := tenantID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid tenant ID")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "invalid order ID")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, tenantID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ClearTable handles POST /api/v1/tenants/:tenantId/tables/:tableId/clear.
func (s *Server) ClearTable(ctx echo.Context) error {
	tenantID, err := tenantID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid tenant ID")
	}

	tableID, err := kernel.UUIDFromString(ctx.Param("tableId"))
	if err != nil {
		return badRequest(ctx, "invalid table ID")
	}

	cmd, err := commands.NewClearTableCommand(tableID, tenantID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.clearTableHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListOpenTickets handles GET /api/v1/tenants/:tenantId/tickets/open.
func (s *Server) ListOpenTickets(ctx echo.Context) error {
	tenantID, err := tenantID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid tenant ID")
	}

	query, err := queries.NewListOpenTicketsQuery(tenantID)
	if err != nil {
		return writeError(ctx, err)
	}

	tickets, err := s.listOpenTicketsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ticketResponses(tickets))
}

// ListTables handles GET /api/v1/tenants/:tenantId/tables.
func (s *Server) ListTables(ctx echo.Context) error {
	tenantID, err := tenantID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid tenant ID")
	}

	query, err := queries.NewListTablesQuery(tenantID)
	if err != nil {
		return writeError(ctx, err)
	}

	tables, err := s.listTablesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, tableResponses(tables))
}

func tenantID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("tenantId"))
}

// orderFields parses the fields shared by every submission body.
func orderFields(channelName, statusName string, items []ItemRequest,
	money MoneyRequest) (order.Channel, order.Status, []commands.ItemParam, commands.MoneyParam, error) {
	channel, err := order.ChannelFromString(channelName)
	if err != nil {
		return 0, 0, nil, commands.MoneyParam{}, err
	}

	status, err := order.StatusFromString(statusName)
	if err != nil {
		return 0, 0, nil, commands.MoneyParam{}, err
	}

	params, err := itemParams(items)
	if err != nil {
		return 0, 0, nil, commands.MoneyParam{}, err
	}

	moneyP, err := moneyParam(money)
	if err != nil {
		return 0, 0, nil, commands.MoneyParam{}, err
	}

	return channel, status, params, moneyP, nil
}
