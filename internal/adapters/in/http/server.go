// Package http exposes the orchestration core over a REST surface.
package http

import (
	"errors"
	"net/http"
	"time"

	"ordernotify/internal/core/application/usecases/commands"
	"ordernotify/internal/core/application/usecases/queries"
	"ordernotify/internal/core/domain/model/order"
	"ordernotify/internal/core/domain/services"
	"ordernotify/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles HTTP requests, coordinating between handlers and use cases.
type Server struct {
	// Command handlers
	createOrderHandler      commands.CreateOrderCommandHandler
	editOrderHandler        commands.EditOrderCommandHandler
	assignTrackingHandler   commands.AssignTrackingCommandHandler
	confirmOrderHandler     commands.ConfirmOrderCommandHandler
	cancelOrderHandler      commands.CancelOrderCommandHandler
	sendNotificationHandler *commands.SendNotificationCommandHandler
	bulkChangeStatusHandler commands.BulkChangeStatusCommandHandler

	// Query handlers
	getActiveOrdersHandler     queries.GetActiveOrdersQueryHandler
	getDashboardMetricsHandler queries.GetDashboardMetricsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	editOrderHandler commands.EditOrderCommandHandler,
	assignTrackingHandler commands.AssignTrackingCommandHandler,
	confirmOrderHandler commands.ConfirmOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	sendNotificationHandler *commands.SendNotificationCommandHandler,
	bulkChangeStatusHandler commands.BulkChangeStatusCommandHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getDashboardMetricsHandler queries.GetDashboardMetricsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		editOrderHandler:           editOrderHandler,
		assignTrackingHandler:      assignTrackingHandler,
		confirmOrderHandler:        confirmOrderHandler,
		cancelOrderHandler:         cancelOrderHandler,
		sendNotificationHandler:    sendNotificationHandler,
		bulkChangeStatusHandler:    bulkChangeStatusHandler,
		getActiveOrdersHandler:     getActiveOrdersHandler,
		getDashboardMetricsHandler: getDashboardMetricsHandler,
	}
}

// RegisterRoutes wires all endpoints onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.GET("/orders", s.GetOrders)
	api.POST("/orders", s.CreateOrder)
	api.PUT("/orders/:id", s.EditOrder)
	api.POST("/orders/:id/tracking", s.AssignTracking)
	api.POST("/orders/:id/confirm", s.ConfirmOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.POST("/orders/:id/notifications", s.SendNotification)
	api.POST("/orders/bulk-status", s.BulkChangeStatus)
	api.GET("/metrics", s.GetDashboardMetrics)
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CustomerPayload carries customer details on create and edit requests.
type CustomerPayload struct {
	Name           string  `json:"name"`
	Phone          string  `json:"phone"`
	Address        string  `json:"address"`
	City           string  `json:"city"`
	PaymentMethod  string  `json:"paymentMethod"`
	DeliveryMethod string  `json:"deliveryMethod"`
	CurrencySymbol string  `json:"currencySymbol"`
	Price          float64 `json:"price"`
}

// ItemPayload is one order line on create and edit requests.
type ItemPayload struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// OrderRequest is the body for creating or editing an order.
type OrderRequest struct {
	Customer CustomerPayload `json:"customer"`
	Items    []ItemPayload   `json:"items"`
	Actor    string          `json:"actor"`
}

// OrderListItem is one row of the order listing response.
type OrderListItem struct {
	ID                  string    `json:"id"`
	CustomerName        string    `json:"customerName"`
	CustomerPhone       string    `json:"customerPhone"`
	City                string    `json:"city"`
	Price               float64   `json:"price"`
	CurrencySymbol      string    `json:"currencySymbol"`
	OrderedAt           time.Time `json:"orderedAt"`
	AppStatus           string    `json:"appStatus"`
	MessageStatus       string    `json:"messageStatus"`
	TrackingNumber      string    `json:"trackingNumber,omitempty"`
	LatestCourierStatus string    `json:"latestCourierStatus,omitempty"`
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}

// GetOrders handles GET /api/v1/orders. Pass ?includeArchived=true for the
// full book.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetActiveOrdersQuery()
	if ctx.QueryParam("includeArchived") == "true" {
		query = queries.NewGetActiveOrdersQueryWithArchived()
	}

	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]OrderListItem, len(orders))
	for i, o := range orders {
		response[i] = OrderListItem{
			ID:                  o.ID,
			CustomerName:        o.CustomerName,
			CustomerPhone:       o.CustomerPhone,
			City:                o.City,
			Price:               o.Price,
			CurrencySymbol:      o.CurrencySymbol,
			OrderedAt:           o.OrderedAt,
			AppStatus:           o.AppStatus.String(),
			MessageStatus:       o.MessageStatus.String(),
			TrackingNumber:      o.TrackingNumber,
			LatestCourierStatus: o.LatestCourierStatus,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req OrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateOrderCommand(toCustomerDetails(req.Customer), toItems(req.Items), actorOrDefault(req.Actor))
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	orderID, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to create order",
		})
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": orderID})
}

// EditOrder handles PUT /api/v1/orders/:id.
func (s *Server) EditOrder(ctx echo.Context) error {
	var req OrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewEditOrderCommand(
		ctx.Param("id"), toCustomerDetails(req.Customer), toItems(req.Items), actorOrDefault(req.Actor))
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err := s.editOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err, "Failed to edit order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignTrackingRequest is the body for assigning a consignment number.
type AssignTrackingRequest struct {
	TrackingNumber string `json:"trackingNumber"`
	Actor          string `json:"actor"`
}

// AssignTracking handles POST /api/v1/orders/:id/tracking.
func (s *Server) AssignTracking(ctx echo.Context) error {
	var req AssignTrackingRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAssignTrackingCommand(ctx.Param("id"), req.TrackingNumber, actorOrDefault(req.Actor))
	if err != nil {
		return badRequest(ctx, "Invalid tracking data: "+err.Error())
	}

	if err := s.assignTrackingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err, "Failed to assign tracking number")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ActorRequest is the body for confirm and cancel requests.
type ActorRequest struct {
	Actor string `json:"actor"`
}

// ConfirmOrder handles POST /api/v1/orders/:id/confirm.
func (s *Server) ConfirmOrder(ctx echo.Context) error {
	var req ActorRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewConfirmOrderCommand(ctx.Param("id"), actorOrDefault(req.Actor))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.confirmOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err, "Failed to confirm order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	var req ActorRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(ctx.Param("id"), actorOrDefault(req.Actor))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err, "Failed to cancel order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SendNotificationRequest is the body for triggering a notification. Intent
// pins the message type; customText replaces the rendered template.
type SendNotificationRequest struct {
	Actor      string `json:"actor"`
	Intent     string `json:"intent,omitempty"`
	CustomText string `json:"customText,omitempty"`
}

// SendNotificationResponse reports what the send attempt did.
type SendNotificationResponse struct {
	Intent           string `json:"intent"`
	Sent             bool   `json:"sent"`
	RenderedText     string `json:"renderedText"`
	ProviderResponse string `json:"providerResponse,omitempty"`
}

// SendNotification handles POST /api/v1/orders/:id/notifications.
func (s *Server) SendNotification(ctx echo.Context) error {
	var req SendNotificationRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var cmd commands.SendNotificationCommand
	var err error
	if req.Intent != "" {
		cmd, err = commands.NewSendNotificationCommandWithIntent(
			ctx.Param("id"), actorOrDefault(req.Actor), order.MessageIntent(req.Intent), req.CustomText)
	} else {
		cmd, err = commands.NewSendNotificationCommand(ctx.Param("id"), actorOrDefault(req.Actor))
	}
	if err != nil {
		return badRequest(ctx, "Invalid notification request: "+err.Error())
	}

	outcome, err := s.sendNotificationHandler.Handle(ctx.Request().Context(), cmd)
	if errors.Is(err, commands.ErrNoPendingIntent) {
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: "No notification is pending for this order",
		})
	}
	if errors.Is(err, services.ErrTrackingNumberMissing) {
		return ctx.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Code:    http.StatusUnprocessableEntity,
			Message: "Dispatch notification requires a consignment number",
		})
	}
	if err != nil {
		return domainError(ctx, err, "Failed to send notification")
	}

	return ctx.JSON(http.StatusOK, SendNotificationResponse{
		Intent:           string(outcome.Intent),
		Sent:             outcome.Sent,
		RenderedText:     outcome.RenderedText,
		ProviderResponse: outcome.ProviderResponse,
	})
}

// BulkChangeStatusRequest is the body for a bulk status override.
type BulkChangeStatusRequest struct {
	OrderIDs  []string `json:"orderIds"`
	NewStatus string   `json:"newStatus"`
	Actor     string   `json:"actor"`
}

// BulkChangeStatusResponse reports the per-order outcome of a bulk override.
type BulkChangeStatusResponse struct {
	Changed []string `json:"changed"`
	Skipped []string `json:"skipped"`
}

// BulkChangeStatus handles POST /api/v1/orders/bulk-status.
func (s *Server) BulkChangeStatus(ctx echo.Context) error {
	var req BulkChangeStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	newStatus, ok := parseAppStatus(req.NewStatus)
	if !ok {
		return badRequest(ctx, "Unknown status: "+req.NewStatus)
	}

	cmd, err := commands.NewBulkChangeStatusCommand(req.OrderIDs, newStatus, actorOrDefault(req.Actor))
	if err != nil {
		return badRequest(ctx, "Invalid bulk request: "+err.Error())
	}

	result, err := s.bulkChangeStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err, "Bulk status change failed")
	}

	return ctx.JSON(http.StatusOK, BulkChangeStatusResponse{
		Changed: result.Changed,
		Skipped: result.Skipped,
	})
}

// DashboardMetricsResponse carries the dashboard counters.
type DashboardMetricsResponse struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"byStatus"`
	Archived int            `json:"archived"`
}

// GetDashboardMetrics handles GET /api/v1/metrics.
func (s *Server) GetDashboardMetrics(ctx echo.Context) error {
	metrics, err := s.getDashboardMetricsHandler.Handle(
		ctx.Request().Context(), queries.NewGetDashboardMetricsQuery())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to compute metrics",
		})
	}

	byStatus := make(map[string]int, len(metrics.ByStatus))
	for status, count := range metrics.ByStatus {
		byStatus[status.String()] = count
	}

	return ctx.JSON(http.StatusOK, DashboardMetricsResponse{
		Total:    metrics.Total,
		ByStatus: byStatus,
		Archived: metrics.Archived,
	})
}

func toCustomerDetails(payload CustomerPayload) order.CustomerDetails {
	return order.CustomerDetails{
		Name:           payload.Name,
		Phone:          payload.Phone,
		Address:        payload.Address,
		City:           payload.City,
		PaymentMethod:  payload.PaymentMethod,
		DeliveryMethod: payload.DeliveryMethod,
		CurrencySymbol: payload.CurrencySymbol,
		Price:          payload.Price,
	}
}

func toItems(payloads []ItemPayload) []order.Item {
	items := make([]order.Item, 0, len(payloads))
	for _, p := range payloads {
		items = append(items, order.Item{Name: p.Name, Quantity: p.Quantity})
	}
	return items
}

func actorOrDefault(actor string) string {
	if actor == "" {
		return "Admin"
	}
	return actor
}

func parseAppStatus(name string) (order.AppStatus, bool) {
	for _, status := range order.AllAppStatuses() {
		if status.String() == name {
			return status, true
		}
	}
	return order.AppStatusUnknown, false
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// domainError maps domain failures to HTTP codes: unknown orders are 404,
// archived or terminal walls are 409, everything else 500.
func domainError(ctx echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: "Order not found",
		})
	case errors.Is(err, order.ErrOrderIsArchived),
		errors.Is(err, order.ErrOrderIsTerminal),
		errors.Is(err, order.ErrOrderNotAwaitingConfirmation):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: fallback,
		})
	}
}
