package http

import (
	"errors"
	"net/http"
	"time"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/application/usecases/queries"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Server exposes the order and account use cases over HTTP.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler    commands.CreateOrderCommandHandler
	approveOrderHandler   commands.ApproveOrderCommandHandler
	cancelOrderHandler    commands.CancelOrderCommandHandler
	createAccountHandler  commands.CreateAccountCommandHandler
	changePasswordHandler commands.ChangePasswordCommandHandler

	// Query handlers
	getOrderReportHandler       queries.GetOrderReportQueryHandler
	getMonthlyQuotaUsageHandler queries.GetMonthlyQuotaUsageQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	approveOrderHandler commands.ApproveOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	createAccountHandler commands.CreateAccountCommandHandler,
	changePasswordHandler commands.ChangePasswordCommandHandler,
	getOrderReportHandler queries.GetOrderReportQueryHandler,
	getMonthlyQuotaUsageHandler queries.GetMonthlyQuotaUsageQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:          createOrderHandler,
		approveOrderHandler:         approveOrderHandler,
		cancelOrderHandler:          cancelOrderHandler,
		createAccountHandler:        createAccountHandler,
		changePasswordHandler:       changePasswordHandler,
		getOrderReportHandler:       getOrderReportHandler,
		getMonthlyQuotaUsageHandler: getMonthlyQuotaUsageHandler,
	}
}

// RegisterRoutes binds all API routes on the given Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/:id/approve", s.ApproveOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.GET("/orders/:id/report", s.GetOrderReport)

	api.POST("/accounts", s.CreateAccount)
	api.POST("/accounts/:id/password", s.ChangePassword)
	api.GET("/accounts/:id/quota", s.GetQuotaUsage)
}

// ErrorResponse is the uniform error body for all endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrderItem is one line of an order placement request.
type NewOrderItem struct {
	ProductCode  string          `json:"productCode"`
	Description  string          `json:"description"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	Quantity     int             `json:"quantity"`
	UnitWeightKg decimal.Decimal `json:"unitWeightKg"`
}

// NewOrder is the order placement request body. OrderID is optional; a
// missing ID is generated server-side.
type NewOrder struct {
	OrderID    string         `json:"orderId,omitempty"`
	CustomerID string         `json:"customerId"`
	Items      []NewOrderItem `json:"items"`
}

// NewAccount is the account registration request body.
type NewAccount struct {
	AccountID        string  `json:"accountId,omitempty"`
	Name             string  `json:"name"`
	Document         *string `json:"document,omitempty"`
	DeliveryLocation string  `json:"deliveryLocation"`
	Password         string  `json:"password"`
}

// PasswordChange is the password change request body.
type PasswordChange struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// OrderReportItem is one line of an order report response.
type OrderReportItem struct {
	ProductCode       string          `json:"productCode"`
	Description       string          `json:"description"`
	UnitPrice         decimal.Decimal `json:"unitPrice"`
	Quantity          int             `json:"quantity"`
	LineSubtotal      decimal.Decimal `json:"lineSubtotal"`
	UnitWeightKg      decimal.Decimal `json:"unitWeightKg"`
	LineTotalWeightKg decimal.Decimal `json:"lineTotalWeightKg"`
}

// OrderReport is the order report response body.
type OrderReport struct {
	ID                 string            `json:"id"`
	Status             string            `json:"status"`
	CreatedAt          string            `json:"createdAt"`
	CustomerID         string            `json:"customerId"`
	CustomerName       string            `json:"customerName"`
	CustomerDocument   *string           `json:"customerDocument,omitempty"`
	DeliveryLocation   string            `json:"deliveryLocation"`
	Items              []OrderReportItem `json:"items"`
	GrandTotal         decimal.Decimal   `json:"grandTotal"`
	GrandTotalWeightKg decimal.Decimal   `json:"grandTotalWeightKg"`
}

// QuotaUsage is the monthly quota usage response body.
type QuotaUsage struct {
	CustomerID    string          `json:"customerId"`
	Window        string          `json:"window"`
	AccumulatedKg decimal.Decimal `json:"accumulatedKg"`
	LimitKg       decimal.Decimal `json:"limitKg"`
	RemainingKg   decimal.Decimal `json:"remainingKg"`
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID := kernel.NewUUID()
	if body.OrderID != "" {
		var err error
		if orderID, err = kernel.UUIDFromString(body.OrderID); err != nil {
			return badRequest(ctx, "Invalid order ID: "+err.Error())
		}
	}

	customerID, err := kernel.UUIDFromString(body.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer ID: "+err.Error())
	}

	items, err := toLineItems(body.Items)
	if err != nil {
		return badRequest(ctx, "Invalid order items: "+err.Error())
	}

	cmd, err := commands.NewCreateOrderCommand(orderID, customerID, items)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusCreated)
}

// ApproveOrder handles POST /api/v1/orders/:id/approve.
func (s *Server) ApproveOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	cmd, err := commands.NewApproveOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.approveOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrderReport handles GET /api/v1/orders/:id/report.
func (s *Server) GetOrderReport(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	query, err := queries.NewGetOrderReportQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	report, err := s.getOrderReportHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	items := make([]OrderReportItem, len(report.Items))
	for i, item := range report.Items {
		items[i] = OrderReportItem{
			ProductCode:       item.ProductCode,
			Description:       item.Description,
			UnitPrice:         item.UnitPrice,
			Quantity:          item.Quantity,
			LineSubtotal:      item.LineSubtotal,
			UnitWeightKg:      item.UnitWeightKg,
			LineTotalWeightKg: item.LineTotalWeightKg,
		}
	}

	return ctx.JSON(http.StatusOK, OrderReport{
		ID:                 report.ID.String(),
		Status:             report.Status,
		CreatedAt:          report.CreatedAt.Format(time.RFC3339),
		CustomerID:         report.CustomerID.String(),
		CustomerName:       report.CustomerName,
		CustomerDocument:   report.CustomerDocument,
		DeliveryLocation:   report.DeliveryLocation,
		Items:              items,
		GrandTotal:         report.GrandTotal,
		GrandTotalWeightKg: report.GrandTotalWeightKg,
	})
}

// CreateAccount handles POST /api/v1/accounts - registers a new account.
func (s *Server) CreateAccount(ctx echo.Context) error {
	var body NewAccount
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	accountID := kernel.NewUUID()
	if body.AccountID != "" {
		var err error
		if accountID, err = kernel.UUIDFromString(body.AccountID); err != nil {
			return badRequest(ctx, "Invalid account ID: "+err.Error())
		}
	}

	cmd, err := commands.NewCreateAccountCommand(
		accountID, body.Name, body.Document, body.DeliveryLocation, body.Password)
	if err != nil {
		return badRequest(ctx, "Invalid account data: "+err.Error())
	}

	if handleErr := s.createAccountHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusCreated)
}

// ChangePassword handles POST /api/v1/accounts/:id/password.
func (s *Server) ChangePassword(ctx echo.Context) error {
	accountID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid account ID: "+err.Error())
	}

	var body PasswordChange
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewChangePasswordCommand(accountID, body.CurrentPassword, body.NewPassword)
	if err != nil {
		return badRequest(ctx, "Invalid password data: "+err.Error())
	}

	if handleErr := s.changePasswordHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetQuotaUsage handles GET /api/v1/accounts/:id/quota.
func (s *Server) GetQuotaUsage(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid account ID: "+err.Error())
	}

	query, err := queries.NewGetMonthlyQuotaUsageQuery(customerID, time.Now().UTC())
	if err != nil {
		return badRequest(ctx, "Invalid account ID: "+err.Error())
	}

	usage, err := s.getMonthlyQuotaUsageHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, QuotaUsage{
		CustomerID:    usage.CustomerID.String(),
		Window:        usage.Window,
		AccumulatedKg: usage.AccumulatedKg,
		LimitKg:       usage.LimitKg,
		RemainingKg:   usage.RemainingKg,
	})
}

func toLineItems(items []NewOrderItem) ([]order.LineItem, error) {
	result := make([]order.LineItem, 0, len(items))
	for _, item := range items {
		price, err := kernel.NewMoney(item.UnitPrice)
		if err != nil {
			return nil, err
		}

		weight, err := kernel.NewWeight(item.UnitWeightKg)
		if err != nil {
			return nil, err
		}

		line, err := order.NewLineItem(item.ProductCode, item.Description, price, item.Quantity, weight)
		if err != nil {
			return nil, err
		}

		result = append(result, line)
	}

	return result, nil
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// errorResponse maps use case failures to HTTP statuses: the password gate
// surfaces as 403, a quota rejection as 422, missing aggregates as 404, and
// domain validation failures as 400.
func errorResponse(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrPasswordChangeRequired):
		status = http.StatusForbidden
	case errors.Is(err, commands.ErrCurrentPasswordMismatch):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrQuotaExceeded):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}
