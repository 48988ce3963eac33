package queries

import (
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrderReportQueryIsNotConstructed = errors.New(
	"GetOrderReportQuery must be created via NewGetOrderReportQuery constructor",
)

// GetOrderReportQuery retrieves the printable report of a single order.
//
// Example:
//
//	query, _ := NewGetOrderReportQuery(orderID)
//	handler := NewGetOrderReportQueryHandler(db)
//
//	report, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to build order report: %w", err)
//	}
//	fmt.Printf("Order %s: %s, %s kg\n", report.ID, report.GrandTotal, report.GrandTotalWeightKg)
type GetOrderReportQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderReportQuery creates a query for the given order's report.
// Validates that the order ID is a valid UUID.
func NewGetOrderReportQuery(orderID kernel.UUID) (GetOrderReportQuery, error) {
	query := GetOrderReportQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return GetOrderReportQuery{}, err
	}

	query.orderID = orderID
	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderReportQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderReportQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to report on.
func (q GetOrderReportQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OrderReportItem is one ordered line on the report.
// The subtotal and line weight are recomputed from the unit values during
// materialization, never read from storage.
type OrderReportItem struct {
	ProductCode       string
	Description       string
	UnitPrice         decimal.Decimal
	Quantity          int
	LineSubtotal      decimal.Decimal
	UnitWeightKg      decimal.Decimal
	LineTotalWeightKg decimal.Decimal
}

// GetOrderReportQueryResponse is the read model of one order report.
// It combines the order with the owning account's display data. The grand
// total and grand total weight are always recomputed by summing the items;
// an order without items reports exact zeros.
type GetOrderReportQueryResponse struct {
	ID                 kernel.UUID
	Status             string
	CreatedAt          time.Time
	CustomerID         kernel.UUID
	CustomerName       string
	CustomerDocument   *string
	DeliveryLocation   string
	Items              []OrderReportItem
	GrandTotal         decimal.Decimal
	GrandTotalWeightKg decimal.Decimal
}
