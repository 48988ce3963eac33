package queries

import (
	"context"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderReportQueryHandler materializes order reports from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
//
// The stored rows carry only the unit values; every derived figure on the
// report (line subtotals, line weights, grand totals) is recomputed here so
// a patched database row can never produce an inconsistent report.
type GetOrderReportQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderReportQueryHandler creates a handler for order report queries.
// Requires a GORM database connection for query execution.
func NewGetOrderReportQueryHandler(db *gorm.DB) GetOrderReportQueryHandler {
	return GetOrderReportQueryHandler{db: db}
}

// Handle executes the query and builds the report for one order.
// Returns errs.ErrObjectNotFound when the order does not exist.
func (h GetOrderReportQueryHandler) Handle(
	ctx context.Context,
	query GetOrderReportQuery,
) (GetOrderReportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderReportQueryResponse{}, err
	}

	report, err := h.loadHeader(ctx, query)
	if err != nil {
		return GetOrderReportQueryResponse{}, err
	}

	if err = h.loadItems(ctx, query, &report); err != nil {
		return GetOrderReportQueryResponse{}, err
	}

	return report, nil
}

// loadHeader reads the order row joined with its owning account.
func (h GetOrderReportQueryHandler) loadHeader(
	ctx context.Context,
	query GetOrderReportQuery,
) (GetOrderReportQueryResponse, error) {
	var report GetOrderReportQueryResponse

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.status,
			o.created_at,
			a.id,
			a.name,
			a.document,
			a.delivery_location
		FROM orders o
		JOIN accounts a ON a.id = o.customer_id
		WHERE o.id = ?
	`, query.OrderID().String()).Rows()
	if err != nil {
		return report, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return report, err
		}
		return report, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}

	var orderID, customerID uuid.UUID
	var status order.Status

	err = rows.Scan(
		&orderID,
		&status,
		&report.CreatedAt,
		&customerID,
		&report.CustomerName,
		&report.CustomerDocument,
		&report.DeliveryLocation,
	)
	if err != nil {
		return report, err
	}

	if err = status.Validate(); err != nil {
		return report, err
	}
	report.Status = status.String()
	report.CreatedAt = report.CreatedAt.UTC()

	if report.ID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
		return report, err
	}
	if report.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return report, err
	}

	return report, nil
}

// loadItems reads the order's lines and recomputes all derived figures.
func (h GetOrderReportQueryHandler) loadItems(
	ctx context.Context,
	query GetOrderReportQuery,
	report *GetOrderReportQueryResponse,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_code,
			description,
			unit_price,
			quantity,
			unit_weight_kg
		FROM order_items
		WHERE order_id = ?
		ORDER BY position
	`, query.OrderID().String()).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	report.Items = make([]OrderReportItem, 0)
	report.GrandTotal = decimal.Zero
	report.GrandTotalWeightKg = decimal.Zero

	for rows.Next() {
		var item OrderReportItem

		err = rows.Scan(
			&item.ProductCode,
			&item.Description,
			&item.UnitPrice,
			&item.Quantity,
			&item.UnitWeightKg,
		)
		if err != nil {
			return err
		}

		quantity := decimal.NewFromInt(int64(item.Quantity))
		item.LineSubtotal = item.UnitPrice.Mul(quantity)
		item.LineTotalWeightKg = item.UnitWeightKg.Mul(quantity)

		report.GrandTotal = report.GrandTotal.Add(item.LineSubtotal)
		report.GrandTotalWeightKg = report.GrandTotalWeightKg.Add(item.LineTotalWeightKg)
		report.Items = append(report.Items, item)
	}

	return rows.Err()
}
