package queries

import (
	"context"

	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetMonthlyQuotaUsageQueryHandler reads a customer's quota consumption
// for display purposes. The sum runs in SQL over the same status filter the
// quota evaluator applies, so the displayed figure matches what the next
// order placement will be evaluated against.
type GetMonthlyQuotaUsageQueryHandler struct {
	db     *gorm.DB
	policy services.QuotaPolicy
}

// NewGetMonthlyQuotaUsageQueryHandler creates a handler for quota usage queries.
// Requires a GORM database connection and the active quota policy.
func NewGetMonthlyQuotaUsageQueryHandler(db *gorm.DB, policy services.QuotaPolicy) GetMonthlyQuotaUsageQueryHandler {
	return GetMonthlyQuotaUsageQueryHandler{db: db, policy: policy}
}

// Handle executes the query and returns the customer's usage for the window.
// A customer without counted orders reports zero accumulation and the full
// limit remaining. Remaining never goes below zero even if stored data
// exceeds the configured limit.
func (h GetMonthlyQuotaUsageQueryHandler) Handle(
	ctx context.Context,
	query GetMonthlyQuotaUsageQuery,
) (GetMonthlyQuotaUsageQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetMonthlyQuotaUsageQueryResponse{}, err
	}
	if err := h.policy.Validate(); err != nil {
		return GetMonthlyQuotaUsageQueryResponse{}, err
	}

	window := order.WindowOf(query.ReferenceTime())

	var accumulated decimal.Decimal
	row := h.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(i.unit_weight_kg * i.quantity), 0)
		FROM orders o
		JOIN order_items i ON i.order_id = o.id
		WHERE o.customer_id = ?
		  AND o.status IN ?
		  AND o.created_at >= ?
		  AND o.created_at < ?
	`, query.CustomerID().String(), order.QuotaCountingStatusCodes(),
		window.Start(), window.End()).Row()

	if err := row.Scan(&accumulated); err != nil {
		return GetMonthlyQuotaUsageQueryResponse{}, err
	}

	limit := h.policy.Limit().Kilograms()
	remaining := limit.Sub(accumulated)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	return GetMonthlyQuotaUsageQueryResponse{
		CustomerID:    query.CustomerID(),
		Window:        window.String(),
		AccumulatedKg: accumulated,
		LimitKg:       limit,
		RemainingKg:   remaining,
	}, nil
}
