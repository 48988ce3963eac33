package queries

import (
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetMonthlyQuotaUsageQueryIsNotConstructed = errors.New(
	"GetMonthlyQuotaUsageQuery must be created via NewGetMonthlyQuotaUsageQuery constructor",
)

// GetMonthlyQuotaUsageQuery retrieves a customer's quota consumption for the
// calendar month containing the reference time.
type GetMonthlyQuotaUsageQuery struct { //nolint:recvcheck //using for validation
	customerID    kernel.UUID
	referenceTime time.Time

	guard guard.ConstructorGuard
}

// NewGetMonthlyQuotaUsageQuery creates a quota usage query.
// Validates that the customer ID is a valid UUID and the reference time is non-zero.
func NewGetMonthlyQuotaUsageQuery(customerID kernel.UUID, referenceTime time.Time) (GetMonthlyQuotaUsageQuery, error) {
	query := GetMonthlyQuotaUsageQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := customerID.Validate(); err != nil {
		return GetMonthlyQuotaUsageQuery{}, err
	}
	if referenceTime.IsZero() {
		return GetMonthlyQuotaUsageQuery{}, errs.NewValueIsRequiredError("referenceTime")
	}

	query.customerID = customerID
	query.referenceTime = referenceTime
	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMonthlyQuotaUsageQuery) Validate() error {
	return q.guard.Validate(ErrGetMonthlyQuotaUsageQueryIsNotConstructed)
}

// CustomerID returns the account whose quota usage is requested.
func (q GetMonthlyQuotaUsageQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// ReferenceTime returns the time that selects the calendar window.
func (q GetMonthlyQuotaUsageQuery) ReferenceTime() time.Time {
	return q.referenceTime
}

// GetMonthlyQuotaUsageQueryResponse is the read model of quota consumption.
// Only Requested and Approved orders count toward AccumulatedKg; cancelled
// orders are excluded, so their weight is already given back here.
type GetMonthlyQuotaUsageQueryResponse struct {
	CustomerID    kernel.UUID
	Window        string
	AccumulatedKg decimal.Decimal
	LimitKg       decimal.Decimal
	RemainingKg   decimal.Decimal
}
