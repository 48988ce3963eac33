package services

import (
	"fmt"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// DefaultMonthlyWeightLimitKg is the monthly purchase weight limit applied
// when no per-deployment override is configured.
const DefaultMonthlyWeightLimitKg = 30

// DefaultMinimumQuantityPerLine is the smallest line quantity accepted when
// no stricter per-deployment minimum is configured.
const DefaultMinimumQuantityPerLine = 1

// QuotaPolicy holds the tunable parameters of the monthly purchase quota.
// The policy is configuration, not behavior: it carries the limits, while
// QuotaEvaluator carries the decision logic.
type QuotaPolicy struct { //nolint:recvcheck //using for validation
	limit              kernel.Weight
	minQuantityPerLine int
	guard              guard.ConstructorGuard
}

// ErrQuotaPolicyIsNotConstructed is returned when using an improperly initialized QuotaPolicy.
var ErrQuotaPolicyIsNotConstructed = errs.NewValueIsRequiredError(
	"quota policy must be created via NewQuotaPolicy or DefaultQuotaPolicy constructors")

// NewQuotaPolicy creates a QuotaPolicy with the given monthly weight limit
// and the default per-line quantity minimum.
// A zero limit is valid and means every weighted purchase is rejected.
func NewQuotaPolicy(limit kernel.Weight) (QuotaPolicy, error) {
	return NewQuotaPolicyWithMinimumQuantity(limit, DefaultMinimumQuantityPerLine)
}

// NewQuotaPolicyWithMinimumQuantity creates a QuotaPolicy with an explicit
// per-line quantity minimum for deployments that want to forbid single-unit
// lines.
func NewQuotaPolicyWithMinimumQuantity(limit kernel.Weight, minimumQuantityPerLine int) (QuotaPolicy, error) {
	if err := limit.Validate(); err != nil {
		return QuotaPolicy{}, errs.NewValueIsInvalidErrorWithCause("limit", err)
	}

	if minimumQuantityPerLine < 1 {
		return QuotaPolicy{}, errs.NewValueIsInvalidErrorWithCause("minimumQuantityPerLine",
			fmt.Errorf("%d is less than 1", minimumQuantityPerLine))
	}

	return QuotaPolicy{
		limit:              limit,
		minQuantityPerLine: minimumQuantityPerLine,
		guard:              guard.NewConstructorGuard(),
	}, nil
}

// NewQuotaPolicyFromKg creates a QuotaPolicy from a raw kilogram value,
// as read from configuration.
func NewQuotaPolicyFromKg(limitKg float64) (QuotaPolicy, error) {
	limit, err := kernel.WeightFromFloat(limitKg)
	if err != nil {
		return QuotaPolicy{}, errs.NewValueIsInvalidErrorWithCause("limitKg",
			fmt.Errorf("%v: %w", limitKg, err))
	}

	return NewQuotaPolicy(limit)
}

// DefaultQuotaPolicy returns the policy with the standard 30 kg monthly limit.
func DefaultQuotaPolicy() QuotaPolicy {
	limit, _ := kernel.NewWeight(decimal.NewFromInt(DefaultMonthlyWeightLimitKg))
	policy, _ := NewQuotaPolicy(limit)
	return policy
}

// Validate checks if the QuotaPolicy was properly constructed using a constructor.
func (p QuotaPolicy) Validate() error {
	return p.guard.Validate(ErrQuotaPolicyIsNotConstructed)
}

// Limit returns the monthly weight limit.
func (p QuotaPolicy) Limit() kernel.Weight {
	return p.limit
}

// MinimumQuantityPerLine returns the smallest line quantity the policy accepts.
func (p QuotaPolicy) MinimumQuantityPerLine() int {
	return p.minQuantityPerLine
}
