package services

import (
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// QuotaEvaluator is a domain service that decides whether a candidate
// purchase fits into a customer's monthly weight quota.
//
// Key responsibilities:
//   - Filtering the supplied orders down to the ones that consume quota:
//     same customer, same calendar month as the reference time, and a
//     status that counts toward the quota
//   - Summing the accumulated weight with exact decimal arithmetic
//   - Comparing strictly: only exceeding the limit rejects, landing
//     exactly on it is accepted
//
// The evaluator is pure. It reads nothing, writes nothing, and returns the
// same decision for the same inputs, so callers own the transactional
// reading of the orders and the evaluator stays trivially testable.
type QuotaEvaluator struct{}

// NewQuotaEvaluator creates a new QuotaEvaluator instance.
func NewQuotaEvaluator() QuotaEvaluator {
	return QuotaEvaluator{}
}

// QuotaDecision is the outcome of one quota evaluation.
//
// Exactly one of RemainingAfter and OverBy is meaningful: RemainingAfter
// when the decision is accepted, OverBy when it is rejected. Both the
// accumulated weight and the limit are always populated so a rejection can
// be reported to the customer verbatim.
type QuotaDecision struct {
	accepted       bool
	accumulated    kernel.Weight
	limit          kernel.Weight
	overBy         kernel.Weight
	remainingAfter kernel.Weight
}

// Accepted reports whether the candidate purchase fits the quota.
func (d QuotaDecision) Accepted() bool {
	return d.accepted
}

// Accumulated returns the weight already consumed this month, excluding the candidate.
func (d QuotaDecision) Accumulated() kernel.Weight {
	return d.accumulated
}

// Limit returns the monthly weight limit the decision was made against.
func (d QuotaDecision) Limit() kernel.Weight {
	return d.limit
}

// OverBy returns how far past the limit the candidate would land.
// Zero when the decision is accepted.
func (d QuotaDecision) OverBy() kernel.Weight {
	return d.overBy
}

// RemainingAfter returns the quota left if the candidate is accepted.
// Zero when the decision is rejected.
func (d QuotaDecision) RemainingAfter() kernel.Weight {
	return d.remainingAfter
}

// Evaluate decides whether a candidate purchase of the given weight fits
// the customer's quota for the calendar month containing referenceTime.
//
// Parameters:
//   - customerID: The account placing the candidate purchase
//   - candidate: Total weight of the candidate purchase (zero is valid)
//   - existing: The customer's orders to count against the quota; orders of
//     other customers, other months, or non-counting statuses are skipped
//   - referenceTime: The placement time that selects the calendar window
//   - policy: The quota parameters to apply
//
// Returns a rejection, never an error, when the quota is exceeded: going
// over the limit is a business outcome, not a failure of evaluation.
func (e QuotaEvaluator) Evaluate(
	customerID kernel.UUID,
	candidate kernel.Weight,
	existing []*order.Order,
	referenceTime time.Time,
	policy QuotaPolicy,
) (QuotaDecision, error) {
	if err := customerID.Validate(); err != nil {
		return QuotaDecision{}, err
	}
	if err := candidate.Validate(); err != nil {
		return QuotaDecision{}, err
	}
	if err := policy.Validate(); err != nil {
		return QuotaDecision{}, err
	}

	accumulated, err := e.AccumulatedWeight(customerID, existing, referenceTime)
	if err != nil {
		return QuotaDecision{}, err
	}

	projected, err := accumulated.Add(candidate)
	if err != nil {
		return QuotaDecision{}, err
	}

	limit := policy.Limit()
	decision := QuotaDecision{
		accumulated:    accumulated,
		limit:          limit,
		overBy:         kernel.ZeroWeight(),
		remainingAfter: kernel.ZeroWeight(),
	}

	if projected.GreaterThan(limit) {
		decision.accepted = false
		decision.overBy = weightFromDecimal(projected.Kilograms().Sub(limit.Kilograms()))
		return decision, nil
	}

	decision.accepted = true
	decision.remainingAfter = weightFromDecimal(limit.Kilograms().Sub(projected.Kilograms()))
	return decision, nil
}

// AccumulatedWeight sums the total weight of the customer's orders that
// consume quota in the calendar month containing referenceTime. Used on its
// own by the quota usage query; Evaluate builds on it for admissions.
func (e QuotaEvaluator) AccumulatedWeight(
	customerID kernel.UUID,
	existing []*order.Order,
	referenceTime time.Time,
) (kernel.Weight, error) {
	window := order.WindowOf(referenceTime)
	accumulated := kernel.ZeroWeight()

	for _, existingOrder := range existing {
		if err := existingOrder.Validate(); err != nil {
			return kernel.Weight{}, err
		}

		if !existingOrder.CustomerID().IsEqual(customerID) {
			continue
		}
		if !window.Contains(existingOrder.CreatedAt()) {
			continue
		}
		if !existingOrder.CountsTowardQuota() {
			continue
		}

		var err error
		accumulated, err = accumulated.Add(existingOrder.TotalWeight())
		if err != nil {
			return kernel.Weight{}, err
		}
	}

	return accumulated, nil
}

// weightFromDecimal wraps a known non-negative decimal difference.
func weightFromDecimal(kg decimal.Decimal) kernel.Weight {
	w, _ := kernel.NewWeight(kg)
	return w
}
