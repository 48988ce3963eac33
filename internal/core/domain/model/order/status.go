package order

import (
	"fmt"
	"sort"

	"procurement/internal/pkg/errs"
)

// Status represents the lifecycle state of a purchase order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Requested ──┬──> Approved
//	            │
//	            └──> Cancelled
//
// Approved and Cancelled are terminal: an order transitions out of
// Requested exactly once and is never re-opened.
//
// The integer codes are stable and persisted as-is (1=Requested,
// 2=Approved, 3=Cancelled); they must not be renumbered, existing
// stored data depends on them.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Requested is the initial status when an order is first placed.
	// Requested orders count toward the monthly weight quota.
	Requested

	// Approved indicates the order passed the approval workflow.
	// Approved orders count toward the monthly weight quota.
	Approved

	// Cancelled indicates the order was withdrawn. Cancelled orders never
	// count toward the quota; cancelling an order frees its weight
	// immediately for all future evaluations.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Requested: "Requested",
		Approved:  "Approved",
		Cancelled: "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Requested: "Requested",
		Approved:  "Approved",
		Cancelled: "Cancelled",
	}
}

// quotaCountingStatuses is the single source of truth for which lifecycle
// states consume the monthly weight quota. The set is closed: every valid
// status must appear here exactly once.
func quotaCountingStatuses() map[Status]bool {
	return map[Status]bool{
		Requested: true,
		Approved:  true,
		Cancelled: false,
	}
}

// QuotaCountingStatusCodes returns the integer codes of every status that
// consumes the monthly weight quota, in ascending order. Derived from the
// same table as CountsTowardQuota, so read paths that filter in SQL (where
// the predicate itself cannot run) stay in sync with the registry.
func QuotaCountingStatusCodes() []int {
	codes := make([]int, 0, len(quotaCountingStatuses()))
	for status, counts := range quotaCountingStatuses() {
		if counts {
			codes = append(codes, int(status))
		}
	}
	sort.Ints(codes)
	return codes
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Requested, Approved, Cancelled.
// Unknown (0) and any other values are invalid.
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
//
// Returns "Requested", "Approved", or "Cancelled" for valid statuses and
// "Unknown" for anything else. Implements the fmt.Stringer interface and
// is safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// CountsTowardQuota reports whether an order in this status consumes the
// monthly purchase-weight quota. Requested and Approved count; Cancelled
// does not.
//
// Status values are internally controlled, never user input, so a value
// outside the closed set is a programming-contract violation: this method
// panics rather than returning an error. Data read from storage must be
// checked with Validate before reaching this method.
func (s Status) CountsTowardQuota() bool {
	counts, ok := quotaCountingStatuses()[s]
	if !ok {
		panic(fmt.Sprintf("order: status %d is outside the closed status set", int(s)))
	}
	return counts
}

// ValidateApprove checks if the status allows approval without performing the transition.
//
// Only Requested orders can be approved; Approved and Cancelled are
// terminal states.
func (s Status) ValidateApprove() error {
	if s != Requested {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to approve", s.String()),
		)
	}
	return nil
}

// ValidateCancel checks if the status allows cancellation without performing the transition.
//
// Only Requested orders can be cancelled; Approved and Cancelled are
// terminal states.
func (s Status) ValidateCancel() error {
	if s != Requested {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}
	return nil
}

// Approve transitions the status to Approved.
//
// Valid transitions:
//   - Requested -> Approved
//
// Returns (0, error) if the transition is not allowed from the current
// status. This method is used by Order.Approve() to enforce state
// transitions.
func (s Status) Approve() (Status, error) {
	if err := s.ValidateApprove(); err != nil {
		return 0, err
	}

	return Approved, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Requested -> Cancelled
//
// Returns (0, error) if the transition is not allowed from the current
// status. This method is used by Order.Cancel() to enforce state
// transitions.
func (s Status) Cancel() (Status, error) {
	if err := s.ValidateCancel(); err != nil {
		return 0, err
	}

	return Cancelled, nil
}
