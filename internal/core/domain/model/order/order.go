package order

import (
	"errors"
	"fmt"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order represents one purchase request. It is the aggregate root that manages
// the order lifecycle from placement through approval or cancellation.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and customer identifier
//   - Must have a non-zero creation timestamp
//   - Must carry at least one line item
//   - Status transitions follow the Requested -> Approved/Cancelled state machine
//   - Total weight and grand total are derived from the line items, never stored
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods. Orders are owned by the customer
// account that created them and mutated only by the approval/cancellation
// workflow.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID identifies the account that placed the order
	customerID kernel.UUID

	// createdAt is the placement timestamp used for monthly quota bucketing
	createdAt time.Time

	// status represents the current state in the order lifecycle
	status Status

	// items are the ordered product lines (never empty)
	items []LineItem

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in Requested status with validation.
// This is the only way to create a brand-new valid Order.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - customerID: Identifier of the owning account (must be valid UUID)
//   - createdAt: Placement timestamp (must be non-zero; passed explicitly for testability)
//   - items: Ordered line items (must contain at least one validated item)
//
// Returns the created order if all validations pass, or a validation error.
func NewOrder(id kernel.UUID, customerID kernel.UUID, createdAt time.Time, items []LineItem) (*Order, error) {
	order := &Order{
		status:        Requested,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setCreatedAt(createdAt),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence with an explicit status.
// Unlike NewOrder it accepts any valid status, since stored orders may already
// be Approved or Cancelled. The status is validated against the closed set;
// an out-of-set value indicates corrupted data and is rejected.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	createdAt time.Time,
	status Status,
	items []LineItem,
) (*Order, error) {
	order := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setCreatedAt(createdAt),
		order.setStatus(status),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a constructor.
// This prevents bypassing validation by directly instantiating the struct.
// It should be called when reconstructing orders from persistence to ensure
// data integrity.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the account that placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// CreatedAt returns the placement timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Items returns a copy of the ordered line items, preserving order.
func (o *Order) Items() []LineItem {
	items := make([]LineItem, len(o.items))
	copy(items, o.items)
	return items
}

// TotalWeight returns the sum of all line total weights in kilograms.
// Derived from the items on every call; a zero total is valid
// (weight-free products do not consume quota).
func (o *Order) TotalWeight() kernel.Weight {
	total := kernel.ZeroWeight()
	for _, item := range o.items {
		total, _ = total.Add(item.TotalWeight())
	}
	return total
}

// GrandTotal returns the sum of all line subtotals.
// Derived from the items on every call.
func (o *Order) GrandTotal() kernel.Money {
	total := kernel.ZeroMoney()
	for _, item := range o.items {
		total, _ = total.Add(item.Subtotal())
	}
	return total
}

// CountsTowardQuota reports whether this order currently consumes the
// monthly weight quota, per its status.
func (o *Order) CountsTowardQuota() bool {
	return o.status.CountsTowardQuota()
}

// Approve marks the order as approved.
//
// Business rules:
//   - The order must be in Requested status
//   - Approved is a terminal state with no further transitions
//
// Returns an error if the order is not in Requested status.
func (o *Order) Approve() error {
	newStatus, err := o.status.Approve()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel marks the order as cancelled.
//
// Business rules:
//   - The order must be in Requested status
//   - Cancelled is a terminal state with no further transitions
//
// Cancelling frees the order's weight immediately for all future quota
// evaluations: the quota is a live recomputation over current statuses,
// not a ledger of debits and credits.
//
// Returns an error if the order is not in Requested status.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setCustomerID validates and sets the owning account identifier.
// This is a private method used only during construction.
func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return fmt.Errorf("customerID: %w", err)
	}
	o.customerID = customerID
	return nil
}

// setCreatedAt validates and sets the placement timestamp.
// This is a private method used only during construction.
func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}

// setStatus validates and sets the lifecycle status.
// This is a private method used only during restoration.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// setItems validates and sets the ordered line items.
// This is a private method used only during construction.
func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for i, item := range items {
		if err := item.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("items[%d]", i), err)
		}
	}

	o.items = make([]LineItem, len(items))
	copy(o.items, items)
	return nil
}
