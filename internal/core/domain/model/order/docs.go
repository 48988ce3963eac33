// Package order provides domain entities and business logic for order management
// in the procurement system. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, line items, and lifecycle
//   - LineItem: A value object for one product line with derived subtotal and weight
//   - Status: A state machine that enforces valid order status transitions and
//     defines which statuses count toward the monthly weight quota
//   - MonthlyWindow: The calendar-month bucket used by the quota check
//
// Key business rules:
//   - Orders must have a valid unique identifier, owning customer, and at least one line item
//   - Order status follows a defined workflow: Requested -> Approved or Cancelled
//   - Requested and Approved orders count toward the monthly weight quota; Cancelled never does
//   - Line subtotals and weights are derived values, recomputed on access
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
