package ports

import (
	"context"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their owner, placement month, and status.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with all its line items.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByCustomerInWindow retrieves all of a customer's orders placed within
	// the given calendar month, regardless of status. Used by quota evaluation;
	// when called inside a transaction the rows are locked (SELECT ... FOR
	// UPDATE) so concurrent placements by the same customer serialize instead
	// of both passing the quota check.
	GetByCustomerInWindow(ctx context.Context, customerID kernel.UUID, window order.MonthlyWindow) ([]*order.Order, error)

	// GetAllRequestedBefore retrieves all orders still in Requested status
	// that were placed before the cutoff. Used by the stale-order cleanup job.
	GetAllRequestedBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
