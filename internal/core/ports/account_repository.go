// Package ports defines repository interfaces for the procurement domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"procurement/internal/core/domain/model/account"
	"procurement/internal/core/domain/model/kernel"
)

// AccountRepository defines the persistence contract for account aggregates.
// Provides methods for storing, retrieving, and updating customer accounts
// with their password hash and password-change flag.
type AccountRepository interface {
	// Add persists a new account aggregate to storage.
	// The account must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *account.Account) error

	// Update persists changes to an existing account aggregate.
	// The account must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *account.Account) error

	// Get retrieves an account aggregate by its unique identifier.
	// Returns the complete account including the password-change flag.
	Get(ctx context.Context, id kernel.UUID) (*account.Account, error)

	// GetForUpdate retrieves an account while taking a row lock on it.
	// Order placement locks the customer's account row for the duration of
	// its transaction, so two concurrent placements by the same customer
	// serialize and each quota evaluation sees the other's committed orders.
	// Must be called inside a transaction.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*account.Account, error)
}
