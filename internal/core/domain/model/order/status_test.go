package order_test

import (
	"fmt"
	"testing"

	"procurement/internal/core/domain/model/order"
	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should keep stable persisted codes", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Requested))
		assert.Equal(t, 2, int(order.Approved))
		assert.Equal(t, 3, int(order.Cancelled))
	})

	t.Run("should have distinct values", func(t *testing.T) {
		statuses := []order.Status{
			order.Unknown,
			order.Requested,
			order.Approved,
			order.Cancelled,
		}

		for i, status1 := range statuses {
			for j, status2 := range statuses {
				if i != j {
					assert.NotEqual(t, status1, status2,
						"statuses at indices %d and %d should be different", i, j)
				}
			}
		}
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []order.Status{
			order.Requested,
			order.Approved,
			order.Cancelled,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				err := status.Validate()
				require.NoError(t, err)
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "status is invalid")
		assert.Contains(t, err.Error(), "0 is not a valid status")
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		invalidStatuses := []order.Status{
			order.Status(-1),
			order.Status(4),
			order.Status(100),
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), "status is invalid")
				assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid status", int(status)))
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return correct string for valid statuses", func(t *testing.T) {
		assert.Equal(t, "Requested", order.Requested.String())
		assert.Equal(t, "Approved", order.Approved.String())
		assert.Equal(t, "Cancelled", order.Cancelled.String())
	})

	t.Run("should return Unknown for invalid values", func(t *testing.T) {
		assert.Equal(t, "Unknown", order.Unknown.String())
		assert.Equal(t, "Unknown", order.Status(42).String())
	})
}

func TestStatus_CountsTowardQuota(t *testing.T) {
	t.Run("Requested counts toward quota", func(t *testing.T) {
		assert.True(t, order.Requested.CountsTowardQuota())
	})

	t.Run("Approved counts toward quota", func(t *testing.T) {
		assert.True(t, order.Approved.CountsTowardQuota())
	})

	t.Run("Cancelled never counts toward quota", func(t *testing.T) {
		assert.False(t, order.Cancelled.CountsTowardQuota())
	})

	t.Run("values outside the closed set are a contract violation", func(t *testing.T) {
		assert.Panics(t, func() {
			order.Unknown.CountsTowardQuota()
		})
		assert.Panics(t, func() {
			order.Status(99).CountsTowardQuota()
		})
	})
}

func TestStatus_QuotaCountingStatusCodes(t *testing.T) {
	t.Run("exports the stable codes of the counting statuses", func(t *testing.T) {
		assert.Equal(t, []int{1, 2}, order.QuotaCountingStatusCodes())
	})

	t.Run("agrees with the CountsTowardQuota predicate", func(t *testing.T) {
		counted := make(map[int]bool)
		for _, code := range order.QuotaCountingStatusCodes() {
			counted[code] = true
		}

		for _, status := range []order.Status{order.Requested, order.Approved, order.Cancelled} {
			assert.Equal(t, status.CountsTowardQuota(), counted[int(status)],
				"code list and predicate disagree on %s", status)
		}
	})
}

func TestStatus_Approve(t *testing.T) {
	t.Run("should approve from Requested", func(t *testing.T) {
		newStatus, err := order.Requested.Approve()

		require.NoError(t, err)
		assert.Equal(t, order.Approved, newStatus)
	})

	t.Run("should reject approval from terminal statuses", func(t *testing.T) {
		for _, status := range []order.Status{order.Approved, order.Cancelled, order.Unknown} {
			t.Run(fmt.Sprintf("from %s", status.String()), func(t *testing.T) {
				_, err := status.Approve()

				require.Error(t, err)
				assert.Contains(t, err.Error(), "is not a valid status to approve")
			})
		}
	})
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("should cancel from Requested", func(t *testing.T) {
		newStatus, err := order.Requested.Cancel()

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, newStatus)
	})

	t.Run("should reject cancellation from terminal statuses", func(t *testing.T) {
		for _, status := range []order.Status{order.Approved, order.Cancelled, order.Unknown} {
			t.Run(fmt.Sprintf("from %s", status.String()), func(t *testing.T) {
				_, err := status.Cancel()

				require.Error(t, err)
				assert.Contains(t, err.Error(), "is not a valid status to cancel")
			})
		}
	})
}
