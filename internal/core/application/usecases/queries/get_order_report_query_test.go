package queries_test

import (
	"testing"
	"time"

	"procurement/internal/core/application/usecases/queries"
	"procurement/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderReportQuery(t *testing.T) {
	t.Run("should create valid query", func(t *testing.T) {
		orderID := kernel.NewUUID()

		query, err := queries.NewGetOrderReportQuery(orderID)

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.True(t, query.OrderID().IsEqual(orderID))
	})

	t.Run("should fail with invalid order id", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := queries.NewGetOrderReportQuery(invalidID)

		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var query queries.GetOrderReportQuery

		require.Error(t, query.Validate())
	})
}

func TestNewGetMonthlyQuotaUsageQuery(t *testing.T) {
	t.Run("should create valid query", func(t *testing.T) {
		customerID := kernel.NewUUID()
		at := time.Date(2025, time.March, 17, 9, 0, 0, 0, time.UTC)

		query, err := queries.NewGetMonthlyQuotaUsageQuery(customerID, at)

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.True(t, query.CustomerID().IsEqual(customerID))
		assert.Equal(t, at, query.ReferenceTime())
	})

	t.Run("should fail with invalid customer id", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := queries.NewGetMonthlyQuotaUsageQuery(invalidID, time.Now())

		require.Error(t, err)
	})

	t.Run("should fail with zero reference time", func(t *testing.T) {
		_, err := queries.NewGetMonthlyQuotaUsageQuery(kernel.NewUUID(), time.Time{})

		require.Error(t, err)
	})
}
