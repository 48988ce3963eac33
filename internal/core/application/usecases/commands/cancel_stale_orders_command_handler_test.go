package commands_test

import (
	"testing"
	"time"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelStaleOrdersCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cutoff := time.Now().UTC().AddDate(0, 0, -14)
	cmd, _ := commands.NewCancelStaleOrdersCommand(cutoff)

	first := orderWeighing(t, kernel.NewUUID(), order.Requested, 5)
	second := orderWeighing(t, kernel.NewUUID(), order.Requested, 7)
	stale := []*order.Order{first, second}

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetAllRequestedBefore", mock.Anything, cutoff).Return(stale, nil).Once(),
		repo.On("Update", mock.Anything, first).Return(nil).Once(),
		repo.On("Update", mock.Anything, second).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelStaleOrdersCommandHandler(factory)
	cancelled, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 2, cancelled)
	assert.Equal(t, order.Cancelled, first.Status())
	assert.Equal(t, order.Cancelled, second.Status())
	repo.AssertExpectations(t)
}

func TestCancelStaleOrdersCommandHandler_Handle_NothingStale(t *testing.T) {
	ctx := t.Context()
	cutoff := time.Now().UTC().AddDate(0, 0, -14)
	cmd, _ := commands.NewCancelStaleOrdersCommand(cutoff)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetAllRequestedBefore", mock.Anything, cutoff).Return([]*order.Order(nil), nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelStaleOrdersCommandHandler(factory)
	cancelled, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Zero(t, cancelled)
}

func TestNewCancelStaleOrdersCommand_Validation(t *testing.T) {
	t.Run("should fail with zero cutoff", func(t *testing.T) {
		_, err := commands.NewCancelStaleOrdersCommand(time.Time{})

		require.Error(t, err)
	})
}
