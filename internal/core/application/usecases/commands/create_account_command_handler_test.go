package commands_test

import (
	"testing"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/domain/model/account"
	"procurement/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateAccountCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	accountID := kernel.NewUUID()
	cmd, _ := commands.NewCreateAccountCommand(accountID, "ACME s.r.l.", nil, "Via Roma 1, Milano", "s3cret")

	repo := new(MockAccountRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*account.Account")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateAccountCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)

	added := repo.Calls[0].Arguments.Get(1).(*account.Account)
	assert.True(t, added.ID().IsEqual(accountID))
	assert.False(t, added.MustChangePassword())
	assert.True(t, added.CheckPassword("s3cret"))
	repo.AssertExpectations(t)
}

func TestNewCreateAccountCommand_Validation(t *testing.T) {
	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := commands.NewCreateAccountCommand(kernel.NewUUID(), "", nil, "12 Oak Avenue", "s3cret")

		require.Error(t, err)
	})

	t.Run("should fail with empty password", func(t *testing.T) {
		_, err := commands.NewCreateAccountCommand(kernel.NewUUID(), "Jordan Doe", nil, "12 Oak Avenue", "")

		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.CreateAccountCommand

		require.Error(t, cmd.Validate())
	})
}
