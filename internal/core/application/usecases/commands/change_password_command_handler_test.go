package commands_test

import (
	"testing"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestChangePasswordCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	accountID := kernel.NewUUID()
	acc := newTestAccount(t, accountID, true)
	cmd, _ := commands.NewChangePasswordCommand(accountID, "s3cret", "n3w-s3cret")

	repo := new(MockAccountRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, accountID).Return(acc, nil).Once(),
		repo.On("Update", mock.Anything, acc).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangePasswordCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	// The gate lifts as soon as the password change commits.
	assert.False(t, acc.MustChangePassword())
	assert.True(t, acc.CheckPassword("n3w-s3cret"))
	repo.AssertExpectations(t)
}

func TestChangePasswordCommandHandler_Handle_WrongCurrentPassword(t *testing.T) {
	ctx := t.Context()
	accountID := kernel.NewUUID()
	acc := newTestAccount(t, accountID, true)
	cmd, _ := commands.NewChangePasswordCommand(accountID, "wrong", "n3w-s3cret")

	repo := new(MockAccountRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, accountID).Return(acc, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangePasswordCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCurrentPasswordMismatch)
	assert.True(t, acc.MustChangePassword())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestNewChangePasswordCommand_Validation(t *testing.T) {
	t.Run("should fail with empty new password", func(t *testing.T) {
		_, err := commands.NewChangePasswordCommand(kernel.NewUUID(), "s3cret", "")

		require.Error(t, err)
	})

	t.Run("should fail with empty current password", func(t *testing.T) {
		_, err := commands.NewChangePasswordCommand(kernel.NewUUID(), "", "n3w")

		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.ChangePasswordCommand

		require.Error(t, cmd.Validate())
	})
}
