package commands

import (
	"context"
	"errors"
	"fmt"
)

// ErrCurrentPasswordMismatch is returned when the supplied current password
// does not match the stored hash.
var ErrCurrentPasswordMismatch = errors.New("current password does not match")

// ChangePasswordCommandHandler handles account password changes.
//
// The handler deliberately skips the password-change gate: while the flag
// is set this is the one operation the account may still perform, and
// completing it clears the flag so gated workflows resume.
type ChangePasswordCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewChangePasswordCommandHandler creates a handler for password change operations.
func NewChangePasswordCommandHandler(uowFactory AccountUoWFactory) ChangePasswordCommandHandler {
	return ChangePasswordCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the password change command.
// Verifies the current password, re-hashes the new one, clears the
// password-change flag, and persists the account.
func (h ChangePasswordCommandHandler) Handle(ctx context.Context, cmd ChangePasswordCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	accountRepo := uow.AccountRepository()
	aggregate, err := accountRepo.Get(ctx, cmd.AccountID())
	if err != nil {
		return err
	}

	if !aggregate.CheckPassword(cmd.CurrentPassword()) {
		return fmt.Errorf("account %s: %w", cmd.AccountID(), ErrCurrentPasswordMismatch)
	}

	if err = aggregate.ChangePassword(cmd.NewPassword()); err != nil {
		return err
	}

	if err = accountRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
