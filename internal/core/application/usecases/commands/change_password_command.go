package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

var ErrChangePasswordCommandIsNotConstructed = errors.New(
	"ChangePasswordCommand must be created via NewChangePasswordCommand constructor",
)

// ChangePasswordCommand represents a request to change an account password.
// This is the only write operation exempt from the password-change gate,
// since it is the operation that clears the flag.
type ChangePasswordCommand struct { //nolint:recvcheck //using for validation
	accountID       kernel.UUID
	currentPassword string
	newPassword     string

	guard guard.ConstructorGuard
}

// NewChangePasswordCommand creates a command to change the account password.
// Both the current and the new password must be non-empty.
func NewChangePasswordCommand(
	accountID kernel.UUID,
	currentPassword string,
	newPassword string,
) (ChangePasswordCommand, error) {
	command := ChangePasswordCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setAccountID(accountID),
		command.setCurrentPassword(currentPassword),
		command.setNewPassword(newPassword),
	); err != nil {
		return ChangePasswordCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangePasswordCommand) Validate() error {
	return c.guard.Validate(ErrChangePasswordCommandIsNotConstructed)
}

// AccountID returns the identifier of the account changing its password.
func (c ChangePasswordCommand) AccountID() kernel.UUID {
	return c.accountID
}

// CurrentPassword returns the plaintext password being replaced.
func (c ChangePasswordCommand) CurrentPassword() string {
	return c.currentPassword
}

// NewPassword returns the plaintext replacement password.
func (c ChangePasswordCommand) NewPassword() string {
	return c.newPassword
}

func (c *ChangePasswordCommand) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}

	c.accountID = accountID
	return nil
}

func (c *ChangePasswordCommand) setCurrentPassword(currentPassword string) error {
	if currentPassword == "" {
		return errs.NewValueIsRequiredError("currentPassword")
	}

	c.currentPassword = currentPassword
	return nil
}

func (c *ChangePasswordCommand) setNewPassword(newPassword string) error {
	if newPassword == "" {
		return errs.NewValueIsRequiredError("newPassword")
	}

	c.newPassword = newPassword
	return nil
}
