package commands

import (
	"context"

	"procurement/internal/core/domain/model/account"
)

// CreateAccountCommandHandler handles the registration of customer accounts.
// The password is hashed inside the aggregate; the handler never sees a hash.
type CreateAccountCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewCreateAccountCommandHandler creates a handler for account registration.
func NewCreateAccountCommandHandler(uowFactory AccountUoWFactory) CreateAccountCommandHandler {
	return CreateAccountCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the account registration command.
// New accounts start with the password-change flag clear.
func (h CreateAccountCommandHandler) Handle(ctx context.Context, cmd CreateAccountCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := account.NewAccount(
		cmd.AccountID(), cmd.Name(), cmd.Document(), cmd.DeliveryLocation(), cmd.Password())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.AccountRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
