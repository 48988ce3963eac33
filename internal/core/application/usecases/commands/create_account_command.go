package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

var ErrCreateAccountCommandIsNotConstructed = errors.New(
	"CreateAccountCommand must be created via NewCreateAccountCommand constructor",
)

// CreateAccountCommand represents a request to register a new customer account.
// The identity document is optional; an empty value is treated as absent.
type CreateAccountCommand struct { //nolint:recvcheck //using for validation
	accountID        kernel.UUID
	name             string
	document         *string
	deliveryLocation string
	password         string

	guard guard.ConstructorGuard
}

// NewCreateAccountCommand creates a command to register a new account.
// Validates identifiers and required fields; the deep validation of the
// password lives in the account aggregate.
func NewCreateAccountCommand(
	accountID kernel.UUID,
	name string,
	document *string,
	deliveryLocation string,
	password string,
) (CreateAccountCommand, error) {
	command := CreateAccountCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setAccountID(accountID),
		command.setName(name),
		command.setDeliveryLocation(deliveryLocation),
		command.setPassword(password),
	); err != nil {
		return CreateAccountCommand{}, err
	}

	command.document = document
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateAccountCommand) Validate() error {
	return c.guard.Validate(ErrCreateAccountCommandIsNotConstructed)
}

// AccountID returns the unique identifier for the new account.
func (c CreateAccountCommand) AccountID() kernel.UUID {
	return c.accountID
}

// Name returns the customer's display name.
func (c CreateAccountCommand) Name() string {
	return c.name
}

// Document returns the optional identity document number.
func (c CreateAccountCommand) Document() *string {
	return c.document
}

// DeliveryLocation returns the customer's delivery address.
func (c CreateAccountCommand) DeliveryLocation() string {
	return c.deliveryLocation
}

// Password returns the initial plaintext password.
func (c CreateAccountCommand) Password() string {
	return c.password
}

func (c *CreateAccountCommand) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}

	c.accountID = accountID
	return nil
}

func (c *CreateAccountCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateAccountCommand) setDeliveryLocation(deliveryLocation string) error {
	if deliveryLocation == "" {
		return errs.NewValueIsRequiredError("deliveryLocation")
	}

	c.deliveryLocation = deliveryLocation
	return nil
}

func (c *CreateAccountCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}

	c.password = password
	return nil
}
