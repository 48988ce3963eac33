package account

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"

	"golang.org/x/crypto/bcrypt"
)

// Domain errors for account operations.
var (
	// ErrNameIsRequired is returned when attempting to create an account without a display name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrDeliveryLocationIsRequired is returned when attempting to create an account without a delivery location.
	ErrDeliveryLocationIsRequired = errs.NewValueIsRequiredError("deliveryLocation")
	// ErrPasswordIsRequired is returned when an empty password is supplied.
	ErrPasswordIsRequired = errs.NewValueIsRequiredError("password")
	// ErrAccountIsNotConstructed is returned when using an improperly initialized Account.
	ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount or RestoreAccount constructor")
)

// Account represents a customer account in the procurement system.
// It is an aggregate root that manages account identity, the delivery
// location used on order reports, and the password-change enforcement flag.
//
// Business rules:
//   - Account must have a valid UUID, non-empty display name, and non-empty delivery location
//   - The identity document is optional; some accounts lack one
//   - Passwords are stored only as bcrypt hashes
//   - While mustChangePassword is set, every gated write workflow is blocked
//     until the password is actually changed
//
// Example usage:
//
//	acc, err := NewAccount(kernel.NewUUID(), "ACME s.r.l.", nil, "Via Roma 1, Milano", "s3cret")
//	if err != nil {
//	    // Handle construction error
//	}
//	if err := acc.EnsurePasswordChangeNotRequired(); err != nil {
//	    // Block the workflow
//	}
type Account struct {
	// id uniquely identifies the account
	id kernel.UUID
	// name is the customer's display name used on order reports
	name string
	// document is the customer's identity document number, if any
	document *string
	// deliveryLocation is the address used on order reports
	deliveryLocation string
	// passwordHash is the bcrypt hash of the account password
	passwordHash []byte
	// mustChangePassword blocks all gated write workflows while set
	mustChangePassword bool
	// guard ensures the account was properly constructed
	guard guard.ConstructorGuard
}

// NewAccount creates a new Account with the specified parameters.
// This is the only way to create a brand-new valid Account instance.
//
// Parameters:
//   - id: Unique identifier (must be valid UUID)
//   - name: Display name (must be non-empty)
//   - document: Optional identity document number (nil when absent)
//   - deliveryLocation: Delivery address (must be non-empty)
//   - password: Initial plaintext password (must be non-empty; stored hashed)
//
// New accounts start with mustChangePassword unset.
func NewAccount(
	id kernel.UUID,
	name string,
	document *string,
	deliveryLocation string,
	password string,
) (*Account, error) {
	account := &Account{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		account.setID(id),
		account.setName(name),
		account.setDocument(document),
		account.setDeliveryLocation(deliveryLocation),
	); err != nil {
		return nil, err
	}

	if err := account.setPassword(password); err != nil {
		return nil, err
	}

	return account, nil
}

// RestoreAccount reconstructs an Account aggregate from persistent storage,
// including its password hash and password-change flag. The restored account
// behaves identically to one created through normal domain operations.
func RestoreAccount(
	id kernel.UUID,
	name string,
	document *string,
	deliveryLocation string,
	passwordHash []byte,
	mustChangePassword bool,
) (*Account, error) {
	account := &Account{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		account.setID(id),
		account.setName(name),
		account.setDocument(document),
		account.setDeliveryLocation(deliveryLocation),
		account.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	account.mustChangePassword = mustChangePassword
	return account, nil
}

// Validate ensures the Account instance was properly constructed through a constructor.
func (a *Account) Validate() error {
	if a == nil {
		return ErrAccountIsNotConstructed
	}
	return a.guard.Validate(ErrAccountIsNotConstructed)
}

// IsEqual compares two accounts by their unique identifiers.
func (a *Account) IsEqual(other *Account) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the account's unique identifier.
func (a *Account) ID() kernel.UUID {
	return a.id
}

// Name returns the customer's display name.
func (a *Account) Name() string {
	return a.name
}

// Document returns the customer's identity document number.
// Returns nil when the account has no document on file.
func (a *Account) Document() *string {
	return a.document
}

// DeliveryLocation returns the delivery address used on order reports.
func (a *Account) DeliveryLocation() string {
	return a.deliveryLocation
}

// PasswordHash returns the stored bcrypt hash for persistence.
func (a *Account) PasswordHash() []byte {
	return a.passwordHash
}

// MustChangePassword reports whether the account is blocked pending a password change.
func (a *Account) MustChangePassword() bool {
	return a.mustChangePassword
}

// EnsurePasswordChangeNotRequired is the gate every gated write workflow
// runs first, before any other business rule. It produces no effect when
// the flag is clear and returns a PasswordChangeRequiredError when set.
//
// The failure carries no retry semantics: the caller must force a password
// change out-of-band and then retry the original request.
func (a *Account) EnsurePasswordChangeNotRequired() error {
	if a.mustChangePassword {
		return errs.NewPasswordChangeRequiredError(a.id.String())
	}
	return nil
}

// RequirePasswordChange flags the account so that all gated write
// workflows are blocked until ChangePassword is called.
func (a *Account) RequirePasswordChange() {
	a.mustChangePassword = true
}

// ChangePassword replaces the account password and clears the
// password-change flag. This is the only workflow exempt from the gate.
func (a *Account) ChangePassword(newPassword string) error {
	if err := a.setPassword(newPassword); err != nil {
		return err
	}

	a.mustChangePassword = false
	return nil
}

// CheckPassword reports whether the supplied plaintext matches the stored hash.
func (a *Account) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password)) == nil
}

// setID validates and sets the account's unique identifier.
func (a *Account) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

// setName validates and sets the display name.
func (a *Account) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	a.name = name
	return nil
}

// setDocument sets the optional identity document.
// An empty string is normalized to absent.
func (a *Account) setDocument(document *string) error {
	if document != nil && *document == "" {
		document = nil
	}
	a.document = document
	return nil
}

// setDeliveryLocation validates and sets the delivery address.
func (a *Account) setDeliveryLocation(deliveryLocation string) error {
	if deliveryLocation == "" {
		return ErrDeliveryLocationIsRequired
	}
	a.deliveryLocation = deliveryLocation
	return nil
}

// setPassword hashes and stores a plaintext password.
func (a *Account) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("password", err)
	}

	a.passwordHash = hash
	return nil
}

// setPasswordHash stores an already-hashed password during restoration.
func (a *Account) setPasswordHash(passwordHash []byte) error {
	if len(passwordHash) == 0 {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	a.passwordHash = passwordHash
	return nil
}
