// Package accountrepo provides data transfer objects and mapping functions for account persistence.
// This package implements the repository pattern for the account domain aggregate, handling
// the conversion between domain entities and database representations.
package accountrepo

import (
	"procurement/internal/core/domain/model/account"
	"procurement/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AccountDTO represents the database structure for persisting account aggregates.
// The password is stored only as its bcrypt hash; the plaintext never reaches
// this layer.
type AccountDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name               string    `gorm:"not null"`
	Document           *string
	DeliveryLocation   string `gorm:"not null"`
	PasswordHash       []byte `gorm:"not null"`
	MustChangePassword bool   `gorm:"not null;default:false"`
}

// TableName specifies the database table name for account entities.
// Overrides GORM's default naming convention to use "accounts".
func (AccountDTO) TableName() string {
	return "accounts"
}

// fromDomain converts an account domain aggregate to its database representation.
func fromDomain(aggregate *account.Account) AccountDTO {
	return AccountDTO{
		ID:                 aggregate.ID().Bytes(),
		Name:               aggregate.Name(),
		Document:           aggregate.Document(),
		DeliveryLocation:   aggregate.DeliveryLocation(),
		PasswordHash:       aggregate.PasswordHash(),
		MustChangePassword: aggregate.MustChangePassword(),
	}
}

// toDomain converts a database DTO to an account domain aggregate.
func toDomain(dto AccountDTO) (*account.Account, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return account.RestoreAccount(
		id, dto.Name, dto.Document, dto.DeliveryLocation, dto.PasswordHash, dto.MustChangePassword)
}
