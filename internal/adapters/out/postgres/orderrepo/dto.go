// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by owner, placement month, and status.
//
// The status column stores the stable integer codes of the status registry,
// so persisted rows survive renames of the status display strings.
type OrderDTO struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID      `gorm:"type:uuid;index:idx_orders_customer_created"`
	CreatedAt  time.Time      `gorm:"index:idx_orders_customer_created"`
	Status     int            `gorm:"index"`
	Items      []OrderItemDTO `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one ordered line within an order.
// Only the unit values are stored; subtotals and line weights are derived
// at read time. The position column preserves the original line ordering.
type OrderItemDTO struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"`
	OrderID      uuid.UUID `gorm:"type:uuid;index"`
	Position     int       `gorm:"not null"`
	ProductCode  string    `gorm:"not null"`
	Description  string
	UnitPrice    decimal.Decimal `gorm:"type:numeric(14,2)"`
	Quantity     int             `gorm:"not null"`
	UnitWeightKg decimal.Decimal `gorm:"type:numeric(12,3)"`
}

// TableName specifies the database table name for order line entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := aggregate.Items()
	itemDTOs := make([]OrderItemDTO, 0, len(items))
	for i, item := range items {
		itemDTOs = append(itemDTOs, OrderItemDTO{
			OrderID:      aggregate.ID().Bytes(),
			Position:     i,
			ProductCode:  item.ProductCode(),
			Description:  item.Description(),
			UnitPrice:    item.UnitPrice().Amount(),
			Quantity:     item.Quantity(),
			UnitWeightKg: item.UnitWeight().Kilograms(),
		})
	}

	return OrderDTO{
		ID:         aggregate.ID().Bytes(),
		CustomerID: aggregate.CustomerID().Bytes(),
		CreatedAt:  aggregate.CreatedAt().UTC(),
		Status:     int(aggregate.Status()),
		Items:      itemDTOs,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including its line items using RestoreOrder;
// an out-of-set status code stored in the row surfaces as a validation error.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		unitPrice, priceErr := kernel.NewMoney(itemDTO.UnitPrice)
		if priceErr != nil {
			return nil, priceErr
		}

		unitWeight, weightErr := kernel.NewWeight(itemDTO.UnitWeightKg)
		if weightErr != nil {
			return nil, weightErr
		}

		item, itemErr := order.NewLineItem(
			itemDTO.ProductCode, itemDTO.Description, unitPrice, itemDTO.Quantity, unitWeight)
		if itemErr != nil {
			return nil, itemErr
		}

		items = append(items, item)
	}

	return order.RestoreOrder(id, customerID, dto.CreatedAt.UTC(), order.Status(dto.Status), items)
}
