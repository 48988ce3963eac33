package order

import (
	"errors"
	"fmt"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

var (
	// ErrLineItemIsNotConstructed is returned when a LineItem instance was not
	// created through the NewLineItem factory method.
	ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")
)

// MinQuantityPerLine is the smallest quantity a line item may carry unless a
// stricter policy minimum is configured.
const MinQuantityPerLine = 1

// LineItem represents one product within an order.
//
// Subtotal and total weight are always derived from unit price, unit weight,
// and quantity; they are computed on access and never stored, so they cannot
// drift from the fields they are derived from.
type LineItem struct { //nolint:recvcheck //using for validation
	productCode string
	description string
	unitPrice   kernel.Money
	quantity    int
	unitWeight  kernel.Weight

	guard guard.ConstructorGuard
}

// NewLineItem creates a validated LineItem.
//
// Validations:
//   - productCode must not be empty
//   - unitPrice and unitWeight must be properly constructed value objects
//   - quantity must be at least MinQuantityPerLine
//
// A zero unit weight is valid: weight-free products do not consume quota.
func NewLineItem(
	productCode string,
	description string,
	unitPrice kernel.Money,
	quantity int,
	unitWeight kernel.Weight,
) (LineItem, error) {
	item := LineItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProductCode(productCode),
		item.setDescription(description),
		item.setUnitPrice(unitPrice),
		item.setQuantity(quantity),
		item.setUnitWeight(unitWeight),
	); err != nil {
		return LineItem{}, err
	}

	return item, nil
}

// Validate ensures the LineItem was created through the constructor.
func (li LineItem) Validate() error {
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}

// ProductCode returns the product code of the line.
func (li LineItem) ProductCode() string {
	return li.productCode
}

// Description returns the human-readable product description.
func (li LineItem) Description() string {
	return li.description
}

// UnitPrice returns the price of a single unit.
func (li LineItem) UnitPrice() kernel.Money {
	return li.unitPrice
}

// Quantity returns the ordered quantity.
func (li LineItem) Quantity() int {
	return li.quantity
}

// UnitWeight returns the weight of a single unit.
func (li LineItem) UnitWeight() kernel.Weight {
	return li.unitWeight
}

// Subtotal returns unit price × quantity. The value is derived on every
// call; it is never stored or settable independently.
func (li LineItem) Subtotal() kernel.Money {
	subtotal, _ := li.unitPrice.MulInt(li.quantity)
	return subtotal
}

// TotalWeight returns unit weight × quantity. The value is derived on every
// call; it is never stored or settable independently.
func (li LineItem) TotalWeight() kernel.Weight {
	total, _ := li.unitWeight.MulInt(li.quantity)
	return total
}

func (li *LineItem) setProductCode(productCode string) error {
	if productCode == "" {
		return errs.NewValueIsRequiredError("productCode")
	}

	li.productCode = productCode
	return nil
}

func (li *LineItem) setDescription(description string) error {
	li.description = description
	return nil
}

func (li *LineItem) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}

	li.unitPrice = unitPrice
	return nil
}

func (li *LineItem) setQuantity(quantity int) error {
	if quantity < MinQuantityPerLine {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is less than %d", quantity, MinQuantityPerLine))
	}

	li.quantity = quantity
	return nil
}

func (li *LineItem) setUnitWeight(unitWeight kernel.Weight) error {
	if err := unitWeight.Validate(); err != nil {
		return err
	}

	li.unitWeight = unitWeight
	return nil
}
