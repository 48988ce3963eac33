package kernel

import (
	"fmt"

	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrWeightIsNotConstructed is returned when attempting to use an improperly initialized Weight.
// Weights must be created using NewWeight, WeightFromFloat, or ZeroWeight to ensure validity.
var ErrWeightIsNotConstructed = errs.NewValueIsRequiredError(
	"weight must be created via NewWeight, WeightFromFloat, or ZeroWeight constructors")

// Weight represents a mass in kilograms as an immutable value object.
// Weights are always non-negative; a zero weight is valid and represents
// weight-free products that do not consume purchase quota.
//
// Weight is backed by decimal arithmetic so quota comparisons are exact:
// 25kg + 5.01kg is strictly greater than 30kg, with no floating-point drift.
//
// Example:
//
//	w, err := kernel.NewWeight(decimal.RequireFromString("2.5"))
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(w) // Output: 2.5 kg
type Weight struct { //nolint:recvcheck //using for validation
	kg    decimal.Decimal
	guard guard.ConstructorGuard
}

// NewWeight creates a Weight from a decimal number of kilograms.
// Returns an error if the value is negative.
func NewWeight(kg decimal.Decimal) (Weight, error) {
	w := Weight{
		guard: guard.NewConstructorGuard(),
	}

	if err := w.setKilograms(kg); err != nil {
		return Weight{}, err
	}

	return w, nil
}

// WeightFromFloat creates a Weight from a float64 number of kilograms.
// Convenience constructor for handlers and tests; the value is converted
// to decimal before validation.
func WeightFromFloat(kg float64) (Weight, error) {
	return NewWeight(decimal.NewFromFloat(kg))
}

// ZeroWeight returns the valid zero-kilogram weight.
func ZeroWeight() Weight {
	return Weight{
		kg:    decimal.Zero,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate checks if the Weight was properly constructed using a constructor.
// The zero value of Weight is invalid and will fail this validation.
func (w Weight) Validate() error {
	return w.guard.Validate(ErrWeightIsNotConstructed)
}

// Kilograms returns the underlying decimal kilogram value.
func (w Weight) Kilograms() decimal.Decimal {
	return w.kg
}

// Float64 returns the kilogram value as a float64 for display purposes.
// Quota arithmetic must use the decimal value, not this conversion.
func (w Weight) Float64() float64 {
	f, _ := w.kg.Float64()
	return f
}

// IsZero reports whether the weight is exactly zero kilograms.
func (w Weight) IsZero() bool {
	return w.kg.IsZero()
}

// Add returns the sum of two weights.
// Both weights must be properly constructed for the operation to succeed.
func (w Weight) Add(other Weight) (Weight, error) {
	if err := w.Validate(); err != nil {
		return Weight{}, err
	}
	if err := other.Validate(); err != nil {
		return Weight{}, err
	}

	return Weight{
		kg:    w.kg.Add(other.kg),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// MulInt returns the weight multiplied by a non-negative integer factor.
// Used to compute line total weights (unit weight × quantity).
func (w Weight) MulInt(factor int) (Weight, error) {
	if err := w.Validate(); err != nil {
		return Weight{}, err
	}
	if factor < 0 {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause("factor",
			fmt.Errorf("%d is negative", factor))
	}

	return Weight{
		kg:    w.kg.Mul(decimal.NewFromInt(int64(factor))),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// GreaterThan reports whether w is strictly heavier than other.
func (w Weight) GreaterThan(other Weight) bool {
	return w.kg.GreaterThan(other.kg)
}

// IsEqual compares two weights for equality of their kilogram values.
func (w Weight) IsEqual(other Weight) bool {
	return w.kg.Equal(other.kg)
}

// String returns a human-readable representation such as "2.5 kg".
// This method implements the fmt.Stringer interface.
func (w Weight) String() string {
	return fmt.Sprintf("%s kg", w.kg)
}

// setKilograms sets the kilogram value with validation.
// Note: We intentionally use a pointer receiver here while other methods use value receivers.
// Pointer receivers on private setters enable self-encapsulated validation of business
// requirements during object construction.
func (w *Weight) setKilograms(kg decimal.Decimal) error {
	if kg.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("weight",
			fmt.Errorf("%s kg is negative", kg))
	}

	w.kg = kg
	return nil
}
