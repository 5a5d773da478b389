package eggworth

import (
	"errors"
	"fmt"
)

// ErrInvalidInput reports a value the conversion cannot work with: a
// non-numeric or negative amount, or a non-positive unit price. Callers
// must not display a result when they get it.
var ErrInvalidInput = errors.New("invalid input")

// EggsFor returns how many whole eggs amount buys at unitPrice.
//
// The result is floor(amount / unitPrice): truncation, not rounding.
func EggsFor(amount, unitPrice Amount) (Count, error) {
	if !unitPrice.IsPositive() {
		return 0, fmt.Errorf("%w: unit price must be positive, got %s", ErrInvalidInput, unitPrice)
	}
	if amount.IsNegative() {
		return 0, fmt.Errorf("%w: amount must not be negative, got %s", ErrInvalidInput, amount)
	}
	return Count(amount.value.Div(unitPrice.value).Floor().IntPart()), nil
}
