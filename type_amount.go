package eggworth

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

// Amount represents a monetary value in US dollars.
type Amount struct {
	value decimal.Decimal
}

// A is the Amount factory.
func A[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Amount {
	return Amount{value: newDecimal(value)}
}

// ParseAmount parses a user-supplied dollar figure. It rejects anything
// that is not a non-negative finite number.
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("%w: %q is not a number", ErrInvalidInput, s)
	}
	if d.IsNegative() {
		return Amount{}, fmt.Errorf("%w: %q is negative", ErrInvalidInput, s)
	}
	return Amount{value: d}, nil
}

func (a Amount) IsZero() bool     { return a.value.IsZero() }
func (a Amount) IsPositive() bool { return a.value.IsPositive() }
func (a Amount) IsNegative() bool { return a.value.IsNegative() }
func (a Amount) Equal(b Amount) bool {
	return a.value.Equal(b.value)
}

// Float64 returns the closest float64 to the amount.
func (a Amount) Float64() float64 { return a.value.InexactFloat64() }

// Decimal returns the underlying exact value.
func (a Amount) Decimal() decimal.Decimal { return a.value }

// Billions scales an amount expressed in units of 10^9 dollars to plain
// dollars. Roster net worths are stored in billions.
func (a Amount) Billions() Amount {
	return Amount{value: a.value.Mul(decimal.New(1, 9))}
}

// String returns the plain decimal representation.
func (a Amount) String() string { return a.value.String() }

// Display returns the grouped two-decimal currency form, e.g. "$1,234.56".
func (a Amount) Display() string {
	cur := money.GetCurrency(money.USD)
	cents := a.value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(cents.IntPart())
}

func (a Amount) MarshalJSON() ([]byte, error)  { return a.value.MarshalJSON() }
func (a *Amount) UnmarshalJSON(b []byte) error { return a.value.UnmarshalJSON(b) }
