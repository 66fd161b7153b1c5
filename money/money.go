package money

import (
	"fmt"

	"github.com/purposeinplay/go-money/value"
)

// Amount represents an exact monetary amount in a single currency.
//
// ! The value is stored in its smallest denomination of the currency.
// Example: for dollars the amount is stored in cents:
// for 97.23 dollars, the value is 9723.
//
// Amount is immutable: arithmetic produces a new Amount and never
// mutates the receiver, so values may be shared freely between
// goroutines without locking.
type Amount struct {
	// value of the amount, stored as an int, in the smallest
	// denomination of the currency.
	value value.Int

	// denomination of the value.
	currency Currency
}

// New creates a new Amount from an amount of minor units.
// It always succeeds: any int64 quantity is representable.
func New(minorUnits int64, currency Currency) Amount {
	return Amount{
		value:    value.NewIntFromInt64(minorUnits),
		currency: currency,
	}
}

// NewFromValueInt creates a new Amount from a value.Int value.
// The value must be valid.
func NewFromValueInt(v value.Int, currency Currency) (Amount, error) {
	if !v.IsValid() {
		return Amount{}, fmt.Errorf("%w: nil value", value.ErrInvalidValue)
	}

	return Amount{
		value:    v,
		currency: currency,
	}, nil
}

// NewFromStringValue creates a new Amount from a string value.
// The value must be not empty.
// The value must be a valid int.
func NewFromStringValue(valueStr string, currency Currency) (Amount, error) {
	if valueStr == "" {
		return Amount{}, fmt.Errorf(
			"%w: empty string value",
			value.ErrInvalidValue,
		)
	}

	v, err := value.NewIntFromString(valueStr)
	if err != nil {
		return Amount{}, fmt.Errorf(
			"new value from string: %w",
			err,
		)
	}

	return Amount{
		value:    v,
		currency: currency,
	}, nil
}

// Must returns Amount if err is nil and panics otherwise.
func Must(amount Amount, err error) Amount {
	if err != nil {
		panic(err)
	}

	return amount
}

// Value returns the amount value in minor units.
func (a Amount) Value() value.Int {
	return a.value
}

// Currency returns the denomination of the Amount.
func (a Amount) Currency() Currency {
	return a.currency
}

// CurrencyCode returns the shorthand for the Currency of the Amount.
func (a Amount) CurrencyCode() string {
	return a.currency.code
}

// Decimals returns the number of decimals for the amount.
func (a Amount) Decimals() uint {
	return a.currency.decimals
}
