package money

import (
	"fmt"

	"github.com/purposeinplay/go-money/value"
)

// checkCurrency guards every binary operation: operands in
// different currencies never combine implicitly.
func (a Amount) checkCurrency(b Amount) error {
	if a.currency.Equal(b.currency) {
		return nil
	}

	return fmt.Errorf(
		"%w: %s vs %s",
		ErrCurrencyMismatch,
		a.currency.code,
		b.currency.code,
	)
}

// Add returns a new Amount holding a + b.
// The currencies of a and b must match, otherwise the
// operation fails with ErrCurrencyMismatch.
func (a Amount) Add(b Amount) (Amount, error) {
	if err := a.checkCurrency(b); err != nil {
		return Amount{}, err
	}

	return Amount{
		value:    a.value.Add(b.value),
		currency: a.currency,
	}, nil
}

// Sub returns a new Amount holding a - b.
// The currencies of a and b must match.
// The result may be negative: a negative balance is a
// representable amount, not an error.
func (a Amount) Sub(b Amount) (Amount, error) {
	if err := a.checkCurrency(b); err != nil {
		return Amount{}, err
	}

	return Amount{
		value:    a.value.Sub(b.value),
		currency: a.currency,
	}, nil
}

// Mul returns a new Amount holding a scaled by an exact
// integer scalar. Fractional scalars would need a rounding
// policy and are not supported.
func (a Amount) Mul(scalar int64) Amount {
	return Amount{
		value:    a.value.Mul(value.NewIntFromInt64(scalar)),
		currency: a.currency,
	}
}

// Neg returns a new Amount holding -a.
func (a Amount) Neg() Amount {
	return Amount{
		value:    a.value.Neg(),
		currency: a.currency,
	}
}

// Abs returns a new Amount holding the absolute value of a.
func (a Amount) Abs() Amount {
	return Amount{
		value:    a.value.Abs(),
		currency: a.currency,
	}
}

// Cmp compares a and b and returns:
//
//	-1 if a < b
//	 0 if a == b
//	+1 if a > b
//
// The currencies of a and b must match, otherwise the
// operation fails with ErrCurrencyMismatch.
func (a Amount) Cmp(b Amount) (int, error) {
	if err := a.checkCurrency(b); err != nil {
		return 0, err
	}

	return a.value.Cmp(b.value), nil
}

// LessThan returns true if a < b.
// The currencies of a and b must match.
func (a Amount) LessThan(b Amount) (bool, error) {
	c, err := a.Cmp(b)
	if err != nil {
		return false, err
	}

	return c == -1, nil
}

// GreaterThan returns true if a > b.
// The currencies of a and b must match.
func (a Amount) GreaterThan(b Amount) (bool, error) {
	c, err := a.Cmp(b)
	if err != nil {
		return false, err
	}

	return c == 1, nil
}

// Equal reports whether a and b hold the same value in the same
// currency. Unlike Cmp it is total: amounts in different
// currencies are not equal rather than an error, so Equal is
// usable wherever a plain predicate is expected.
func (a Amount) Equal(b Amount) bool {
	return a.currency.Equal(b.currency) && a.value.IsEqual(b.value)
}

// IsZero returns true if the amount holds zero minor units.
func (a Amount) IsZero() bool {
	return a.value.IsZero()
}

// IsNegative returns true if the amount is below zero.
func (a Amount) IsNegative() bool {
	return a.value.Sign() == -1
}
