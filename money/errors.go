package money

import (
	"errors"
)

// ErrCurrencyMismatch is returned by binary operations when
// the operand currencies differ.
// Amounts are never converted implicitly.
var ErrCurrencyMismatch = errors.New("currency mismatch")

// ErrUnknownCurrency is returned when a currency code is not
// present in the registry.
var ErrUnknownCurrency = errors.New("unknown currency")
