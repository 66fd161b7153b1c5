package money

import (
	"fmt"

	"github.com/purposeinplay/go-money/value"
)

// Currency describes a monetary denomination.
//
// Decimals represent the supported number of digits, after the decimals point.
// Example:
// - dollars decimals = 2 (smallest denomination: cents)
// - yen decimals = 0 (no smaller denomination in circulation)
// - bitcoin decimals = 8 (smallest denomination: satoshi)
// - ethereum decimals = 18 (smallest denomination: wei).
type Currency struct {
	// shorthand for the currency, eg. USD.
	code string

	// display symbol, eg. $. May be empty.
	symbol string

	// number of digits after the decimal point.
	decimals uint
}

// Currencies known to the package registry.
var (
	USD = Currency{code: "USD", symbol: "$", decimals: 2}
	EUR = Currency{code: "EUR", symbol: "€", decimals: 2}
	GBP = Currency{code: "GBP", symbol: "£", decimals: 2}
	JPY = Currency{code: "JPY", symbol: "¥", decimals: 0}
	CHF = Currency{code: "CHF", symbol: "", decimals: 2}
	BTC = Currency{code: "BTC", symbol: "₿", decimals: 8}
	ETH = Currency{code: "ETH", symbol: "Ξ", decimals: 18}
)

var currencies = map[string]Currency{
	USD.code: USD,
	EUR.code: EUR,
	GBP.code: GBP,
	JPY.code: JPY,
	CHF.code: CHF,
	BTC.code: BTC,
	ETH.code: ETH,
}

// NewCurrency creates a currency outside the package registry.
// The code must be not empty.
func NewCurrency(code, symbol string, decimals uint) (Currency, error) {
	if code == "" {
		return Currency{}, fmt.Errorf(
			"%w: empty currency code",
			value.ErrInvalidValue,
		)
	}

	return Currency{
		code:     code,
		symbol:   symbol,
		decimals: decimals,
	}, nil
}

// CurrencyFromCode looks a currency up in the package registry.
func CurrencyFromCode(code string) (Currency, error) {
	c, ok := currencies[code]
	if !ok {
		return Currency{}, fmt.Errorf(
			"%w: code \"%s\"",
			ErrUnknownCurrency,
			code,
		)
	}

	return c, nil
}

// Code returns the shorthand for the currency.
func (c Currency) Code() string {
	return c.code
}

// Symbol returns the display symbol of the currency.
// It is empty for currencies without a registered symbol.
func (c Currency) Symbol() string {
	return c.symbol
}

// Decimals returns the number of digits after the
// decimal point.
func (c Currency) Decimals() uint {
	return c.decimals
}

// Equal reports whether c and x denote the same currency.
// Only the code takes part in the identity.
func (c Currency) Equal(x Currency) bool {
	return c.code == x.code
}

// String returns the currency code.
func (c Currency) String() string {
	return c.code
}
