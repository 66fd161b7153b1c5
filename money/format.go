package money

import (
	"math/big"
	"strings"
)

// String renders the amount in its largest denomination with the
// currency symbol, eg. "$10.50" for 1050 USD minor units.
// Currencies without a registered symbol render with a code
// suffix, eg. "2.50 CHF".
//
// Rendering is exact and deterministic: the minor units are
// divided by 10^decimals using integer arithmetic only, with no
// floating point involved at any precision.
func (a Amount) String() string {
	units := a.Units()

	if a.currency.symbol == "" {
		return units + " " + a.currency.code
	}

	// the sign stays in front of the symbol: "-$4.50".
	if strings.HasPrefix(units, "-") {
		return "-" + a.currency.symbol + units[1:]
	}

	return a.currency.symbol + units
}

// Units returns the undecorated figure in the largest
// denomination, eg. "10.50" for 1050 USD minor units, with
// exactly Decimals() digits after the decimal point.
func (a Amount) Units() string {
	v := a.value.BigInt()

	negative := v.Sign() == -1
	v.Abs(v)

	quo, rem := new(big.Int).QuoRem(
		v,
		decimalsMultiplier(a.currency.decimals),
		new(big.Int),
	)

	units := quo.String()

	if a.currency.decimals > 0 {
		frac := rem.String()
		if pad := int(a.currency.decimals) - len(frac); pad > 0 {
			frac = strings.Repeat("0", pad) + frac
		}

		units += "." + frac
	}

	if negative {
		units = "-" + units
	}

	return units
}

// decimalsMultiplier returns 10^decimals.
func decimalsMultiplier(decimals uint) *big.Int {
	const ten = 10

	return new(big.Int).Exp(
		big.NewInt(ten),
		new(big.Int).SetUint64(uint64(decimals)),
		nil,
	)
}
