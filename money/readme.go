// Package money implements an Amount type used to represent
// a monetary amount defined by the following properties:
//
// - value, in the lowest denominator form, eg. cents for USD,
// stored as an exact integer of arbitrary precision.
//
// - currency, the denomination of the value, carrying the
// shorthand code, eg. USD, the display symbol, eg. $, and the
// number of digits after the decimals point, eg. 2 for USD.
//
// Amounts are immutable values: every operation returns a new
// Amount, and binary operations refuse to mix currencies.
//
// The package is placed next to the ./value package
// as it imports from it.
package money
