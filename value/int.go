// Package value implements an arbitrary-precision integer value
// type used as the numeric core for exact monetary arithmetic.
package value

import (
	"fmt"
	"math/big"
)

var (
	// NilInt has the `valid` property set to false.
	NilInt = Int{valid: false}

	// ZeroInt has the `valid` property set to true.
	ZeroInt = Int{valid: true}
)

// Int represents an immutable arbitrary-precision integer.
//
// ! This is intended to be used for exact arithmetic: every
// operation returns a new Int and never mutates the receiver,
// so values may be shared freely between goroutines.
type Int struct {
	bigInt big.Int

	valid bool
}

// NewIntFromString returns a new Int with the
// internal big.Int parsed from a base-10 string.
func NewIntFromString(s string) (Int, error) {
	if s == "" {
		return NilInt, fmt.Errorf("%w: empty string value", ErrInvalidValue)
	}

	const base = 10

	b, ok := new(big.Int).SetString(s, base)
	if !ok {
		return NilInt, fmt.Errorf(
			"%w: string \"%s\" is not valid",
			ErrInvalidValue,
			s,
		)
	}

	return Int{
		bigInt: *b,
		valid:  true,
	}, nil
}

// NewIntFromInt64 returns a new Int with the
// internal big.Int set to v.
func NewIntFromInt64(v int64) Int {
	return Int{
		bigInt: *big.NewInt(v),
		valid:  true,
	}
}

// NewIntFromBigInt returns a new Int with the internal
// big.Int set to a copy of i.
// A nil i yields NilInt.
func NewIntFromBigInt(i *big.Int) Int {
	if i == nil {
		return NilInt
	}

	return Int{
		bigInt: *new(big.Int).Set(i),
		valid:  true,
	}
}

// MustNewInt returns Int if err is nil and panics otherwise.
func MustNewInt(v Int, err error) Int {
	if err != nil {
		panic(err)
	}

	return v
}

// IsValid returns true if the Int was produced by a
// constructor rather than being the zero value.
func (v Int) IsValid() bool {
	return v.valid
}

// Add returns a new Int holding v + x.
// The result is NilInt if either operand is invalid.
func (v Int) Add(x Int) Int {
	if !v.valid || !x.valid {
		return NilInt
	}

	return Int{
		bigInt: *new(big.Int).Add(&v.bigInt, &x.bigInt),
		valid:  true,
	}
}

// Sub returns a new Int holding v - x.
// The result is NilInt if either operand is invalid.
func (v Int) Sub(x Int) Int {
	if !v.valid || !x.valid {
		return NilInt
	}

	return Int{
		bigInt: *new(big.Int).Sub(&v.bigInt, &x.bigInt),
		valid:  true,
	}
}

// Mul returns a new Int holding v * x.
// The result is NilInt if either operand is invalid.
func (v Int) Mul(x Int) Int {
	if !v.valid || !x.valid {
		return NilInt
	}

	return Int{
		bigInt: *new(big.Int).Mul(&v.bigInt, &x.bigInt),
		valid:  true,
	}
}

// Neg returns a new Int holding -v.
// The result is NilInt if v is invalid.
func (v Int) Neg() Int {
	if !v.valid {
		return NilInt
	}

	return Int{
		bigInt: *new(big.Int).Neg(&v.bigInt),
		valid:  true,
	}
}

// Abs returns a new Int holding the absolute value of v.
// The result is NilInt if v is invalid.
func (v Int) Abs() Int {
	if !v.valid {
		return NilInt
	}

	return Int{
		bigInt: *new(big.Int).Abs(&v.bigInt),
		valid:  true,
	}
}

// Cmp compares v and x and returns:
//
//	-1 if v < x
//	 0 if v == x
//	+1 if v > x
//
// Callers must guard invalid operands with IsValid.
func (v Int) Cmp(x Int) int {
	return v.bigInt.Cmp(&x.bigInt)
}

// IsGreaterThan compares v and x and returns
// true if v is greater than x.
func (v Int) IsGreaterThan(x Int) bool {
	if v.valid && x.valid {
		return v.bigInt.Cmp(&x.bigInt) == 1
	}

	return false
}

// IsEqual compares v and x and returns
// true if v is equal to x.
func (v Int) IsEqual(x Int) bool {
	if v.valid && x.valid {
		return v.bigInt.Cmp(&x.bigInt) == 0
	}

	return v.valid == x.valid
}

// IsLesserThan compares v and x and returns
// true if v is lesser than x.
func (v Int) IsLesserThan(x Int) bool {
	if v.valid && x.valid {
		return v.bigInt.Cmp(&x.bigInt) == -1
	}

	return false
}

// Sign returns -1, 0 or +1 depending on whether
// v is negative, zero or positive.
func (v Int) Sign() int {
	return v.bigInt.Sign()
}

// IsZero returns true if v is valid and holds zero.
func (v Int) IsZero() bool {
	return v.valid && v.bigInt.Sign() == 0
}

// BigInt returns a copy of the internal big.Int, so callers
// cannot mutate v through the returned pointer.
func (v Int) BigInt() *big.Int {
	return new(big.Int).Set(&v.bigInt)
}

// Int64 returns the int64 representation of v.
// It fails with ErrOverflow if v cannot be represented
// in an int64.
func (v Int) Int64() (int64, error) {
	if !v.bigInt.IsInt64() {
		return 0, fmt.Errorf(
			"%w: value %s does not fit in an int64",
			ErrOverflow,
			v.bigInt.String(),
		)
	}

	return v.bigInt.Int64(), nil
}

// String returns the decimal representation of
// the internal big.Int.
func (v Int) String() string {
	return v.bigInt.String()
}
