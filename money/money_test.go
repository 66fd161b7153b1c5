package money_test

import (
	"testing"

	"github.com/matryer/is"
	"github.com/pkg/errors"
	"github.com/purposeinplay/go-money/money"
	"github.com/purposeinplay/go-money/value"
)

func TestConstructors(t *testing.T) {
	t.Parallel()

	t.Run("New", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		a := money.New(1050, money.USD)

		i.Equal("1050", a.Value().String())
		i.Equal("USD", a.CurrencyCode())
		i.Equal(uint(2), a.Decimals())
	})

	t.Run("NewFromValueInt", func(t *testing.T) {
		t.Parallel()

		t.Run("Success", func(t *testing.T) {
			t.Parallel()

			i := is.New(t)

			a, err := money.NewFromValueInt(
				value.NewIntFromInt64(100),
				money.EUR,
			)
			i.NoErr(err)

			i.Equal("100", a.Value().String())
		})

		t.Run("NilValue", func(t *testing.T) {
			t.Parallel()

			i := is.New(t)

			_, err := money.NewFromValueInt(
				value.NilInt,
				money.EUR,
			)

			i.True(errors.Is(err, value.ErrInvalidValue))

			i.Equal("invalid value: nil value", err.Error())
		})
	})

	t.Run("NewFromStringValue", func(t *testing.T) {
		t.Parallel()

		t.Run("Success", func(t *testing.T) {
			t.Parallel()

			i := is.New(t)

			a, err := money.NewFromStringValue(
				"123456",
				money.ETH,
			)
			i.NoErr(err)

			i.Equal("123456", a.Value().String())
			i.Equal(uint(18), a.Decimals())
		})

		t.Run("InvalidStringValue", func(t *testing.T) {
			t.Parallel()

			i := is.New(t)

			_, err := money.NewFromStringValue(
				"value",
				money.ETH,
			)

			i.True(errors.Is(err, value.ErrInvalidValue))

			i.Equal("new value from string: "+
				"invalid value: string \"value\" is not valid",
				err.Error())
		})

		t.Run("EmptyStringValue", func(t *testing.T) {
			t.Parallel()

			i := is.New(t)

			_, err := money.NewFromStringValue(
				"",
				money.ETH,
			)

			i.True(errors.Is(err, value.ErrInvalidValue))

			i.Equal("invalid value: empty string value", err.Error())
		})
	})

	t.Run("Must", func(t *testing.T) {
		t.Parallel()

		t.Run("NoError", func(t *testing.T) {
			t.Parallel()

			i := is.New(t)

			a := money.Must(money.NewFromStringValue("100", money.USD))

			i.Equal("100", a.Value().String())
		})

		t.Run("Panics", func(t *testing.T) {
			t.Parallel()

			i := is.New(t)

			defer func() {
				i.True(recover() != nil)
			}()

			_ = money.Must(money.NewFromStringValue("", money.USD))
		})
	})
}

func TestAccessors(t *testing.T) {
	t.Parallel()

	i := is.New(t)

	a := money.New(9723, money.USD)

	i.Equal("USD", a.Currency().Code())
	i.Equal("$", a.Currency().Symbol())
	i.Equal(uint(2), a.Currency().Decimals())

	// Value returns a self-contained copy.
	a.Value().BigInt().SetInt64(0)

	i.Equal("9723", a.Value().String())
}
