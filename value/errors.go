package value

import (
	"errors"
)

// ErrInvalidValue is returned when an unexpected value
// is given to an Int constructor.
var ErrInvalidValue = errors.New("invalid value")

// ErrOverflow is returned when a value cannot be represented
// in the requested bounded integer type.
var ErrOverflow = errors.New("overflow")
