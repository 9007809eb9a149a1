package decint

import (
	"github.com/zeebo/errs"
)

// Error classes returned by this package. Test for them with Has, for
// example ErrDivisionByZero.Has(err).
var (
	// ErrInvalidDigit is returned when parsing meets a character other than
	// an ASCII decimal digit.
	ErrInvalidDigit = errs.Class("invalid digit")

	// ErrDivisionByZero is returned when a divisor or modulus is zero.
	ErrDivisionByZero = errs.Class("division by zero")

	// ErrNotInvertible is returned by ModInverse when the value and the
	// modulus are not coprime.
	ErrNotInvertible = errs.Class("not invertible")

	// ErrOverflow is returned when a value does not fit in the requested
	// native integer type.
	ErrOverflow = errs.Class("overflow")

	// ErrDomain is returned for operands outside an operation's domain, such
	// as negative exponents or the square root of a negative value.
	ErrDomain = errs.Class("domain")
)
