/*
Package decint provides Int, a signed integer of unbounded magnitude stored as
a sequence of decimal digits, implementing the arithmetic and number theory
parts of the big.Int API.

Int is a value type; all operations return new values and never modify their
operands. The zero value is 0.

Simple example:

	a := decint.MustFromString("1234567890987654321234567890")
	b := decint.FromInt64(12345)
	fmt.Println(a.Add(b))
	// Output: 1234567890987654321234580235

Int can be created from a variety of sources:

	FromString(s string) (Int, error)    // digits only, no sign
	ParseSigned(s string) (Int, error)   // optional leading '+' or '-'
	FromInt64(v int64) Int
	FromUint64(v uint64) Int
	FromInt(v int) Int
	FromInt32(v int32) Int
	FromUint32(v uint32) Int
	FromDigits(digits []byte, negative bool) Int
	FromBigInt(v *big.Int) Int

Operations that can fail return an error from one of the errs.Class values
ErrInvalidDigit, ErrDivisionByZero, ErrNotInvertible, ErrOverflow and
ErrDomain. Division by zero is always an error, never a panic. Each fallible
operation has a Must variant that panics instead.

Division is truncated, like Go's / and % operators: see QuoRem. Mod, ModPow
and ModInverse use the Euclidean modulus and always return values in
[0, |m|).

Render returns the digits of a value without its sign; String returns the
signed form.

Int supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

*/
package decint
