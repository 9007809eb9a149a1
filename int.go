package decint

import (
	"strconv"
)

// Int is a signed integer of unbounded magnitude, stored as a sequence of
// decimal digits and a sign.
//
// The zero value is 0. Digit slices are never modified once an Int has been
// built, so copies of an Int may be passed around and used concurrently.
type Int struct {
	digits []byte // most significant first, no leading zeros; zero is empty
	neg    bool   // never set for zero
}

// newInt takes ownership of digits.
func newInt(digits []byte, neg bool) Int {
	digits = trim(digits)
	if len(digits) == 0 {
		return Int{}
	}
	return Int{digits: digits, neg: neg}
}

// FromString creates an Int from a string of ASCII decimal digits. No sign,
// whitespace or other characters are accepted; see ParseSigned for signed
// input. Leading zeros are discarded and the empty string is zero.
func FromString(s string) (out Int, err error) {
	digits := make([]byte, len(s))
	for idx := 0; idx < len(s); idx++ {
		c := s[idx]
		if c < '0' || c > '9' {
			return out, ErrInvalidDigit.New("%q at position %d of %q", c, idx, s)
		}
		digits[idx] = c - '0'
	}
	return newInt(digits, false), nil
}

// ParseSigned is like FromString, but accepts a single leading '+' or '-'.
// It is the inverse of Int.String.
func ParseSigned(s string) (out Int, err error) {
	var neg bool
	if len(s) > 0 && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
		if s == "" {
			return out, ErrInvalidDigit.New("sign without digits")
		}
	}
	out, err = FromString(s)
	if err != nil {
		return out, err
	}
	if neg {
		out = out.Neg()
	}
	return out, nil
}

func FromInt(v int) Int       { return FromInt64(int64(v)) }
func FromInt32(v int32) Int   { return FromInt64(int64(v)) }
func FromUint32(v uint32) Int { return FromUint64(uint64(v)) }

// FromInt64 creates an Int from the decimal rendering of v.
func FromInt64(v int64) Int {
	s := strconv.FormatInt(v, 10)
	if v < 0 {
		return fromRendered(s[1:], true)
	}
	return fromRendered(s, false)
}

// FromUint64 creates an Int from the decimal rendering of v.
func FromUint64(v uint64) Int {
	return fromRendered(strconv.FormatUint(v, 10), false)
}

// fromRendered expects s to be known-good decimal digits.
func fromRendered(s string, neg bool) Int {
	digits := make([]byte, len(s))
	for idx := range digits {
		digits[idx] = s[idx] - '0'
	}
	return newInt(digits, neg)
}

// FromDigits creates an Int from a raw sequence of digits, most significant
// first. The digits are copied but not validated; each one must be in the
// range [0, 9]. Leading zeros are discarded.
func FromDigits(digits []byte, negative bool) Int {
	return newInt(clone(digits), negative)
}

// Digits returns a copy of the digits of |i|, most significant first. Zero
// has no digits.
func (i Int) Digits() []byte { return clone(i.digits) }

// Len returns the number of decimal digits in |i|. Zero has a length of 0.
func (i Int) Len() int { return len(i.digits) }

func (i Int) IsZero() bool { return len(i.digits) == 0 }
func (i Int) IsNeg() bool  { return i.neg }

// Sign returns -1 if i < 0, 0 if i == 0, and +1 if i > 0.
func (i Int) Sign() int {
	if len(i.digits) == 0 {
		return 0
	} else if i.neg {
		return -1
	}
	return 1
}

func (i Int) Neg() Int {
	if len(i.digits) == 0 {
		return i
	}
	return Int{digits: i.digits, neg: !i.neg}
}

func (i Int) Abs() Int {
	return Int{digits: i.digits}
}

// Render returns the digits of i with no sign, even if i is negative. Zero
// renders as "0". Use String for the signed form.
func (i Int) Render() string {
	if len(i.digits) == 0 {
		return "0"
	}
	buf := make([]byte, len(i.digits))
	for idx, d := range i.digits {
		buf[idx] = '0' + d
	}
	return string(buf)
}

// String returns the signed decimal form of i, like big.Int.String.
func (i Int) String() string {
	if i.neg {
		return "-" + i.Render()
	}
	return i.Render()
}

// Cmp compares i and n and returns:
//
//	-1 if i <  n
//	 0 if i == n
//	+1 if i >  n
//
func (i Int) Cmp(n Int) int {
	switch {
	case i.neg && !n.neg:
		return -1
	case !i.neg && n.neg:
		return 1
	case i.neg:
		// Both negative; the larger magnitude is the smaller value.
		return cmpMag(n.digits, i.digits)
	default:
		return cmpMag(i.digits, n.digits)
	}
}

// CmpAbs compares the magnitudes of i and n.
func (i Int) CmpAbs(n Int) int {
	return cmpMag(i.digits, n.digits)
}

func (i Int) Equal(n Int) bool {
	return i.neg == n.neg && cmpMag(i.digits, n.digits) == 0
}

func (i Int) GreaterThan(n Int) bool      { return i.Cmp(n) > 0 }
func (i Int) GreaterOrEqualTo(n Int) bool { return i.Cmp(n) >= 0 }
func (i Int) LessThan(n Int) bool         { return i.Cmp(n) < 0 }
func (i Int) LessOrEqualTo(n Int) bool    { return i.Cmp(n) <= 0 }

// Add returns i + n.
func (i Int) Add(n Int) Int {
	if i.neg == n.neg {
		return newInt(addMag(i.digits, n.digits), i.neg)
	}

	// Opposite signs: subtract the smaller magnitude from the larger and keep
	// the sign of the larger.
	switch cmpMag(i.digits, n.digits) {
	case 0:
		return Int{}
	case 1:
		return newInt(subMag(i.digits, n.digits), i.neg)
	default:
		return newInt(subMag(n.digits, i.digits), n.neg)
	}
}

// Sub returns i - n.
func (i Int) Sub(n Int) Int {
	return i.Add(n.Neg())
}

func (i Int) Inc() Int { return i.Add(one) }
func (i Int) Dec() Int { return i.Sub(one) }

// Mul returns i * n.
func (i Int) Mul(n Int) Int {
	return newInt(mulMag(i.digits, n.digits), i.neg != n.neg)
}

// Quo returns the quotient i/by, truncated towards zero. See QuoRem.
func (i Int) Quo(by Int) (q Int, err error) {
	q, _, err = i.QuoRem(by)
	return q, err
}

// Rem returns the remainder of i/by, which has the sign of i. See QuoRem.
func (i Int) Rem(by Int) (r Int, err error) {
	_, r, err = i.QuoRem(by)
	return r, err
}

// QuoRem returns the quotient q and remainder r of i/by. If by is zero, an
// error of class ErrDivisionByZero is returned.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = i/by      with the result truncated to zero
//	r = i - by*q
//
// See Mod for Euclidean modulus.
func (i Int) QuoRem(by Int) (q, r Int, err error) {
	if len(by.digits) == 0 {
		return q, r, ErrDivisionByZero.New("%s / 0", i)
	}
	qd, rd := quoRemMag(i.digits, by.digits)
	return newInt(qd, i.neg != by.neg), newInt(rd, i.neg), nil
}

// Mod returns the Euclidean modulus of i and m, which is always in the range
// [0, |m|). If m is zero, an error of class ErrDivisionByZero is returned.
func (i Int) Mod(m Int) (Int, error) {
	if len(m.digits) == 0 {
		return Int{}, ErrDivisionByZero.New("%s mod 0", i)
	}
	return modPos(i, m.Abs()), nil
}
