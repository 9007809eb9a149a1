package decint

// Pow returns i**exp using exponentiation by squaring. Any value to the power
// of zero is 1, including zero. A negative exp returns an error of class
// ErrDomain.
func (i Int) Pow(exp Int) (Int, error) {
	if exp.neg {
		return Int{}, ErrDomain.New("negative exponent %s", exp)
	}

	base, result := i, one
	for !exp.IsZero() {
		// An odd exponent peels one factor off into the result; halving then
		// rounds down, which drops the same 1 from the exponent.
		if exp.isOdd() {
			result = result.Mul(base)
		}
		exp = exp.halve()
		if !exp.IsZero() {
			base = base.Mul(base)
		}
	}
	return result, nil
}

// PowUint is like Pow, but takes a native exponent and cannot fail.
func (i Int) PowUint(exp uint) Int {
	base, result := i, one
	for exp > 0 {
		if exp&1 == 1 {
			result = result.Mul(base)
		}
		exp >>= 1
		if exp > 0 {
			base = base.Mul(base)
		}
	}
	return result
}

// ModPow returns i**exp mod |mod| in the range [0, |mod|).
//
// The result is the same as (i**exp).Mod(mod) but intermediate values never
// grow past mod**2. A zero mod returns an error of class ErrDivisionByZero
// and a negative exp returns an error of class ErrDomain.
func (i Int) ModPow(exp, mod Int) (Int, error) {
	if mod.IsZero() {
		return Int{}, ErrDivisionByZero.New("%s**%s mod 0", i, exp)
	}
	if exp.neg {
		return Int{}, ErrDomain.New("negative exponent %s", exp)
	}

	m := mod.Abs()
	if m.Equal(one) {
		return zero, nil
	}

	base, result := modPos(i, m), one
	for !exp.IsZero() {
		if exp.isOdd() {
			result = modPos(result.Mul(base), m)
		}
		exp = exp.halve()
		if !exp.IsZero() {
			base = modPos(base.Mul(base), m)
		}
	}
	return result, nil
}
