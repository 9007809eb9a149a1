package decint

// GCD returns the greatest common divisor of |i| and |n|, using the
// Euclidean algorithm. GCD(0, n) is |n| and GCD(i, 0) is |i|.
func (i Int) GCD(n Int) Int {
	a, b := i.Abs(), n.Abs()
	if a.IsZero() {
		return b
	}
	if b.IsZero() {
		return a
	}

	a, b = Larger(a, b), Smaller(a, b)
	for {
		_, r := quoRemMag(a.digits, b.digits)
		if len(r) == 0 {
			return b
		}
		a, b = b, Int{digits: r}
	}
}

// ModInverse returns x such that i*x ≡ 1 (mod |mod|), in the range [0, |mod|),
// using the extended Euclidean algorithm.
//
// If |mod| is 1 the result is 0. A zero mod returns an error of class
// ErrDivisionByZero. If i and mod are not coprime there is no inverse and an
// error of class ErrNotInvertible is returned.
func (i Int) ModInverse(mod Int) (Int, error) {
	if mod.IsZero() {
		return Int{}, ErrDivisionByZero.New("inverse of %s mod 0", i)
	}

	m := mod.Abs()
	if m.Equal(one) {
		return zero, nil
	}

	// x tracks the Bézout coefficient of the starting a; the invariant is
	// x*i ≡ a (mod m), with y playing the same role for b.
	a, b := modPos(i, m), m
	x, y := one, zero
	for a.GreaterThan(one) {
		if b.IsZero() {
			return Int{}, ErrNotInvertible.New("%s mod %s, gcd %s", i, mod, a)
		}
		qd, rd := quoRemMag(a.digits, b.digits)
		q := Int{digits: qd}
		a, b = b, newInt(rd, false)
		x, y = y, x.Sub(q.Mul(y))
	}
	if a.IsZero() {
		return Int{}, ErrNotInvertible.New("%s mod %s, gcd %s", i, mod, m)
	}

	if x.neg {
		x = x.Add(m)
	}
	return x, nil
}

// Sqrt returns the largest integer whose square does not exceed i, found by
// binary search. A negative i returns an error of class ErrDomain.
func (i Int) Sqrt() (Int, error) {
	if i.neg {
		return Int{}, ErrDomain.New("square root of %s", i)
	}

	// i < 10**n, so sqrt(i) < 10**ceil(n/2):
	lo, hi := zero, Int{digits: pow10Mag((len(i.digits) + 1) / 2)}
	if hi.GreaterThan(i) {
		hi = i
	}

	for lo.LessThan(hi) {
		mid := lo.Add(hi).Inc().halve()
		if mid.Mul(mid).LessOrEqualTo(i) {
			lo = mid
		} else {
			hi = mid.Dec()
		}
	}
	return lo, nil
}

// IsPrime reports whether i is prime, by trial division of every candidate
// from 2 up to the square root of i. Values below 2 are not prime.
//
// This is exact but slow: the cost grows with the square root of i.
func (i Int) IsPrime() bool {
	if i.neg || i.LessThan(two) {
		return false
	}

	// Multiple digits ending in an even digit or 5 can't be prime:
	last := i.digits[len(i.digits)-1]
	if len(i.digits) >= 2 && (last%2 == 0 || last == 5) {
		return false
	}

	limit, _ := i.Sqrt()
	for d := two; d.LessOrEqualTo(limit); d = d.Inc() {
		if _, r := quoRemMag(i.digits, d.digits); len(r) == 0 {
			return false
		}
	}
	return true
}
