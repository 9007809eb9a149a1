package decint

// quoRemMag divides a by b using long division. b must not be zero.
//
// Each digit of a is brought down into a running remainder, then b is
// subtracted from it for as long as it fits. The number of subtractions is
// the next quotient digit (never more than 9) and whatever is left seeds the
// next step.
func quoRemMag(a, b []byte) (q, r []byte) {
	if len(b) == 0 {
		panic("decint: division by zero")
	}
	if cmpMag(a, b) < 0 {
		return nil, clone(a) // it's 100% remainder
	}
	if len(b) == 1 {
		var rd byte
		q, rd = quoRemSmall(a, b[0])
		if rd != 0 {
			r = []byte{rd}
		}
		return q, r
	}

	q = make([]byte, len(a))

	var rem []byte
	for i, d := range a {
		// rem = rem*10 + d, keeping rem canonical:
		if len(rem) > 0 || d != 0 {
			rem = append(rem, d)
		}

		var count byte
		for cmpMag(rem, b) >= 0 {
			rem = subMag(rem, b)
			count++
		}
		q[i] = count
	}

	return trim(q), rem
}

// quoRemSmall is short division by a single non-zero digit.
func quoRemSmall(a []byte, by byte) (q []byte, r byte) {
	if by == 0 {
		panic("decint: division by zero")
	}

	q = make([]byte, len(a))

	var rem uint
	for i, d := range a {
		t := rem*10 + uint(d)
		q[i] = byte(t / uint(by))
		rem = t % uint(by)
	}

	return trim(q), byte(rem)
}

// halve returns the magnitude of i divided by two, rounded towards zero.
func (i Int) halve() Int {
	q, _ := quoRemSmall(i.digits, 2)
	return newInt(q, i.neg)
}

// isOdd reports whether the lowest decimal digit of i is odd.
func (i Int) isOdd() bool {
	return len(i.digits) > 0 && i.digits[len(i.digits)-1]%2 == 1
}

// modPos returns the Euclidean remainder of i by m, in the range [0, m). m
// must be positive.
func modPos(i, m Int) Int {
	_, r := quoRemMag(i.digits, m.digits)
	if i.neg && len(r) > 0 {
		return newInt(subMag(m.digits, r), false)
	}
	return newInt(r, false)
}
