package decint

// The functions in this file operate on magnitudes: canonical digit slices,
// most significant digit first, with no leading zeros and zero represented
// by an empty slice. Every result is freshly allocated; inputs are never
// written to.

// trim strips leading zeros. A slice of all zeros becomes nil.
func trim(d []byte) []byte {
	i := 0
	for i < len(d) && d[i] == 0 {
		i++
	}
	if i == len(d) {
		return nil
	}
	return d[i:]
}

func clone(d []byte) []byte {
	if len(d) == 0 {
		return nil
	}
	out := make([]byte, len(d))
	copy(out, d)
	return out
}

// cmpMag compares two magnitudes: the shorter one is smaller, equal lengths
// compare digit by digit from the most significant end.
func cmpMag(a, b []byte) int {
	if len(a) < len(b) {
		return -1
	} else if len(a) > len(b) {
		return 1
	}
	for i := range a {
		if a[i] < b[i] {
			return -1
		} else if a[i] > b[i] {
			return 1
		}
	}
	return 0
}

// addMag is schoolbook addition, walking both operands from the least
// significant digit into a sum bar one digit longer than the longer operand.
func addMag(a, b []byte) []byte {
	if len(a) < len(b) {
		a, b = b, a
	}
	if len(b) == 0 {
		return clone(a)
	}

	out := make([]byte, len(a)+1)

	var carry byte
	for i, j, k := len(a)-1, len(b)-1, len(out)-1; i >= 0; i, j, k = i-1, j-1, k-1 {
		s := a[i] + carry
		if j >= 0 {
			s += b[j]
		}
		if s > 9 {
			s -= 10
			carry = 1
		} else {
			carry = 0
		}
		out[k] = s
	}
	out[0] = carry

	return trim(out)
}

// subMag computes a - b for cmpMag(a, b) >= 0. Digits are subtracted from the
// least significant end and a negative digit borrows from the next one.
func subMag(a, b []byte) []byte {
	out := make([]byte, len(a))

	var borrow int8
	for i, j := len(a)-1, len(b)-1; i >= 0; i, j = i-1, j-1 {
		d := int8(a[i]) - borrow
		if j >= 0 {
			d -= int8(b[j])
		}
		if d < 0 {
			d += 10
			borrow = 1
		} else {
			borrow = 0
		}
		out[i] = byte(d)
	}
	if borrow != 0 {
		panic("decint: magnitude subtraction underflow")
	}

	return trim(out)
}

// mulMag is schoolbook long multiplication. Each digit of a produces one
// partial product against every digit of b, shifted by that digit's position
// and added straight into the result with its carry.
func mulMag(a, b []byte) []byte {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}

	out := make([]byte, len(a)+len(b))

	for i := len(a) - 1; i >= 0; i-- {
		da := uint(a[i])
		if da == 0 {
			continue
		}

		// out[k] holds the digit at the same power of ten as a[i]*b[j]:
		var carry uint
		k := i + len(b)
		for j := len(b) - 1; j >= 0; j, k = j-1, k-1 {
			t := da*uint(b[j]) + uint(out[k]) + carry
			out[k] = byte(t % 10)
			carry = t / 10
		}
		for ; carry > 0; k-- {
			t := uint(out[k]) + carry
			out[k] = byte(t % 10)
			carry = t / 10
		}
	}

	return trim(out)
}

// pow10Mag returns the magnitude of 10^n.
func pow10Mag(n int) []byte {
	out := make([]byte, n+1)
	out[0] = 1
	return out
}
