package decint

type RandSource interface {
	Uint64() uint64
}

// RandInt generates a non-negative random Int of up to maxDigits digits from
// an external source. Every length from 0 to maxDigits is equally likely.
func RandInt(source RandSource, maxDigits int) Int {
	if maxDigits <= 0 {
		return Int{}
	}
	n := int(source.Uint64() % uint64(maxDigits+1))
	if n == 0 {
		return Int{}
	}

	digits := make([]byte, n)
	digits[0] = 1 + byte(source.Uint64()%9) // no leading zero
	for idx := 1; idx < n; idx++ {
		digits[idx] = byte(source.Uint64() % 10)
	}
	return Int{digits: digits}
}

// Difference subtracts the smaller of a and b from the larger.
func Difference(a, b Int) Int {
	if a.Cmp(b) >= 0 {
		return a.Sub(b)
	}
	return b.Sub(a)
}

func Larger(a, b Int) Int {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}

func Smaller(a, b Int) Int {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}
