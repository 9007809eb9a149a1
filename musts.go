package decint

import "fmt"

// MustFromString is like FromString but panics if s is not a string of
// decimal digits.
func MustFromString(s string) Int {
	i, err := FromString(s)
	if err != nil {
		panic(fmt.Sprintf("MustFromString(%q) failed: %v", s, err))
	}
	return i
}

// MustParseSigned is like ParseSigned but panics if s is invalid.
func MustParseSigned(s string) Int {
	i, err := ParseSigned(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseSigned(%q) failed: %v", s, err))
	}
	return i
}

// MustQuo is like Quo but panics if by is zero.
func (i Int) MustQuo(by Int) Int {
	q, err := i.Quo(by)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", by, err))
	}
	return q
}

// MustRem is like Rem but panics if by is zero.
func (i Int) MustRem(by Int) Int {
	r, err := i.Rem(by)
	if err != nil {
		panic(fmt.Sprintf("MustRem(%v) failed: %v", by, err))
	}
	return r
}

// MustMod is like Mod but panics if m is zero.
func (i Int) MustMod(m Int) Int {
	r, err := i.Mod(m)
	if err != nil {
		panic(fmt.Sprintf("MustMod(%v) failed: %v", m, err))
	}
	return r
}

// MustPow is like Pow but panics if exp is negative.
func (i Int) MustPow(exp Int) Int {
	p, err := i.Pow(exp)
	if err != nil {
		panic(fmt.Sprintf("MustPow(%v) failed: %v", exp, err))
	}
	return p
}

// MustModPow is like ModPow but panics on error.
func (i Int) MustModPow(exp, mod Int) Int {
	p, err := i.ModPow(exp, mod)
	if err != nil {
		panic(fmt.Sprintf("MustModPow(%v, %v) failed: %v", exp, mod, err))
	}
	return p
}

// MustModInverse is like ModInverse but panics on error.
func (i Int) MustModInverse(mod Int) Int {
	x, err := i.ModInverse(mod)
	if err != nil {
		panic(fmt.Sprintf("MustModInverse(%v) failed: %v", mod, err))
	}
	return x
}

// MustSqrt is like Sqrt but panics if i is negative.
func (i Int) MustSqrt() Int {
	s, err := i.Sqrt()
	if err != nil {
		panic(fmt.Sprintf("MustSqrt(%v) failed: %v", i, err))
	}
	return s
}
