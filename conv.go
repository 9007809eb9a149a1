package decint

import (
	"fmt"
	"math/big"
	"strconv"
)

// FromBigInt creates an Int from a big.Int.
func FromBigInt(v *big.Int) Int {
	s := v.Text(10)
	if v.Sign() < 0 {
		return fromRendered(s[1:], true)
	}
	return fromRendered(s, false)
}

// IntoBigInt copies this Int into a big.Int, allowing you to retain and
// recycle memory.
func (i Int) IntoBigInt(b *big.Int) {
	if _, ok := b.SetString(i.String(), 10); !ok {
		panic(fmt.Errorf("decint: invalid digits in %v", i.digits))
	}
}

func (i Int) AsBigInt() *big.Int {
	var v big.Int
	i.IntoBigInt(&v)
	return &v
}

// Format implements fmt.Formatter; it accepts the same verbs as big.Int.
func (i Int) Format(s fmt.State, c rune) {
	// FIXME: detour through big.Int costs a full conversion; %d and %s could
	// write the digits directly.
	i.AsBigInt().Format(s, c)
}

// Int64 returns i as an int64. If i is outside the range of an int64, an
// error of class ErrOverflow is returned.
func (i Int) Int64() (int64, error) {
	v, err := strconv.ParseInt(i.String(), 10, 64)
	if err != nil {
		return 0, ErrOverflow.New("%s does not fit in int64", i)
	}
	return v, nil
}

// Int32 is like Int64 for int32.
func (i Int) Int32() (int32, error) {
	v, err := strconv.ParseInt(i.String(), 10, 32)
	if err != nil {
		return 0, ErrOverflow.New("%s does not fit in int32", i)
	}
	return int32(v), nil
}

// Int is like Int64 for the platform's int.
func (i Int) Int() (int, error) {
	v, err := strconv.ParseInt(i.String(), 10, strconv.IntSize)
	if err != nil {
		return 0, ErrOverflow.New("%s does not fit in int", i)
	}
	return int(v), nil
}

// Uint64 returns i as a uint64. If i is negative or too large, an error of
// class ErrOverflow is returned.
func (i Int) Uint64() (uint64, error) {
	if i.neg {
		return 0, ErrOverflow.New("%s does not fit in uint64", i)
	}
	v, err := strconv.ParseUint(i.Render(), 10, 64)
	if err != nil {
		return 0, ErrOverflow.New("%s does not fit in uint64", i)
	}
	return v, nil
}

// Uint32 is like Uint64 for uint32.
func (i Int) Uint32() (uint32, error) {
	if i.neg {
		return 0, ErrOverflow.New("%s does not fit in uint32", i)
	}
	v, err := strconv.ParseUint(i.Render(), 10, 32)
	if err != nil {
		return 0, ErrOverflow.New("%s does not fit in uint32", i)
	}
	return uint32(v), nil
}

func (i Int) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *Int) UnmarshalText(bts []byte) (err error) {
	v, err := ParseSigned(string(bts))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

func (i Int) MarshalJSON() ([]byte, error) {
	return []byte(`"` + i.String() + `"`), nil
}

func (i *Int) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return ErrInvalidDigit.New("invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, err := ParseSigned(string(bts))
	if err != nil {
		return err
	}
	*i = v
	return nil
}
