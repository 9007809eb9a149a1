package decint

import (
	"fmt"
	"math/big"
	"testing"
)

var (
	BenchBigIntResult *big.Int
	BenchBoolResult   bool
	BenchIntResult    Int
	BenchStringResult string

	benchOperands = []string{
		"7",
		"123456789",
		"1234567890123456789012345678901234567890",
		"-98765432109876543210987654321098765432109876543210987654321",
	}
)

func BenchmarkIntFromString(b *testing.B) {
	for _, s := range benchOperands {
		b.Run(s, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchIntResult, _ = ParseSigned(s)
			}
		})
	}
}

func BenchmarkIntString(b *testing.B) {
	for _, s := range benchOperands {
		v := ds(s)
		b.Run(s, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchStringResult = v.String()
			}
		})
	}
}

func BenchmarkIntAdd(b *testing.B) {
	for _, s := range benchOperands {
		v := ds(s)
		b.Run(s, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchIntResult = v.Add(v)
			}
		})
	}
}

func BenchmarkBigIntAdd(b *testing.B) {
	for _, s := range benchOperands {
		v := bigs(s)
		b.Run(s, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				var dest big.Int
				BenchBigIntResult = dest.Add(v, v)
			}
		})
	}
}

func BenchmarkIntMul(b *testing.B) {
	for _, s := range benchOperands {
		v := ds(s)
		b.Run(s, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchIntResult = v.Mul(v)
			}
		})
	}
}

func BenchmarkBigIntMul(b *testing.B) {
	for _, s := range benchOperands {
		v := bigs(s)
		b.Run(s, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				var dest big.Int
				BenchBigIntResult = dest.Mul(v, v)
			}
		})
	}
}

func BenchmarkIntQuo(b *testing.B) {
	by := ds("12345")
	for _, s := range benchOperands {
		v := ds(s)
		b.Run(s, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchIntResult, _ = v.Quo(by)
			}
		})
	}
}

func BenchmarkBigIntQuo(b *testing.B) {
	by := bigs("12345")
	for _, s := range benchOperands {
		v := bigs(s)
		b.Run(s, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				var dest big.Int
				BenchBigIntResult = dest.Quo(v, by)
			}
		})
	}
}

func BenchmarkIntLessThan(b *testing.B) {
	for _, iv := range []struct {
		a, b Int
	}{
		{i64(1), i64(1)},
		{i64(2), i64(1)},
		{i64(-1), i64(-2)},
		{ds("123456789012345678901234567890"), ds("123456789012345678901234567891")},
	} {
		b.Run(fmt.Sprintf("%s<%s", iv.a, iv.b), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchBoolResult = iv.a.LessThan(iv.b)
			}
		})
	}
}

func BenchmarkIntModPow(b *testing.B) {
	base, exp, mod := ds("1234567890123"), ds("65537"), ds("1000000007")
	for i := 0; i < b.N; i++ {
		BenchIntResult, _ = base.ModPow(exp, mod)
	}
}

func BenchmarkIntIsPrime(b *testing.B) {
	for _, s := range []string{"7919", "111119", "1000003"} {
		v := ds(s)
		b.Run(s, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchBoolResult = v.IsPrime()
			}
		})
	}
}
