package decint_test

import (
	"fmt"

	decint "github.com/shabbyrobe/go-decint"
)

func Example() {
	a := decint.MustFromString("1234567890987654321234567890")
	b := decint.FromInt64(12345)
	fmt.Println(a.Add(b))
	// Output: 1234567890987654321234580235
}

func ExampleInt_QuoRem() {
	q, r, err := decint.FromInt64(-7).QuoRem(decint.FromInt64(2))
	if err != nil {
		panic(err)
	}
	fmt.Println(q, r)
	// Output: -3 -1
}

func ExampleInt_Mod() {
	m, err := decint.FromInt64(-7).Mod(decint.FromInt64(2))
	if err != nil {
		panic(err)
	}
	fmt.Println(m)
	// Output: 1
}

func ExampleInt_ModInverse() {
	x, err := decint.FromInt64(3).ModInverse(decint.FromInt64(11))
	if err != nil {
		panic(err)
	}
	fmt.Println(x)
	// Output: 4
}

func ExampleErrDivisionByZero() {
	_, err := decint.FromInt64(1).Quo(decint.Int{})
	fmt.Println(decint.ErrDivisionByZero.Has(err))
	// Output: true
}
