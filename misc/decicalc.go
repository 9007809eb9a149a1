package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/davecgh/go-spew/spew"
	decint "github.com/shabbyrobe/go-decint"
)

// A small calculator for poking at decint from the shell. Operands may be
// signed. With -dump, the result is printed with spew so the stored digits
// and sign can be inspected.

const usage = `Decimal integer calculator

Usage: decicalc [-dump] <op> <a> [<b> [<c>]]

Ops:
  add a b      a + b
  sub a b      a - b
  mul a b      a * b
  quo a b      a / b, truncated
  rem a b      a % b, sign of a
  mod a b      Euclidean a mod b
  pow a b      a ** b
  modpow a b c a ** b mod c
  gcd a b      greatest common divisor
  modinv a b   inverse of a mod b
  sqrt a       floor square root
  prime a      primality by trial division
  cmp a b      -1, 0 or 1
`

// Int implements fmt.Stringer, which would hide the digits from spew.
var dumper = spew.ConfigState{Indent: "  ", DisableMethods: true}

var arity = map[string]int{
	"add": 2, "sub": 2, "mul": 2, "quo": 2, "rem": 2, "mod": 2,
	"pow": 2, "modpow": 3, "gcd": 2, "modinv": 2, "sqrt": 1, "prime": 1, "cmp": 2,
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	var dump bool

	fs := flag.NewFlagSet("decicalc", flag.ContinueOnError)
	fs.BoolVar(&dump, "dump", false, "Dump the result value instead of printing it")
	fs.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	args := fs.Args()
	if len(args) < 1 {
		fs.Usage()
		return fmt.Errorf("missing op")
	}

	op := args[0]
	n, ok := arity[op]
	if !ok {
		return fmt.Errorf("unknown op %q", op)
	}
	if len(args)-1 != n {
		return fmt.Errorf("op %q takes %d operands, found %d", op, n, len(args)-1)
	}

	operands := make([]decint.Int, n)
	for idx, s := range args[1:] {
		v, err := decint.ParseSigned(s)
		if err != nil {
			return err
		}
		operands[idx] = v
	}

	result, err := calc(op, operands)
	if err != nil {
		return err
	}

	if dump {
		dumper.Dump(result)
	} else {
		fmt.Println(result)
	}
	return nil
}

func calc(op string, v []decint.Int) (result interface{}, err error) {
	switch op {
	case "add":
		return v[0].Add(v[1]), nil
	case "sub":
		return v[0].Sub(v[1]), nil
	case "mul":
		return v[0].Mul(v[1]), nil
	case "quo":
		return v[0].Quo(v[1])
	case "rem":
		return v[0].Rem(v[1])
	case "mod":
		return v[0].Mod(v[1])
	case "pow":
		return v[0].Pow(v[1])
	case "modpow":
		return v[0].ModPow(v[1], v[2])
	case "gcd":
		return v[0].GCD(v[1]), nil
	case "modinv":
		return v[0].ModInverse(v[1])
	case "sqrt":
		return v[0].Sqrt()
	case "prime":
		return v[0].IsPrime(), nil
	case "cmp":
		return v[0].Cmp(v[1]), nil
	default:
		return nil, fmt.Errorf("unknown op %q", op)
	}
}
