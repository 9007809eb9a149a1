package decint

import (
	"flag"
	"fmt"
	"log"
	"math/big"
	"math/rand"
	"os"
	"strings"
	"testing"
	"time"
)

var (
	fuzzIterations = fuzzDefaultIterations
	fuzzOpsActive  = allFuzzOps
	fuzzMaxDigits  = fuzzDefaultMaxDigits
	fuzzSeed       int64

	globalRNG *rand.Rand
)

func TestMain(m *testing.M) {
	var ops StringList

	flag.IntVar(&fuzzIterations, "decint.fuzziter", fuzzIterations, "Number of iterations to fuzz each op")
	flag.Int64Var(&fuzzSeed, "decint.fuzzseed", fuzzSeed, "Seed the RNG (0 == current nanotime)")
	flag.IntVar(&fuzzMaxDigits, "decint.fuzzdigits", fuzzMaxDigits, "Maximum number of digits in a fuzzed operand")
	flag.Var(&ops, "decint.fuzzop", "Fuzz op to run (can pass multiple times, or a comma separated list)")
	flag.Parse()

	if fuzzSeed == 0 {
		fuzzSeed = time.Now().UnixNano()
	}
	globalRNG = rand.New(rand.NewSource(fuzzSeed))

	if len(ops) > 0 {
		fuzzOpsActive = nil
		for _, op := range ops {
			fuzzOpsActive = append(fuzzOpsActive, fuzzOp(op))
		}
	}

	log.Println("rando seed:", fuzzSeed) // classic rando!
	log.Println("active ops:", fuzzOpsActive)
	log.Println("iterations:", fuzzIterations)
	log.Println("max digits:", fuzzMaxDigits)

	code := m.Run()
	os.Exit(code)
}

// ds parses a signed decimal string for use in test tables. Spaces are
// ignored so long values can be grouped.
func ds(s string) Int {
	return MustParseSigned(strings.Replace(s, " ", "", -1))
}

func bigs(s string) *big.Int {
	s = strings.Replace(s, " ", "", -1)
	b, ok := new(big.Int).SetString(s, 0)
	if !ok {
		panic(fmt.Errorf("decint: big string %q invalid", s))
	}
	return b
}

var i64 = FromInt64

type StringList []string

func (s StringList) Strings() []string { return s }

func (s *StringList) String() string {
	if s == nil {
		return ""
	}
	return strings.Join(*s, ",")
}

func (s *StringList) Set(v string) error {
	vs := strings.Split(v, ",")
	for _, vi := range vs {
		vi = strings.TrimSpace(vi)
		if vi != "" {
			*s = append(*s, vi)
		}
	}
	return nil
}

// randomBigInt returns a signed value of up to maxDigits decimal digits. Each
// length is equally likely, so short values get tested as much as long ones.
func randomBigInt(rng *rand.Rand, maxDigits int) *big.Int {
	if rng == nil {
		rng = globalRNG
	}

	n := rng.Intn(maxDigits + 1)
	if n == 0 {
		return new(big.Int)
	}

	var sb strings.Builder
	if rng.Intn(2) == 1 {
		sb.WriteByte('-')
	}
	sb.WriteByte(byte('1' + rng.Intn(9)))
	for i := 1; i < n; i++ {
		sb.WriteByte(byte('0' + rng.Intn(10)))
	}

	v, ok := new(big.Int).SetString(sb.String(), 10)
	if !ok {
		panic(fmt.Errorf("decint: bad random value %q", sb.String()))
	}
	return v
}
