package decint

import (
	"math/big"
)

var (
	zero Int
	one  = Int{digits: []byte{1}}
	two  = Int{digits: []byte{2}}

	big0 = new(big.Int).SetInt64(0)
	big1 = new(big.Int).SetInt64(1)
)
