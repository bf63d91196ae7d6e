package driver

import (
	"fmt"
	"math/big"

	"matchc/pkg/lattice"
)

// parseBigIntDecimal parses a sign-and-decimal-digits string into a bigint
// literal, the canonical form the type lattice compares bigints by.
func parseBigIntDecimal(s string) (lattice.Literal, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return lattice.Literal{}, fmt.Errorf("not a decimal integer")
	}
	return lattice.BigInt(v), nil
}
