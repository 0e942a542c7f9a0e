package convert

import (
	"github.com/davejbax/go-baseconv/internal/numeral"
	"math/big"
	"slices"
)

var zero = []numeral.Digit{0}

// Integer converts an integer digit sequence (most-significant digit first) from one radix to another.
//
// The digits are folded into an arbitrary-precision magnitude, which is then repeatedly divided by the target radix.
// The result never has leading zeros, except for a zero magnitude which is always returned as []Digit{0}. This includes
// empty input and input consisting only of zeros.
func Integer(digits []numeral.Digit, from, to numeral.Radix) []numeral.Digit {
	if len(digits) == 0 || (len(digits) == 1 && digits[0] == 0) {
		return slices.Clone(zero)
	}

	var (
		magnitude = new(big.Int)
		fromBig   = big.NewInt(int64(from))
		toBig     = big.NewInt(int64(to))
		digit     = new(big.Int)
		remainder = new(big.Int)
	)

	for _, d := range digits {
		magnitude.Mul(magnitude, fromBig)
		magnitude.Add(magnitude, digit.SetUint64(uint64(d)))
	}

	if magnitude.Sign() == 0 {
		return slices.Clone(zero)
	}

	// Remainders come out least-significant first
	var result []numeral.Digit
	for magnitude.Sign() > 0 {
		magnitude.DivMod(magnitude, toBig, remainder)
		result = append(result, numeral.Digit(remainder.Uint64()))
	}

	slices.Reverse(result)

	return result
}
