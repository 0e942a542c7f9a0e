package convert

import (
	"github.com/davejbax/go-baseconv/internal/numeral"
	"math"
	"math/big"
)

// FractionTolerance is the residue below which [Fractional] considers an expansion to have terminated.
//
// Decoding a fraction into a float64 leaves representation error behind, so an expansion that should terminate
// exactly tends to leave a tiny non-zero residue that would otherwise be expanded into spurious trailing digits. The
// cost is that a genuinely non-terminating expansion may stop a digit or so earlier than an exact conversion would.
const FractionTolerance = 1e-15

// Fractional converts a fractional digit sequence (highest positional weight first) from one radix to another,
// producing at most precision digits.
//
// The input is first decoded into a float64 by summing digit[i] / from^(i+1). The result is then expanded by
// repeatedly multiplying by the target radix, emitting the integer part as the next digit and keeping the residue.
// Expansion stops early when the residue is exactly zero (checked before each multiplication) or when it drops below
// [FractionTolerance] (checked after the digit is subtracted out), so the output may be shorter than precision.
//
// Empty input, or a precision of zero or less, yields an empty result.
func Fractional(digits []numeral.Digit, from, to numeral.Radix, precision int) []numeral.Digit {
	if len(digits) == 0 {
		return []numeral.Digit{}
	}

	fraction := 0.0
	base := float64(from)

	for i, d := range digits {
		fraction += float64(d) / math.Pow(base, float64(i+1))
	}

	// Long runs of the highest digit can round the sum up to exactly 1, which would expand into a digit equal to the
	// target radix
	if fraction >= 1 {
		fraction = math.Nextafter(1, 0)
	}

	result := make([]numeral.Digit, 0, max(precision, 0))
	target := float64(to)

	for i := 0; i < precision; i++ {
		if fraction == 0 {
			break
		}

		fraction *= target
		digit := min(math.Floor(fraction), target-1)
		result = append(result, numeral.Digit(digit))
		fraction -= digit

		if fraction < FractionTolerance {
			break
		}
	}

	return result
}

// FractionalExact has the same contract as [Fractional] but performs the conversion exactly: the input is held as the
// rational numerator / from^len(digits) and expanded with integer arithmetic. Expansion stops only when the remainder
// is zero or precision digits have been produced, so there is no tolerance involved.
func FractionalExact(digits []numeral.Digit, from, to numeral.Radix, precision int) []numeral.Digit {
	if len(digits) == 0 {
		return []numeral.Digit{}
	}

	var (
		numerator   = new(big.Int)
		denominator = big.NewInt(1)
		fromBig     = big.NewInt(int64(from))
		toBig       = big.NewInt(int64(to))
		digit       = new(big.Int)
	)

	for _, d := range digits {
		numerator.Mul(numerator, fromBig)
		numerator.Add(numerator, digit.SetUint64(uint64(d)))
		denominator.Mul(denominator, fromBig)
	}

	result := make([]numeral.Digit, 0, max(precision, 0))

	for i := 0; i < precision; i++ {
		if numerator.Sign() == 0 {
			break
		}

		numerator.Mul(numerator, toBig)
		digit.Quo(numerator, denominator)
		numerator.Rem(numerator, denominator)
		result = append(result, numeral.Digit(digit.Uint64()))
	}

	return result
}
