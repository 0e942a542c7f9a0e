package numeral

// Digit is the value of a single positional symbol, decoupled from the glyph used to write it. Digit values run from
// 0 up to one less than the [Radix] they are written in, so 10 is 'A' and 35 is 'Z' once formatted.
type Digit uint8

// Radix is the number of distinct digit values in a positional numeral system (the 'base').
//
// Only radices in the range [MinRadix, MaxRadix] are supported, since those are the ones that can be written with the
// glyphs 0-9 and A-Z.
type Radix uint8

const (
	MinRadix Radix = 2
	MaxRadix Radix = 36

	// Decimal is the radix used for the human-readable companion value of a conversion
	Decimal Radix = 10
)

// Valid reports whether r is within [MinRadix, MaxRadix]
func (r Radix) Valid() bool {
	return r >= MinRadix && r <= MaxRadix
}

// Literal is a numeral split at its radix point into two digit sequences.
//
// Integer is ordered most-significant digit first. An empty Integer and an Integer of []Digit{0} both represent zero.
//
// Fraction is ordered by descending positional weight, so Fraction[0] has weight 1/radix, Fraction[1] has weight
// 1/radix^2 and so on. An empty Fraction represents an exact zero fractional part.
//
// Neither sequence carries its radix; every digit must be less than the radix the caller associates with the literal.
type Literal struct {
	Integer  []Digit
	Fraction []Digit
}

// HasFraction reports whether the literal has a fractional part to render
func (l Literal) HasFraction() bool {
	return len(l.Fraction) > 0
}
