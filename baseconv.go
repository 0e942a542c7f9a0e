// Package baseconv converts numeric literals, including their fractional parts, between positional numeral systems
// of radix 2 to 36.
//
// The conversion functions work on digit values rather than text: [Parse] turns text into a [Literal] of digit
// values, and [Format] turns one back into text. [Convert] runs the whole pipeline.
//
// Integer parts are converted exactly. Fractional parts are converted through a float64 and expanded to at most a
// given number of digits; see [ConvertFractional] for the termination rules, or [ConvertFractionalExact] for an exact
// alternative.
package baseconv

import (
	"github.com/davejbax/go-baseconv/internal/convert"
	"github.com/davejbax/go-baseconv/internal/decode"
	"github.com/davejbax/go-baseconv/internal/encode"
	"github.com/davejbax/go-baseconv/internal/numeral"
)

type (
	Digit   = numeral.Digit
	Radix   = numeral.Radix
	Literal = numeral.Literal
)

const (
	MinRadix = numeral.MinRadix
	MaxRadix = numeral.MaxRadix

	// DefaultPrecision is the number of fractional digits produced when the caller has no preference
	DefaultPrecision = 10

	// FractionTolerance is the residue below which [ConvertFractional] stops expanding
	FractionTolerance = convert.FractionTolerance
)

var (
	ErrInvalidRadix       = decode.ErrInvalidRadix
	ErrEmptyLiteral       = decode.ErrEmptyLiteral
	ErrMultipleSeparators = decode.ErrMultipleSeparators
	ErrInvalidCharacter   = decode.ErrInvalidCharacter
	ErrDigitOutOfRange    = decode.ErrDigitOutOfRange
)

// ConvertInteger converts an integer digit sequence (most-significant first) from one radix to another. Empty input
// and all-zero input both yield []Digit{0}.
//
// Every digit must be less than from, and both radices must be valid. This is not checked: digits produced by [Parse]
// always satisfy it, and anything else is undefined behaviour.
func ConvertInteger(digits []Digit, from, to Radix) []Digit {
	return convert.Integer(digits, from, to)
}

// ConvertFractional converts a fractional digit sequence (highest weight first) from one radix to another, producing at
// most precision digits. Expansion stops early once the remaining fraction is zero or smaller than
// [FractionTolerance].
//
// The same input requirements as [ConvertInteger] apply.
func ConvertFractional(digits []Digit, from, to Radix, precision int) []Digit {
	return convert.Fractional(digits, from, to, precision)
}

// ConvertFractionalExact is like [ConvertFractional], but uses exact integer arithmetic, so expansion only stops when
// it terminates or reaches precision digits.
func ConvertFractionalExact(digits []Digit, from, to Radix, precision int) []Digit {
	return convert.FractionalExact(digits, from, to, precision)
}

// Parse reads a literal such as "FF.8" written in the given radix. Letters are case-insensitive.
func Parse(value string, radix int) (Literal, error) {
	r, err := decode.AsRadix(radix)
	if err != nil {
		return Literal{}, err
	}

	return decode.AsLiteral(value, r)
}

// Format writes a literal using the glyphs 0-9 and A-Z
func Format(literal Literal) string {
	return encode.AsString(literal)
}
