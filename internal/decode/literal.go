// Package decode turns written numerals into digit sequences, validating them on the way so that the converters can
// trust their input.
package decode

import (
	"errors"
	"fmt"
	"github.com/davejbax/go-baseconv/internal/numeral"
	"strings"
)

var (
	// ErrInvalidRadix indicates that a radix is outside [numeral.MinRadix, numeral.MaxRadix]
	ErrInvalidRadix = errors.New("radix must be between 2 and 36")

	// ErrEmptyLiteral indicates that there was nothing to parse
	ErrEmptyLiteral = errors.New("literal is empty")

	// ErrMultipleSeparators indicates that the literal has more than one radix point
	ErrMultipleSeparators = errors.New("invalid number format: multiple radix points")

	// ErrInvalidCharacter indicates that the literal contains a character that is not a digit in any radix
	ErrInvalidCharacter = errors.New("invalid character")

	// ErrDigitOutOfRange indicates that the literal contains a digit that is too large for the declared radix
	ErrDigitOutOfRange = errors.New("digit is invalid for radix")
)

// AsRadix converts an integer to a [numeral.Radix], returning [ErrInvalidRadix] if it is out of range
func AsRadix(n int) (numeral.Radix, error) {
	if n < int(numeral.MinRadix) || n > int(numeral.MaxRadix) {
		return 0, fmt.Errorf("%w, got %d", ErrInvalidRadix, n)
	}

	return numeral.Radix(n), nil
}

// AsLiteral parses a written numeral in the given radix into its integer and fractional digit sequences.
//
// The numeral may contain at most one radix point. Letters are case-insensitive. If the integer part is empty but a
// radix point is present (e.g. ".25"), the integer part is taken to be zero; a trailing radix point yields an empty
// fractional part. Every digit of the returned literal is guaranteed to be less than radix.
func AsLiteral(value string, radix numeral.Radix) (numeral.Literal, error) {
	if !radix.Valid() {
		return numeral.Literal{}, fmt.Errorf("%w, got %d", ErrInvalidRadix, radix)
	}

	integerPart, fractionalPart, hasSeparator := strings.Cut(value, string(numeral.Separator))
	if hasSeparator && strings.ContainsRune(fractionalPart, numeral.Separator) {
		return numeral.Literal{}, ErrMultipleSeparators
	}

	var literal numeral.Literal

	if integerPart == "" {
		if !hasSeparator {
			return numeral.Literal{}, ErrEmptyLiteral
		}

		literal.Integer = []numeral.Digit{0}
	} else {
		digits, err := asDigits(integerPart, radix, 0)
		if err != nil {
			return numeral.Literal{}, err
		}

		literal.Integer = digits
	}

	fraction, err := asDigits(fractionalPart, radix, len(integerPart)+1)
	if err != nil {
		return numeral.Literal{}, err
	}

	literal.Fraction = fraction

	return literal, nil
}

// asDigits decodes every character of input. offset is the byte position of input within the whole literal, and is
// only used for error messages.
func asDigits(input string, radix numeral.Radix, offset int) ([]numeral.Digit, error) {
	digits := make([]numeral.Digit, 0, len(input))

	for i, c := range input {
		digit, ok := numeral.DigitOf(c)
		if !ok {
			return nil, fmt.Errorf("%w: '%c' at position %d", ErrInvalidCharacter, c, offset+i)
		}

		if digit >= numeral.Digit(radix) {
			return nil, fmt.Errorf("%w: '%c' is not a digit in base %d", ErrDigitOutOfRange, c, radix)
		}

		digits = append(digits, digit)
	}

	return digits, nil
}
