package decode_test

import (
	"fmt"
	"github.com/davejbax/go-baseconv/internal/decode"
	"github.com/davejbax/go-baseconv/internal/numeral"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

type digits = []numeral.Digit

func TestAsLiteral(t *testing.T) {
	cases := []struct {
		input    string
		radix    numeral.Radix
		integer  digits
		fraction digits
	}{
		{"1010.101", 2, digits{1, 0, 1, 0}, digits{1, 0, 1}},
		{"FF.8", 16, digits{15, 15}, digits{8}},
		{"123", 10, digits{1, 2, 3}, digits{}},
		{".123", 10, digits{0}, digits{1, 2, 3}},
		{"0", 10, digits{0}, digits{}},
		{"0.0", 10, digits{0}, digits{0}},
		{"ZZ.Z", 36, digits{35, 35}, digits{35}},
		{"aBc.DeF", 16, digits{10, 11, 12}, digits{13, 14, 15}},
		{"z", 36, digits{35}, digits{}},
		{"12.", 10, digits{1, 2}, digits{}},
		{"007", 8, digits{0, 0, 7}, digits{}},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("%s_%d", c.input, c.radix), func(t *testing.T) {
			t.Parallel()

			literal, err := decode.AsLiteral(c.input, c.radix)
			require.NoError(t, err, "AsLiteral should not return an error for a valid literal")
			assert.Equal(t, c.integer, literal.Integer, "Integer digits should match the literal")
			assert.Equal(t, c.fraction, literal.Fraction, "Fractional digits should match the literal")
		})
	}
}

func TestAsLiteral_CaseInsensitive(t *testing.T) {
	lower, err := decode.AsLiteral("abc.def", 16)
	require.NoError(t, err, "AsLiteral should accept lower-case letters")

	upper, err := decode.AsLiteral("ABC.DEF", 16)
	require.NoError(t, err, "AsLiteral should accept upper-case letters")

	assert.Equal(t, upper, lower, "Letter case should not affect the parsed digits")
}

func TestAsLiteral_Invalid(t *testing.T) {
	cases := []struct {
		input    string
		radix    numeral.Radix
		expected error
	}{
		{"123", 0, decode.ErrInvalidRadix},
		{"123", 1, decode.ErrInvalidRadix},
		{"123", 37, decode.ErrInvalidRadix},
		{"", 10, decode.ErrEmptyLiteral},
		{"1.2.3", 10, decode.ErrMultipleSeparators},
		{"...", 10, decode.ErrMultipleSeparators},
		{"1..2", 10, decode.ErrMultipleSeparators},
		{"G", 16, decode.ErrDigitOutOfRange},
		{"9", 8, decode.ErrDigitOutOfRange},
		{"2", 2, decode.ErrDigitOutOfRange},
		{"1.2", 2, decode.ErrDigitOutOfRange},
		{"@", 36, decode.ErrInvalidCharacter},
		{"!", 10, decode.ErrInvalidCharacter},
		{" ", 10, decode.ErrInvalidCharacter},
		{"-1", 10, decode.ErrInvalidCharacter},
		{"1.5e3", 10, decode.ErrDigitOutOfRange},
		{"1.5_", 10, decode.ErrInvalidCharacter},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("%q_%d", c.input, c.radix), func(t *testing.T) {
			t.Parallel()

			_, err := decode.AsLiteral(c.input, c.radix)
			assert.ErrorIs(t, err, c.expected, "AsLiteral should reject the literal with the correct error")
		})
	}
}

func TestAsLiteral_ErrorNamesCharacter(t *testing.T) {
	_, err := decode.AsLiteral("12.3$", 10)
	require.Error(t, err, "AsLiteral should reject a literal with a symbol in it")
	assert.Contains(t, err.Error(), "'$' at position 4", "Error should name the offending character and its position")

	_, err = decode.AsLiteral("1G", 16)
	require.Error(t, err, "AsLiteral should reject a digit that is out of range")
	assert.Contains(t, err.Error(), "'G' is not a digit in base 16", "Error should name the offending digit and radix")
}

func TestAsRadix(t *testing.T) {
	for n := -1; n <= 40; n++ {
		radix, err := decode.AsRadix(n)
		if n >= 2 && n <= 36 {
			require.NoError(t, err, "AsRadix should accept %d", n)
			assert.EqualValues(t, n, radix, "AsRadix should preserve the value")
		} else {
			assert.ErrorIs(t, err, decode.ErrInvalidRadix, "AsRadix should reject %d", n)
		}
	}

	_, err := decode.AsRadix(266)
	assert.ErrorIs(t, err, decode.ErrInvalidRadix, "AsRadix should reject values that would wrap around a byte")
}
