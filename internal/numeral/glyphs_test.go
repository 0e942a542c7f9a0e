package numeral_test

import (
	"fmt"
	"github.com/davejbax/go-baseconv/internal/numeral"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestGlyph(t *testing.T) {
	cases := []struct {
		input    numeral.Digit
		expected byte
	}{
		{0, '0'},
		{9, '9'},
		{10, 'A'},
		{15, 'F'},
		{35, 'Z'},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("%d", c.input), func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, c.expected, numeral.Glyph(c.input), "Glyph should map digit value to upper-case glyph")
		})
	}
}

func TestGlyph_OutOfRange(t *testing.T) {
	assert.Panics(t, func() { numeral.Glyph(36) }, "Glyph should panic for a digit that no radix can hold")
}

func TestDigitOf(t *testing.T) {
	cases := []struct {
		input    rune
		expected numeral.Digit
		ok       bool
	}{
		{'0', 0, true},
		{'9', 9, true},
		{'A', 10, true},
		{'a', 10, true},
		{'F', 15, true},
		{'z', 35, true},
		{'Z', 35, true},
		{'@', 0, false},
		{' ', 0, false},
		{'.', 0, false},
		{'é', 0, false},
	}

	for _, c := range cases {
		t.Run(string(c.input), func(t *testing.T) {
			t.Parallel()

			digit, ok := numeral.DigitOf(c.input)
			assert.Equal(t, c.ok, ok, "DigitOf should only accept ASCII digits and letters")
			assert.Equal(t, c.expected, digit, "DigitOf should return the glyph's digit value")
		})
	}
}

func TestGlyph_DigitOf_RoundTrip(t *testing.T) {
	for d := numeral.Digit(0); d < numeral.Digit(numeral.MaxRadix); d++ {
		digit, ok := numeral.DigitOf(rune(numeral.Glyph(d)))
		assert.True(t, ok, "Every glyph should decode")
		assert.Equal(t, d, digit, "Glyph and DigitOf should be inverses")
	}
}

func TestRadix_Valid(t *testing.T) {
	assert.False(t, numeral.Radix(0).Valid(), "Radix 0 should be invalid")
	assert.False(t, numeral.Radix(1).Valid(), "Radix 1 should be invalid")
	assert.True(t, numeral.MinRadix.Valid(), "MinRadix should be valid")
	assert.True(t, numeral.Decimal.Valid(), "Decimal should be valid")
	assert.True(t, numeral.MaxRadix.Valid(), "MaxRadix should be valid")
	assert.False(t, numeral.Radix(37).Valid(), "Radix 37 should be invalid")
}
