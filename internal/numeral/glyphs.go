package numeral

// Separator is the radix point between the integer and fractional parts of a written literal
const Separator = '.'

const glyphs = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Glyph returns the upper-case glyph for a digit value. The digit must be less than [MaxRadix].
func Glyph(d Digit) byte {
	if int(d) >= len(glyphs) {
		// Digits are produced by the converters from a radix of at most MaxRadix, so this can only happen if a caller
		// hands us a sequence that was never valid in the first place
		panic("digit value has no glyph: must be less than 36")
	}

	return glyphs[d]
}

// DigitOf returns the digit value of a glyph. Letters are case-insensitive. The second return value is false if c is
// not an ASCII digit or letter.
//
// Note that the returned digit is not checked against any radix.
func DigitOf(c rune) (Digit, bool) {
	switch {
	case '0' <= c && c <= '9':
		return Digit(c - '0'), true
	case 'A' <= c && c <= 'Z':
		return Digit(c-'A') + 10, true
	case 'a' <= c && c <= 'z':
		return Digit(c-'a') + 10, true
	default:
		return 0, false
	}
}
