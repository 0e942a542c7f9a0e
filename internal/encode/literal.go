package encode

import (
	"github.com/davejbax/go-baseconv/internal/numeral"
	"strings"
)

// AsGlyphs writes a digit sequence using the glyphs 0-9 and A-Z. Every digit must be less than [numeral.MaxRadix].
func AsGlyphs(digits []numeral.Digit) string {
	var b strings.Builder
	b.Grow(len(digits))

	writeGlyphs(&b, digits)

	return b.String()
}

// AsString writes a literal as text. An empty integer part is written as "0", and the radix point is only written if
// the literal has a fractional part.
func AsString(literal numeral.Literal) string {
	var b strings.Builder
	b.Grow(len(literal.Integer) + 1 + len(literal.Fraction))

	if len(literal.Integer) == 0 {
		b.WriteByte('0')
	} else {
		writeGlyphs(&b, literal.Integer)
	}

	if literal.HasFraction() {
		b.WriteByte(numeral.Separator)
		writeGlyphs(&b, literal.Fraction)
	}

	return b.String()
}

func writeGlyphs(b *strings.Builder, digits []numeral.Digit) {
	for _, d := range digits {
		b.WriteByte(numeral.Glyph(d))
	}
}
