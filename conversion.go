package baseconv

import (
	"bytes"
	"errors"
	"fmt"
	"github.com/davejbax/go-baseconv/internal/convert"
	"github.com/davejbax/go-baseconv/internal/decode"
	"github.com/davejbax/go-baseconv/internal/encode"
	"github.com/davejbax/go-baseconv/internal/numeral"
	"github.com/davejbax/go-baseconv/internal/record"
	"io"
)

// ErrInvalidPrecision indicates a negative precision
var ErrInvalidPrecision = errors.New("precision must not be negative")

// Conversion is a literal that has been parsed and converted to another radix
type Conversion struct {
	Input     string
	From      Radix
	To        Radix
	Precision int
	Exact     bool

	// Source is the parsed input, in radix From
	Source Literal

	// Result is the converted literal, in radix To
	Result Literal
}

// Convert parses value in radix from and converts it to radix to, producing at most precision fractional digits
func Convert(value string, from, to, precision int) (*Conversion, error) {
	return newConversion(value, from, to, precision, false)
}

// ConvertExact is like [Convert], but converts the fractional part with [ConvertFractionalExact]
func ConvertExact(value string, from, to, precision int) (*Conversion, error) {
	return newConversion(value, from, to, precision, true)
}

func newConversion(value string, from, to, precision int, exact bool) (*Conversion, error) {
	fromRadix, err := decode.AsRadix(from)
	if err != nil {
		return nil, fmt.Errorf("invalid source base: %w", err)
	}

	toRadix, err := decode.AsRadix(to)
	if err != nil {
		return nil, fmt.Errorf("invalid target base: %w", err)
	}

	if precision < 0 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidPrecision, precision)
	}

	source, err := decode.AsLiteral(value, fromRadix)
	if err != nil {
		return nil, fmt.Errorf("error parsing input: %w", err)
	}

	fractional := convert.Fractional
	if exact {
		fractional = convert.FractionalExact
	}

	return &Conversion{
		Input:     value,
		From:      fromRadix,
		To:        toRadix,
		Precision: precision,
		Exact:     exact,
		Source:    source,
		Result: Literal{
			Integer:  convert.Integer(source.Integer, fromRadix, toRadix),
			Fraction: fractional(source.Fraction, fromRadix, toRadix, precision),
		},
	}, nil
}

// String returns the converted literal as text
func (c *Conversion) String() string {
	return encode.AsString(c.Result)
}

// Decimal returns the input written in base 10, with the fractional part limited to [DefaultPrecision] digits. This is
// the same conversion regardless of the target radix, and is meant as a human-readable reference value.
func (c *Conversion) Decimal() string {
	fractional := convert.Fractional
	if c.Exact {
		fractional = convert.FractionalExact
	}

	return encode.AsString(Literal{
		Integer:  convert.Integer(c.Source.Integer, c.From, numeral.Decimal),
		Fraction: fractional(c.Source.Fraction, c.From, numeral.Decimal, DefaultPrecision),
	})
}

// Truncated reports whether the fractional expansion stopped because it reached the precision bound, in which case
// the result may be an approximation of a longer or non-terminating expansion
func (c *Conversion) Truncated() bool {
	return c.Precision > 0 && len(c.Result.Fraction) == c.Precision
}

// WriteTo writes the result as a compact binary record, which can be read back with [ReadRecord]
func (c *Conversion) WriteTo(w io.Writer) (int64, error) {
	var flags record.Flag
	if c.Truncated() {
		flags |= record.FlagPrecisionBound
	}

	if c.Exact {
		flags |= record.FlagExact
	}

	rec, err := record.New(c.Result, c.To, flags)
	if err != nil {
		return 0, fmt.Errorf("could not create record: %w", err)
	}

	// Packed in full before anything reaches w, so a failure never leaves part of a record behind
	var buff bytes.Buffer
	buff.Grow(int(rec.Size()))
	if _, err := rec.WriteTo(&buff); err != nil {
		return 0, err
	}

	return buff.WriteTo(w)
}

// ReadRecord reads a single binary record written by [Conversion.WriteTo], returning the converted literal and the
// radix its digits are written in
func ReadRecord(r io.Reader) (Literal, Radix, error) {
	rec, err := record.Read(r)
	if err != nil {
		return Literal{}, 0, err
	}

	return rec.Literal(), Radix(rec.Radix), nil
}
