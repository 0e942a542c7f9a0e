// Package record implements a compact binary encoding for converted literals, so that results can be piped between
// tools without re-parsing text.
//
// A record is laid out as follows (multi-byte integers are big endian):
//
//	offset  size  field
//	0       3     magic, always "RDX"
//	3       1     version, currently 1
//	4       1     radix of the digits
//	5       1     flags (see [Flag])
//	6       2     number of integer digits (n)
//	8       n     integer digit values, most-significant first
//	8+n     2     number of fractional digits (m)
//	10+n    m     fractional digit values, highest weight first
package record

import (
	"errors"
	"fmt"
	"github.com/davejbax/go-baseconv/internal/numeral"
	"github.com/itchio/headway/counter"
	"github.com/lunixbochs/struc"
	"io"
	"math"
)

// Magic identifies the start of a record
var Magic = [3]uint8{'R', 'D', 'X'}

const Version = 1

// baseSize is the size of a record with no digits in it
const baseSize = 10

var (
	// ErrInvalidMagic indicates that the input does not start with [Magic]
	ErrInvalidMagic = errors.New("input is not a conversion record")

	// ErrUnsupportedVersion indicates a record written by an incompatible version of this package
	ErrUnsupportedVersion = errors.New("unsupported record version")

	// ErrCorruptRecord indicates that a record decoded successfully but its contents are not a valid literal
	ErrCorruptRecord = errors.New("record is corrupt")

	// ErrTooManyDigits indicates that a digit sequence is too long for the 16-bit length fields
	ErrTooManyDigits = errors.New("too many digits to fit in a record")
)

// Flag describes how the fractional digits of a record were produced
type Flag uint8

const (
	// FlagPrecisionBound is set when the fractional expansion stopped at the precision bound, meaning that the digits
	// may be a truncation of a longer (or non-terminating) expansion
	FlagPrecisionBound Flag = 0x01

	// FlagExact is set when the fractional digits were produced by exact rather than floating-point conversion
	FlagExact Flag = 0x02
)

// Record is a converted literal together with the radix its digits are written in.
//
// Record can be encoded and decoded by the [struc] library.
type Record struct {
	Magic          [3]uint8
	Version        uint8
	Radix          uint8
	Flags          Flag
	IntegerLength  uint16 `struc:"uint16,sizeof=Integer"`
	Integer        []uint8
	FractionLength uint16 `struc:"uint16,sizeof=Fraction"`
	Fraction       []uint8
}

// Ensure Record implements [io.WriterTo]
var _ io.WriterTo = &Record{}

// New creates a record for a literal whose digits are all less than radix. A literal that [Read] would reject is
// reported as [ErrCorruptRecord].
func New(literal numeral.Literal, radix numeral.Radix, flags Flag) (*Record, error) {
	if len(literal.Integer) > math.MaxUint16 || len(literal.Fraction) > math.MaxUint16 {
		return nil, fmt.Errorf("%w: %d integer and %d fractional digits", ErrTooManyDigits, len(literal.Integer), len(literal.Fraction))
	}

	rec := &Record{
		Magic:          Magic,
		Version:        Version,
		Radix:          uint8(radix),
		Flags:          flags,
		IntegerLength:  uint16(len(literal.Integer)),
		Integer:        fromDigits(literal.Integer),
		FractionLength: uint16(len(literal.Fraction)),
		Fraction:       fromDigits(literal.Fraction),
	}

	if err := rec.validate(); err != nil {
		return nil, err
	}

	return rec, nil
}

// Read decodes a single record from r, consuming exactly the bytes of that record
func Read(r io.Reader) (*Record, error) {
	rec := &Record{}
	if err := struc.Unpack(r, rec); err != nil {
		return nil, fmt.Errorf("failed to unpack record: %w", err)
	}

	if rec.Magic != Magic {
		return nil, ErrInvalidMagic
	}

	if rec.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, rec.Version)
	}

	if err := rec.validate(); err != nil {
		return nil, err
	}

	return rec, nil
}

func (r *Record) validate() error {
	if !numeral.Radix(r.Radix).Valid() {
		return fmt.Errorf("%w: radix %d is out of range", ErrCorruptRecord, r.Radix)
	}

	for _, part := range [][]uint8{r.Integer, r.Fraction} {
		for _, d := range part {
			if d >= r.Radix {
				return fmt.Errorf("%w: digit %d is invalid for radix %d", ErrCorruptRecord, d, r.Radix)
			}
		}
	}

	return nil
}

func (r *Record) WriteTo(w io.Writer) (int64, error) {
	cw := counter.NewWriter(w)
	if err := struc.Pack(cw, r); err != nil {
		return cw.Count(), fmt.Errorf("failed to pack record: %w", err)
	}

	return cw.Count(), nil
}

// Size is the number of bytes [Record.WriteTo] writes
func (r *Record) Size() int64 {
	return int64(baseSize + len(r.Integer) + len(r.Fraction))
}

// Literal returns the digits of the record as a literal in radix [Record.Radix]
func (r *Record) Literal() numeral.Literal {
	return numeral.Literal{
		Integer:  toDigits(r.Integer),
		Fraction: toDigits(r.Fraction),
	}
}

func fromDigits(digits []numeral.Digit) []uint8 {
	out := make([]uint8, len(digits))
	for i, d := range digits {
		out[i] = uint8(d)
	}

	return out
}

func toDigits(values []uint8) []numeral.Digit {
	out := make([]numeral.Digit, len(values))
	for i, v := range values {
		out[i] = numeral.Digit(v)
	}

	return out
}
