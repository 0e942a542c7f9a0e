// Package convert implements radix conversion of digit sequences.
//
// The functions in this package trust their input: every digit must be strictly less than the source radix, and both
// radices must be within [numeral.MinRadix, numeral.MaxRadix]. Passing anything else is undefined behaviour rather than
// a handled error; validation is the job of whoever produced the digits (see package decode).
//
// All functions are pure and safe to call concurrently.
package convert
