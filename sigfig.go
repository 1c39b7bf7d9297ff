// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package sigfig formats numbers with a fixed count of significant digits.
// Depending on the magnitude a number is printed either as a plain decimal,
// or in scientific notation with a superscript exponent:
//	0.09999 --> 0.100
//	0.123   --> 0.123
//	1.234   --> 1.23
//	99.99   --> 1.00⨯10²
// All functions are safe for concurrent use.
package sigfig

import (
	"fmt"
	"math"
)

const (
	// DefaultPrecision is the number of significant digits used by Value.String.
	DefaultPrecision = 3
	// MaxPrecision is the maximum number of significant digits.
	// A float64 carries at most 17 of them, the rest are zeros.
	MaxPrecision = 1000
)

const (
	delim = '.'
)

var (
	// ErrBadPrecision is returned for precision less than 1 or greater than MaxPrecision.
	ErrBadPrecision = fmt.Errorf("bad precision")
	// ErrBadFloat is returned for infinities and not-a-numbers.
	ErrBadFloat = fmt.Errorf("bad float number")
	// ErrRange is returned if rounding overflows float64, like for math.MaxFloat64.
	ErrRange = fmt.Errorf("value out of range")
)

// Style defines the notation of the result, see Style* constants.
type Style int

const (
	// StyleAuto prints numbers with 0.1 <= |x| < 100 as decimals,
	// and all others in scientific notation. Zero is printed as a decimal.
	StyleAuto Style = iota
	// StyleScientific always prints a mantissa and an exponent, like `5.68⨯10⁻²`.
	// With precision 1 the mantissa has no delimiter: `6⨯10⁻²`, not `6.0⨯10⁻²`.
	StyleScientific
	// StyleDecimal never prints an exponent, like `0.0568`.
	StyleDecimal
)

// StyleFromFlags returns a style for a pair of flags.
// If both flags are set, indexFormat wins.
func StyleFromFlags(indexFormat, decimalPoint bool) Style {
	switch {
	case indexFormat:
		return StyleScientific
	case decimalPoint:
		return StyleDecimal
	default:
		return StyleAuto
	}
}

func (s Style) String() string {
	switch s {
	case StyleAuto:
		return "auto"
	case StyleScientific:
		return "scientific"
	case StyleDecimal:
		return "decimal"
	default:
		return fmt.Sprintf("Style(%d)", int(s))
	}
}

// Format returns num rounded to 'precision' significant digits.
// The number is rounded first, and the style is chosen for the rounded value,
// so 99.99 with precision 3 becomes "1.00⨯10²", and 0.09999 becomes "0.100".
// The sign is kept for all numbers except negative zero, which is printed as zero.
func Format(num float64, precision int, style Style) (string, error) {
	if err := validate(num, precision); err != nil {
		return "", err
	}
	inRange, rounded, err := classify(num, precision)
	if err != nil {
		return "", err
	}
	switch style {
	case StyleScientific:
		return scientific(rounded, precision), nil
	case StyleDecimal:
		return plainDecimal(rounded, precision), nil
	case StyleAuto:
		if inRange || rounded == 0 {
			return plainDecimal(rounded, precision), nil
		}
		return scientific(rounded, precision), nil
	default:
		return "", fmt.Errorf("unknown style %v", style)
	}
}

// ToSig is Format with the style given as a pair of flags, see StyleFromFlags.
func ToSig(num float64, precision int, indexFormat, decimalPoint bool) (string, error) {
	return Format(num, precision, StyleFromFlags(indexFormat, decimalPoint))
}

// MustFormat is like Format, but panics on errors.
func MustFormat(num float64, precision int, style Style) string {
	s, err := Format(num, precision, style)
	if err != nil {
		panic(err)
	}
	return s
}

func validate(num float64, precision int) error {
	if precision < 1 || precision > MaxPrecision {
		return fmt.Errorf("%w %d", ErrBadPrecision, precision)
	}
	if math.IsInf(num, 0) || math.IsNaN(num) {
		return fmt.Errorf("%w %v", ErrBadFloat, num)
	}
	return nil
}
