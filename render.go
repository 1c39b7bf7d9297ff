// Copyright 2020 Aleksandr Demakin. All rights reserved.

package sigfig

import (
	"strings"

	mu "github.com/avdva/sigfig/internal/mathutil"
)

// scientific formats f as a mantissa with exactly 'precision' significant digits and
// a superscript exponent, like "-1.26⨯10⁸".
func scientific(f float64, precision int) string {
	mant, exp := sciParts(f, precision)
	return mant.StringFixed(int32(precision-1)) + ExponentSuffix(mu.FormatExp(exp))
}

// plainDecimal formats f without an exponent, with 'precision' significant digits,
// like "0.0130" or "12.0".
// Integer digits are never dropped, so 12345 with precision 3 gives "12300".
func plainDecimal(f float64, precision int) string {
	mant, exp := sciParts(f, precision)
	if mant.Sign() == 0 {
		return mant.StringFixed(int32(precision - 1))
	}
	places := precision - 1 - exp
	if places < 0 {
		places = 0
	}
	result := mant.Shift(int32(exp)).StringFixed(int32(places))
	for SignificantDigits(result) < precision {
		if strings.IndexByte(result, delim) >= 0 {
			result += "0"
		} else {
			result += string(delim) + "0"
		}
	}
	return result
}
