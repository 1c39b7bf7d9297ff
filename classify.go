// Copyright 2020 Aleksandr Demakin. All rights reserved.

package sigfig

import (
	"fmt"
	"math"
	"strconv"

	"github.com/shopspring/decimal"

	mu "github.com/avdva/sigfig/internal/mathutil"
)

// |x|*100 has 2, 3 or 4 integer digits for 0.1 <= |x| < 100.
const (
	minRangeDigits = 2
	maxRangeDigits = 4
)

var ten = decimal.New(10, 0)

// Round rounds f to 'precision' significant digits.
// The result may have a greater order of magnitude than f: Round(99.99, 3) == 100.
func Round(f float64, precision int) (float64, error) {
	if err := validate(f, precision); err != nil {
		return 0, err
	}
	_, rounded, err := classify(f, precision)
	return rounded, err
}

// InDecimalRange returns true if 0.1 <= |f| < 100.
// Such numbers are printed without an exponent in StyleAuto.
func InDecimalRange(f float64) bool {
	scaled := math.Floor(math.Abs(f) * 100)
	if !(scaled < float64(mu.Pow10(maxRangeDigits))) { // also catches NaN
		return false
	}
	digits := mu.DecimalDigits(uint64(scaled))
	return digits >= minRangeDigits && digits <= maxRangeDigits
}

// classify rounds num to 'precision' significant digits and checks if the rounded value
// is in the decimal range.
// The rounded mantissa is glued back to the exponent of num and parsed, so that a carry
// like 9.999e+01 --> 10.00e+01 results in the next power of ten.
func classify(num float64, precision int) (inRange bool, rounded float64, err error) {
	mant, exp := mu.SplitExp(num)
	m := roundMantissa(mant, precision)
	rounded, err = strconv.ParseFloat(m.String()+"e"+exp, 64)
	if err != nil {
		return false, 0, fmt.Errorf("%w: %v rounded to %d digits", ErrRange, num, precision)
	}
	return InDecimalRange(rounded), rounded, nil
}

// roundMantissa rounds a mantissa to precision-1 decimal places.
// The binary value of the mantissa is rounded, not its decimal text:
// "2.85" is 2.850000000000000088... and becomes 2.9, "1.15" is 1.149999... and becomes 1.1.
// Exact ties, like 2.5, are rounded to even.
// The result holds the shortest representation of the rounded float, so digits beyond
// float64 precision are never invented: they are added as zeros by StringFixed.
func roundMantissa(mant string, precision int) decimal.Decimal {
	m, err := strconv.ParseFloat(mant, 64)
	if err != nil {
		panic(err) // mant always comes from strconv.
	}
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(m, 'f', precision-1, 64), 64)
	if err != nil {
		panic(err)
	}
	return decimal.RequireFromString(strconv.FormatFloat(rounded, 'f', -1, 64))
}

// sciParts returns the mantissa of f rounded to 'precision' significant digits and
// the exponent, such that 1 <= |mant| < 10, unless f is zero.
func sciParts(f float64, precision int) (mant decimal.Decimal, exp int) {
	ms, es := mu.SplitExp(f)
	mant = roundMantissa(ms, precision)
	exp, err := mu.ParseExp(es)
	if err != nil {
		panic(err)
	}
	if mant.Abs().Cmp(ten) >= 0 { // 9.996 --> 10.00
		mant = mant.Shift(-1)
		exp++
	}
	return mant, exp
}
