// Copyright 2020 Aleksandr Demakin. All rights reserved.

package sigfig

import "strings"

// SignificantDigits returns the number of significant digits in a formatted number.
// Sign, delimiter and leading zeros are not counted, trailing zeros are.
// For a number in scientific notation only the mantissa is counted.
// Zero has no significant digits.
//	"0.0130" --> 3, "-100" --> 3, "1.00⨯10²" --> 3
func SignificantDigits(s string) int {
	if i := strings.IndexAny(s, "eE⨯"); i >= 0 {
		s = s[:i]
	}
	count := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c < '0' || c > '9':
		case c == '0' && count == 0: // leading zero
		default:
			count++
		}
	}
	return count
}
